// Package executor provides fire-and-forget process launching for the browser
// and local applications.
package executor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/runoshun/vassist/internal/domain"
)

// waitDelay bounds how long Run waits for output pipes after the process is killed.
const waitDelay = time.Second

// Command describes a program invocation.
type Command struct {
	Program string
	Args    []string
	Env     []string // Extra KEY=VALUE pairs appended to the current environment
}

// ParseCommandLine splits a configured command line into a Command.
// Arguments are separated by whitespace; quoting is not supported.
func ParseCommandLine(line string) (Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}
	return Command{Program: fields[0], Args: fields[1:]}, true
}

// Starter starts a command without waiting for it to finish.
type Starter func(cmd Command) error

// Client implements domain.Browser and domain.Launcher.
type Client struct {
	start Starter
	goos  string
}

// Ensure Client implements the launch ports.
var (
	_ domain.Browser  = (*Client)(nil)
	_ domain.Launcher = (*Client)(nil)
)

// NewClient creates a new executor client for the current platform.
func NewClient() *Client {
	return &Client{start: startDetached, goos: runtime.GOOS}
}

// NewClientWithStarter creates a client with a custom starter and platform.
// This is useful for testing.
func NewClientWithStarter(start Starter, goos string) *Client {
	return &Client{start: start, goos: goos}
}

// Open opens url in the default browser.
func (c *Client) Open(url string) error {
	if err := c.start(BrowserCommand(c.goos, url)); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// Exists reports whether path is present on the filesystem.
func (c *Client) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Launch starts the application at path.
func (c *Client) Launch(path string) error {
	if err := c.start(LaunchCommand(c.goos, path)); err != nil {
		return fmt.Errorf("launch %s: %w", path, err)
	}
	return nil
}

// BrowserCommand returns the platform command that opens url.
func BrowserCommand(goos, url string) Command {
	switch goos {
	case "windows":
		return Command{Program: "rundll32", Args: []string{"url.dll,FileProtocolHandler", url}}
	case "darwin":
		return Command{Program: "open", Args: []string{url}}
	default:
		return Command{Program: "xdg-open", Args: []string{url}}
	}
}

// LaunchCommand returns the platform command that starts the application at path.
func LaunchCommand(goos, path string) Command {
	switch goos {
	case "windows":
		return Command{Program: "cmd", Args: []string{"/c", "start", "", path}}
	case "darwin":
		return Command{Program: "open", Args: []string{path}}
	default:
		return Command{Program: path}
	}
}

func startDetached(cmd Command) error {
	// #nosec G204 - program comes from the platform table or user configuration
	c := exec.Command(cmd.Program, cmd.Args...)
	if err := c.Start(); err != nil {
		return err
	}
	// Reap the child in the background so it does not linger as a zombie
	go func() { _ = c.Wait() }()
	return nil
}

// Run executes a program to completion with ctx, wiring stdin and stdout.
// It is used by the speech adapters, which must block until the program exits.
func Run(ctx context.Context, cmd Command, stdin io.Reader, stdout, stderr io.Writer) error {
	// #nosec G204 - program comes from user configuration
	c := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}
	c.Stdin = stdin
	c.Stdout = stdout
	c.Stderr = stderr
	c.WaitDelay = waitDelay
	return c.Run()
}
