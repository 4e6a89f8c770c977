package executor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserCommand(t *testing.T) {
	url := "https://www.youtube.com"
	assert.Equal(t, Command{Program: "xdg-open", Args: []string{url}}, BrowserCommand("linux", url))
	assert.Equal(t, Command{Program: "open", Args: []string{url}}, BrowserCommand("darwin", url))
	assert.Equal(t, Command{Program: "rundll32", Args: []string{"url.dll,FileProtocolHandler", url}}, BrowserCommand("windows", url))
}

func TestLaunchCommand(t *testing.T) {
	assert.Equal(t, Command{Program: "/usr/bin/code"}, LaunchCommand("linux", "/usr/bin/code"))
	assert.Equal(t, Command{Program: "open", Args: []string{"/Applications/Visual Studio Code.app"}},
		LaunchCommand("darwin", "/Applications/Visual Studio Code.app"))
	assert.Equal(t, "cmd", LaunchCommand("windows", `C:\Code.exe`).Program)
}

func TestClient_OpenAndLaunch(t *testing.T) {
	var started []Command
	c := NewClientWithStarter(func(cmd Command) error {
		started = append(started, cmd)
		return nil
	}, "linux")

	require.NoError(t, c.Open("https://www.google.com"))
	require.NoError(t, c.Launch("/usr/bin/code"))

	assert.Equal(t, []Command{
		{Program: "xdg-open", Args: []string{"https://www.google.com"}},
		{Program: "/usr/bin/code"},
	}, started)
}

func TestClient_StartError(t *testing.T) {
	startErr := errors.New("executable file not found")
	c := NewClientWithStarter(func(Command) error { return startErr }, "linux")

	assert.ErrorIs(t, c.Open("https://www.google.com"), startErr)
	assert.ErrorIs(t, c.Launch("/nope"), startErr)
}

func TestClient_Exists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "code")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o600))

	c := NewClient()
	assert.True(t, c.Exists(path))
	assert.False(t, c.Exists(filepath.Join(dir, "missing")))
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Command{Program: "sh", Args: []string{"-c", "cat"}}, bytes.NewBufferString("hello"), &out, nil)

	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}

func TestRun_Env(t *testing.T) {
	var out bytes.Buffer
	cmd := Command{Program: "sh", Args: []string{"-c", "printf %s \"$VASSIST_TEST\""}, Env: []string{"VASSIST_TEST=ok"}}

	require.NoError(t, Run(context.Background(), cmd, nil, &out, nil))
	assert.Equal(t, "ok", out.String())
}

func TestParseCommandLine(t *testing.T) {
	cmd, ok := ParseCommandLine("  espeak -s 170 ")
	require.True(t, ok)
	assert.Equal(t, Command{Program: "espeak", Args: []string{"-s", "170"}}, cmd)

	_, ok = ParseCommandLine("   ")
	assert.False(t, ok)
}
