package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/runoshun/vassist/internal/domain"
	"github.com/runoshun/vassist/internal/infra/executor"
)

// Exit codes a recognizer program uses to report recognition failures.
// Any other non-zero exit is treated as the service being unavailable.
const (
	ExitCodeTimeout      = 2
	ExitCodeUnrecognized = 3
)

// CommandListener acquires utterances from an external speech-to-text program.
// The program records one phrase and prints its transcript on stdout. It receives
// the locale and limits through VASSIST_LOCALE, VASSIST_LISTEN_TIMEOUT and
// VASSIST_PHRASE_LIMIT (seconds).
type CommandListener struct {
	logger        *slog.Logger
	cmd           executor.Command
	locale        string
	listenTimeout time.Duration
	phraseLimit   time.Duration
}

// Ensure CommandListener implements domain.Listener.
var _ domain.Listener = (*CommandListener)(nil)

// NewCommandListener creates a CommandListener for the configured command line.
func NewCommandListener(commandLine string, cfg domain.SpeechConfig, logger *slog.Logger) (*CommandListener, error) {
	cmd, ok := executor.ParseCommandLine(commandLine)
	if !ok {
		return nil, errors.New("listen command is empty")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CommandListener{
		logger:        logger,
		cmd:           cmd,
		locale:        cfg.Locale,
		listenTimeout: cfg.ListenTimeout,
		phraseLimit:   cfg.PhraseLimit,
	}, nil
}

// Listen runs the recognizer once. The call is bounded by the listen timeout
// plus the maximum phrase duration.
func (l *CommandListener) Listen(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.listenTimeout+l.phraseLimit)
	defer cancel()

	cmd := l.cmd
	cmd.Env = []string{
		"VASSIST_LOCALE=" + l.locale,
		"VASSIST_LISTEN_TIMEOUT=" + seconds(l.listenTimeout),
		"VASSIST_PHRASE_LIMIT=" + seconds(l.phraseLimit),
	}

	var stdout, stderr bytes.Buffer
	err := executor.Run(ctx, cmd, nil, &stdout, &stderr)
	if err != nil {
		return "", l.classify(ctx, err, strings.TrimSpace(stderr.String()))
	}

	text := strings.TrimSpace(stdout.String())
	if text == "" {
		return "", domain.ErrUnrecognized
	}
	l.logger.Debug("recognized", "text", text)
	return text, nil
}

func (l *CommandListener) classify(ctx context.Context, err error, stderr string) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.ErrListenTimeout
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		switch exitErr.ExitCode() {
		case ExitCodeTimeout:
			return domain.ErrListenTimeout
		case ExitCodeUnrecognized:
			return domain.ErrUnrecognized
		}
	}
	if stderr != "" {
		return fmt.Errorf("%w: %w: %s", domain.ErrServiceUnavailable, err, stderr)
	}
	return fmt.Errorf("%w: %w", domain.ErrServiceUnavailable, err)
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
