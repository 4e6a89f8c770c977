package speech

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/runoshun/vassist/internal/domain"
	"github.com/runoshun/vassist/internal/infra/executor"
)

// CommandSpeaker speaks through an external text-to-speech program such as espeak.
// The text is passed as the final argument and the call blocks until playback ends.
type CommandSpeaker struct {
	logger *slog.Logger
	cmd    executor.Command
}

// Ensure CommandSpeaker implements domain.Speaker.
var _ domain.Speaker = (*CommandSpeaker)(nil)

// NewCommandSpeaker creates a CommandSpeaker for the configured command line.
// It returns false when the command line is empty or the program cannot be found,
// in which case callers fall back to console output.
func NewCommandSpeaker(commandLine string, logger *slog.Logger) (*CommandSpeaker, bool) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cmd, ok := executor.ParseCommandLine(commandLine)
	if !ok {
		return nil, false
	}
	if _, err := exec.LookPath(cmd.Program); err != nil {
		logger.Warn("text-to-speech program not available", "program", cmd.Program, "error", err)
		return nil, false
	}
	return &CommandSpeaker{logger: logger, cmd: cmd}, true
}

// Speak plays the text. Playback failures are logged, never returned.
func (s *CommandSpeaker) Speak(text string) {
	cmd := s.cmd
	cmd.Args = append(append([]string{}, s.cmd.Args...), text)

	var stderr bytes.Buffer
	if err := executor.Run(context.Background(), cmd, nil, nil, &stderr); err != nil {
		s.logger.Error("text-to-speech failed", "program", cmd.Program, "error", err,
			"stderr", strings.TrimSpace(stderr.String()))
	}
}

// MultiSpeaker speaks each line through every speaker in order.
type MultiSpeaker []domain.Speaker

// Ensure MultiSpeaker implements domain.Speaker.
var _ domain.Speaker = MultiSpeaker(nil)

// Speak forwards text to each non-nil speaker.
func (m MultiSpeaker) Speak(text string) {
	for _, s := range m {
		if s != nil {
			s.Speak(text)
		}
	}
}
