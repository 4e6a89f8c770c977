package usecase

import (
	"context"
	"log/slog"

	"github.com/runoshun/vassist/internal/domain"
)

// Spoken application messages.
const (
	msgAppOpening  = "Opening Visual Studio Code."
	msgAppNotFound = "Sorry, I could not find the specified application path. Please update the path in your configuration."
	msgAppFailed   = "Sorry, I could not start Visual Studio Code."
)

// OpenAppOutput contains the launch result.
type OpenAppOutput struct {
	Launched bool
}

// OpenApp is the use case for launching the configured editor.
type OpenApp struct {
	launcher domain.Launcher
	speaker  domain.Speaker
	logger   *slog.Logger
	path     string
}

// NewOpenApp creates a new OpenApp use case for the application at path.
func NewOpenApp(launcher domain.Launcher, path string, speaker domain.Speaker, logger *slog.Logger) *OpenApp {
	return &OpenApp{launcher: launcher, speaker: speaker, logger: orDiscard(logger), path: path}
}

// Execute launches the application if its path exists.
func (uc *OpenApp) Execute(_ context.Context) (*OpenAppOutput, error) {
	if uc.path == "" || !uc.launcher.Exists(uc.path) {
		uc.speaker.Speak(msgAppNotFound)
		return &OpenAppOutput{}, nil
	}
	if err := uc.launcher.Launch(uc.path); err != nil {
		uc.logger.Warn("launch application", "path", uc.path, "error", err)
		uc.speaker.Speak(msgAppFailed)
		return &OpenAppOutput{}, nil
	}
	uc.speaker.Speak(msgAppOpening)
	return &OpenAppOutput{Launched: true}, nil
}
