package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/runoshun/vassist/internal/domain"
)

const msgRecognitionUnavailable = "I'm facing a request error. Please check your internet connection or speech recognition service limits."

// MainLoop acquires utterances and dispatches them until an exit intent.
// Each utterance is fully handled before the next one is acquired.
type MainLoop struct {
	listener   domain.Listener
	dispatcher *Dispatcher
	greet      *Greet
	speaker    domain.Speaker
	logger     *slog.Logger
}

// NewMainLoop creates a new MainLoop. greet may be nil to skip the greeting.
func NewMainLoop(listener domain.Listener, dispatcher *Dispatcher, greet *Greet, speaker domain.Speaker, logger *slog.Logger) *MainLoop {
	return &MainLoop{
		listener:   listener,
		dispatcher: dispatcher,
		greet:      greet,
		speaker:    speaker,
		logger:     orDiscard(logger),
	}
}

// Run greets the user and loops until an exit intent, the end of input, or
// cancellation of ctx. Cancellation returns ctx.Err().
func (l *MainLoop) Run(ctx context.Context) error {
	if l.greet != nil {
		if err := l.greet.Execute(ctx); err != nil {
			return err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		utterance, err := l.listen(ctx)
		if errors.Is(err, io.EOF) {
			l.logger.Info("input closed")
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if utterance == domain.NoSpeech {
			continue
		}

		if !l.dispatcher.Dispatch(ctx, utterance) {
			l.logger.Info("assistant stopped")
			return nil
		}
	}
}

// listen acquires one utterance, mapping recognition failures to domain.NoSpeech.
// Only io.EOF is returned as an error.
func (l *MainLoop) listen(ctx context.Context) (string, error) {
	utterance, err := l.listener.Listen(ctx)
	switch {
	case err == nil:
		l.logger.Debug("heard", "utterance", utterance)
		return utterance, nil
	case errors.Is(err, io.EOF):
		return "", err
	case errors.Is(err, domain.ErrListenTimeout), errors.Is(err, domain.ErrUnrecognized):
		l.logger.Debug("no speech", "reason", err)
	case errors.Is(err, domain.ErrServiceUnavailable):
		l.logger.Warn("speech recognition unavailable", "error", err)
		l.speaker.Speak(msgRecognitionUnavailable)
	default:
		l.logger.Error("unexpected listen error", "error", err)
	}
	return domain.NoSpeech, nil
}
