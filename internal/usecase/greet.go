package usecase

import (
	"context"

	"github.com/runoshun/vassist/internal/domain"
)

const msgIntroduction = "I am your personal voice assistant. How may I help you today?"

// Greet is the use case for the startup greeting.
type Greet struct {
	clock   domain.Clock
	speaker domain.Speaker
}

// NewGreet creates a new Greet use case.
func NewGreet(clock domain.Clock, speaker domain.Speaker) *Greet {
	return &Greet{clock: clock, speaker: speaker}
}

// Execute speaks a time-of-day greeting followed by an introduction.
func (uc *Greet) Execute(_ context.Context) error {
	uc.speaker.Speak(Salutation(uc.clock.Now().Hour()))
	uc.speaker.Speak(msgIntroduction)
	return nil
}

// Salutation returns the greeting for an hour of the day (0-23).
func Salutation(hour int) string {
	switch {
	case hour < 12:
		return "Good Morning!"
	case hour < 18:
		return "Good Afternoon!"
	default:
		return "Good Evening!"
	}
}
