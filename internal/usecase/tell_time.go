package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/vassist/internal/domain"
)

const msgTime = "The current time is %s"

// TellTime is the use case for speaking the local time.
type TellTime struct {
	clock   domain.Clock
	speaker domain.Speaker
}

// NewTellTime creates a new TellTime use case.
func NewTellTime(clock domain.Clock, speaker domain.Speaker) *TellTime {
	return &TellTime{clock: clock, speaker: speaker}
}

// Execute speaks the current time on a 12-hour clock, e.g. "03:04 PM".
func (uc *TellTime) Execute(_ context.Context) (string, error) {
	now := uc.clock.Now().Format("03:04 PM")
	uc.speaker.Speak(fmt.Sprintf(msgTime, now))
	return now, nil
}
