package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/vassist/internal/domain"
)

// Spoken follow-up messages.
const (
	msgFollowUpSearching = "Searching for more information about %s."
	msgFollowUpNothing   = "I don't have a previous topic to follow up on. Please start a new search."
)

// FollowUpOutput contains the topic that was looked up again, if any.
type FollowUpOutput struct {
	Topic string
}

// FollowUp is the use case for repeating a lookup on the remembered topic.
type FollowUp struct {
	wikipedia *WikipediaSearch
	session   *Session
	speaker   domain.Speaker
}

// NewFollowUp creates a new FollowUp use case.
func NewFollowUp(wikipedia *WikipediaSearch, session *Session, speaker domain.Speaker) *FollowUp {
	return &FollowUp{wikipedia: wikipedia, session: session, speaker: speaker}
}

// Execute re-runs the encyclopedia lookup for the last topic.
func (uc *FollowUp) Execute(ctx context.Context) (*FollowUpOutput, error) {
	topic, ok := uc.session.Context.LastTopic()
	if !ok {
		uc.speaker.Speak(msgFollowUpNothing)
		return &FollowUpOutput{}, nil
	}

	uc.speaker.Speak(fmt.Sprintf(msgFollowUpSearching, topic))
	if _, err := uc.wikipedia.Execute(ctx, WikipediaSearchInput{Term: topic}); err != nil {
		return nil, err
	}
	return &FollowUpOutput{Topic: topic}, nil
}
