package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/runoshun/vassist/internal/domain"
	"github.com/runoshun/vassist/internal/intent"
)

// SummarySentences is the length of a spoken encyclopedia summary.
const SummarySentences = 3

// Spoken encyclopedia messages.
const (
	msgWikiPrompt    = "Please tell me what you would like to search for."
	msgWikiSearching = "Searching Wikipedia for %s..."
	msgWikiFound     = "According to Wikipedia, about %s."
	msgWikiNotFound  = "Sorry, I could not find anything about %s on Wikipedia."
	msgWikiAmbiguous = "The search for %s is ambiguous. I will perform a Google search instead."
	msgWikiError     = "An error occurred while searching Wikipedia."
)

// WikipediaSearchInput contains the lookup term.
type WikipediaSearchInput struct {
	Term string
}

// WikipediaSearchOutput contains the lookup outcome.
// Result is the zero value when the user was reprompted or the lookup failed.
type WikipediaSearchOutput struct {
	Result   domain.LookupResult
	Searched bool
}

// WikipediaSearch is the use case for speaking an encyclopedia summary.
// It records successful topics in the session for follow-up requests.
type WikipediaSearch struct {
	encyclopedia domain.Encyclopedia
	google       *GoogleSearch
	session      *Session
	speaker      domain.Speaker
	logger       *slog.Logger
}

// NewWikipediaSearch creates a new WikipediaSearch use case.
// Ambiguous titles are redirected to google.
func NewWikipediaSearch(encyclopedia domain.Encyclopedia, google *GoogleSearch, session *Session, speaker domain.Speaker, logger *slog.Logger) *WikipediaSearch {
	return &WikipediaSearch{
		encyclopedia: encyclopedia,
		google:       google,
		session:      session,
		speaker:      speaker,
		logger:       orDiscard(logger),
	}
}

// Execute looks up the term and speaks the result.
func (uc *WikipediaSearch) Execute(ctx context.Context, in WikipediaSearchInput) (*WikipediaSearchOutput, error) {
	if intent.IsFillerTerm(in.Term) {
		uc.speaker.Speak(msgWikiPrompt)
		return &WikipediaSearchOutput{}, nil
	}

	uc.speaker.Speak(fmt.Sprintf(msgWikiSearching, in.Term))
	result, err := uc.encyclopedia.Summary(ctx, in.Term, SummarySentences)
	if err != nil {
		uc.logger.Warn("encyclopedia lookup failed", "term", in.Term, "error", err)
		uc.speaker.Speak(msgWikiError)
		uc.session.Context.ClearTopic()
		return &WikipediaSearchOutput{Searched: true}, nil
	}

	switch result.Kind {
	case domain.LookupFound:
		uc.speaker.Speak(fmt.Sprintf(msgWikiFound, in.Term))
		uc.speaker.Speak(result.Summary)
		uc.session.Context.SetTopic(in.Term)
	case domain.LookupNotFound:
		uc.speaker.Speak(fmt.Sprintf(msgWikiNotFound, in.Term))
		uc.session.Context.ClearTopic()
	case domain.LookupAmbiguous:
		uc.speaker.Speak(fmt.Sprintf(msgWikiAmbiguous, in.Term))
		if _, err := uc.google.Execute(ctx, GoogleSearchInput{Term: in.Term}); err != nil {
			return nil, err
		}
	}
	return &WikipediaSearchOutput{Result: result, Searched: true}, nil
}
