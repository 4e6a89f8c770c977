package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/runoshun/vassist/internal/domain"
	"github.com/runoshun/vassist/internal/intent"
)

// Spoken search messages.
const (
	msgGooglePrompt    = "Please tell me what you would like to search for on Google."
	msgGoogleSearching = "Searching Google for %s"
)

// GoogleSearchInput contains the search term.
type GoogleSearchInput struct {
	Term string
}

// GoogleSearchOutput contains the opened URL, empty if nothing was opened.
type GoogleSearchOutput struct {
	URL string
}

// GoogleSearch is the use case for opening a web search in the browser.
type GoogleSearch struct {
	browser domain.Browser
	speaker domain.Speaker
	logger  *slog.Logger
}

// NewGoogleSearch creates a new GoogleSearch use case.
func NewGoogleSearch(browser domain.Browser, speaker domain.Speaker, logger *slog.Logger) *GoogleSearch {
	return &GoogleSearch{browser: browser, speaker: speaker, logger: orDiscard(logger)}
}

// Execute opens the search URL, or reprompts when the term is empty.
func (uc *GoogleSearch) Execute(_ context.Context, in GoogleSearchInput) (*GoogleSearchOutput, error) {
	if in.Term == "" {
		uc.speaker.Speak(msgGooglePrompt)
		return &GoogleSearchOutput{}, nil
	}

	uc.speaker.Speak(fmt.Sprintf(msgGoogleSearching, in.Term))
	url := intent.GoogleSearchURL(in.Term)
	if err := uc.browser.Open(url); err != nil {
		uc.logger.Warn("open browser", "url", url, "error", err)
	}
	return &GoogleSearchOutput{URL: url}, nil
}
