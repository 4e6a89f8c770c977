package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/runoshun/vassist/internal/domain"
)

// Site is a fixed website the assistant can open.
type Site struct {
	Name string
	URL  string
}

// Known sites.
var (
	SiteYouTube = Site{Name: "YouTube", URL: "https://www.youtube.com"}
	SiteGoogle  = Site{Name: "Google", URL: "https://www.google.com"}
)

const msgOpeningSite = "Opening %s in your default browser."

// OpenSiteInput contains the site to open.
type OpenSiteInput struct {
	Site Site
}

// OpenSite is the use case for opening a fixed website.
type OpenSite struct {
	browser domain.Browser
	speaker domain.Speaker
	logger  *slog.Logger
}

// NewOpenSite creates a new OpenSite use case.
func NewOpenSite(browser domain.Browser, speaker domain.Speaker, logger *slog.Logger) *OpenSite {
	return &OpenSite{browser: browser, speaker: speaker, logger: orDiscard(logger)}
}

// Execute announces and opens the site. Browser failures are only logged.
func (uc *OpenSite) Execute(_ context.Context, in OpenSiteInput) error {
	uc.speaker.Speak(fmt.Sprintf(msgOpeningSite, in.Site.Name))
	if err := uc.browser.Open(in.Site.URL); err != nil {
		uc.logger.Warn("open browser", "url", in.Site.URL, "error", err)
	}
	return nil
}
