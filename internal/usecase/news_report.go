package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/runoshun/vassist/internal/domain"
)

// MaxHeadlines is the number of headlines read aloud.
const MaxHeadlines = 3

// Spoken news messages.
const (
	msgNewsConfig     = "To get the news, please configure your News API key and country code."
	msgNewsIntro      = "Here are the top headlines for your region. News from various sources:"
	msgNewsHeadline   = "Headline number %d: %s."
	msgNewsOutro      = "You can check a search engine for more details on these stories."
	msgNewsEmpty      = "Sorry, I could not retrieve any headlines right now. The API response was not successful."
	msgNewsStatus     = "Error accessing news service. Please check your API key or country code. Status: %d"
	msgNewsNetwork    = "I could not connect to the news service. Please check your network connection."
	msgNewsUnexpected = "An unexpected error occurred while fetching news."
)

const (
	defaultArticleTitle  = "A recent news story"
	defaultArticleSource = "Unknown Source"
)

// NewsReportOutput contains the result of a headlines request.
type NewsReportOutput struct {
	Headlines []string // Cleaned titles that were read
}

// NewsReport is the use case for reading top headlines.
type NewsReport struct {
	provider domain.NewsProvider
	speaker  domain.Speaker
	logger   *slog.Logger
	cfg      domain.NewsConfig
}

// NewNewsReport creates a new NewsReport use case.
func NewNewsReport(provider domain.NewsProvider, cfg domain.NewsConfig, speaker domain.Speaker, logger *slog.Logger) *NewsReport {
	return &NewsReport{
		provider: provider,
		speaker:  speaker,
		logger:   orDiscard(logger),
		cfg:      cfg,
	}
}

// Execute fetches and speaks up to MaxHeadlines headlines.
func (uc *NewsReport) Execute(ctx context.Context) (*NewsReportOutput, error) {
	out := &NewsReportOutput{}
	if !uc.cfg.Configured() || uc.provider == nil {
		uc.speaker.Speak(msgNewsConfig)
		return out, nil
	}

	report, err := uc.provider.TopHeadlines(ctx, uc.cfg.Country)
	if err != nil {
		uc.logger.Warn("news request failed", "country", uc.cfg.Country, "error", err)
		var statusErr *domain.HTTPStatusError
		switch {
		case errors.As(err, &statusErr):
			uc.speaker.Speak(fmt.Sprintf(msgNewsStatus, statusErr.Code))
		case errors.Is(err, domain.ErrNetwork):
			uc.speaker.Speak(msgNewsNetwork)
		default:
			uc.speaker.Speak(msgNewsUnexpected)
		}
		return out, nil
	}

	if report.Status != "ok" || len(report.Articles) == 0 {
		uc.speaker.Speak(msgNewsEmpty)
		return out, nil
	}

	uc.speaker.Speak(msgNewsIntro)
	articles := report.Articles
	if len(articles) > MaxHeadlines {
		articles = articles[:MaxHeadlines]
	}
	for i, a := range articles {
		title := CleanHeadline(a)
		out.Headlines = append(out.Headlines, title)
		uc.speaker.Speak(fmt.Sprintf(msgNewsHeadline, i+1, title))
	}
	uc.speaker.Speak(msgNewsOutro)
	return out, nil
}

// CleanHeadline strips a trailing " - <source name>" from an article title.
func CleanHeadline(a domain.Article) string {
	title := a.Title
	if strings.TrimSpace(title) == "" {
		title = defaultArticleTitle
	}
	source := a.Source
	if source == "" {
		source = defaultArticleSource
	}
	return strings.TrimSpace(strings.TrimSuffix(title, " - "+source))
}
