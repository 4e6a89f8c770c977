package domain

import (
	"context"
	"time"
)

// TaskFile persists the task list mirror.
type TaskFile interface {
	// Load returns the raw stored lines. A missing file yields no lines and no error.
	Load() ([]string, error)

	// Save overwrites the store with one line per task.
	Save(lines []string) error
}

// Speaker produces spoken output. Speak blocks until playback finishes.
// Implementations are best-effort and must not fail the caller.
type Speaker interface {
	Speak(text string)
}

// Listener acquires one utterance.
// Recognition failures are reported as ErrListenTimeout, ErrUnrecognized
// or ErrServiceUnavailable.
type Listener interface {
	Listen(ctx context.Context) (string, error)
}

// Browser opens URLs in the default external browser.
type Browser interface {
	Open(url string) error
}

// Launcher starts a local application.
type Launcher interface {
	// Exists reports whether the application path is present.
	Exists(path string) bool

	// Launch starts the application without waiting for it.
	Launch(path string) error
}

// WeatherProvider fetches current weather conditions.
type WeatherProvider interface {
	Current(ctx context.Context, city string) (*WeatherReport, error)
}

// NewsProvider fetches top headlines.
type NewsProvider interface {
	TopHeadlines(ctx context.Context, country string) (*NewsReport, error)
}

// Encyclopedia looks up short summaries by title.
type Encyclopedia interface {
	Summary(ctx context.Context, title string, sentences int) (LookupResult, error)
}

// ConfigLoader loads configuration from files and environment.
type ConfigLoader interface {
	// Load returns the merged configuration.
	Load() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
