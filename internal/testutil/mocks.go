// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/runoshun/vassist/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockSpeaker records every spoken line.
type MockSpeaker struct {
	Spoken []string
}

// Speak records the text.
func (m *MockSpeaker) Speak(text string) {
	m.Spoken = append(m.Spoken, text)
}

// Joined returns all spoken lines joined by newlines.
func (m *MockSpeaker) Joined() string {
	return strings.Join(m.Spoken, "\n")
}

// Count returns how many times text was spoken exactly.
func (m *MockSpeaker) Count(text string) int {
	n := 0
	for _, s := range m.Spoken {
		if s == text {
			n++
		}
	}
	return n
}

// Reset forgets everything spoken so far.
func (m *MockSpeaker) Reset() {
	m.Spoken = nil
}

// MockTaskFile is a test double for domain.TaskFile.
// Fields are ordered to minimize memory padding.
type MockTaskFile struct {
	LoadErr error
	SaveErr error
	Lines   []string
	Saves   int
	Exists  bool
}

// NewMockTaskFile creates a MockTaskFile holding the given lines.
func NewMockTaskFile(lines ...string) *MockTaskFile {
	return &MockTaskFile{Lines: lines, Exists: len(lines) > 0}
}

// Load returns the stored lines.
func (m *MockTaskFile) Load() ([]string, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if !m.Exists {
		return nil, nil
	}
	out := make([]string, len(m.Lines))
	copy(out, m.Lines)
	return out, nil
}

// Save stores the lines unless SaveErr is set.
func (m *MockTaskFile) Save(lines []string) error {
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Lines = make([]string, len(lines))
	copy(m.Lines, lines)
	m.Exists = true
	return nil
}

// MockBrowser records opened URLs.
type MockBrowser struct {
	OpenErr error
	Opened  []string
}

// Open records the URL.
func (m *MockBrowser) Open(url string) error {
	m.Opened = append(m.Opened, url)
	return m.OpenErr
}

// MockLauncher is a test double for domain.Launcher.
type MockLauncher struct {
	LaunchErr error
	Present   map[string]bool
	Launched  []string
}

// Exists reports whether path was marked present.
func (m *MockLauncher) Exists(path string) bool {
	return m.Present[path]
}

// Launch records the path.
func (m *MockLauncher) Launch(path string) error {
	m.Launched = append(m.Launched, path)
	return m.LaunchErr
}

// MockWeatherProvider is a test double for domain.WeatherProvider.
type MockWeatherProvider struct {
	Report *domain.WeatherReport
	Err    error
	Cities []string
}

// Current returns the configured report.
func (m *MockWeatherProvider) Current(_ context.Context, city string) (*domain.WeatherReport, error) {
	m.Cities = append(m.Cities, city)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Report, nil
}

// MockNewsProvider is a test double for domain.NewsProvider.
type MockNewsProvider struct {
	Report    *domain.NewsReport
	Err       error
	Countries []string
}

// TopHeadlines returns the configured report.
func (m *MockNewsProvider) TopHeadlines(_ context.Context, country string) (*domain.NewsReport, error) {
	m.Countries = append(m.Countries, country)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Report, nil
}

// MockEncyclopedia is a test double for domain.Encyclopedia.
// Terms missing from Results are reported as not found.
type MockEncyclopedia struct {
	Results map[string]domain.LookupResult
	Errs    map[string]error
	Queries []string
}

// NewMockEncyclopedia creates an empty MockEncyclopedia.
func NewMockEncyclopedia() *MockEncyclopedia {
	return &MockEncyclopedia{
		Results: make(map[string]domain.LookupResult),
		Errs:    make(map[string]error),
	}
}

// Summary returns the configured result for title.
func (m *MockEncyclopedia) Summary(_ context.Context, title string, _ int) (domain.LookupResult, error) {
	m.Queries = append(m.Queries, title)
	if err, ok := m.Errs[title]; ok {
		return domain.LookupResult{}, err
	}
	if r, ok := m.Results[title]; ok {
		return r, nil
	}
	return domain.NotFound(), nil
}

// ListenResult is one scripted Listen outcome.
type ListenResult struct {
	Err       error
	Utterance string
}

// MockListener replays scripted utterances, then reports io.EOF.
type MockListener struct {
	Script []ListenResult
	Calls  int
}

// NewMockListener creates a listener that returns each utterance in turn.
func NewMockListener(utterances ...string) *MockListener {
	m := &MockListener{}
	for _, u := range utterances {
		m.Script = append(m.Script, ListenResult{Utterance: u})
	}
	return m
}

// Listen returns the next scripted result.
func (m *MockListener) Listen(_ context.Context) (string, error) {
	if m.Calls >= len(m.Script) {
		m.Calls++
		return "", io.EOF
	}
	r := m.Script[m.Calls]
	m.Calls++
	return r.Utterance, r.Err
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Ensure MockConfigLoader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// NewMockConfigLoader creates a loader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr          error
	InitConfig       *domain.Config
	GlobalConfigInfo domain.ConfigInfo
	InitCalled       bool
}

// Ensure MockConfigManager implements domain.ConfigManager.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GetGlobalConfigInfo returns the configured info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitCalled = true
	m.InitConfig = cfg
	return m.InitErr
}
