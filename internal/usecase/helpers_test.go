package usecase

import (
	"time"

	"github.com/runoshun/vassist/internal/domain"
	"github.com/runoshun/vassist/internal/testutil"
)

const testAppPath = "/opt/code/bin/code"

// assistantFixture wires every use case against test doubles.
type assistantFixture struct {
	speaker      *testutil.MockSpeaker
	file         *testutil.MockTaskFile
	browser      *testutil.MockBrowser
	launcher     *testutil.MockLauncher
	weather      *testutil.MockWeatherProvider
	news         *testutil.MockNewsProvider
	encyclopedia *testutil.MockEncyclopedia
	clock        *testutil.MockClock
	session      *Session
	dispatcher   *Dispatcher
	handlers     Handlers
}

type fixtureOption func(*fixtureConfig)

type fixtureConfig struct {
	weather domain.WeatherConfig
	news    domain.NewsConfig
}

func withWeatherConfig(cfg domain.WeatherConfig) fixtureOption {
	return func(c *fixtureConfig) { c.weather = cfg }
}

func withNewsConfig(cfg domain.NewsConfig) fixtureOption {
	return func(c *fixtureConfig) { c.news = cfg }
}

func newAssistantFixture(lines []string, opts ...fixtureOption) *assistantFixture {
	cfg := &fixtureConfig{
		weather: domain.WeatherConfig{APIKey: "weather-key", City: "Pune"},
		news:    domain.NewsConfig{APIKey: "news-key", Country: "in"},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	f := &assistantFixture{
		speaker:      &testutil.MockSpeaker{},
		file:         testutil.NewMockTaskFile(lines...),
		browser:      &testutil.MockBrowser{},
		launcher:     &testutil.MockLauncher{Present: map[string]bool{}},
		weather:      &testutil.MockWeatherProvider{},
		news:         &testutil.MockNewsProvider{},
		encyclopedia: testutil.NewMockEncyclopedia(),
		clock:        &testutil.MockClock{NowTime: time.Date(2025, 3, 14, 15, 4, 0, 0, time.Local)},
	}

	store := NewTaskStore(f.file, f.speaker, nil)
	store.Load()
	f.session = NewSession(store)

	google := NewGoogleSearch(f.browser, f.speaker, nil)
	wiki := NewWikipediaSearch(f.encyclopedia, google, f.session, f.speaker, nil)
	f.handlers = Handlers{
		AddTask:    NewAddTask(f.session),
		ShowTasks:  NewShowTasks(f.session, f.speaker),
		ClearTasks: NewClearTasks(f.session),
		FollowUp:   NewFollowUp(wiki, f.session, f.speaker),
		Weather:    NewWeatherReport(f.weather, cfg.weather, f.speaker, nil),
		News:       NewNewsReport(f.news, cfg.news, f.speaker, nil),
		Wikipedia:  wiki,
		Google:     google,
		Time:       NewTellTime(f.clock, f.speaker),
		OpenSite:   NewOpenSite(f.browser, f.speaker, nil),
		OpenApp:    NewOpenApp(f.launcher, testAppPath, f.speaker, nil),
	}
	f.dispatcher = NewDispatcher(f.handlers, f.speaker, nil)
	return f
}
