// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/vassist/internal/domain"
	"github.com/runoshun/vassist/internal/infra/config"
	"github.com/runoshun/vassist/internal/infra/executor"
	"github.com/runoshun/vassist/internal/infra/logging"
	"github.com/runoshun/vassist/internal/infra/news"
	"github.com/runoshun/vassist/internal/infra/speech"
	"github.com/runoshun/vassist/internal/infra/taskfile"
	"github.com/runoshun/vassist/internal/infra/weather"
	"github.com/runoshun/vassist/internal/infra/wikipedia"
	"github.com/runoshun/vassist/internal/usecase"
)

// Options holds the command-line settings that shape the container.
type Options struct {
	Stdin      io.Reader // Typed input in text mode (default os.Stdin)
	Stdout     io.Writer // Console output (default os.Stdout)
	ConfigPath string    // Optional config file layered over the global config
	LogLevel   string    // Overrides [log] level when set
	TextMode   bool      // Read typed utterances even if a listen command is configured
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Speaker       domain.Speaker
	Voice         domain.Speaker // Text-to-speech only, nil when unavailable
	Listener      domain.Listener
	TaskFile      domain.TaskFile
	Browser       domain.Browser
	Launcher      domain.Launcher
	Weather       domain.WeatherProvider
	News          domain.NewsProvider
	Encyclopedia  domain.Encyclopedia
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config
	logCloser io.Closer
	session   *usecase.Session
}

// New creates a new Container from the user's configuration.
func New(opts Options) (*Container, error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	configLoader := config.NewLoader(opts.ConfigPath)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		appConfig.Log.Level = opts.LogLevel
	}

	// Create logger
	fileLogger := logging.New(configLoader.StateDir(), logging.ParseLevel(appConfig.Log.Level))
	logger := fileLogger.Slog()

	// Speech output falls back to the console when no TTS program is usable
	console := speech.NewConsoleSpeaker(opts.Stdout)
	var speaker, voice domain.Speaker = console, nil
	if appConfig.Speech.SpeakCommand != "" {
		if s, ok := speech.NewCommandSpeaker(appConfig.Speech.SpeakCommand, logger); ok {
			speaker = speech.MultiSpeaker{console, s}
			voice = s
		}
	}

	var listener domain.Listener = speech.NewLineListener(opts.Stdin, opts.Stdout)
	if !opts.TextMode && appConfig.Speech.ListenCommand != "" {
		l, err := speech.NewCommandListener(appConfig.Speech.ListenCommand, appConfig.Speech, logger)
		if err != nil {
			return nil, err
		}
		listener = l
	}

	launcher := executor.NewClient()

	logger.Debug("container ready",
		"tasks_file", appConfig.Tasks.File,
		"weather_configured", appConfig.Weather.Configured(),
		"news_configured", appConfig.News.Configured())

	return &Container{
		Speaker:       speaker,
		Voice:         voice,
		Listener:      listener,
		TaskFile:      taskfile.New(appConfig.Tasks.File),
		Browser:       launcher,
		Launcher:      launcher,
		Weather:       weather.New(appConfig.Weather.APIKey),
		News:          news.New(appConfig.News.APIKey),
		Encyclopedia:  wikipedia.New(),
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(),
		Logger:        logger,
		AppConfig:     appConfig,
		logCloser:     fileLogger,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// Nil Logger and AppConfig are replaced with a discarding logger and the defaults.
func NewWithDeps(c Container) *Container {
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.AppConfig == nil {
		c.AppConfig = domain.NewDefaultConfig()
	}
	if c.Clock == nil {
		c.Clock = domain.RealClock{}
	}
	c.session = nil
	c.logCloser = nil
	return &c
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.logCloser == nil {
		return nil
	}
	return c.logCloser.Close()
}

// SetSpeaker routes all further speech to s.
// The session is rebuilt on next use so the task store speaks through s as well.
func (c *Container) SetSpeaker(s domain.Speaker) {
	c.Speaker = s
	c.session = nil
}

// Session returns the application session, loading the task list on first use.
func (c *Container) Session() *usecase.Session {
	if c.session == nil {
		store := usecase.NewTaskStore(c.TaskFile, c.Speaker, c.Logger)
		store.Load()
		c.session = usecase.NewSession(store)
	}
	return c.session
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Session())
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Session())
}

// ShowTasksUseCase returns a new ShowTasks use case.
func (c *Container) ShowTasksUseCase() *usecase.ShowTasks {
	return usecase.NewShowTasks(c.Session(), c.Speaker)
}

// ClearTasksUseCase returns a new ClearTasks use case.
func (c *Container) ClearTasksUseCase() *usecase.ClearTasks {
	return usecase.NewClearTasks(c.Session())
}

// GreetUseCase returns a new Greet use case.
func (c *Container) GreetUseCase() *usecase.Greet {
	return usecase.NewGreet(c.Clock, c.Speaker)
}

// DispatcherUseCase returns a Dispatcher with every handler bound to the shared session.
func (c *Container) DispatcherUseCase() *usecase.Dispatcher {
	session := c.Session()
	google := usecase.NewGoogleSearch(c.Browser, c.Speaker, c.Logger)
	wiki := usecase.NewWikipediaSearch(c.Encyclopedia, google, session, c.Speaker, c.Logger)

	handlers := usecase.Handlers{
		AddTask:    usecase.NewAddTask(session),
		ShowTasks:  usecase.NewShowTasks(session, c.Speaker),
		ClearTasks: usecase.NewClearTasks(session),
		FollowUp:   usecase.NewFollowUp(wiki, session, c.Speaker),
		Weather:    usecase.NewWeatherReport(c.Weather, c.AppConfig.Weather, c.Speaker, c.Logger),
		News:       usecase.NewNewsReport(c.News, c.AppConfig.News, c.Speaker, c.Logger),
		Wikipedia:  wiki,
		Google:     google,
		Time:       usecase.NewTellTime(c.Clock, c.Speaker),
		OpenSite:   usecase.NewOpenSite(c.Browser, c.Speaker, c.Logger),
		OpenApp:    usecase.NewOpenApp(c.Launcher, c.AppConfig.Apps.VSCode, c.Speaker, c.Logger),
	}
	return usecase.NewDispatcher(handlers, c.Speaker, c.Logger)
}

// MainLoopUseCase returns the conversational loop.
func (c *Container) MainLoopUseCase() *usecase.MainLoop {
	return usecase.NewMainLoop(c.Listener, c.DispatcherUseCase(), c.GreetUseCase(), c.Speaker, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
