package domain

import (
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Config represents the application configuration.
type Config struct {
	Weather  WeatherConfig // [weather] settings
	News     NewsConfig    // [news] settings
	Tasks    TasksConfig   // [tasks] settings
	Speech   SpeechConfig  // [speech] settings
	Apps     AppsConfig    // [apps] settings
	Log      LogConfig     // [log] settings
	Warnings []string      // Unknown keys found while loading
}

// WeatherConfig holds OpenWeatherMap settings from [weather] section.
type WeatherConfig struct {
	APIKey string `toml:"api_key"`
	City   string `toml:"city"`
}

// Configured reports whether both the API key and the city are usable.
func (c WeatherConfig) Configured() bool {
	return !IsPlaceholder(c.APIKey) && !IsPlaceholder(c.City)
}

// NewsConfig holds NewsAPI settings from [news] section.
type NewsConfig struct {
	APIKey  string `toml:"api_key"`
	Country string `toml:"country"`
}

// Configured reports whether both the API key and the country code are usable.
func (c NewsConfig) Configured() bool {
	return !IsPlaceholder(c.APIKey) && !IsPlaceholder(c.Country)
}

// TasksConfig holds task list settings from [tasks] section.
type TasksConfig struct {
	File string `toml:"file"` // Path to the task list file
}

// SpeechConfig holds speech collaborator settings from [speech] section.
type SpeechConfig struct {
	Locale        string        `toml:"locale"`         // Recognition locale, e.g. en-IN
	ListenCommand string        `toml:"listen_command"` // Speech-to-text program (empty = typed input)
	SpeakCommand  string        `toml:"speak_command"`  // Text-to-speech program (empty = console only)
	ListenTimeout time.Duration // listen_timeout: wait for speech to start
	PhraseLimit   time.Duration // phrase_limit: maximum phrase duration
}

// AppsConfig holds local application paths from [apps] section.
type AppsConfig struct {
	VSCode string `toml:"vscode"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// Default configuration values.
const (
	DefaultLogLevel      = "info"
	DefaultLocale        = "en-IN"
	DefaultListenTimeout = 5 * time.Second
	DefaultPhraseLimit   = 10 * time.Second
	DefaultTasksFileName = "todo_list.txt"
)

// Directory and file names for vassist.
const (
	AppDirName     = "vassist"     // Directory name for vassist data
	ConfigFileName = "config.toml" // Config file name
	LogFileName    = "vassist.log" // Log file name
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// StateDir returns the state directory for logs and the task list.
// stateHome is typically XDG_STATE_HOME or ~/.local/state (resolved by caller).
func StateDir(stateHome string) string {
	return filepath.Join(stateHome, AppDirName)
}

// LogsDir returns the logs directory under the state directory.
func LogsDir(stateDir string) string {
	return filepath.Join(stateDir, "logs")
}

// LogPath returns the log file path under the state directory.
func LogPath(stateDir string) string {
	return filepath.Join(LogsDir(stateDir), LogFileName)
}

// DefaultVSCodePath returns the conventional VS Code install path for the platform.
func DefaultVSCodePath(home string) string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Local", "Programs", "Microsoft VS Code", "Code.exe")
	case "darwin":
		return "/Applications/Visual Studio Code.app"
	default:
		return "/usr/bin/code"
	}
}

// NewDefaultConfig returns a Config with default values.
// Paths that depend on the user's home are left for the loader to fill.
func NewDefaultConfig() *Config {
	return &Config{
		Speech: SpeechConfig{
			Locale:        DefaultLocale,
			ListenTimeout: DefaultListenTimeout,
			PhraseLimit:   DefaultPhraseLimit,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// IsPlaceholder reports whether a configuration value is unset or a template placeholder
// such as "YOUR_NEWS_API_KEY_HERE".
func IsPlaceholder(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.HasPrefix(strings.ToUpper(value), "YOUR_")
}

// MaskSecret hides all but the last four characters of a secret.
func MaskSecret(secret string) string {
	if IsPlaceholder(secret) {
		return secret
	}
	if len(secret) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}
