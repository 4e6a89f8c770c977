// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/vassist/internal/domain"
)

// Environment variables that override file configuration.
const (
	EnvWeatherAPIKey = "OPENWEATHERMAP_API_KEY"
	EnvWeatherCity   = "WEATHER_CITY"
	EnvNewsAPIKey    = "NEWS_API_KEY"
	EnvNewsCountry   = "NEWS_COUNTRY_CODE"
	EnvTasksFile     = "VASSIST_TASKS_FILE"
)

// DotenvFileName is the optional environment file read from the working directory.
const DotenvFileName = ".env"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files and the environment.
type Loader struct {
	getenv        func(string) string
	configPath    string // Explicit config file (--config); empty when not given
	dotenvPath    string // Optional KEY=VALUE file consulted after the process environment
	globalConfDir string // Path to global config directory (e.g., ~/.config/vassist)
	stateDir      string // Path to state directory (e.g., ~/.local/state/vassist)
	homeDir       string
}

// NewLoader creates a new Loader using the XDG directories of the current user.
// configPath is an optional file layered on top of the global config.
func NewLoader(configPath string) *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		getenv:        os.Getenv,
		configPath:    configPath,
		dotenvPath:    DotenvFileName,
		globalConfDir: defaultGlobalConfigDir(home),
		stateDir:      DefaultStateDir(),
		homeDir:       home,
	}
}

// NewLoaderWithDirs creates a new Loader with custom directories and environment.
// This is useful for testing.
func NewLoaderWithDirs(configPath, globalConfDir, stateDir string, getenv func(string) string) *Loader {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	return &Loader{
		getenv:        getenv,
		configPath:    configPath,
		globalConfDir: globalConfDir,
		stateDir:      stateDir,
	}
}

// WithDotenv sets the environment file consulted for unset variables.
func (l *Loader) WithDotenv(path string) *Loader {
	l.dotenvPath = path
	return l
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir(home string) string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home == "" {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// DefaultStateDir returns the default state directory for logs and the task list.
func DefaultStateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return domain.StateDir(stateHome)
}

// StateDir returns the state directory used for derived defaults.
func (l *Loader) StateDir() string {
	return l.stateDir
}

// Load returns the merged configuration.
// Precedence: default <- global <- explicit file <- environment.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if global != nil {
		base = mergeConfigs(base, global)
	}

	if l.configPath != "" {
		explicit, err := l.loadFile(l.configPath)
		if err != nil {
			return nil, err
		}
		base = mergeConfigs(base, explicit)
	}

	dotenv, err := l.loadDotenv()
	if err != nil {
		return nil, err
	}
	l.applyEnv(base, dotenv)
	l.applyDerivedDefaults(base)
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// loadDotenv reads the environment file. A missing file yields no values.
func (l *Loader) loadDotenv() (map[string]string, error) {
	if l.dotenvPath == "" {
		return nil, nil
	}
	values, err := godotenv.Read(l.dotenvPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", l.dotenvPath, err)
	}
	return values, nil
}

// applyEnv overrides values with non-empty environment variables.
// The process environment takes precedence over the environment file.
func (l *Loader) applyEnv(cfg *domain.Config, dotenv map[string]string) {
	overrides := []struct {
		dst *string
		key string
	}{
		{&cfg.Weather.APIKey, EnvWeatherAPIKey},
		{&cfg.Weather.City, EnvWeatherCity},
		{&cfg.News.APIKey, EnvNewsAPIKey},
		{&cfg.News.Country, EnvNewsCountry},
		{&cfg.Tasks.File, EnvTasksFile},
	}
	for _, o := range overrides {
		v := strings.TrimSpace(l.getenv(o.key))
		if v == "" {
			v = strings.TrimSpace(dotenv[o.key])
		}
		if v != "" {
			*o.dst = v
		}
	}
}

// applyDerivedDefaults fills paths that depend on the user's directories.
func (l *Loader) applyDerivedDefaults(cfg *domain.Config) {
	if cfg.Tasks.File == "" && l.stateDir != "" {
		cfg.Tasks.File = filepath.Join(l.stateDir, domain.DefaultTasksFileName)
	}
	if cfg.Apps.VSCode == "" {
		cfg.Apps.VSCode = domain.DefaultVSCodePath(l.homeDir)
	}
	cfg.Tasks.File = expandHome(cfg.Tasks.File, l.homeDir)
	cfg.Apps.VSCode = expandHome(cfg.Apps.VSCode, l.homeDir)
}

func expandHome(path, home string) string {
	if home == "" || !strings.HasPrefix(path, "~/") {
		return path
	}
	return filepath.Join(home, path[2:])
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "weather":
			warnings = parseStrings(m, section, map[string]*string{
				"api_key": &res.Weather.APIKey,
				"city":    &res.Weather.City,
			}, warnings)
		case "news":
			warnings = parseStrings(m, section, map[string]*string{
				"api_key": &res.News.APIKey,
				"country": &res.News.Country,
			}, warnings)
		case "tasks":
			warnings = parseStrings(m, section, map[string]*string{
				"file": &res.Tasks.File,
			}, warnings)
		case "speech":
			durations := map[string]*time.Duration{
				"listen_timeout": &res.Speech.ListenTimeout,
				"phrase_limit":   &res.Speech.PhraseLimit,
			}
			strs := map[string]any{}
			for k, v := range m {
				dst, isDuration := durations[k]
				if !isDuration {
					strs[k] = v
					continue
				}
				d, err := parseDuration(v)
				if err != nil {
					warnings = append(warnings, fmt.Sprintf("invalid value in [speech]: %s: %v", k, err))
					continue
				}
				*dst = d
			}
			warnings = parseStrings(strs, section, map[string]*string{
				"locale":         &res.Speech.Locale,
				"listen_command": &res.Speech.ListenCommand,
				"speak_command":  &res.Speech.SpeakCommand,
			}, warnings)
		case "apps":
			warnings = parseStrings(m, section, map[string]*string{
				"vscode": &res.Apps.VSCode,
			}, warnings)
		case "log":
			warnings = parseStrings(m, section, map[string]*string{
				"level": &res.Log.Level,
			}, warnings)
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parseStrings assigns string values of a section to their destinations.
// Unknown keys and non-string values are reported as warnings.
func parseStrings(m map[string]any, section string, fields map[string]*string, warnings []string) []string {
	for k, v := range m {
		dst, ok := fields[k]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
			continue
		}
		s, ok := v.(string)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("invalid value in [%s]: %s: expected string", section, k))
			continue
		}
		*dst = s
	}
	return warnings
}

// parseDuration accepts a Go duration string ("5s") or a number of seconds.
func parseDuration(v any) (time.Duration, error) {
	var d time.Duration
	switch val := v.(type) {
	case string:
		parsed, err := time.ParseDuration(val)
		if err != nil {
			return 0, err
		}
		d = parsed
	case int64:
		d = time.Duration(val) * time.Second
	case float64:
		d = time.Duration(val * float64(time.Second))
	default:
		return 0, fmt.Errorf("expected duration, got %T", v)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return d, nil
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	if len(override.Warnings) > 0 {
		result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)
	}

	mergeString(&result.Weather.APIKey, override.Weather.APIKey)
	mergeString(&result.Weather.City, override.Weather.City)
	mergeString(&result.News.APIKey, override.News.APIKey)
	mergeString(&result.News.Country, override.News.Country)
	mergeString(&result.Tasks.File, override.Tasks.File)
	mergeString(&result.Speech.Locale, override.Speech.Locale)
	mergeString(&result.Speech.ListenCommand, override.Speech.ListenCommand)
	mergeString(&result.Speech.SpeakCommand, override.Speech.SpeakCommand)
	mergeString(&result.Apps.VSCode, override.Apps.VSCode)
	mergeString(&result.Log.Level, override.Log.Level)
	if override.Speech.ListenTimeout > 0 {
		result.Speech.ListenTimeout = override.Speech.ListenTimeout
	}
	if override.Speech.PhraseLimit > 0 {
		result.Speech.PhraseLimit = override.Speech.PhraseLimit
	}

	return &result
}

func mergeString(dst *string, override string) {
	if override != "" {
		*dst = override
	}
}
