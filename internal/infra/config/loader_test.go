package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/vassist/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoader_Load_Defaults(t *testing.T) {
	// Setup: no config files at all
	globalDir := t.TempDir()
	stateDir := t.TempDir()

	loader := NewLoaderWithDirs("", globalDir, stateDir, nil)
	cfg, err := loader.Load()
	require.NoError(t, err)

	// Verify
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, domain.DefaultLocale, cfg.Speech.Locale)
	assert.Equal(t, domain.DefaultListenTimeout, cfg.Speech.ListenTimeout)
	assert.Equal(t, domain.DefaultPhraseLimit, cfg.Speech.PhraseLimit)
	assert.Equal(t, filepath.Join(stateDir, domain.DefaultTasksFileName), cfg.Tasks.File)
	assert.NotEmpty(t, cfg.Apps.VSCode)
	assert.False(t, cfg.Weather.Configured())
	assert.False(t, cfg.News.Configured())
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_GlobalConfig(t *testing.T) {
	// Setup
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[weather]
api_key = "owm-key"
city = "Pune"

[news]
api_key = "news-key"
country = "in"

[tasks]
file = "/data/todo.txt"

[speech]
locale = "en-US"
listen_command = "vassist-stt --device 1"
speak_command = "espeak -s 170"
listen_timeout = "3s"
phrase_limit = 20

[apps]
vscode = "/opt/code/bin/code"

[log]
level = "debug"
`)

	loader := NewLoaderWithDirs("", globalDir, t.TempDir(), nil)
	cfg, err := loader.Load()
	require.NoError(t, err)

	// Verify
	assert.Equal(t, domain.WeatherConfig{APIKey: "owm-key", City: "Pune"}, cfg.Weather)
	assert.Equal(t, domain.NewsConfig{APIKey: "news-key", Country: "in"}, cfg.News)
	assert.Equal(t, "/data/todo.txt", cfg.Tasks.File)
	assert.Equal(t, domain.SpeechConfig{
		Locale:        "en-US",
		ListenCommand: "vassist-stt --device 1",
		SpeakCommand:  "espeak -s 170",
		ListenTimeout: 3 * time.Second,
		PhraseLimit:   20 * time.Second,
	}, cfg.Speech)
	assert.Equal(t, "/opt/code/bin/code", cfg.Apps.VSCode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_ExplicitFileOverridesGlobal(t *testing.T) {
	// Setup
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[weather]
api_key = "global-key"
city = "Pune"

[log]
level = "warn"
`)
	explicit := writeConfig(t, t.TempDir(), `
[weather]
city = "Chennai"
`)

	loader := NewLoaderWithDirs(explicit, globalDir, t.TempDir(), nil)
	cfg, err := loader.Load()
	require.NoError(t, err)

	// Verify: explicit file wins per key, global fills the rest
	assert.Equal(t, "global-key", cfg.Weather.APIKey)
	assert.Equal(t, "Chennai", cfg.Weather.City)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoader_Load_EnvOverridesFiles(t *testing.T) {
	// Setup
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[weather]
api_key = "YOUR_OPENWEATHERMAP_API_KEY"
city = "Pune"

[news]
api_key = "file-key"
`)
	env := envOf(map[string]string{
		EnvWeatherAPIKey: "env-owm",
		EnvNewsCountry:   "us",
		EnvTasksFile:     "/tmp/env-todo.txt",
		EnvWeatherCity:   "   ",
	})

	loader := NewLoaderWithDirs("", globalDir, t.TempDir(), env)
	cfg, err := loader.Load()
	require.NoError(t, err)

	// Verify
	assert.Equal(t, "env-owm", cfg.Weather.APIKey)
	assert.Equal(t, "Pune", cfg.Weather.City, "blank env values are ignored")
	assert.Equal(t, domain.NewsConfig{APIKey: "file-key", Country: "us"}, cfg.News)
	assert.Equal(t, "/tmp/env-todo.txt", cfg.Tasks.File)
}

func TestLoader_Load_Warnings(t *testing.T) {
	// Setup
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
top_level = 1

[weather]
city = "Pune"
units = "imperial"

[speech]
listen_timeout = "soon"
phrase_limit = -1
locale = 42

[workers]
default = "claude"
`)

	loader := NewLoaderWithDirs("", globalDir, t.TempDir(), nil)
	cfg, err := loader.Load()
	require.NoError(t, err)

	// Verify: sorted, and invalid values keep defaults
	assert.Equal(t, []string{
		"invalid value in [speech]: listen_timeout: time: invalid duration \"soon\"",
		"invalid value in [speech]: locale: expected string",
		"invalid value in [speech]: phrase_limit: duration must be positive",
		"unknown key in [weather]: units",
		"unknown key: top_level",
		"unknown section: workers",
	}, cfg.Warnings)
	assert.Equal(t, "Pune", cfg.Weather.City)
	assert.Equal(t, domain.DefaultListenTimeout, cfg.Speech.ListenTimeout)
	assert.Equal(t, domain.DefaultPhraseLimit, cfg.Speech.PhraseLimit)
	assert.Equal(t, domain.DefaultLocale, cfg.Speech.Locale)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, "[weather\ncity = ")

	loader := NewLoaderWithDirs("", globalDir, t.TempDir(), nil)
	_, err := loader.Load()
	assert.Error(t, err)
}

func TestLoader_Load_MissingExplicitFile(t *testing.T) {
	loader := NewLoaderWithDirs(filepath.Join(t.TempDir(), "absent.toml"), t.TempDir(), t.TempDir(), nil)

	_, err := loader.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_Load_NoGlobalDir(t *testing.T) {
	loader := NewLoaderWithDirs("", "", "", nil)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Tasks.File)
}

func TestLoader_LoadGlobal_NotExist(t *testing.T) {
	loader := NewLoaderWithDirs("", t.TempDir(), "", nil)

	_, err := loader.LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_Load_RenderedTemplateRoundTrips(t *testing.T) {
	// A rendered config must load back to the same values without warnings
	want := domain.NewDefaultConfig()
	want.Weather = domain.WeatherConfig{APIKey: "k1", City: "Pune"}
	want.News = domain.NewsConfig{APIKey: "k2", Country: "in"}
	want.Tasks.File = "/data/todo.txt"
	want.Speech.SpeakCommand = "espeak"
	want.Speech.ListenTimeout = 1500 * time.Millisecond
	want.Apps.VSCode = "/usr/bin/code"

	globalDir := t.TempDir()
	writeConfig(t, globalDir, domain.RenderConfigTemplate(want))

	cfg, err := NewLoaderWithDirs("", globalDir, t.TempDir(), nil).Load()
	require.NoError(t, err)
	assert.Equal(t, want, cfg)
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/me", "todo.txt"), expandHome("~/todo.txt", "/home/me"))
	assert.Equal(t, "/abs/todo.txt", expandHome("/abs/todo.txt", "/home/me"))
	assert.Equal(t, "~/todo.txt", expandHome("~/todo.txt", ""))
}

func TestLoader_Load_Dotenv(t *testing.T) {
	// Setup
	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte(`
# credentials
OPENWEATHERMAP_API_KEY=dotenv-owm
WEATHER_CITY="New Delhi"
NEWS_API_KEY=dotenv-news
`), 0o600))
	env := envOf(map[string]string{EnvNewsAPIKey: "process-news"})

	loader := NewLoaderWithDirs("", t.TempDir(), t.TempDir(), env).WithDotenv(dotenv)
	cfg, err := loader.Load()
	require.NoError(t, err)

	// Verify: process environment wins over the file
	assert.Equal(t, domain.WeatherConfig{APIKey: "dotenv-owm", City: "New Delhi"}, cfg.Weather)
	assert.Equal(t, "process-news", cfg.News.APIKey)
}

func TestLoader_Load_MissingDotenv(t *testing.T) {
	loader := NewLoaderWithDirs("", t.TempDir(), t.TempDir(), nil).
		WithDotenv(filepath.Join(t.TempDir(), ".env"))

	_, err := loader.Load()
	assert.NoError(t, err)
}
