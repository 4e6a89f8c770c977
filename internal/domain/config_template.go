package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

var configTemplate = template.Must(template.New("config").
	Delims("<<", ">>").
	Funcs(template.FuncMap{"quote": strconv.Quote}).
	Parse(configTemplateContent))

// ConfigInfo holds information about a config file.
type ConfigInfo struct {
	Path    string // Absolute path to the file
	Content string // File content (empty if not exists)
	Exists  bool   // Whether the file exists
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitGlobalConfig creates the global config file from the template.
	// Returns ErrConfigExists if the file already exists.
	InitGlobalConfig(cfg *Config) error
}

// RenderConfigTemplate renders cfg as a commented TOML document.
func RenderConfigTemplate(cfg *Config) string {
	var buf bytes.Buffer
	if err := configTemplate.Execute(&buf, cfg); err != nil {
		// Should never happen with the embedded template
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}

// Masked returns a copy of cfg with API keys hidden.
func (c *Config) Masked() *Config {
	masked := *c
	masked.Weather.APIKey = MaskSecret(c.Weather.APIKey)
	masked.News.APIKey = MaskSecret(c.News.APIKey)
	masked.Warnings = append([]string(nil), c.Warnings...)
	return &masked
}

// Placeholder values written to new config files.
const (
	PlaceholderWeatherAPIKey = "YOUR_OPENWEATHERMAP_API_KEY"
	PlaceholderNewsAPIKey    = "YOUR_NEWS_API_KEY_HERE"
	PlaceholderCity          = "YOUR_CITY"
	DefaultNewsCountry       = "in"
)

// NewTemplateConfig returns the defaults with placeholders for values the user must supply.
func NewTemplateConfig() *Config {
	cfg := NewDefaultConfig()
	cfg.Weather = WeatherConfig{APIKey: PlaceholderWeatherAPIKey, City: PlaceholderCity}
	cfg.News = NewsConfig{APIKey: PlaceholderNewsAPIKey, Country: DefaultNewsCountry}
	return cfg
}
