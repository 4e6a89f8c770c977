package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/runoshun/vassist/internal/domain"
)

// Spoken weather messages.
const (
	msgWeatherConfig     = "To get the weather report, please configure your OpenWeatherMap API key and city name."
	msgWeatherReport     = "The current weather in %s is %s, with a temperature of %s degrees Celsius, and humidity at %d percent."
	msgWeatherFailed     = "Sorry, I could not retrieve the weather for %s."
	msgWeatherNetwork    = "I could not connect to the weather service. Please check your network connection."
	msgWeatherUnexpected = "An unexpected error occurred while fetching weather."
)

// WeatherReportOutput contains the result of a weather request.
type WeatherReportOutput struct {
	Report  *domain.WeatherReport // nil unless the provider was called successfully
	Message string                // What was spoken
}

// WeatherReport is the use case for speaking current weather conditions.
type WeatherReport struct {
	provider domain.WeatherProvider
	speaker  domain.Speaker
	logger   *slog.Logger
	cfg      domain.WeatherConfig
}

// NewWeatherReport creates a new WeatherReport use case.
func NewWeatherReport(provider domain.WeatherProvider, cfg domain.WeatherConfig, speaker domain.Speaker, logger *slog.Logger) *WeatherReport {
	return &WeatherReport{
		provider: provider,
		speaker:  speaker,
		logger:   orDiscard(logger),
		cfg:      cfg,
	}
}

// Execute fetches and speaks the weather. Missing configuration skips the request.
func (uc *WeatherReport) Execute(ctx context.Context) (*WeatherReportOutput, error) {
	if !uc.cfg.Configured() || uc.provider == nil {
		return uc.say(nil, msgWeatherConfig), nil
	}

	report, err := uc.provider.Current(ctx, uc.cfg.City)
	if err != nil {
		uc.logger.Warn("weather request failed", "city", uc.cfg.City, "error", err)
		if errors.Is(err, domain.ErrNetwork) {
			return uc.say(nil, msgWeatherNetwork), nil
		}
		return uc.say(nil, msgWeatherUnexpected), nil
	}
	if !report.OK {
		return uc.say(report, fmt.Sprintf(msgWeatherFailed, uc.cfg.City)), nil
	}

	msg := fmt.Sprintf(msgWeatherReport, uc.cfg.City, report.Description, formatTemperature(report.Temperature), report.Humidity)
	return uc.say(report, msg), nil
}

func (uc *WeatherReport) say(report *domain.WeatherReport, msg string) *WeatherReportOutput {
	uc.speaker.Speak(msg)
	return &WeatherReportOutput{Report: report, Message: msg}
}

// formatTemperature renders a temperature without a trailing ".0" for whole degrees.
func formatTemperature(t float64) string {
	return fmt.Sprintf("%g", t)
}
