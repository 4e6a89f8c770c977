// Package weather implements domain.WeatherProvider on the OpenWeatherMap API.
package weather

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/runoshun/vassist/internal/domain"
)

// DefaultBaseURL is the OpenWeatherMap API endpoint.
const DefaultBaseURL = "https://api.openweathermap.org"

// Client fetches current conditions from OpenWeatherMap.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// Ensure Client implements domain.WeatherProvider.
var _ domain.WeatherProvider = (*Client)(nil)

// New creates a Client for the public API.
// Requests carry no client-side timeout and are bounded only by ctx.
func New(apiKey string) *Client {
	return NewWithBaseURL(apiKey, DefaultBaseURL, nil)
}

// NewWithBaseURL creates a Client for a custom endpoint.
// If httpClient is nil, http.DefaultClient is used.
func NewWithBaseURL(apiKey, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{http: httpClient, baseURL: baseURL, apiKey: apiKey}
}

type currentResponse struct {
	Cod     json.RawMessage `json:"cod"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
}

// Current returns the current weather for city in metric units.
// The response body is decoded regardless of HTTP status; the report is OK
// only when the payload carries the numeric status code 200.
func (c *Client) Current(ctx context.Context, city string) (*domain.WeatherReport, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var data currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	if !bytes.Equal(bytes.TrimSpace(data.Cod), []byte("200")) {
		return &domain.WeatherReport{OK: false}, nil
	}
	if len(data.Weather) == 0 {
		return nil, fmt.Errorf("weather response has no conditions")
	}
	return &domain.WeatherReport{
		Description: data.Weather[0].Description,
		Temperature: data.Main.Temp,
		Humidity:    data.Main.Humidity,
		OK:          true,
	}, nil
}
