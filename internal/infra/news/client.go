// Package news implements domain.NewsProvider on the NewsAPI top-headlines endpoint.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/runoshun/vassist/internal/domain"
)

// Defaults for the public API.
const (
	DefaultBaseURL = "https://newsapi.org"
	DefaultTimeout = 10 * time.Second
	serviceName    = "newsapi"
)

// Client fetches top headlines from NewsAPI.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// Ensure Client implements domain.NewsProvider.
var _ domain.NewsProvider = (*Client)(nil)

// New creates a Client for the public API with a 10 second request timeout.
func New(apiKey string) *Client {
	return NewWithBaseURL(apiKey, DefaultBaseURL, &http.Client{Timeout: DefaultTimeout})
}

// NewWithBaseURL creates a Client for a custom endpoint.
func NewWithBaseURL(apiKey, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{http: httpClient, baseURL: baseURL, apiKey: apiKey}
}

type headlinesResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title  string `json:"title"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// TopHeadlines returns the top headlines for a country code.
// A 4xx or 5xx response is reported as *domain.HTTPStatusError.
func (c *Client) TopHeadlines(ctx context.Context, country string) (*domain.NewsReport, error) {
	q := url.Values{}
	q.Set("country", country)
	q.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/top-headlines?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create news request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &domain.HTTPStatusError{Service: serviceName, Code: resp.StatusCode}
	}

	var data headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}

	report := &domain.NewsReport{
		Status:   data.Status,
		Articles: make([]domain.Article, 0, len(data.Articles)),
	}
	for _, a := range data.Articles {
		report.Articles = append(report.Articles, domain.Article{Title: a.Title, Source: a.Source.Name})
	}
	return report, nil
}
