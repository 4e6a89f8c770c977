// Package wikipedia implements domain.Encyclopedia on the MediaWiki action API.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/runoshun/vassist/internal/domain"
)

// Defaults for the English Wikipedia.
const (
	DefaultBaseURL   = "https://en.wikipedia.org/w/api.php"
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "vassist (https://github.com/runoshun/vassist)"
	serviceName      = "wikipedia"
)

// Client looks up page extracts.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

// Ensure Client implements domain.Encyclopedia.
var _ domain.Encyclopedia = (*Client)(nil)

// New creates a Client for the English Wikipedia.
func New() *Client {
	return NewWithBaseURL(DefaultBaseURL, nil)
}

// NewWithBaseURL creates a Client for a custom api.php endpoint.
func NewWithBaseURL(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{http: httpClient, baseURL: baseURL, userAgent: DefaultUserAgent}
}

type queryResponse struct {
	Query struct {
		Pages  []page `json:"pages"`
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type page struct {
	PageProps map[string]string `json:"pageprops"`
	Title     string            `json:"title"`
	Extract   string            `json:"extract"`
	Missing   bool              `json:"missing"`
	Invalid   bool              `json:"invalid"`
}

// Summary returns the first sentences of the page for title.
// When no page has that exact title, the best search suggestion is tried once.
func (c *Client) Summary(ctx context.Context, title string, sentences int) (domain.LookupResult, error) {
	result, err := c.extract(ctx, title, sentences)
	if err != nil || result.Kind != domain.LookupNotFound {
		return result, err
	}

	suggestion, err := c.suggest(ctx, title)
	if err != nil {
		return domain.LookupResult{}, err
	}
	if suggestion == "" || suggestion == title {
		return domain.NotFound(), nil
	}
	return c.extract(ctx, suggestion, sentences)
}

func (c *Client) extract(ctx context.Context, title string, sentences int) (domain.LookupResult, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("prop", "extracts|pageprops")
	q.Set("exsentences", strconv.Itoa(sentences))
	q.Set("explaintext", "1")
	q.Set("redirects", "1")
	q.Set("titles", title)

	var data queryResponse
	if err := c.get(ctx, q, &data); err != nil {
		return domain.LookupResult{}, err
	}

	if len(data.Query.Pages) == 0 {
		return domain.NotFound(), nil
	}
	p := data.Query.Pages[0]
	switch {
	case p.Missing, p.Invalid:
		return domain.NotFound(), nil
	case hasProp(p.PageProps, "disambiguation"):
		return domain.Ambiguous(), nil
	}

	summary := strings.TrimSpace(p.Extract)
	if summary == "" {
		return domain.NotFound(), nil
	}
	return domain.Found(summary), nil
}

func (c *Client) suggest(ctx context.Context, term string) (string, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("list", "search")
	q.Set("srsearch", term)
	q.Set("srlimit", "1")
	q.Set("srprop", "")

	var data queryResponse
	if err := c.get(ctx, q, &data); err != nil {
		return "", err
	}
	if len(data.Query.Search) == 0 {
		return "", nil
	}
	return data.Query.Search[0].Title, nil
}

func (c *Client) get(ctx context.Context, q url.Values, out any) error {
	q.Set("format", "json")
	q.Set("formatversion", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create wikipedia request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &domain.HTTPStatusError{Service: serviceName, Code: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode wikipedia response: %w", err)
	}
	return nil
}

func hasProp(props map[string]string, key string) bool {
	_, ok := props[key]
	return ok
}
