package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"cineload/internal/services"
)

// Payload is the raw OMDb lookup result for one title. Field names follow
// the wire format so cached payloads round-trip byte-compatibly.
type Payload struct {
	Title     string `json:"Title,omitempty"`
	Year      string `json:"Year,omitempty"`
	ImdbID    string `json:"imdbID,omitempty"`
	Director  string `json:"Director,omitempty"`
	Plot      string `json:"Plot,omitempty"`
	BoxOffice string `json:"BoxOffice,omitempty"`
	Runtime   string `json:"Runtime,omitempty"`
	Language  string `json:"Language,omitempty"`
	Country   string `json:"Country,omitempty"`
	Response  string `json:"Response,omitempty"`
	Error     string `json:"Error,omitempty"`
}

// Fetcher defines the lookup operation the enrichment layer needs.
type Fetcher interface {
	Fetch(ctx context.Context, title string, year int) (*Payload, error)
}

// Client provides access to the OMDb API. Network requests are spaced by a
// minimum interval to respect the service's rate ceiling; callers that
// resolve a title from cache never reach the limiter.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Fetcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates an OMDb client enforcing minInterval between network requests.
// A non-positive interval disables the ceiling.
func New(apiKey, baseURL string, minInterval time.Duration, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("omdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("omdb base url required")
	}

	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}

	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(limit, 1),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Fetch looks up a title (optionally constrained by year) against OMDb.
// Outcomes map to the shared error taxonomy:
//   - a usable payload returns with a nil error;
//   - a definitive "title not found" response returns services.ErrNotFound;
//   - transport failures and non-200 statuses return services.ErrTransient.
func (c *Client) Fetch(ctx context.Context, title string, year int) (*Payload, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title must not be empty")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("await rate limiter: %w", err)
	}

	endpoint, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return nil, fmt.Errorf("parse omdb url: %w", err)
	}
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("t", title)
	if year > 0 {
		params.Set("y", strconv.Itoa(year))
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "omdb", "fetch",
			fmt.Sprintf("execute request (latency=%v)", latency), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, services.Wrap(services.ErrTransient, "omdb", "fetch",
			fmt.Sprintf("omdb returned %d (latency=%v)", resp.StatusCode, latency), nil)
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, services.Wrap(services.ErrTransient, "omdb", "fetch", "decode omdb response", err)
	}

	if strings.EqualFold(payload.Response, "False") {
		return nil, services.Wrap(services.ErrNotFound, "omdb", "fetch", payload.Error, nil)
	}
	return &payload, nil
}
