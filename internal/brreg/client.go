package brreg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public enhetsregisteret search endpoint.
const DefaultBaseURL = "https://data.brreg.no/enhetsregisteret/api/enheter"

// Client looks up registry units by name.
type Client interface {
	// FetchByName returns all units matching the given name, best matches
	// first as ranked by the registry. A lookup with zero hits returns an
	// empty slice and no error.
	FetchByName(ctx context.Context, name string) ([]Enhet, error)
}

// Option configures the HTTP client.
type Option func(*httpClient)

// WithBaseURL overrides the registry endpoint (used in tests).
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.hc = hc
	}
}

// WithRateLimit sets the requests-per-second limit for registry calls.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithPageSize sets the maximum number of search hits requested per lookup.
func WithPageSize(n int) Option {
	return func(c *httpClient) {
		c.pageSize = n
	}
}

type httpClient struct {
	baseURL  string
	hc       *http.Client
	limiter  *rate.Limiter
	pageSize int
}

// NewClient creates a registry client with the given options.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL:  DefaultBaseURL,
		hc:       &http.Client{Timeout: 10 * time.Second},
		limiter:  rate.NewLimiter(5, 1),
		pageSize: 10,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchResponse mirrors the HAL envelope of the search endpoint.
type searchResponse struct {
	Embedded struct {
		Enheter []Enhet `json:"enheter"`
	} `json:"_embedded"`
}

func (c *httpClient) FetchByName(ctx context.Context, name string) ([]Enhet, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "brreg: rate limit wait")
	}

	q := url.Values{}
	q.Set("navn", name)
	q.Set("size", fmt.Sprintf("%d", c.pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "brreg: build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "brreg: fetch %q", name)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("brreg: fetch %q: unexpected status %d", name, resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, eris.Wrapf(err, "brreg: decode response for %q", name)
	}

	return sr.Embedded.Enheter, nil
}
