// Package erapi implements the QuoteSource port against an open.er-api.com
// compatible "latest rates" endpoint: GET <base-url>/<BASE_CODE>.
package erapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/shefra_converter/internal/apperrors"
	"github.com/SscSPs/shefra_converter/internal/core/domain"
	"github.com/SscSPs/shefra_converter/internal/core/ports/repositories"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public endpoint used when none is configured.
const DefaultBaseURL = "https://open.er-api.com/v6/latest"

const maxBodyBytes = 1 << 20

// latestResponse mirrors the fields we read from the quote service.
// Both the v6 field names and the legacy v4 ones are accepted.
type latestResponse struct {
	Result             string             `json:"result"`
	ErrorType          string             `json:"error-type"`
	BaseCode           string             `json:"base_code"`
	Base               string             `json:"base"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	TimeLastUpdated    int64              `json:"time_last_updated"`
	Rates              map[string]float64 `json:"rates"`
}

// Client fetches latest rates over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRateLimit throttles outbound requests to rps with the given burst.
// A non-positive rps disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a quote client for baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: newHTTPClient(),
		userAgent:  "shefra-converter/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	// Deadlines come from the caller's context.
	return &http.Client{Transport: transport}
}

// FetchLatestRates performs one GET request for base and decodes the rate map.
func (c *Client) FetchLatestRates(ctx context.Context, base domain.CurrencyCode) (*domain.LatestRates, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: waiting for outbound quota: %v", apperrors.ErrRatesUnavailable, err)
		}
	}

	endpoint := c.baseURL + "/" + url.PathEscape(string(base))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", apperrors.ErrRatesUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request %s: %v", apperrors.ErrRatesUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: unexpected status %d from %s", apperrors.ErrRatesUnavailable, resp.StatusCode, endpoint)
	}

	var payload latestResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %v", apperrors.ErrRatesUnavailable, err)
	}
	if strings.EqualFold(payload.Result, "error") {
		return nil, fmt.Errorf("%w: quote service error %q", apperrors.ErrRatesUnavailable, payload.ErrorType)
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("%w: payload has no rates", apperrors.ErrRatesUnavailable)
	}

	latest := &domain.LatestRates{
		Base:  firstNonEmpty(payload.BaseCode, payload.Base),
		Rates: payload.Rates,
	}
	if ts := firstNonZero(payload.TimeLastUpdateUnix, payload.TimeLastUpdated); ts > 0 {
		latest.UpdatedAt = time.Unix(ts, 0).UTC()
	}
	return latest, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(values ...int64) int64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

var _ repositories.QuoteSource = (*Client)(nil)
