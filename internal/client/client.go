// Package client is used by the domain services to call the ERP backend.
//
// Every endpoint is a POST with a JSON body and answers with the same envelope ({success, message, data, errorCode}).
// The client returns the envelope as-is when the request completes with a 2xx status, including success:false responses -
// the caller decides whether a business failure is fatal.
// Anything else (network failure, timeout, cancellation, non-2xx status, undecodable body) is returned as an *apperrors.TransportError.
package client

import (
	"log/slog"
	"maps"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout applies to each call unless overridden by WithTimeout or RequestOptions.Timeout
	DefaultTimeout = 10 * time.Second

	// maxErrorBodySize bounds how much of a non-2xx response body is read
	maxErrorBodySize = 1 << 20

	RequestIDHeader = "X-Request-ID"
)

// Client handles communication with the ERP backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	headers    map[string]string
	limiter    *rate.Limiter // nil = unlimited
	logger     *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
// Per-request timeouts are applied via the request context so the supplied client's Timeout is best left unset.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the default per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHeaders sets headers sent on every request (e.g. Accept-Language).
// Per-request headers in RequestOptions take precedence.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		maps.Copy(c.headers, headers)
	}
}

// WithRateLimit limits the client to requestsPerSecond, allowing bursts of up to burst requests.
// Calls wait for their turn; a call whose wait would outlast its timeout fails with a timeout error.
func WithRateLimit(requestsPerSecond int, burst int) Option {
	return func(c *Client) {
		if requestsPerSecond <= 0 {
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), max(burst, 1))
	}
}

func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		headers:    map[string]string{},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the backend URL the client was configured with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the default per-request timeout
func (c *Client) Timeout() time.Duration {
	return c.timeout
}
