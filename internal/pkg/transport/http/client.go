// Package http provides a configurable HTTP client with retry logic.
// It wraps the retryablehttp.Client from HashiCorp and exposes functional
// options for customizing timeouts, retry behavior, the outbound proxy and
// the connection pool.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrInvalidProxy is returned by NewClient when the configured proxy cannot be parsed.
var ErrInvalidProxy = errors.New("invalid proxy address")

// config holds internal settings for the HTTP client.
type config struct {
	timeout         time.Duration // maximum duration for a single HTTP request
	retryWaitMin    time.Duration // minimum delay between retry attempts
	retryWaitMax    time.Duration // maximum delay between retry attempts
	retryMax        int           // maximum number of retry attempts
	proxy           string        // optional proxy, "host:port" or "scheme://host:port"
	maxConnsPerHost int           // idle connections kept per host (0 keeps the transport default)
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// ParseProxy turns a proxy string into a URL. A bare "host:port" is treated as
// an HTTP proxy; any explicit scheme (http, https, socks5) is kept as-is.
func ParseProxy(proxy string) (*url.URL, error) {
	raw := strings.TrimSpace(proxy)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProxy, err)
	}

	if u.Host == "" || u.Port() == "" {
		return nil, fmt.Errorf("%w: %q must be in host:port form", ErrInvalidProxy, proxy)
	}

	return u, nil
}

// NewClient creates and returns a retryablehttp.Client configured with
// the provided options. If no options are given, default values are used:
//
//   - timeout:      5 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
//   - proxy:        none
//
// It returns ErrInvalidProxy if a proxy was configured and cannot be parsed.
func NewClient(opts ...Option) (*retryablehttp.Client, error) {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax

	// hand the last response back so callers can inspect its status
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	transport, ok := client.HTTPClient.Transport.(*http.Transport)
	if !ok {
		return client, nil
	}

	if cfg.proxy != "" {
		proxyURL, err := ParseProxy(cfg.proxy)
		if err != nil {
			return nil, err
		}

		transport.Proxy = http.ProxyURL(proxyURL)
	}

	if cfg.maxConnsPerHost > 0 {
		transport.MaxIdleConnsPerHost = cfg.maxConnsPerHost
	}

	return client, nil
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retry attempts for failed requests.
// Default: 2 retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithProxy routes every request through the given proxy. An empty string
// disables the proxy.
func WithProxy(proxy string) Option {
	return func(c *config) {
		c.proxy = proxy
	}
}

// WithMaxConnsPerHost sets how many idle connections are kept per host, which
// should match the number of concurrent requests issued against one host.
func WithMaxConnsPerHost(n int) Option {
	return func(c *config) {
		c.maxConnsPerHost = n
	}
}
