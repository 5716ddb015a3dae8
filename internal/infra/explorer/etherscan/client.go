// Package etherscan implements walletscan.PageSource and walletscan.PageParser
// on top of the Etherscan token-tracker listing. A wallet session is opened by
// loading the token page once, which yields a "sid" token and cookies that
// every paginated request must carry.
package etherscan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/gabapcia/walletlink/internal/walletscan"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	// DefaultBaseURL is the public Etherscan site.
	DefaultBaseURL = "https://etherscan.io"

	// DefaultUserAgent is sent on every request. The explorer rejects clients
	// that do not look like a browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 8 << 20
)

var (
	// ErrUnexpectedStatus is returned when the explorer answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrSessionTokenNotFound is returned by OpenSession when the token page
	// carries no "var sid" declaration.
	ErrSessionTokenNotFound = errors.New("session token not found")
)

// sidPattern matches the session token declared by the token page, e.g.
// var sid = 'f2a1...';
var sidPattern = regexp.MustCompile(`var\s+sid\s*=\s*['"]([^'"]*)['"]`)

// client fetches token-tracker pages from Etherscan.
type client struct {
	httpClient *retryablehttp.Client
	baseURL    *url.URL
	userAgent  string
}

// Compile-time check to ensure *client implements walletscan.PageSource.
var _ walletscan.PageSource = (*client)(nil)

type config struct {
	baseURL   string
	userAgent string
}

// Option customizes the client created by NewClient.
type Option func(*config)

// WithBaseURL points the client at another Etherscan-compatible site.
// Default: DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithUserAgent overrides the User-Agent header. Default: DefaultUserAgent.
func WithUserAgent(userAgent string) Option {
	return func(c *config) {
		c.userAgent = userAgent
	}
}

// NewClient creates an Etherscan page source that sends its requests through
// httpClient. The client is safe for concurrent use as long as httpClient is.
func NewClient(httpClient *retryablehttp.Client, opts ...Option) (*client, error) {
	cfg := config{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	baseURL, err := parseBaseURL(cfg.baseURL)
	if err != nil {
		return nil, err
	}

	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  cfg.userAgent,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse base url: %q is not absolute", raw)
	}

	return u, nil
}

// get performs a GET request and returns the response cookies and body.
func (c *client) get(ctx context.Context, target string, cookies map[string]string) ([]*http.Cookie, []byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	for _, name := range slices.Sorted(maps.Keys(cookies)) {
		req.AddCookie(&http.Cookie{Name: name, Value: cookies[name]})
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, nil, fmt.Errorf("read body: %w", err)
	}

	return res.Cookies(), body, nil
}

// OpenSession implements walletscan.PageSource.
//
// It loads {base}/token/{address}, keeps every cookie set by the response and
// extracts the "sid" token from the inline scripts.
func (c *client) OpenSession(ctx context.Context, address string) (walletscan.Session, error) {
	target := c.baseURL.JoinPath("token", address).String()

	cookies, body, err := c.get(ctx, target, nil)
	if err != nil {
		return walletscan.Session{}, fmt.Errorf("load token page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return walletscan.Session{}, fmt.Errorf("parse token page: %w", err)
	}

	var token string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if match := sidPattern.FindStringSubmatch(s.Text()); match != nil {
			token = match[1]
			return false
		}
		return true
	})

	if token == "" {
		return walletscan.Session{}, ErrSessionTokenNotFound
	}

	session := walletscan.Session{
		Token:   token,
		Cookies: make(map[string]string, len(cookies)),
	}
	for _, cookie := range cookies {
		session.Cookies[cookie.Name] = cookie.Value
	}

	return session, nil
}

// pageURL builds the listing URL for one page of address.
func (c *client) pageURL(address string, page int, session walletscan.Session) string {
	u := c.baseURL.JoinPath("token", "generic-tokentxns2")

	query := url.Values{}
	query.Set("m", "light")
	query.Set("contractAddress", address)
	query.Set("a", "")
	query.Set("sid", session.Token)
	query.Set("p", strconv.Itoa(page))
	u.RawQuery = query.Encode()

	return u.String()
}

// FetchPage implements walletscan.PageSource.
func (c *client) FetchPage(ctx context.Context, address string, page int, session walletscan.Session) ([]byte, error) {
	_, body, err := c.get(ctx, c.pageURL(address, page, session), session.Cookies)
	if err != nil {
		return nil, err
	}

	return body, nil
}
