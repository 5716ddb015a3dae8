// Package ipapi queries ip-api.com for the public address and location seen
// by a remote service. Sending the lookup through a proxy shows whether the
// proxy works and where its traffic exits.
package ipapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultEndpoint is the public JSON endpoint of ip-api.com.
const DefaultEndpoint = "http://ip-api.com/json/"

var (
	// ErrUnexpectedStatus is returned when the endpoint answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrLookupFailed is returned when ip-api reports a failed lookup.
	ErrLookupFailed = errors.New("ip lookup failed")
)

// Location is the subset of the ip-api answer used by walletlink.
type Location struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Query   string `json:"query"` // public IP the request came from
	Country string `json:"country"`
	City    string `json:"city"`
	ISP     string `json:"isp"`
}

// Client looks up the caller's public location.
type Client interface {
	Lookup(ctx context.Context) (Location, error)
}

type client struct {
	httpClient *retryablehttp.Client
	endpoint   string
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// NewClient creates a lookup client. Route httpClient through a proxy to
// check that proxy.
func NewClient(httpClient *retryablehttp.Client, endpoint string) *client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &client{
		httpClient: httpClient,
		endpoint:   endpoint,
	}
}

// Lookup implements Client.
func (c *client) Lookup(ctx context.Context) (Location, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return Location{}, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Location{}, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return Location{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var loc Location
	if err := json.NewDecoder(res.Body).Decode(&loc); err != nil {
		return Location{}, fmt.Errorf("decode response: %w", err)
	}

	if loc.Status != "" && loc.Status != "success" {
		return loc, fmt.Errorf("%w: %s", ErrLookupFailed, loc.Message)
	}

	return loc, nil
}
