// Package walletscan fetches the paginated transaction listing of a single
// wallet. It discovers how many pages exist, fans page fetches out to a
// bounded pool of workers and merges their output into a capped,
// counterparty-deduplicated WalletResult, tolerating individual page failures.
package walletscan

import (
	"context"
	"errors"

	"github.com/gabapcia/walletlink/internal/pkg/logger"
	"github.com/gabapcia/walletlink/internal/pkg/resilience/retry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationScope names the tracer and meter used by this package.
const instrumentationScope = "github.com/gabapcia/walletlink/internal/walletscan"

// DefaultMaxConcurrency bounds the number of page requests in flight for one
// wallet, protecting both the remote service and local resources.
const DefaultMaxConcurrency = 50

// ErrInvalidInput is returned when FetchWallet is called with an empty address
// or a non-positive transaction cap.
var ErrInvalidInput = errors.New("invalid wallet fetch input")

// Service fetches the transaction history of one wallet.
type Service interface {
	// FetchWallet returns up to maxTransactions records for address, latest
	// pages first, with unique counterparties. Page-level failures are
	// absorbed into the result; the error is non-nil only for invalid input
	// or when ctx ends, in which case the partial result is still returned.
	FetchWallet(ctx context.Context, address string, maxTransactions int) (WalletResult, error)
}

// ProgressFunc receives a PageProgress event after each page is merged.
// It is called from the goroutine running FetchWallet.
type ProgressFunc func(ctx context.Context, p PageProgress)

// PageProgress describes how far a wallet fetch has advanced.
type PageProgress struct {
	Wallet    string // wallet being fetched
	Page      int    // page that just completed
	Completed int    // pages completed so far, including this one
	Total     int    // total pages discovered for the wallet
	Failed    bool   // whether this page failed
	Collected int    // records accumulated so far
}

// instruments groups the OpenTelemetry instruments recorded by the service.
type instruments struct {
	tracer       trace.Tracer
	pagesFetched metric.Int64Counter
	pagesFailed  metric.Int64Counter
	collected    metric.Int64Counter
}

// service is the default Service implementation.
type service struct {
	source PageSource
	parser PageParser

	maxConcurrency int
	handshakeRetry retry.Retry
	onProgress     ProgressFunc

	instruments instruments
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

type config struct {
	maxConcurrency int
	handshakeRetry retry.Retry
	onProgress     ProgressFunc
}

// Option customizes the service created by New.
type Option func(*config)

// WithMaxConcurrency sets the upper bound of concurrent page fetches per
// wallet. Values below 1 are treated as 1. Default: DefaultMaxConcurrency.
func WithMaxConcurrency(n int) Option {
	return func(c *config) {
		c.maxConcurrency = n
	}
}

// WithHandshakeRetry sets the retry policy applied to the session handshake.
// Default: a single attempt.
func WithHandshakeRetry(r retry.Retry) Option {
	return func(c *config) {
		c.handshakeRetry = r
	}
}

// WithProgress registers a callback receiving page-level progress events.
func WithProgress(f ProgressFunc) Option {
	return func(c *config) {
		c.onProgress = f
	}
}

// newInstruments builds the service instruments from the global providers.
// Instrument creation errors fall back to no-op counters.
func newInstruments() instruments {
	meter := otel.Meter(instrumentationScope)

	counter := func(name, description string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(description))
		if err != nil {
			logger.Warn(context.Background(), "error creating metric instrument", "metric", name, "error", err)
			return noop.Int64Counter{}
		}
		return c
	}

	return instruments{
		tracer:       otel.Tracer(instrumentationScope),
		pagesFetched: counter("walletscan.pages.fetched", "Listing pages fetched and parsed successfully"),
		pagesFailed:  counter("walletscan.pages.failed", "Listing pages that failed to fetch or parse"),
		collected:    counter("walletscan.transactions.collected", "Transactions kept after deduplication and capping"),
	}
}

// New creates a wallet fetch service reading pages from source and
// extracting records with parser.
func New(source PageSource, parser PageParser, opts ...Option) *service {
	cfg := config{
		maxConcurrency: DefaultMaxConcurrency,
		handshakeRetry: retry.New(retry.WithAttempts(1)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		source:         source,
		parser:         parser,
		maxConcurrency: max(cfg.maxConcurrency, 1),
		handshakeRetry: cfg.handshakeRetry,
		onProgress:     cfg.onProgress,
		instruments:    newInstruments(),
	}
}
