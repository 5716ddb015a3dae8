// Package counterparty aggregates the transaction listings of several wallets
// and reports the "from" counterparties they have in common.
package counterparty

import (
	"context"
	"time"

	"github.com/gabapcia/walletlink/internal/walletscan"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationScope = "github.com/gabapcia/walletlink/internal/counterparty"

// Service runs a counterparty analysis over a list of wallets.
type Service interface {
	// Analyze fetches every wallet in req, one after the other, and builds
	// the cross-wallet counterparty index.
	//
	// Invalid requests are rejected with validator.ErrValidationFailed before
	// any network activity. Single-wallet problems are logged and never fail
	// the run. When ctx ends, the report built so far is returned together
	// with ctx.Err().
	Analyze(ctx context.Context, req Request) (Report, error)
}

// WalletFetcher fetches the capped, deduplicated listing of one wallet.
type WalletFetcher interface {
	FetchWallet(ctx context.Context, address string, maxTransactions int) (walletscan.WalletResult, error)
}

// FetcherFactory builds the WalletFetcher used for a whole run. proxy is the
// (possibly empty) proxy requested for that run.
type FetcherFactory func(proxy string) (WalletFetcher, error)

// ProgressFunc receives wallet-level progress events.
type ProgressFunc func(ctx context.Context, p Progress)

// service is the default Service implementation.
type service struct {
	newFetcher FetcherFactory
	onProgress ProgressFunc
	now        func() time.Time
	tracer     trace.Tracer
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

type config struct {
	onProgress ProgressFunc
	now        func() time.Time
}

// Option customizes the service created by New.
type Option func(*config)

// WithProgress registers a callback receiving a Progress event when a wallet
// starts and when it finishes.
func WithProgress(f ProgressFunc) Option {
	return func(c *config) {
		c.onProgress = f
	}
}

// WithClock overrides the clock used to stamp reports.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// New creates a counterparty analysis service. newFetcher is invoked once per
// Analyze call.
func New(newFetcher FetcherFactory, opts ...Option) *service {
	cfg := config{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		newFetcher: newFetcher,
		onProgress: cfg.onProgress,
		now:        cfg.now,
		tracer:     otel.Tracer(instrumentationScope),
	}
}
