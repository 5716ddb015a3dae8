// Command walletlink finds the counterparties shared by several wallets.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/walletlink/internal/config"
	"github.com/gabapcia/walletlink/internal/counterparty"
	"github.com/gabapcia/walletlink/internal/handlers/cli"
	"github.com/gabapcia/walletlink/internal/infra/explorer/etherscan"
	"github.com/gabapcia/walletlink/internal/infra/ipapi"
	"github.com/gabapcia/walletlink/internal/pkg/logger"
	"github.com/gabapcia/walletlink/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletlink/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/walletlink/internal/pkg/transport/http"
	"github.com/gabapcia/walletlink/internal/walletscan"
)

// shutdownTimeout bounds how long pending telemetry may take to flush.
const shutdownTimeout = 5 * time.Second

// newFetcherFactory returns the factory used by the counterparty service to
// build the explorer stack of one run. Every request of the run goes through
// the same HTTP client, and therefore through the same proxy.
func newFetcherFactory(cfg config.Config) counterparty.FetcherFactory {
	return func(proxy string) (counterparty.WalletFetcher, error) {
		httpClient, err := transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.Explorer.Timeout),
			transporthttp.WithRetryMax(cfg.Explorer.RetryMax),
			transporthttp.WithProxy(proxy),
			transporthttp.WithMaxConnsPerHost(cfg.Scan.MaxConcurrency),
		)
		if err != nil {
			return nil, err
		}

		source, err := etherscan.NewClient(httpClient,
			etherscan.WithBaseURL(cfg.Explorer.BaseURL),
			etherscan.WithUserAgent(cfg.Explorer.UserAgent),
		)
		if err != nil {
			return nil, err
		}

		parser, err := etherscan.NewParser(cfg.Explorer.BaseURL)
		if err != nil {
			return nil, err
		}

		handshakeRetry := retry.New(
			retry.WithAttempts(max(cfg.Explorer.HandshakeAttempts, 1)),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Debug(context.Background(), "session handshake attempt failed", "attempt", attempt+1, "error", err)
			}),
		)

		return walletscan.New(source, parser,
			walletscan.WithMaxConcurrency(cfg.Scan.MaxConcurrency),
			walletscan.WithHandshakeRetry(handshakeRetry),
			walletscan.WithProgress(func(ctx context.Context, p walletscan.PageProgress) {
				logger.Debug(ctx, "page merged",
					"page", p.Page,
					"pages.completed", p.Completed,
					"pages.total", p.Total,
					"page.failed", p.Failed,
					"transactions", p.Collected,
				)
			}),
		), nil
	}
}

// newLookupFactory returns the factory used by verify-proxy.
func newLookupFactory(cfg config.Config) cli.LookupFactory {
	return func(proxy string) (ipapi.Client, error) {
		httpClient, err := transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.IPAPI.Timeout),
			transporthttp.WithRetryMax(0),
			transporthttp.WithProxy(proxy),
		)
		if err != nil {
			return nil, err
		}

		return ipapi.NewClient(httpClient, cfg.IPAPI.URL), nil
	}
}

func logProgress(ctx context.Context, p counterparty.Progress) {
	switch p.Stage {
	case counterparty.StageStarted:
		logger.Info(ctx, fmt.Sprintf("processing wallet %d of %d", p.Index, p.Total), "wallet", p.Wallet)
	case counterparty.StageFinished:
		logger.Info(ctx, fmt.Sprintf("finished wallet %d of %d", p.Index, p.Total), "wallet", p.Wallet, "transactions", p.Transactions)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}

		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := shutdown(ctx); err != nil {
				fmt.Fprintln(os.Stderr, "telemetry shutdown:", err)
			}
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	svc := counterparty.New(newFetcherFactory(cfg), counterparty.WithProgress(logProgress))

	return cli.Run(ctx, svc, newLookupFactory(cfg))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "walletlink:", err)
		stop()
		os.Exit(1)
	}
}
