package counterparty

import (
	"context"
	"fmt"

	"github.com/gabapcia/walletlink/internal/pkg/logger"
	"github.com/gabapcia/walletlink/internal/pkg/validator"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func (s *service) emit(ctx context.Context, p Progress) {
	if s.onProgress != nil {
		s.onProgress(ctx, p)
	}
}

// Analyze implements Service.
//
// Wallets are processed sequentially; concurrency lives inside each wallet
// fetch. For every record kept for a wallet, the wallet is unioned into the
// index entry of the record's counterparty.
func (s *service) Analyze(ctx context.Context, req Request) (Report, error) {
	req = req.normalized()
	if err := validator.Validate(req); err != nil {
		return Report{}, err
	}

	runID, err := uuid.NewV7()
	if err != nil {
		return Report{}, fmt.Errorf("generate run id: %w", err)
	}

	ctx, span := s.tracer.Start(ctx, "counterparty.Analyze",
		trace.WithAttributes(
			attribute.String("run.id", runID.String()),
			attribute.Int("run.wallets", len(req.Wallets)),
			attribute.Int("run.max_transactions", req.MaxTransactions),
			attribute.Bool("run.proxy", req.Proxy != ""),
		),
	)
	defer span.End()

	ctx = logger.Derive(ctx, "run_id", runID.String())

	fetcher, err := s.newFetcher(req.Proxy)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Report{}, fmt.Errorf("create wallet fetcher: %w", err)
	}

	var (
		report = Report{RunID: runID, StartedAt: s.now()}
		idx    = newIndex()
		total  = len(req.Wallets)
	)

	logger.Info(ctx, "analysis started", "wallets", total, "max_transactions", req.MaxTransactions)

	for i, wallet := range req.Wallets {
		if ctx.Err() != nil {
			break
		}

		s.emit(ctx, Progress{Index: i + 1, Total: total, Wallet: wallet, Stage: StageStarted})

		res, err := fetcher.FetchWallet(ctx, wallet, req.MaxTransactions)

		report.Transactions = append(report.Transactions, res.Transactions...)
		for _, tx := range res.Transactions {
			idx.Add(tx.From, wallet)
		}

		if err != nil && ctx.Err() == nil {
			logger.Error(ctx, "wallet fetch failed, keeping partial records", "wallet", wallet, "error", err)
		}

		s.emit(ctx, Progress{
			Index:        i + 1,
			Total:        total,
			Wallet:       wallet,
			Stage:        StageFinished,
			Transactions: len(res.Transactions),
		})
	}

	report.Common = idx.Common()
	report.FinishedAt = s.now()

	span.SetAttributes(
		attribute.Int("run.transactions", len(report.Transactions)),
		attribute.Int("run.common", len(report.Common)),
	)

	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		logger.Warn(ctx, "analysis interrupted", "error", err)
		return report, err
	}

	logger.Info(ctx, "analysis finished",
		"transactions", len(report.Transactions),
		"common", len(report.Common),
		"elapsed", report.FinishedAt.Sub(report.StartedAt).String(),
	)

	return report, nil
}
