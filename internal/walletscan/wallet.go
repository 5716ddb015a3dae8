package walletscan

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"github.com/gabapcia/walletlink/internal/pkg/logger"
	"github.com/gabapcia/walletlink/internal/pkg/types"
	"github.com/gabapcia/walletlink/internal/pkg/validator"
	"github.com/gabapcia/walletlink/internal/pkg/x/chflow"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// fetchRequest holds the validated input of FetchWallet.
type fetchRequest struct {
	Address         string `validate:"required"`
	MaxTransactions int    `validate:"min=1"`
}

// pageResult is what a worker reports for one page: either its records or
// the error that made the page contribute nothing.
type pageResult struct {
	Page         int
	Transactions []Transaction
	Err          error
}

// accumulator merges page results into a wallet result. It is owned by the
// single goroutine consuming worker output, so it needs no locking.
type accumulator struct {
	limit        int
	seen         types.Set[string]
	transactions []Transaction
}

func newAccumulator(limit int) *accumulator {
	return &accumulator{
		limit:        limit,
		seen:         types.NewSet[string](),
		transactions: make([]Transaction, 0, min(limit, 256)),
	}
}

// merge appends every record whose counterparty has not been seen yet, until
// the limit is reached. It returns how many records were kept.
func (a *accumulator) merge(txs []Transaction) int {
	kept := 0
	for _, tx := range txs {
		if a.full() {
			break
		}

		if a.seen.Has(tx.From) {
			continue
		}

		a.seen.Add(tx.From)
		a.transactions = append(a.transactions, tx)
		kept++
	}

	return kept
}

func (a *accumulator) full() bool {
	return len(a.transactions) >= a.limit
}

// descendingPages yields page numbers from total down to 1, so that the most
// recent activity is fetched first when the cap truncates the result.
func descendingPages(total int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for page := total; page >= 1; page-- {
			if !yield(page) {
				return
			}
		}
	}
}

// fetchPage fetches and parses a single page. It never fails: any problem is
// carried in the returned pageResult.
func (s *service) fetchPage(ctx context.Context, address string, page int, session Session, limit int) pageResult {
	raw, err := s.source.FetchPage(ctx, address, page, session)
	if err != nil {
		return pageResult{Page: page, Err: fmt.Errorf("fetch page %d: %w", page, err)}
	}

	txs, err := s.parser.Transactions(ctx, raw, address, limit)
	if errors.Is(err, ErrNoTransactionTable) {
		logger.Warn(ctx, "no transaction table on page", "page", page)
		return pageResult{Page: page}
	}

	if err != nil {
		return pageResult{Page: page, Err: fmt.Errorf("parse page %d: %w", page, err)}
	}

	return pageResult{Page: page, Transactions: txs}
}

// pageWorker takes pages from pagesCh until dispatch stops, fetching each one
// with ctx so that a request already in flight is allowed to finish. Results
// that cannot be delivered because dispatch stopped are discarded.
func (s *service) pageWorker(ctx, dispatchCtx context.Context, address string, session Session, limit int, pagesCh <-chan int, resultsCh chan<- pageResult) {
	for {
		page, ok := chflow.Receive(dispatchCtx, pagesCh)
		if !ok || dispatchCtx.Err() != nil {
			return
		}

		result := s.fetchPage(ctx, address, page, session, limit)
		if ok := chflow.Send(dispatchCtx, resultsCh, result); !ok {
			return
		}
	}
}

// startPageWorkers launches n workers and returns the channel on which their
// results arrive. The channel is closed once every worker has returned.
func (s *service) startPageWorkers(ctx, dispatchCtx context.Context, n int, address string, session Session, limit int, pagesCh <-chan int) <-chan pageResult {
	resultsCh := make(chan pageResult, n)

	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.pageWorker(ctx, dispatchCtx, address, session, limit, pagesCh, resultsCh)
		}()
	}

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	return resultsCh
}

// FetchWallet implements Service.
//
// The algorithm is:
//  1. Discover the total page count (and the wallet session).
//  2. Start min(totalPages, maxConcurrency) workers and dispatch pages
//     from the last one down to 1.
//  3. Merge results in completion order on this goroutine, keeping the first
//     record of each counterparty while below maxTransactions.
//  4. Once the cap is reached, stop dispatching and return. Requests already
//     in flight complete in the background and their output is dropped.
//
// A failed page contributes zero records and is listed in FailedPages.
func (s *service) FetchWallet(ctx context.Context, address string, maxTransactions int) (WalletResult, error) {
	req := fetchRequest{Address: strings.TrimSpace(address), MaxTransactions: maxTransactions}
	if err := validator.Validate(req); err != nil {
		return WalletResult{}, errors.Join(ErrInvalidInput, err)
	}

	ctx, span := s.instruments.tracer.Start(ctx, "walletscan.FetchWallet",
		trace.WithAttributes(
			attribute.String("wallet.address", req.Address),
			attribute.Int("wallet.max_transactions", req.MaxTransactions),
		),
	)
	defer span.End()

	ctx = logger.Derive(ctx, "wallet", req.Address)

	totalPages, session := s.discoverPages(ctx, req.Address)
	span.SetAttributes(attribute.Int("wallet.pages.total", totalPages))
	logger.Debug(ctx, "pages discovered", "pages.total", totalPages, "session", !session.IsEmpty())

	dispatchCtx, stopDispatch := context.WithCancel(ctx)
	defer stopDispatch()

	var (
		workers   = min(totalPages, s.maxConcurrency)
		pagesCh   = chflow.Generate(dispatchCtx, descendingPages(totalPages))
		resultsCh = s.startPageWorkers(ctx, dispatchCtx, workers, req.Address, session, req.MaxTransactions, pagesCh)

		acc       = newAccumulator(req.MaxTransactions)
		result    = WalletResult{Address: req.Address, TotalPages: totalPages}
		completed = 0
	)

	for !acc.full() {
		pr, ok := chflow.Receive(ctx, resultsCh)
		if !ok {
			break
		}
		completed++

		if pr.Err != nil {
			result.FailedPages = append(result.FailedPages, pr.Page)
			s.instruments.pagesFailed.Add(ctx, 1)
			logger.Warn(ctx, "page failed, skipping", "page", pr.Page, "error", pr.Err)
		} else {
			s.instruments.pagesFetched.Add(ctx, 1)
		}

		kept := acc.merge(pr.Transactions)
		s.instruments.collected.Add(ctx, int64(kept))

		if s.onProgress != nil {
			s.onProgress(ctx, PageProgress{
				Wallet:    req.Address,
				Page:      pr.Page,
				Completed: completed,
				Total:     totalPages,
				Failed:    pr.Err != nil,
				Collected: len(acc.transactions),
			})
		}
	}
	stopDispatch()

	slices.Sort(result.FailedPages)
	result.Transactions = acc.transactions

	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	logger.Info(ctx, "wallet fetched",
		"pages.total", totalPages,
		"pages.completed", completed,
		"pages.failed", len(result.FailedPages),
		"transactions", len(result.Transactions),
	)

	return result, nil
}
