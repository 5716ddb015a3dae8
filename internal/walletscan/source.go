package walletscan

import (
	"context"
	"errors"
)

// ErrNoTransactionTable is returned by a PageParser when the page holds no
// transaction table at all. The page is treated as empty rather than failed.
var ErrNoTransactionTable = errors.New("transaction table not found")

// PageSource retrieves raw listing pages for a wallet from a remote explorer.
//
// Implementations must be safe for concurrent use: FetchPage is invoked from
// several goroutines of the same wallet fetch at once.
type PageSource interface {
	// OpenSession performs the handshake that authorizes paginated requests
	// for address and returns the resulting session state.
	OpenSession(ctx context.Context, address string) (Session, error)

	// FetchPage issues one GET for the given 1-based page and returns the raw
	// response body. Non-success statuses, timeouts and transport failures
	// are reported as errors.
	FetchPage(ctx context.Context, address string, page int, session Session) ([]byte, error)
}

// PageParser extracts structured data from raw listing pages.
//
// Parsing must be deterministic: the same input always yields the same output.
type PageParser interface {
	// TotalPages reads the "Page X of Y" indicator and returns Y.
	TotalPages(raw []byte) (int, error)

	// Transactions extracts at most limit records from one page, skipping the
	// header row, malformed rows, "execute" rows and counterparties already
	// emitted for the page. It returns ErrNoTransactionTable when the page
	// has no table.
	Transactions(ctx context.Context, raw []byte, wallet string, limit int) ([]Transaction, error)
}
