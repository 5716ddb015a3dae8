package counterparty

import (
	"strings"
	"time"

	"github.com/gabapcia/walletlink/internal/walletscan"

	"github.com/google/uuid"
)

// MaxTransactionsLimit is the largest per-wallet cap accepted by Analyze.
const MaxTransactionsLimit = 10000

// Request describes one analysis run.
type Request struct {
	Wallets         []string `validate:"min=1,dive,required"`
	MaxTransactions int      `validate:"min=1,max=10000"`
	Proxy           string   `validate:"omitempty,hostname_port|url"`
}

// normalized returns a copy of r with surrounding whitespace removed from
// every wallet and from the proxy.
func (r Request) normalized() Request {
	wallets := make([]string, len(r.Wallets))
	for i, w := range r.Wallets {
		wallets[i] = strings.TrimSpace(w)
	}

	return Request{
		Wallets:         wallets,
		MaxTransactions: r.MaxTransactions,
		Proxy:           strings.TrimSpace(r.Proxy),
	}
}

// Counterparty is a "from" address seen in the listings of more than one
// wallet.
type Counterparty struct {
	Address string
	Wallets []string // in processing order
}

// Report is the outcome of an analysis run.
type Report struct {
	RunID        uuid.UUID
	StartedAt    time.Time
	FinishedAt   time.Time
	Transactions []walletscan.Transaction // every wallet's records, in processing order
	Common       []Counterparty           // ordered by first discovery
}

// Stage tells which side of a wallet fetch a Progress event reports.
type Stage string

const (
	StageStarted  Stage = "started"
	StageFinished Stage = "finished"
)

// Progress reports the advance of an analysis run at wallet granularity.
type Progress struct {
	Index        int // 1-based position of Wallet in the request
	Total        int
	Wallet       string
	Stage        Stage
	Transactions int // records kept for Wallet; only set on StageFinished
}
