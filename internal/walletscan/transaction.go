package walletscan

// Direction labels shown by the explorer next to a transaction.
const (
	DirectionIncoming = "IN"
	DirectionOutgoing = "OUT"
	DirectionSelf     = "SELF"
)

// Transaction is one row of a wallet's paginated transaction listing.
//
// Within a single wallet fetch, From is the identity used for deduplication:
// the first record seen for a counterparty wins.
type Transaction struct {
	WalletAddress string // wallet whose listing produced the row
	Hash          string // transaction hash
	Link          string // permalink to the transaction on the explorer
	From          string // counterparty the transaction originates from
	Method        string // method/status label shown by the explorer
	Direction     string // IN, OUT or SELF when the explorer shows it; empty otherwise
}

// WalletResult is the outcome of fetching a single wallet.
//
// Transactions never exceeds the requested cap and holds pairwise distinct
// From values. FailedPages lists pages that contributed nothing because their
// fetch or parse failed.
type WalletResult struct {
	Address      string
	TotalPages   int
	FailedPages  []int
	Transactions []Transaction
}

// Session carries the handshake state required by paginated requests of one
// wallet. It is built once per wallet and shared read-only by every page task.
type Session struct {
	Token   string            // site-issued token sent with every page request
	Cookies map[string]string // cookies returned by the handshake response
}

// IsEmpty reports whether the session carries no handshake state.
func (s Session) IsEmpty() bool {
	return s.Token == "" && len(s.Cookies) == 0
}
