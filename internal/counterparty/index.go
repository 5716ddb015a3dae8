package counterparty

import (
	"slices"

	"github.com/gabapcia/walletlink/internal/pkg/types"
)

// index maps every counterparty to the wallets it appeared in.
//
// Wallet sets only ever grow. Counterparties are remembered in the order they
// were first discovered, and wallets in the order they were first added.
type index struct {
	wallets    types.DefaultMap[string, types.Set[string]]
	order      []string
	walletRank map[string]int
}

func newIndex() *index {
	return &index{
		wallets: types.NewDefaultMap[string](func() types.Set[string] {
			return types.NewSet[string]()
		}),
		walletRank: make(map[string]int),
	}
}

// Add records that counterparty appeared in wallet's listing.
func (idx *index) Add(counterparty, wallet string) {
	if _, ok := idx.wallets.Lookup(counterparty); !ok {
		idx.order = append(idx.order, counterparty)
	}

	if _, ok := idx.walletRank[wallet]; !ok {
		idx.walletRank[wallet] = len(idx.walletRank)
	}

	idx.wallets.Get(counterparty).Add(wallet)
}

// WalletsOf returns the wallets counterparty appeared in, in the order they
// were added.
func (idx *index) WalletsOf(counterparty string) []string {
	set, ok := idx.wallets.Lookup(counterparty)
	if !ok {
		return nil
	}

	wallets := set.ToSlice()
	slices.SortFunc(wallets, func(a, b string) int {
		return idx.walletRank[a] - idx.walletRank[b]
	})

	return wallets
}

// Common returns every counterparty seen in more than one wallet.
func (idx *index) Common() []Counterparty {
	common := make([]Counterparty, 0)
	for _, address := range idx.order {
		set, _ := idx.wallets.Lookup(address)
		if len(set) < 2 {
			continue
		}

		common = append(common, Counterparty{
			Address: address,
			Wallets: idx.WalletsOf(address),
		})
	}

	return common
}
