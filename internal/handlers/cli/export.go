package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gabapcia/walletlink/internal/counterparty"
	"github.com/gabapcia/walletlink/internal/walletscan"
)

var (
	commonHeader       = []string{"From Address", "Number of Connected Wallets", "Connected Wallets"}
	transactionsHeader = []string{"Wallet Address", "Txn Hash", "Txn Link", "From Address", "Method", "Direction"}
)

// writeCommonCSV writes one row per common counterparty. Connected wallets
// are joined with ", ".
func writeCommonCSV(w io.Writer, common []counterparty.Counterparty) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(commonHeader); err != nil {
		return err
	}

	for _, cp := range common {
		record := []string{cp.Address, strconv.Itoa(len(cp.Wallets)), strings.Join(cp.Wallets, ", ")}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// writeTransactionsCSV writes one row per transaction, in report order.
func writeTransactionsCSV(w io.Writer, txs []walletscan.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(transactionsHeader); err != nil {
		return err
	}

	for _, tx := range txs {
		record := []string{tx.WalletAddress, tx.Hash, tx.Link, tx.From, tx.Method, tx.Direction}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// writeCSVFile creates path and fills it with write.
func writeCSVFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
