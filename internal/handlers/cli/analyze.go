package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabapcia/walletlink/internal/counterparty"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

// profileURL is the portfolio page printed next to each common counterparty.
const profileURL = "https://app.zerion.io/"

// defaultMaxTransactions is the per-wallet cap used when the flag is omitted.
const defaultMaxTransactions = 100

// readWalletsFile returns the non-blank lines of path, trimmed.
func readWalletsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var wallets []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			wallets = append(wallets, line)
		}
	}

	return wallets, scanner.Err()
}

// collectWallets merges the --wallet flags, the --wallets-file lines and the
// positional arguments, in that order.
func collectWallets(c *cli.Command) ([]string, error) {
	wallets := append([]string{}, c.StringSlice("wallet")...)

	if path := c.String("wallets-file"); path != "" {
		fromFile, err := readWalletsFile(path)
		if err != nil {
			return nil, fmt.Errorf("read wallets file: %w", err)
		}
		wallets = append(wallets, fromFile...)
	}

	return append(wallets, c.Args().Slice()...), nil
}

// printSummary writes a human-readable summary of report to w.
func printSummary(w io.Writer, wallets int, report counterparty.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Run %s: %d wallets, %d transactions\n", report.RunID, wallets, len(report.Transactions))

	if len(report.Common) == 0 {
		b.WriteString("No common counterparties found\n")
	} else {
		fmt.Fprintf(&b, "Found %d common counterparties\n", len(report.Common))
	}

	for _, cp := range report.Common {
		fmt.Fprintf(&b, "\nFrom Address: %s (Connected to %d wallets) %s%s\n", cp.Address, len(cp.Wallets), profileURL, cp.Address)
		for i, wallet := range cp.Wallets {
			fmt.Fprintf(&b, "  Wallet %d: %s\n", i+1, wallet)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// analyzeCommand returns a CLI command that runs a counterparty analysis over
// the given wallets and prints the counterparties they share.
//
// Usage example:
//
//	walletlink analyze --wallet 0xA... --wallet 0xB... --max-transactions 200 --output common.csv
func analyzeCommand(svc counterparty.Service) *cli.Command {
	return &cli.Command{
		Name:        "analyze",
		Description: "Fetch the transaction listing of every wallet and report the counterparties that appear in more than one of them.",
		Usage:       "Analyzes wallets given as --wallet flags, a --wallets-file or positional arguments.",
		ArgsUsage:   "[wallet...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "wallet",
				Aliases: []string{"w"},
				Usage:   "Wallet address to analyze (repeatable)",
			},
			&cli.StringFlag{
				Name:  "wallets-file",
				Usage: "File with one wallet address per line",
			},
			&cli.IntFlag{
				Name:  "max-transactions",
				Usage: fmt.Sprintf("Transactions to analyze per wallet (1-%d)", counterparty.MaxTransactionsLimit),
				Value: defaultMaxTransactions,
			},
			&cli.StringFlag{
				Name:  "proxy",
				Usage: "Proxy in host:port form used for every explorer request",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Write the common counterparties to this CSV file",
			},
			&cli.StringFlag{
				Name:  "transactions-output",
				Usage: "Write every collected transaction to this CSV file",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			wallets, err := collectWallets(c)
			if err != nil {
				return err
			}

			report, err := svc.Analyze(ctx, counterparty.Request{
				Wallets:         wallets,
				MaxTransactions: c.Int("max-transactions"),
				Proxy:           c.String("proxy"),
			})
			if report.RunID == uuid.Nil {
				// nothing ran
				return err
			}

			if printErr := printSummary(c.Root().Writer, len(wallets), report); printErr != nil {
				return printErr
			}

			if path := c.String("output"); path != "" {
				if err := writeCSVFile(path, func(w io.Writer) error { return writeCommonCSV(w, report.Common) }); err != nil {
					return err
				}
			}

			if path := c.String("transactions-output"); path != "" {
				if err := writeCSVFile(path, func(w io.Writer) error { return writeTransactionsCSV(w, report.Transactions) }); err != nil {
					return err
				}
			}

			return err
		},
	}
}
