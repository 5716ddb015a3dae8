package cli

import (
	"context"
	"os"

	"github.com/gabapcia/walletlink/internal/counterparty"
	"github.com/gabapcia/walletlink/internal/infra/ipapi"

	"github.com/urfave/cli/v3"
)

// LookupFactory builds an ip lookup client whose requests go through proxy.
type LookupFactory func(proxy string) (ipapi.Client, error)

// newApp builds the root command with every subcommand registered.
func newApp(svc counterparty.Service, newLookup LookupFactory) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "walletlink",
		Description:           "Finds the counterparties that several wallets have in common by walking their public transaction listings.",
		Usage:                 "walletlink [command] [flags]",
		Commands: []*cli.Command{
			analyzeCommand(svc),
			verifyProxyCommand(newLookup),
		},
	}
}

// Run initializes and executes the walletlink CLI application.
//
// It registers all available commands, including:
//
//   - `analyze`: Runs a counterparty analysis over a list of wallets.
//   - `verify-proxy`: Checks that a proxy works and shows where it exits.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - svc: The counterparty service used by the analyze command.
//   - newLookup: Builds the ip lookup client used by the verify-proxy command.
func Run(ctx context.Context, svc counterparty.Service, newLookup LookupFactory) error {
	return newApp(svc, newLookup).Run(ctx, os.Args)
}
