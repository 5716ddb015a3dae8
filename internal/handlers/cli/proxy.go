package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// verifyProxyCommand returns a CLI command that sends an ip lookup through the
// given proxy and prints the address and country the request came from.
//
// Usage example:
//
//	walletlink verify-proxy --proxy 123.45.67.89:8080
func verifyProxyCommand(newLookup LookupFactory) *cli.Command {
	return &cli.Command{
		Name:        "verify-proxy",
		Description: "Check that a proxy forwards requests and show the public IP and location it exits from.",
		Usage:       "Verifies a proxy before using it for an analysis.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "proxy",
				Usage:    "Proxy in host:port form (or scheme://host:port)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			lookup, err := newLookup(c.String("proxy"))
			if err != nil {
				return err
			}

			loc, err := lookup.Lookup(ctx)
			if err != nil {
				return fmt.Errorf("proxy check failed: %w", err)
			}

			_, err = fmt.Fprintf(c.Root().Writer, "Proxy verified! Request IP: %s (Location: %s)\n", loc.Query, loc.Country)
			return err
		},
	}
}
