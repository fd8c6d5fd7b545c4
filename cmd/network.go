package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/murray-rothbot/murray-go/chains/bitcoin"
)

func newNetworkCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "network [address]",
		Short: "Show the configured network, or check an address against it",
		Long: `Show the bitcoin network used for local checks and the service endpoints.

The network is set with "network:" in the config file or --network.
Given an address, report whether it is valid on that network.

Examples:
  murray network
  murray network bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4
  murray --network testnet network tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := bitcoin.NetworkParams(c.cfg.Network)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				if err := bitcoin.ValidateAddress(args[0], params); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is a valid %s address\n", args[0], params.Name)
				return nil
			}

			return c.emit(cmd, c.cfg, func(w io.Writer) error {
				fmt.Fprintf(w, "🌐 Current network: %s\n", color.GreenString(params.Name))
				fmt.Fprintln(w)
				fmt.Fprintln(w, "Endpoints:")
				fmt.Fprintf(w, "   - Blockchain: %s\n", c.murray.Blockchain.BaseURL())
				fmt.Fprintf(w, "   - Prices:     %s\n", c.murray.Prices.BaseURL())
				fmt.Fprintf(w, "   - Lightning:  %s\n", c.murray.Lightning.BaseURL())
				return nil
			})
		},
	}
}
