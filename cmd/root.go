package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/murray-rothbot/murray-go/api"
	"github.com/murray-rothbot/murray-go/murray"
)

var (
	version = "0.1.0"
)

// cli carries flag values and the clients built from them.
type cli struct {
	configPath string
	overrides  murray.BaseEndpoints
	logLevel   string
	logFile    string
	network    string
	jsonOut    bool

	cfg    *Config
	logger *zap.Logger
	murray *murray.Murray
}

// NewRootCmd builds the murray command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "murray",
		Short: "Query the murray blockchain, prices and lightning services",
		Long: `murray is a command-line client for the murray services.

Services:
  • blockchain  blocks, fees, addresses, transactions, mining, mempool
  • prices      currency conversion and exchange tickers
  • lightning   node details, network statistics, top nodes

Configuration is read from ~/.murray/config.yaml when present.
Flags override the file.

Examples:
  murray blockchain fees                  # Recommended fee rates
  murray blockchain block --height 800000 # Block by height
  murray blockchain tx <txid>             # Transaction details
  murray prices convert 100 BRL           # Convert 100 BRL
  murray prices tickers BTCUSD            # BTCUSD on every exchange
  murray lightning top                    # Largest nodes
  murray --json blockchain mempool        # Raw JSON output`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default ~/.murray/config.yaml)")
	flags.StringVar(&c.overrides.Blockchain, "blockchain-url", "", "blockchain service base URL")
	flags.StringVar(&c.overrides.Prices, "prices-url", "", "prices service base URL")
	flags.StringVar(&c.overrides.Lightning, "lightning-url", "", "lightning service base URL")
	flags.StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&c.logFile, "log-file", "", "write logs to this file, rotated")
	flags.StringVar(&c.network, "network", "", "bitcoin network for local checks (mainnet, testnet, signet, regtest)")
	flags.BoolVar(&c.jsonOut, "json", false, "print raw JSON")

	root.AddCommand(
		newBlockchainCmd(c),
		newPricesCmd(c),
		newLightningCmd(c),
		newNetworkCmd(c),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree.
func Execute() error {
	return NewRootCmd().Execute()
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	path := c.configPath
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return err
		}
	}
	cfg, err := LoadConfig(path, explicit)
	if err != nil {
		return err
	}
	cfg.apply(c)
	c.cfg = cfg

	c.logger, err = newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	c.logger.Debug("configuration loaded",
		zap.String("path", path),
		zap.String("blockchain", cfg.Endpoints.Blockchain),
		zap.String("prices", cfg.Endpoints.Prices),
		zap.String("lightning", cfg.Endpoints.Lightning),
	)

	c.murray = murray.New(cfg.Endpoints,
		api.WithLogger(c.logger),
		api.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		api.WithUserAgent("murray-cli/"+version),
	)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		// no config or network needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "murray v%s\n", version)
		},
	}
}
