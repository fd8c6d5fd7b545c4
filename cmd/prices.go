package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/murray-rothbot/murray-go/prices"
)

func newPricesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Query the prices service",
	}
	cmd.AddCommand(
		newConvertCmd(c),
		newTickerCmd(c),
		newTickersCmd(c),
		newHealthCmd(c, func(cmd *cobra.Command) (string, error) {
			h, err := c.murray.Prices.GetHealth(cmd.Context())
			if err != nil {
				return "", err
			}
			return h.Message, nil
		}),
	)
	return cmd
}

func newConvertCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <value> <currency>",
		Short: "Convert an amount into BTC, sats, USD and BRL",
		Long: `Convert an integer amount of one currency into every supported unit.

Currencies: BTC, BRL, SATS, USD (case-insensitive)

Examples:
  murray prices convert 100 BRL
  murray prices convert 50000 sats`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			currency, err := prices.ParseCurrency(args[1])
			if err != nil {
				return err
			}

			res, err := c.murray.Prices.ConvertCurrency(cmd.Context(), prices.ConvertCurrencyParams{Currency: currency, Value: value})
			if err != nil {
				return fmt.Errorf("failed to convert: %w", err)
			}
			return c.emit(cmd, res, func(w io.Writer) error {
				fmt.Fprintf(w, "💱 %d %s\n", value, currency)
				fmt.Fprintf(w, "   🟠 BTC:  %s\n", res.BTC)
				fmt.Fprintf(w, "   ⚡ sats: %s\n", res.Sat)
				fmt.Fprintf(w, "   💵 USD:  %s\n", res.USD)
				fmt.Fprintf(w, "   💵 BRL:  %s\n", res.BRL)
				return nil
			})
		},
	}
}

func parseSymbolArg(args []string) (prices.Symbol, error) {
	if len(args) == 0 {
		return prices.BTCUSD, nil
	}
	return prices.ParseSymbol(args[0])
}

func newTickerCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "ticker [symbol]",
		Short: "Show the last price of a pair (default BTCUSD)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol, err := parseSymbolArg(args)
			if err != nil {
				return err
			}
			ticker, err := c.murray.Prices.GetTicker(cmd.Context(), prices.GetTickerParams{Symbol: symbol})
			if err != nil {
				return fmt.Errorf("failed to fetch ticker: %w", err)
			}
			return c.emit(cmd, ticker, func(w io.Writer) error {
				fmt.Fprintf(w, "📈 %s %s (%s) %s\n", ticker.Symbol, ticker.Price.StringFixed(2),
					ticker.Source, change(ticker.Change24h))
				return nil
			})
		},
	}
}

func newTickersCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tickers [symbol]",
		Short: "Show the last price of a pair on every exchange (default BTCUSD)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol, err := parseSymbolArg(args)
			if err != nil {
				return err
			}
			res, err := c.murray.Prices.GetTickers(cmd.Context(), prices.GetTickerParams{Symbol: symbol})
			if err != nil {
				return fmt.Errorf("failed to fetch tickers: %w", err)
			}
			return c.emit(cmd, res, func(w io.Writer) error {
				rows := make([][]string, 0, len(res.Tickers))
				for _, t := range res.Tickers {
					rows = append(rows, []string{t.Source, t.Symbol, t.Price.StringFixed(2), change(t.Change24h)})
				}
				if err := renderTable(w, []string{"Source", "Symbol", "Price", "24h"}, rows); err != nil {
					return err
				}
				fmt.Fprintf(w, "Average: %s\n", res.Average().StringFixed(2))
				return nil
			})
		},
	}
}

func change(d decimal.Decimal) string {
	s := d.StringFixed(2) + "%"
	if d.IsNegative() {
		return color.RedString(s)
	}
	return color.GreenString("+" + s)
}
