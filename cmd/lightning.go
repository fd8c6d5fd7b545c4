package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/murray-rothbot/murray-go/chains/bitcoin"
	"github.com/murray-rothbot/murray-go/lightning"
)

func newLightningCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lightning",
		Aliases: []string{"ln"},
		Short:   "Query the lightning service",
	}
	cmd.AddCommand(
		newNodeCmd(c),
		newStatsCmd(c),
		newTopCmd(c),
		newHealthCmd(c, func(cmd *cobra.Command) (string, error) {
			h, err := c.murray.Lightning.GetHealth(cmd.Context())
			if err != nil {
				return "", err
			}
			return h.Message, nil
		}),
	)
	return cmd
}

func newNodeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "node <public-key>",
		Short: "Show a node and its channels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := c.murray.Lightning.GetNodeDetails(cmd.Context(), lightning.GetNodeDetailsParams{PublicKey: args[0]})
			if err != nil {
				return fmt.Errorf("failed to fetch node: %w", err)
			}
			return c.emit(cmd, node, func(w io.Writer) error {
				fmt.Fprintf(w, "⚡ Node %s\n", node.PublicKey)
				location := node.Country.EN
				if node.City != nil {
					location = *node.City + ", " + location
				}
				fmt.Fprintf(w, "   Location: %s (%s)\n", location, node.ASOrganization)
				if sats, err := node.CapacitySats(); err == nil {
					fmt.Fprintf(w, "   Capacity: %s\n", bitcoin.FormatSatoshis(sats))
				}
				fmt.Fprintf(w, "   Channels: %d active, %d opened, %d closed\n",
					node.ActiveChannelCount, node.OpenedChannelCount, node.ClosedChannelCount)

				rows := make([][]string, 0, len(node.Channels))
				for _, ch := range node.Channels {
					rows = append(rows, []string{ch.ShortID, ch.Node.Alias, sats(ch.Capacity), comma(ch.FeeRate)})
				}
				return renderTable(w, []string{"Channel", "Peer", "Capacity", "Fee rate"}, rows)
			})
		},
	}
}

func newStatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show network statistics against the previous snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := c.murray.Lightning.GetStatistics(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch statistics: %w", err)
			}
			return c.emit(cmd, stats, func(w io.Writer) error {
				l, p := stats.Latest, stats.Previous
				added := l.Added
				if at, err := l.AddedAt(); err == nil {
					added = at.Format(time.DateOnly)
				}
				fmt.Fprintf(w, "⚡ Lightning network, %s\n", added)
				return renderTable(w, []string{"", "Latest", "Previous"}, [][]string{
					{"Nodes", comma(l.NodeCount), comma(p.NodeCount)},
					{"Channels", comma(l.ChannelCount), comma(p.ChannelCount)},
					{"Capacity", bitcoin.FormatSatoshis(int64(l.TotalCapacity)), bitcoin.FormatSatoshis(int64(p.TotalCapacity))},
					{"Tor nodes", comma(l.TorNodes), comma(p.TorNodes)},
					{"Clearnet nodes", comma(l.ClearnetNodes), comma(p.ClearnetNodes)},
					{"Avg capacity", sats(l.AvgCapacity), sats(p.AvgCapacity)},
					{"Avg fee rate", comma(l.AvgFeeRate), comma(p.AvgFeeRate)},
				})
			})
		},
	}
}

func newTopCmd(c *cli) *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the largest nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			by = strings.ToLower(by)
			if by != "capacity" && by != "channels" {
				return fmt.Errorf("invalid --by %q. Use 'capacity' or 'channels'", by)
			}
			top, err := c.murray.Lightning.GetTopNodes(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch top nodes: %w", err)
			}
			return c.emit(cmd, top, func(w io.Writer) error {
				nodes := top.TopByCapacity
				if by == "channels" {
					nodes = top.TopByChannels
				}
				rows := make([][]string, 0, len(nodes))
				for i, n := range nodes {
					metric := "-"
					switch {
					case by == "capacity" && n.Capacity != nil:
						metric = bitcoin.FormatSatoshis(*n.Capacity)
					case by == "channels" && n.Channels != nil:
						metric = humanize.Comma(*n.Channels)
					}
					rows = append(rows, []string{fmt.Sprint(i + 1), n.Alias, metric, deref(n.ISOCode)})
				}
				return renderTable(w, []string{"#", "Alias", strings.ToUpper(by[:1]) + by[1:], "Country"}, rows)
			})
		},
	}
	cmd.Flags().StringVar(&by, "by", "capacity", "ranking to show (capacity or channels)")
	return cmd
}
