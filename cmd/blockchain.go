package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/murray-rothbot/murray-go/blockchain"
	"github.com/murray-rothbot/murray-go/chains/bitcoin"
)

func newBlockchainCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "blockchain",
		Aliases: []string{"btc"},
		Short:   "Query the blockchain service",
	}
	cmd.AddCommand(
		newBlockCmd(c),
		newBlock2TimeCmd(c),
		newFeesCmd(c),
		newMempoolBlocksCmd(c),
		newAddressCmd(c),
		newAddressTxsCmd(c),
		newUTXOsCmd(c),
		newHashrateCmd(c),
		newMempoolCmd(c),
		newTxCmd(c),
		newBroadcastCmd(c),
		newBlocksCmd(c),
		newHealthCmd(c, func(cmd *cobra.Command) (string, error) {
			h, err := c.murray.Blockchain.GetHealth(cmd.Context())
			if err != nil {
				return "", err
			}
			return h.Message, nil
		}),
	)
	return cmd
}

// blockFlags binds --hash and --height and turns them into optional params.
func blockFlags(cmd *cobra.Command) func() blockchain.GetBlockParams {
	var hash string
	var height uint32
	cmd.Flags().StringVar(&hash, "hash", "", "block hash")
	cmd.Flags().Uint32Var(&height, "height", 0, "block height")
	return func() blockchain.GetBlockParams {
		var params blockchain.GetBlockParams
		if cmd.Flags().Changed("hash") {
			params.Hash = &hash
		}
		if cmd.Flags().Changed("height") {
			params.Height = &height
		}
		return params
	}
}

func newBlockCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Show a block by hash or height (the tip when neither is given)",
		Args:  cobra.NoArgs,
	}
	params := blockFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		block, err := c.murray.Blockchain.GetBlock(cmd.Context(), params())
		if err != nil {
			return fmt.Errorf("failed to fetch block: %w", err)
		}
		return c.emit(cmd, block, func(w io.Writer) error {
			fmt.Fprintf(w, "🧱 Block %s\n", color.CyanString(comma(block.Height)))
			fmt.Fprintf(w, "   Hash:         %s\n", block.ID)
			fmt.Fprintf(w, "   Previous:     %s\n", block.PreviousBlockHash)
			fmt.Fprintf(w, "   Time:         %s\n", time.Unix(int64(block.Timestamp), 0).UTC().Format(time.RFC3339))
			fmt.Fprintf(w, "   Transactions: %s\n", comma(block.TxCount))
			fmt.Fprintf(w, "   Size:         %s (%s WU)\n", humanize.Bytes(uint64(block.Size)), comma(block.Weight))
			fmt.Fprintf(w, "   Difficulty:   %s\n", humanize.Commaf(block.Difficulty))
			if block.Extras != nil {
				if block.Extras.Pool != nil {
					fmt.Fprintf(w, "   Pool:         %s\n", block.Extras.Pool.Name)
				}
				if block.Extras.TotalFees != nil {
					fmt.Fprintf(w, "   Fees:         %s\n", sats(*block.Extras.TotalFees))
				}
				if block.Extras.MedianFee != nil {
					fmt.Fprintf(w, "   Median fee:   %.1f sat/vB\n", *block.Extras.MedianFee)
				}
			}
			return nil
		})
	}
	return cmd
}

func newBlock2TimeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block2time",
		Short: "Show when a block was (or is expected to be) mined",
		Args:  cobra.NoArgs,
	}
	params := blockFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		res, err := c.murray.Blockchain.GetBlock2Time(cmd.Context(), params())
		if err != nil {
			return fmt.Errorf("failed to fetch block time: %w", err)
		}
		return c.emit(cmd, res, func(w io.Writer) error {
			at := time.Unix(int64(res.Timestamp), 0)
			when := at.UTC().Format(time.RFC3339)
			if res.InFuture {
				when += color.YellowString(" (estimated)")
			}
			fmt.Fprintf(w, "⏱️  Block %s: %s, %s\n", comma(res.Height), when, humanize.Time(at))
			return nil
		})
	}
	return cmd
}

func newFeesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "fees",
		Short: "Show recommended fee rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fees, err := c.murray.Blockchain.GetFeesRecommended(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch fees: %w", err)
			}
			return c.emit(cmd, fees, func(w io.Writer) error {
				fmt.Fprintln(w, "💸 Recommended fees (sat/vB)")
				return renderTable(w, []string{"Fastest", "Half hour", "Hour", "Economy", "Minimum"}, [][]string{{
					strconv.FormatUint(fees.FastestFee, 10),
					strconv.FormatUint(fees.HalfHourFee, 10),
					strconv.FormatUint(fees.HourFee, 10),
					strconv.FormatUint(fees.EconomyFee, 10),
					strconv.FormatUint(fees.MinimumFee, 10),
				}})
			})
		},
	}
}

func newMempoolBlocksCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "mempool-blocks",
		Short: "Show the projected blocks built from the mempool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := c.murray.Blockchain.GetFeesMempoolBlocks(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch mempool blocks: %w", err)
			}
			return c.emit(cmd, blocks, func(w io.Writer) error {
				rows := make([][]string, 0, len(blocks))
				for i, b := range blocks {
					feeRange := "-"
					if n := len(b.FeeRange); n > 0 {
						feeRange = fmt.Sprintf("%.1f - %.1f", b.FeeRange[0], b.FeeRange[n-1])
					}
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						comma(b.NTx),
						humanize.Bytes(uint64(b.BlockSize)),
						fmt.Sprintf("%.1f", b.MedianFee),
						feeRange,
						sats(b.TotalFees),
					})
				}
				return renderTable(w, []string{"#", "Txs", "Size", "Median fee", "Fee range", "Total fees"}, rows)
			})
		},
	}
}

// checkAddress validates addr against the configured network.
func (c *cli) checkAddress(addr string) error {
	params, err := bitcoin.NetworkParams(c.cfg.Network)
	if err != nil {
		return err
	}
	return bitcoin.ValidateAddress(addr, params)
}

func newAddressCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "address <address>",
		Short: "Show the balance and activity of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.checkAddress(args[0]); err != nil {
				return err
			}
			details, err := c.murray.Blockchain.GetAddressDetails(cmd.Context(), blockchain.GetAddressParams{Address: args[0]})
			if err != nil {
				return fmt.Errorf("failed to fetch address: %w", err)
			}
			return c.emit(cmd, details, func(w io.Writer) error {
				fmt.Fprintf(w, "📍 Address: %s\n", details.Address)
				fmt.Fprintf(w, "🟠 Balance: %s\n", bitcoin.FormatSatoshis(details.Balance()))
				if pending := details.MempoolStats.Balance(); pending != 0 {
					fmt.Fprintf(w, "   Pending: %s\n", color.YellowString(bitcoin.FormatSatoshis(pending)))
				}
				fmt.Fprintf(w, "   Transactions: %s confirmed, %s in mempool\n",
					comma(details.ChainStats.TxCount), comma(details.MempoolStats.TxCount))
				fmt.Fprintf(w, "   Received: %s\n", bitcoin.FormatSatoshis(int64(details.ChainStats.FundedTxoSum)))
				fmt.Fprintf(w, "   Sent:     %s\n", bitcoin.FormatSatoshis(int64(details.ChainStats.SpentTxoSum)))
				return nil
			})
		},
	}
}

func newAddressTxsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "txs <address>",
		Short: "List the transactions of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.checkAddress(args[0]); err != nil {
				return err
			}
			txs, err := c.murray.Blockchain.GetAddressTransactions(cmd.Context(), blockchain.GetAddressParams{Address: args[0]})
			if err != nil {
				return fmt.Errorf("failed to fetch transactions: %w", err)
			}
			return c.emit(cmd, txs, func(w io.Writer) error {
				rows := make([][]string, 0, len(txs))
				for _, tx := range txs {
					rows = append(rows, []string{
						tx.TxID,
						confirmation(tx.Status),
						strconv.Itoa(len(tx.Vin)) + "/" + strconv.Itoa(len(tx.Vout)),
						sats(tx.Fee),
						fmt.Sprintf("%.1f", tx.FeeRate()),
					})
				}
				return renderTable(w, []string{"Txid", "Status", "In/Out", "Fee", "sat/vB"}, rows)
			})
		},
	}
}

func newUTXOsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "utxos <address>",
		Short: "List the unspent outputs of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.checkAddress(args[0]); err != nil {
				return err
			}
			utxos, err := c.murray.Blockchain.GetAddressUTXOs(cmd.Context(), blockchain.GetAddressParams{Address: args[0]})
			if err != nil {
				return fmt.Errorf("failed to fetch utxos: %w", err)
			}
			return c.emit(cmd, utxos, func(w io.Writer) error {
				var total int64
				rows := make([][]string, 0, len(utxos))
				for _, u := range utxos {
					total += int64(u.Value)
					rows = append(rows, []string{
						fmt.Sprintf("%s:%d", u.TxID, u.Vout),
						confirmation(u.Status),
						sats(u.Value),
					})
				}
				if err := renderTable(w, []string{"Outpoint", "Status", "Value"}, rows); err != nil {
					return err
				}
				fmt.Fprintf(w, "Total: %s in %d outputs\n", bitcoin.FormatSatoshis(total), len(utxos))
				return nil
			})
		},
	}
}

func confirmation(s blockchain.TransactionStatus) string {
	if !s.Confirmed {
		return color.YellowString("unconfirmed")
	}
	return color.GreenString("block " + deref(s.BlockHeight))
}

func newHashrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "hashrate",
		Short: "Show network hashrate and the difficulty epoch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hr, err := c.murray.Blockchain.GetHashrate(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch hashrate: %w", err)
			}
			return c.emit(cmd, hr, func(w io.Writer) error {
				fmt.Fprintf(w, "⛏️  Hashrate:   %s\n", hashrate(hr.CurrentHashrate))
				fmt.Fprintf(w, "   Difficulty: %s\n", humanize.Commaf(hr.CurrentDifficulty))
				fmt.Fprintf(w, "   Epoch:      %s done, %s blocks left\n",
					percent(hr.ProgressPercent), comma(hr.RemainingBlocks))
				fmt.Fprintf(w, "   Retarget:   %s at block %s (%s)\n",
					percent(hr.DifficultyChange), comma(hr.NextRetargetHeight),
					humanize.Time(time.UnixMilli(int64(hr.EstimatedRetargetDate))))
				return nil
			})
		},
	}
}

func newMempoolCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "mempool",
		Short: "Show the mempool backlog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mp, err := c.murray.Blockchain.GetMempool(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch mempool: %w", err)
			}
			return c.emit(cmd, mp, func(w io.Writer) error {
				fmt.Fprintf(w, "📦 Mempool: %s transactions, %s vB, %s\n",
					comma(mp.Count), comma(mp.VSize), bitcoin.FormatSatoshis(int64(mp.TotalFee)))
				rows := make([][]string, 0, len(mp.FeeHistogram))
				for _, bucket := range mp.FeeHistogram {
					rows = append(rows, []string{
						fmt.Sprintf("%.2f", bucket.FeeRate()),
						humanize.Comma(int64(bucket.VSize())),
					})
				}
				return renderTable(w, []string{"sat/vB", "vsize"}, rows)
			})
		},
	}
}

func newTxCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tx <txid>",
		Short: "Show a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := chainhash.NewHashFromStr(args[0]); err != nil {
				return fmt.Errorf("invalid txid: %w", err)
			}
			tx, err := c.murray.Blockchain.GetTransaction(cmd.Context(), blockchain.GetTransactionParams{TxID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to fetch transaction: %w", err)
			}
			return c.emit(cmd, tx, func(w io.Writer) error {
				fmt.Fprintf(w, "🧾 Transaction %s\n", tx.TxID)
				fmt.Fprintf(w, "   Status: %s\n", confirmation(tx.Status))
				fmt.Fprintf(w, "   Size:   %d B, %d vB\n", tx.Size, tx.VSize())
				fmt.Fprintf(w, "   Fee:    %s (%.1f sat/vB)\n", sats(tx.Fee), tx.FeeRate())

				rows := make([][]string, 0, len(tx.Vin)+len(tx.Vout))
				for _, in := range tx.Vin {
					switch {
					case in.IsCoinbase:
						rows = append(rows, []string{"in", "coinbase", "-"})
					case in.PrevOut != nil:
						rows = append(rows, []string{"in", addressOrScript(in.PrevOut.ScriptPubKeyAddress, in.PrevOut.ScriptPubKeyType), sats(in.PrevOut.Value)})
					default:
						rows = append(rows, []string{"in", fmt.Sprintf("%s:%d", in.TxID, in.Vout), "-"})
					}
				}
				for _, out := range tx.Vout {
					rows = append(rows, []string{"out", addressOrScript(out.ScriptPubKeyAddress, out.ScriptPubKeyType), sats(out.Value)})
				}
				return renderTable(w, []string{"", "Address", "Value"}, rows)
			})
		},
	}
}

func addressOrScript(addr, scriptType string) string {
	if addr != "" {
		return addr
	}
	return "<" + scriptType + ">"
}

func newBroadcastCmd(c *cli) *cobra.Command {
	var skipDecode bool
	cmd := &cobra.Command{
		Use:   "broadcast <raw-tx-hex|->",
		Short: "Broadcast a signed raw transaction",
		Long: `Broadcast a signed raw transaction. Pass "-" to read the hex from stdin.

The transaction is decoded locally first and the txid returned by the
service is checked against the locally computed one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawHex, err := readHexArg(cmd, args[0])
			if err != nil {
				return err
			}

			var local *bitcoin.Transaction
			if !skipDecode {
				params, err := bitcoin.NetworkParams(c.cfg.Network)
				if err != nil {
					return err
				}
				if local, err = bitcoin.Decode(rawHex, params); err != nil {
					return err
				}
				c.logger.Info("decoded transaction",
					zap.String("txid", local.TxID), zap.Int64("vsize", local.VSize))
			}

			res, err := c.murray.Blockchain.PostTransaction(cmd.Context(), blockchain.PostTransactionParams{TxHex: rawHex})
			if err != nil {
				return fmt.Errorf("failed to broadcast transaction: %w", err)
			}
			if local != nil && local.TxID != res.TxID {
				return fmt.Errorf("service returned txid %s, expected %s", res.TxID, local.TxID)
			}

			return c.emit(cmd, res, func(w io.Writer) error {
				fmt.Fprintf(w, "✅ Broadcast %s\n", color.GreenString(res.TxID))
				if local != nil {
					fmt.Fprintf(w, "   %d inputs, %d outputs, %s vB, %s out\n",
						len(local.Inputs), len(local.Outputs), comma(local.VSize),
						bitcoin.FormatSatoshis(int64(local.TotalOutput())))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&skipDecode, "skip-decode", false, "send without decoding the transaction locally")
	return cmd
}

func readHexArg(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return strings.TrimSpace(arg), nil
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read transaction from stdin: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func newHealthCmd(c *cli, check func(cmd *cobra.Command) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the service is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := check(cmd)
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			return c.emit(cmd, map[string]string{"message": msg}, func(w io.Writer) error {
				fmt.Fprintf(w, "✅ %s\n", msg)
				return nil
			})
		},
	}
}
