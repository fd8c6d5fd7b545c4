package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/murray-rothbot/murray-go/blockchain"
)

// maxBlockRange bounds a single scan.
const maxBlockRange = 500

// BlockSummary is one row of a block range scan
type BlockSummary struct {
	Height    uint32 `json:"height"`
	Hash      string `json:"hash"`
	Timestamp uint32 `json:"timestamp"`
	TxCount   uint32 `json:"tx_count"`
	Size      uint32 `json:"size"`
	Pool      string `json:"pool,omitempty"`
	TotalFees uint64 `json:"total_fees,omitempty"`
}

func newBlocksCmd(c *cli) *cobra.Command {
	var from, to uint32
	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "Summarize a range of blocks",
		Long: `Fetch every block in [from, to] and print one line per block.

Examples:
  murray blockchain blocks --from 800000 --to 800010
  murray --json blockchain blocks --from 800000 --to 800001`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if to < from {
				return fmt.Errorf("invalid range: --to %d is below --from %d", to, from)
			}
			if n := to - from + 1; n > maxBlockRange {
				return fmt.Errorf("range of %d blocks exceeds the limit of %d", n, maxBlockRange)
			}

			bar := newProgressBar(cmd.ErrOrStderr(), int(to-from+1), !c.jsonOut)
			summaries, err := c.scanBlocks(cmd, from, to, bar)
			if err != nil {
				return err
			}

			return c.emit(cmd, summaries, func(w io.Writer) error {
				rows := make([][]string, 0, len(summaries))
				for _, s := range summaries {
					pool := s.Pool
					if pool == "" {
						pool = "-"
					}
					rows = append(rows, []string{
						strconv.FormatUint(uint64(s.Height), 10),
						s.Hash,
						time.Unix(int64(s.Timestamp), 0).UTC().Format("2006-01-02 15:04"),
						comma(s.TxCount),
						humanize.Bytes(uint64(s.Size)),
						pool,
					})
				}
				return renderTable(w, []string{"Height", "Hash", "Time (UTC)", "Txs", "Size", "Pool"}, rows)
			})
		},
	}
	cmd.Flags().Uint32Var(&from, "from", 0, "first block height")
	cmd.Flags().Uint32Var(&to, "to", 0, "last block height")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (c *cli) scanBlocks(cmd *cobra.Command, from, to uint32, bar *progressbar.ProgressBar) ([]BlockSummary, error) {
	summaries := make([]BlockSummary, 0, to-from+1)
	for height := from; ; height++ {
		h := height
		block, err := c.murray.Blockchain.GetBlock(cmd.Context(), blockchain.GetBlockParams{Height: &h})
		if err != nil {
			c.logger.Warn("block scan aborted", zap.Uint32("height", height), zap.Error(err))
			return nil, fmt.Errorf("failed to fetch block %d: %w", height, err)
		}
		summaries = append(summaries, summarize(block))
		if bar != nil {
			_ = bar.Add(1)
		}
		if height == to {
			break
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return summaries, nil
}

func summarize(b *blockchain.Block) BlockSummary {
	s := BlockSummary{
		Height:    b.Height,
		Hash:      b.ID,
		Timestamp: b.Timestamp,
		TxCount:   b.TxCount,
		Size:      b.Size,
	}
	if b.Extras != nil {
		if b.Extras.Pool != nil {
			s.Pool = b.Extras.Pool.Name
		}
		if b.Extras.TotalFees != nil {
			s.TotalFees = *b.Extras.TotalFees
		}
	}
	return s
}

// newProgressBar returns nil unless w is an interactive terminal.
func newProgressBar(w io.Writer, total int, enabled bool) *progressbar.ProgressBar {
	f, ok := w.(*os.File)
	if !enabled || !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan]Fetching blocks...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionClearOnFinish(),
	)
}
