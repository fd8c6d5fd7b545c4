package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// emit prints v as indented JSON under --json, otherwise calls human.
func (c *cli) emit(cmd *cobra.Command, v any, human func(w io.Writer) error) error {
	w := cmd.OutOrStdout()
	if c.jsonOut {
		return printJSON(w, v)
	}
	return human(w)
}

func printJSON(w io.Writer, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}

// renderTable writes rows under header as a plain text table.
func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	return table.Render()
}

func comma[T ~int | ~int32 | ~int64 | ~uint32 | ~uint64](v T) string {
	return humanize.Comma(int64(v))
}

func sats[T ~int64 | ~uint64](v T) string {
	return humanize.Comma(int64(v)) + " sats"
}

func hashrate(h float64) string {
	return humanize.SIWithDigits(h, 2, "H/s")
}

func percent(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64) + "%"
}

func deref[T any](p *T) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprint(*p)
}
