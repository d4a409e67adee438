package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"bigcalc/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear recorded evaluations",
	Args:  cobra.NoArgs,
	RunE:  historyExecution,
}

func init() {
	historyCmd.Flags().Bool("clear", false, "delete every recorded entry")
	historyCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type historyPayload struct {
	Time   string       `json:"time"`
	Source string       `json:"source"`
	Rows   []historyRow `json:"results"`
}

type historyRow struct {
	Op     string `json:"op"`
	Result string `json:"result,omitempty"`
	BaseM  string `json:"base_m,omitempty"`
	Error  string `json:"error,omitempty"`
}

func historyExecution(cmd *cobra.Command, args []string) error {
	clearAll, err := cmd.Flags().GetBool("clear")
	if err != nil {
		return err
	}
	formatValue, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	format, err := readFormat(formatValue, formatPretty, formatJSON)
	if err != nil {
		return err
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer s.finish(cmd.ErrOrStderr())

	// Reading and clearing work even when recording is disabled.
	store, err := history.Open("bigcalc", s.cfg.History.Limit)
	if err != nil {
		return err
	}
	if clearAll {
		if err := store.Clear(); err != nil {
			return err
		}
		if !s.quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
		}
		return nil
	}

	entries, err := store.Load()
	if err != nil {
		return err
	}
	if format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), historyPayloads(entries))
	}
	renderHistoryPretty(cmd.OutOrStdout(), entries, s.quiet)
	return nil
}

func historyPayloads(entries []history.Entry) []historyPayload {
	out := make([]historyPayload, 0, len(entries))
	for _, e := range entries {
		p := historyPayload{Time: e.Time.Format(time.RFC3339), Source: e.Source}
		for _, row := range e.Rows {
			hr := historyRow{Op: row.Symbol, Error: row.Error}
			if row.Result != nil {
				hr.Result = row.Result.Decimal
				hr.BaseM = row.Result.BaseM
			}
			p.Rows = append(p.Rows, hr)
		}
		out = append(out, p)
	}
	return out
}

func renderHistoryPretty(out io.Writer, entries []history.Entry, quiet bool) {
	if len(entries) == 0 {
		if !quiet {
			fmt.Fprintln(out, "history is empty")
		}
		return
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %s\n", e.Time.Format("2006-01-02 15:04:05"), e.Source)
		for _, row := range e.Rows {
			if row.Result == nil {
				fmt.Fprintf(out, "    a %s b: error: %s\n", row.Symbol, row.Error)
				continue
			}
			fmt.Fprintf(out, "    a %s b = %s\n", row.Symbol, row.Result.Decimal)
		}
	}
}
