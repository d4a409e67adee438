package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bigcalc/internal/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] file|-",
	Short: "Evaluate one expression per line from a file or stdin",
	Long: `Evaluate one "a op b" expression per line. Blank lines and lines
starting with # are skipped. Lines are evaluated concurrently and reported
in input order; a failing line does not stop the run.`,
	Args: cobra.ExactArgs(1),
	RunE: batchExecution,
}

func init() {
	batchCmd.Flags().Int("jobs", 0, "max concurrent evaluations (0=config or GOMAXPROCS)")
	batchCmd.Flags().String("ui", "", "progress user interface (auto|on|off, default from config)")
	batchCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

type batchPayload struct {
	Results []batch.Result `json:"results" msgpack:"results"`
	OK      int            `json:"ok" msgpack:"ok"`
	Failed  int            `json:"failed" msgpack:"failed"`
}

func batchExecution(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	formatValue, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	format, err := readFormat(formatValue, formatPretty, formatJSON, formatMsgpack)
	if err != nil {
		return err
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer s.finish(cmd.ErrOrStderr())

	if !cmd.Flags().Changed("jobs") {
		jobs = s.cfg.Batch.Jobs
	}
	if jobs < 0 {
		return fmt.Errorf("--jobs must not be negative")
	}
	if !cmd.Flags().Changed("ui") {
		uiValue = s.cfg.Batch.UI
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	path := args[0]
	endRead := s.timer.Track("read")
	lines, err := readBatchInput(cmd.InOrStdin(), path)
	endRead(fmt.Sprintf("%d lines", len(lines)))
	if err != nil {
		return err
	}

	opts := batch.Options{Jobs: jobs, Timer: s.timer}
	var results []batch.Result
	// The progress UI only makes sense when results are not streamed to a
	// pipe in a machine format.
	if format == formatPretty && !s.quiet && shouldUseTUI(uiModeValue) && len(lines) > 0 {
		results, err = runBatchWithUI(cmd.Context(), "evaluating "+displayPath(path), lines, opts, path == "-")
	} else {
		results, err = batch.Run(cmd.Context(), lines, opts)
	}
	if err != nil {
		return err
	}

	ok, failed := batch.Count(results)
	out := cmd.OutOrStdout()
	endRender := s.timer.Track("render")
	switch format {
	case formatJSON:
		err = writeJSON(out, batchPayload{Results: results, OK: ok, Failed: failed})
	case formatMsgpack:
		err = writeMsgpack(out, batchPayload{Results: results, OK: ok, Failed: failed})
	default:
		renderBatchPretty(out, results, s.cfg.Display.BaseM, s.quiet)
	}
	endRender("")
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed", failed, len(results))
	}
	return nil
}

func readBatchInput(stdin io.Reader, path string) ([]batch.Line, error) {
	if path == "-" {
		return batch.ReadLines(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return batch.ReadLines(f)
}

func displayPath(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}

func renderBatchPretty(out io.Writer, results []batch.Result, baseM, quiet bool) {
	value := color.New(color.FgGreen)
	failure := color.New(color.FgRed)

	sources := make([]string, len(results))
	for i, r := range results {
		sources[i] = r.Source
	}
	width := columnWidth(sources, 40)

	for _, r := range results {
		prefix := fmt.Sprintf("%5d  %s", r.Line, padRight(r.Source, width))
		switch {
		case r.Err != nil:
			fmt.Fprintf(out, "%s  %s\n", prefix, failure.Sprint("error: "+r.Error))
		case r.Result != nil:
			fmt.Fprintf(out, "%s  = %s\n", prefix, value.Sprint(r.Result.Decimal))
			if baseM {
				fmt.Fprintf(out, "%s  = %s\n", padRight("", 7+width), value.Sprint(r.Result.BaseM))
			}
		}
	}
	if !quiet {
		ok, failed := batch.Count(results)
		fmt.Fprintf(out, "%d ok, %d failed\n", ok, failed)
	}
}
