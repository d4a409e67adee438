package main

import (
	"github.com/spf13/cobra"

	"bigcalc/internal/calc"
	"bigcalc/internal/console"
)

var reportCmd = &cobra.Command{
	Use:   "report [flags] a b",
	Short: "Print every operation on two integers without prompting",
	Args:  cobra.ExactArgs(2),
	RunE:  reportExecution,
}

func init() {
	reportCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func reportExecution(cmd *cobra.Command, args []string) error {
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

	a, err := calc.ParseOperand(args[0])
	if err != nil {
		return err
	}
	b, err := calc.ParseOperand(args[1])
	if err != nil {
		return err
	}
	endReport := s.timer.Track("report")
	rep := calc.NewReport(a, b)
	endReport("")

	if format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), rep)
	}
	console.NewPrinter(cmd.OutOrStdout(), s.color, s.cfg.Display.BaseM).Report(rep)
	return nil
}
