package main

import (
	"errors"

	"github.com/spf13/cobra"

	"bigcalc/internal/console"
	"bigcalc/internal/history"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Read two integers and print every operation on them",
	Args:  cobra.NoArgs,
	RunE:  consoleExecution,
}

func init() {
	consoleCmd.Flags().Bool("no-history", false, "do not record this session in the history")
	rootCmd.Flags().Bool("no-history", false, "do not record this session in the history")
}

func consoleExecution(cmd *cobra.Command, args []string) error {
	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return err
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	session := &console.Session{
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Err:       cmd.ErrOrStderr(),
		Color:     s.color,
		HideBaseM: !s.cfg.Display.BaseM,
	}
	endSession := s.timer.Track("session")
	rep, err := session.Run(cmd.Context())
	endSession("")
	if errors.Is(err, console.ErrInterrupted) {
		session.Goodbye(true)
		return nil
	}
	if err != nil {
		return err
	}
	if !noHistory {
		s.record(s.openHistory(), history.FromReport(rep))
	}
	if !s.quiet {
		session.Goodbye(false)
	}
	s.finish(cmd.ErrOrStderr())
	return nil
}
