// Package main implements the bigcalc CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bigcalc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "bigcalc",
	Short: "Fixed-width big integer calculator",
	Long: `bigcalc works on signed integers stored as 50 digits in base 2^15.
Results wrap modulo 2^750 and division truncates toward zero.
Without a subcommand it starts the interactive console.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          consoleExecution,
}

func init() {
	rootCmd.Version = version.Pretty()

	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("config", "", "path to bigcalc.toml (default: search upward from the working directory)")
	rootCmd.PersistentFlags().Bool("verbose", false, "print debug logging to stderr")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a runtime trace to this file")
	rootCmd.PersistentPreRunE = startProfiling
}

// main executes the root command with a context cancelled on SIGINT or
// SIGTERM. Any error exits with status 1.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	stopProfiling()
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int.
}
