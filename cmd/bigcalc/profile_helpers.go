package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bigcalc/internal/logg"
	"bigcalc/internal/prof"
)

// activeProfile is stopped by main once the command returns, error or not.
var activeProfile *prof.Session

// startProfiling inspects the persistent profiling flags and enables the
// requested profilers.
func startProfiling(cmd *cobra.Command, _ []string) error {
	root := cmd.Root()

	cpuProfile, err := root.PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memProfile, err := root.PersistentFlags().GetString("mem-profile")
	if err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	tracePath, err := root.PersistentFlags().GetString("runtime-trace")
	if err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}

	opts := prof.Options{CPU: cpuProfile, Mem: memProfile, Trace: tracePath}
	if !opts.Enabled() {
		return nil
	}
	s, err := prof.Start(opts)
	if err != nil {
		return fmt.Errorf("failed to start profiling: %w", err)
	}
	activeProfile = s
	return nil
}

func stopProfiling() {
	if err := activeProfile.Stop(); err != nil {
		logg.Warn.Printf("failed to write profile: %v", err)
	}
	activeProfile = nil
}
