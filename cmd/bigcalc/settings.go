package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bigcalc/internal/config"
	"bigcalc/internal/history"
	"bigcalc/internal/logg"
	"bigcalc/internal/observ"
)

// settings is the merged view of bigcalc.toml, the environment and flags.
type settings struct {
	cfg   config.Config
	color bool
	quiet bool
	// timer is nil unless --timings was given.
	timer *observ.Timer
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()
	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, err
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, err
	}
	showTimings, err := flags.GetBool("timings")
	if err != nil {
		return nil, err
	}
	logg.Setup(os.Stderr, verbose)

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}
	endConfig := timer.Track("config")
	cfg, err := config.Load(configPath, ".")
	if err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		endConfig(cfg.Path)
		logg.Debug.Printf("config loaded from %s", cfg.Path)
	} else {
		endConfig("defaults")
	}

	if flags.Changed("color") {
		cfg.Display.Color, err = flags.GetString("color")
		if err != nil {
			return nil, err
		}
	}
	colorMode, err := config.ParseMode(cfg.Display.Color)
	if err != nil {
		return nil, fmt.Errorf("invalid --color value: %w", err)
	}
	useColor := colorMode.Enabled(func() bool { return isTerminal(os.Stdout) })
	color.NoColor = !useColor

	return &settings{cfg: cfg, color: useColor, quiet: quiet, timer: timer}, nil
}

// openHistory returns the history store, or nil when history is disabled.
// A store that cannot be opened is reported and treated as disabled.
func (s *settings) openHistory() *history.Store {
	if !s.cfg.History.Enabled {
		return nil
	}
	store, err := history.Open("bigcalc", s.cfg.History.Limit)
	if err != nil {
		logg.Warn.Printf("history disabled: %v", err)
		return nil
	}
	return store
}

func (s *settings) record(store *history.Store, e history.Entry) {
	if err := store.Append(e); err != nil {
		logg.Warn.Printf("failed to record history: %v", err)
	}
}

// finish prints the timing summary when --timings is set.
func (s *settings) finish(out io.Writer) {
	printTimings(out, s.timer)
}
