package main

import (
	"fmt"
	"os"

	"bigcalc/internal/config"
)

func readUIMode(value string) (config.Mode, error) {
	mode, err := config.ParseMode(value)
	if err != nil {
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
	return mode, nil
}

func shouldUseTUI(mode config.Mode) bool {
	return mode.Enabled(func() bool { return isTerminal(os.Stdout) })
}
