// Package config loads bigcalc settings from bigcalc.toml and the
// environment.
//
// Precedence, highest first: command line flags (applied by the CLI),
// BIGCALC_* environment variables, the TOML file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// FileName is the configuration file looked up from the working directory
// upward.
const FileName = "bigcalc.toml"

// Config is the merged configuration.
type Config struct {
	// Path is the file the configuration was read from; empty for defaults.
	Path string `toml:"-" env:"-"`

	Display DisplayConfig `toml:"display"`
	Batch   BatchConfig   `toml:"batch"`
	History HistoryConfig `toml:"history"`
}

// DisplayConfig controls console rendering.
type DisplayConfig struct {
	Color string `toml:"color" env:"BIGCALC_COLOR"`
	BaseM bool   `toml:"base_m" env:"BIGCALC_BASE_M"`
}

// BatchConfig controls batch evaluation.
type BatchConfig struct {
	Jobs int    `toml:"jobs" env:"BIGCALC_JOBS"`
	UI   string `toml:"ui" env:"BIGCALC_UI"`
}

// HistoryConfig controls the history store.
type HistoryConfig struct {
	Enabled bool `toml:"enabled" env:"BIGCALC_HISTORY"`
	Limit   int  `toml:"limit" env:"BIGCALC_HISTORY_LIMIT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{Color: "auto", BaseM: true},
		Batch:   BatchConfig{Jobs: 0, UI: "auto"},
		History: HistoryConfig{Enabled: true, Limit: 100},
	}
}

// Find walks up from startDir looking for bigcalc.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads the configuration. An explicit path must exist; otherwise the
// file is searched from startDir upward and defaults apply when none is
// found. Environment variables are applied last.
func Load(explicitPath, startDir string) (Config, error) {
	cfg := Default()
	path := strings.TrimSpace(explicitPath)
	if path == "" {
		found, ok, err := Find(startDir)
		if err != nil {
			return Config{}, err
		}
		if ok {
			path = found
		}
	}
	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = fileCfg
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes a TOML file over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks enumerated and numeric settings.
func (c Config) Validate() error {
	where := "configuration"
	if c.Path != "" {
		where = c.Path
	}
	if _, err := ParseMode(c.Display.Color); err != nil {
		return fmt.Errorf("%s: [display].color: %w", where, err)
	}
	if _, err := ParseMode(c.Batch.UI); err != nil {
		return fmt.Errorf("%s: [batch].ui: %w", where, err)
	}
	if c.Batch.Jobs < 0 {
		return fmt.Errorf("%s: [batch].jobs must not be negative", where)
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("%s: [history].limit must not be negative", where)
	}
	return nil
}

// Mode is a tri-state switch used for colour and UI selection.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeOn   Mode = "on"
	ModeOff  Mode = "off"
)

// ParseMode reads auto|on|off; empty means auto.
func ParseMode(value string) (Mode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return ModeAuto, nil
	case "on":
		return ModeOn, nil
	case "off":
		return ModeOff, nil
	default:
		return "", fmt.Errorf("invalid value %q (expected auto|on|off)", value)
	}
}

// Enabled resolves the mode, deferring to auto when it is ModeAuto.
func (m Mode) Enabled(auto func() bool) bool {
	switch m {
	case ModeOn:
		return true
	case ModeOff:
		return false
	default:
		return auto != nil && auto()
	}
}
