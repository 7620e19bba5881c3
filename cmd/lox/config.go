// config.go: optional REPL configuration file. This only affects cmd/lox
// cosmetics (history location, prompt, color mode) and has no bearing on
// interpreter behavior.
package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// replConfig configures REPL cosmetics. Every field's zero value matches
// current default behavior, so a missing or partial config file is never
// an error.
type replConfig struct {
	// HistoryFile overrides the REPL history path (default: ~/.lox_history).
	HistoryFile string `toml:"history_file"`
	// Color forces color on/off: "auto" (default), "always", or "never".
	Color string `toml:"color"`
	// Prompt overrides the primary REPL prompt (default: "> ").
	Prompt string `toml:"prompt"`
}

func defaultReplConfig() replConfig {
	return replConfig{Color: "auto", Prompt: "> "}
}

// loadReplConfig reads path (if non-empty) or ~/.loxrc.toml (if it exists)
// on top of the defaults. A missing file at either location is not an
// error; a malformed one is reported and falls back to defaults.
func loadReplConfig(path string) replConfig {
	cfg := defaultReplConfig()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg
		}
		path = home + "/.loxrc.toml"
	}

	if _, err := os.Stat(path); err != nil {
		return cfg
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "lox: ignoring malformed config %s: %v\n", path, err)
		return defaultReplConfig()
	}

	return cfg
}
