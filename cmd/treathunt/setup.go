package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treat-hunt/internal/config"
	"github.com/vovakirdan/treat-hunt/internal/games/treats"
)

// loadGameConfig resolves the config from --config and --difficulty,
// validates it and installs it for new games.
func loadGameConfig() (config.TreatsConfig, error) {
	cfg, err := config.LoadTreats(flagConfig)
	if err != nil {
		return config.TreatsConfig{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TreatsConfig{}, err
	}
	config.ApplyTreatsPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.TreatsConfig{}, err
	}

	treats.SetConfig(cfg)
	return cfg, nil
}

// newLogger creates the process logger writing to w at --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "treathunt",
	}), nil
}
