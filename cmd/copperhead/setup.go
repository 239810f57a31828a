package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/copperhead/internal/config"
	"github.com/vovakirdan/copperhead/internal/games/snake"
	"github.com/vovakirdan/copperhead/internal/platform/tui"
)

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFPS != 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	// Presentation options must be set before any game is created.
	snake.Configure(snake.Options{
		Glyphs: snake.Glyphs{
			Head: cfg.Display.Glyphs.Head,
			Body: cfg.Display.Glyphs.Body,
			Food: cfg.Display.Glyphs.Food,
		},
		ActivateKey: tui.NewKeyMap(cfg.Keys).ActivateLabel(),
	})

	return cfg, nil
}

// newLogger creates a logger at the configured level.
func newLogger(w io.Writer, cfg config.Config, prefix string) (*log.Logger, error) {
	level, err := cfg.Log.ParseLevel()
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
