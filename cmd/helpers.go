package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/storyflow/techguide/internal/config"
	"github.com/storyflow/techguide/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `techguide init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger returns a text logger on stderr. --verbose forces debug level.
func newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newRenderer(cfg *config.Config) (*site.Renderer, error) {
	r, err := site.NewRenderer(cfg.Title, cfg.Subtitle, cfg.Site.HighlightStyle)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	return r, nil
}
