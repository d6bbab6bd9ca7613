// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/timeline/internal/geometry"
)

// Config holds the settings for one run of the timeline binary.
type Config struct {
	DBPath     string  // TIMELINE_DB
	LogFile    string  // TIMELINE_LOG_FILE; empty disables use-case logging
	Zoom       float64 // TIMELINE_ZOOM, clamped to the zoom range
	ChartWidth int     // TIMELINE_WIDTH, columns of the CLI lane chart
}

const (
	DefaultChartWidth = 80
	minChartWidth     = 20
)

// DefaultConfig returns the settings used when no variables are set,
// except DBPath, which depends on the home directory.
func DefaultConfig() Config {
	return Config{
		Zoom:       geometry.DefaultZoom,
		ChartWidth: DefaultChartWidth,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or invalid value.
func Load() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv("TIMELINE_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".timeline", "timeline.db")
	}

	cfg.LogFile = os.Getenv("TIMELINE_LOG_FILE")

	if v := os.Getenv("TIMELINE_ZOOM"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Zoom = geometry.ClampZoom(f)
		}
	}
	if v := os.Getenv("TIMELINE_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= minChartWidth {
			cfg.ChartWidth = n
		}
	}

	return cfg, nil
}
