package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all tool settings, populated from environment variables and
// an optional .env file in the working directory.
type Config struct {
	// DataDir is the directory holding accident_<year>.csv.bz2 files.
	DataDir string `env:"FARS_DATA_DIR" envDefault:"."`

	// PlotDir is where rendered state maps are written.
	PlotDir string `env:"FARS_PLOT_DIR" envDefault:"."`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// MetricsAddr enables the /metrics endpoint for the duration of a run
	// when non-empty. Empty disables it.
	MetricsAddr string `env:"METRICS_ADDR"`
}

// Load reads configuration from the environment, applying defaults where
// unset. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want text or json", cfg.LogFormat)
	}

	return cfg, nil
}
