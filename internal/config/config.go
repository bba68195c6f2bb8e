// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Backend names for the persistence gateway.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config is the runtime configuration of the CLI.
type Config struct {
	// DataDir is where the ledger files (or database) live.
	DataDir string `env:"SPLITLEDGER_DATA_DIR" envDefault:"."`

	// Backend selects the persistence backend: json or sqlite.
	Backend string `env:"SPLITLEDGER_BACKEND" envDefault:"json"`

	// Currency is the ISO 4217 code used to render amounts.
	Currency string `env:"SPLITLEDGER_CURRENCY" envDefault:"INR"`

	// LogLevel is the slog level name: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Backend != BackendJSON && cfg.Backend != BackendSQLite {
		return Config{}, fmt.Errorf("unknown backend %q (want %s or %s)", cfg.Backend, BackendJSON, BackendSQLite)
	}
	return cfg, nil
}
