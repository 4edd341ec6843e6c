// Package config holds petmatch runtime configuration.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all petmatch configuration.
type Config struct {
	// DBPath is the SQLite database file. Empty means the XDG default.
	DBPath string `env:"PETMATCH_DB"`

	// QuizDir is a directory of quiz definition files. Empty means the
	// built-in catalog.
	QuizDir string `env:"PETMATCH_QUIZ_DIR"`

	// Primary is the quiz other results are correlated against.
	Primary string `env:"PETMATCH_PRIMARY"`

	// History is how many results to keep per quiz (0 = unlimited).
	History int `env:"PETMATCH_HISTORY"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"PETMATCH_LOG_LEVEL"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Primary:  "human",
		History:  0,
		LogLevel: "warn",
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.History < 0 {
		return Config{}, fmt.Errorf("PETMATCH_HISTORY must be >= 0, got %d", cfg.History)
	}
	return cfg, nil
}
