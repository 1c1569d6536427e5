// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings shared by the dice commands
type Config struct {
	// Seed for the random source, 0 seeds from the clock
	Seed int64 `env:"DICE_SEED" envDefault:"0"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"DICE_LOG_LEVEL" envDefault:"info"`

	// LogFormat is logfmt or json
	LogFormat string `env:"DICE_LOG_FORMAT" envDefault:"logfmt"`
}

// Load reads the given dotenv files, if they exist, and then parses the environment.
// Variables already set in the environment win over dotenv values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
