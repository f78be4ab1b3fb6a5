package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds process configuration read from environment variables.
// DatabaseURL is deliberately optional: the server starts without a database
// and data endpoints degrade instead of crashing.
type Config struct {
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"saas"`
	Port         string `env:"PORT" envDefault:"8000"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load populates a Config from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return cfg, nil
}
