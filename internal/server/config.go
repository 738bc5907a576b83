package server

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds server settings read from the environment.
type Config struct {
	Port int `env:"DNDPOP_PORT" envDefault:"8080"`
}

// ConfigFromEnv loads server configuration from environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
