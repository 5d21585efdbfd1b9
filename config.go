package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds process configuration, read from the environment.
type Config struct {
	Width    int    `env:"BOTFORGE_WIDTH" envDefault:"1024"`
	Height   int    `env:"BOTFORGE_HEIGHT" envDefault:"640"`
	LogLevel string `env:"BOTFORGE_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
