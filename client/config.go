package client

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config configures a Client.
type Config struct {
	BaseURL           string        `env:"NINEBUDGET_API_URL" envDefault:"http://localhost:9446/api"`
	Timeout           time.Duration `env:"NINEBUDGET_API_TIMEOUT" envDefault:"30s"`
	SessionFile       string        `env:"NINEBUDGET_SESSION_FILE"`
	KeepaliveInterval time.Duration `env:"NINEBUDGET_KEEPALIVE_INTERVAL" envDefault:"5m"`
	IdleTimeout       time.Duration `env:"NINEBUDGET_IDLE_TIMEOUT" envDefault:"15m"`
	UserAgent         string        `env:"NINEBUDGET_USER_AGENT" envDefault:"ninebudget-client"`
}

// LoadConfig reads the client configuration from the environment, loading a
// .env file first when one exists.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse client env: %w", err)
	}
	return cfg, nil
}
