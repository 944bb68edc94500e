package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the planning engine.
type Config struct {
	Environment    string
	ServiceTimeout time.Duration
}

const defaultServiceTimeout = 5 * time.Second

// Load loads configuration from environment variables.
// It attempts to load from a .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production.
	// We don't return an error here because in production .env might not
	// exist and we rely on system environment variables.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		ServiceTimeout: defaultServiceTimeout,
	}

	if s := os.Getenv("SERVICE_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			log.Printf("Warning: invalid SERVICE_TIMEOUT %q, using default: %v", s, err)
		} else {
			cfg.ServiceTimeout = d
		}
	}

	return cfg, nil
}
