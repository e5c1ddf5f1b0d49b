package config

import (
	"os"
	"strconv"

	"simvar/internal/errors"
)

// Config represents the complete application configuration.
type Config struct {
	Server ServerConfig
	RNG    RNGConfig
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Port    string
	GinMode string
}

// RNGConfig holds the generator seed policy. When Seeded is false the stream
// table is initialized from fresh operating-system entropy, the
// non-reproducible default.
type RNGConfig struct {
	Seed   int64
	Seeded bool
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnv("SIMVAR_PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
	}

	if raw := os.Getenv("SIMVAR_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.Wrap(
				errors.ConfigInvalid("SIMVAR_SEED must be a 64-bit integer"), "failed to load RNG configuration")
		}
		cfg.RNG = RNGConfig{Seed: seed, Seeded: true}
	}

	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		return nil, errors.ConfigInvalid("SIMVAR_PORT must be numeric")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
