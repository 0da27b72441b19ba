package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process configuration, loaded from the environment.
type Config struct {
	DatabaseURL    string
	AppPort        string
	MigrationsPath string
	JWTSecret      string
	TokenExpiry    time.Duration
}

// Load reads .env (if present) and builds the configuration.
// DATABASE_URL and JWT_SECRET are required; everything else has a default.
func Load() (*Config, error) {
	// Missing .env is fine in production; env vars may come from the runtime.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg.AppPort = os.Getenv("APP_PORT")
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	cfg.MigrationsPath = os.Getenv("MIGRATIONS_PATH")
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	expireMinutes := 30
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES: %q", v)
		}
		expireMinutes = n
	}
	cfg.TokenExpiry = time.Duration(expireMinutes) * time.Minute

	return cfg, nil
}
