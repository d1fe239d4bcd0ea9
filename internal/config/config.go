package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the application
type Config struct {
	// API is the base URL of the PropertyHub backend
	API APIConfig

	// Web configures the local front-end server
	Web WebConfig

	// Session configures token persistence and revalidation
	Session SessionConfig

	// Cache configures the local snapshot cache
	Cache CacheConfig

	// Logging configuration
	Logging LoggingConfig
}

// APIConfig holds backend connection configuration
type APIConfig struct {
	BaseURL string `env:"API_BASE_URL, default=http://localhost:8080"`
}

// WebConfig holds the local web UI configuration
type WebConfig struct {
	ListenAddr string `env:"LISTEN_ADDR, default=127.0.0.1:3000"`
	// CORSOrigin allows a separate dev UI origin to call /api endpoints.
	// Empty disables CORS entirely.
	CORSOrigin string `env:"CORS_ORIGIN"`
}

// SessionConfig holds session persistence configuration
type SessionConfig struct {
	// TokenStore selects where the bearer token is persisted: "keyring"
	// uses the OS keychain, "file" a 0600 file under the config dir.
	TokenStore string `env:"TOKEN_STORE, default=keyring"`
	// RefreshSchedule is a cron expression for periodic identity
	// revalidation. Empty disables the background job.
	RefreshSchedule string `env:"REFRESH_SCHEDULE, default=*/15 * * * *"`
}

// CacheConfig holds snapshot cache configuration
type CacheConfig struct {
	Path string `env:"CACHE_PATH"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL, default=info"`
	Format string `env:"LOG_FORMAT, default=console"` // json, console
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if cfg.Cache.Path == "" {
		dir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		cfg.Cache.Path = filepath.Join(dir, "cache.sqlite")
	}

	return &cfg, nil
}

// ConfigDir returns the per-user configuration directory, creating it if
// necessary.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	dir := filepath.Join(homeDir, ".config", "propertyhub")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}
