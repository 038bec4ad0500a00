// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string `env:"PORT" envDefault:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `env:"DATABASE_URL"`

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	// RateLimitRPS and RateLimitBurst configure the per-IP token bucket.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.CORSOrigins = trimCSV(cfg.CORSOrigins)

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if cfg.MaxBodyBytes <= 0 {
		return Config{}, errors.New("MAX_BODY_BYTES must be positive")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return Config{}, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return cfg, nil
}

// ClientConfig holds the configuration of the planner CLI.
type ClientConfig struct {
	// APIURL is the base URL of the trip service.
	APIURL string `env:"TRIP_API_URL" envDefault:"http://localhost:8080"`

	// Home is the directory of the local store. Defaults to ~/.planner.
	Home string `env:"PLANNER_HOME"`

	// Locale picks the message catalog, e.g. "pt-BR" or "en".
	Locale string `env:"PLANNER_LOCALE" envDefault:"pt-BR"`

	// LogLevel of the CLI's stderr logger. Defaults to "warn".
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`

	// HTTPTimeout bounds each call to the trip service.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
}

// LoadClient reads the planner configuration from environment variables.
func LoadClient() (ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return ClientConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ClientConfig{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.Home = filepath.Join(home, ".planner")
	}
	if cfg.HTTPTimeout <= 0 {
		return ClientConfig{}, errors.New("HTTP_TIMEOUT must be positive")
	}
	return cfg, nil
}

// trimCSV trims CSV-split entries and drops empty ones.
func trimCSV(in []string) []string {
	var out []string
	for _, part := range in {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
