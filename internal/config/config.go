package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Menu      MenuConfig
	Storage   StorageConfig
	Telemetry TelemetryConfig
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

type AuthConfig struct {
	APIKeys []string `env:"API_KEYS" envDefault:"apitest" envSeparator:","` // Valid API keys for cart mutations
}

type MenuConfig struct {
	Sources      []string      `env:"MENU_SOURCES" envDefault:"data/menu.json" envSeparator:","`
	FetchTimeout time.Duration `env:"MENU_FETCH_TIMEOUT" envDefault:"30s"`
}

type StorageConfig struct {
	Driver  string `env:"STORAGE_DRIVER" envDefault:"file"`
	Path    string `env:"STORAGE_PATH" envDefault:"data/storage.json"`
	CartKey string `env:"CART_STORAGE_KEY" envDefault:"cart"`
}

type TelemetryConfig struct {
	OTLPEndpoint string `env:"OTEL_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"restaurant-menu"`
}

// Load reads an optional .env file, then configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	return Parse(env.Options{})
}

// Parse reads configuration using opts, which tests use to supply an
// explicit environment
func Parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// normalize trims list entries and drops empty ones
func (c *Config) normalize() {
	c.Auth.APIKeys = compact(c.Auth.APIKeys)
	c.Menu.Sources = compact(c.Menu.Sources)
	c.Server.AllowedOrigins = compact(c.Server.AllowedOrigins)
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("at least one API key must be configured")
	}

	if len(c.Menu.Sources) == 0 {
		return fmt.Errorf("at least one menu source must be configured")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	switch c.Storage.Driver {
	case "memory":
	case "file", "sqlite":
		if strings.TrimSpace(c.Storage.Path) == "" {
			return fmt.Errorf("STORAGE_PATH is required for the %s driver", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("invalid storage driver: %s (must be memory, file, or sqlite)", c.Storage.Driver)
	}

	if strings.TrimSpace(c.Storage.CartKey) == "" {
		return fmt.Errorf("CART_STORAGE_KEY must not be empty")
	}

	return nil
}

// Addr returns the host:port the server listens on
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
