package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the notes service.
// Environment variables are parsed from the NOTES_ prefix,
// e.g. NOTES_HTTP_PORT, NOTES_DEFAULT_PAGE_SIZE.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Listing defaults
	DefaultPageSize int `envconfig:"DEFAULT_PAGE_SIZE" default:"10"`

	// Request body cap in bytes
	MaxBodyBytes int64 `envconfig:"MAX_BODY_BYTES" default:"1048576"`

	// Graceful shutdown drain window
	ShutdownTimeoutSeconds int `envconfig:"SHUTDOWN_TIMEOUT_SECONDS" default:"10"`
}

// New creates a new Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("NOTES", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Info().
		Int("port", cfg.HTTPPort).
		Int("default_page_size", cfg.DefaultPageSize).
		Int64("max_body_bytes", cfg.MaxBodyBytes).
		Msg("Configuration loaded")

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid NOTES_HTTP_PORT: %d", c.HTTPPort)
	}
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("invalid NOTES_DEFAULT_PAGE_SIZE: %d", c.DefaultPageSize)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid NOTES_MAX_BODY_BYTES: %d", c.MaxBodyBytes)
	}
	return nil
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
