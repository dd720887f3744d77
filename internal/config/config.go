package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the lineup service.
// Environment variables are parsed from the LINEUP_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Embedded document store
	DataDir    string `envconfig:"DATA_DIR" default:"./data"`
	TxnRetries int    `envconfig:"TXN_RETRIES" default:"5"`

	// Upstream collaborators
	ExtractorURL    string        `envconfig:"EXTRACTOR_URL" default:"http://localhost:9090"`
	VisionURL       string        `envconfig:"VISION_URL" default:"http://localhost:9091"`
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`

	// Image picked when the catalog has no candidate sharing a tag
	DefaultImage string `envconfig:"DEFAULT_IMAGE" default:"https://storage.lineup.app/images/default.png"`

	// Bearer token accepted by the static development verifier. Ignored in
	// production, where a real token verifier must be wired in.
	DevAPIKey string `envconfig:"DEV_API_KEY" default:"sk_local_lineup_dev_key"`
}

// Validate checks field ranges that envconfig cannot express.
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return fmt.Errorf("unsupported ENVIRONMENT: %s", c.Environment)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}
	if c.TxnRetries <= 0 {
		return fmt.Errorf("TXN_RETRIES must be positive, got %d", c.TxnRetries)
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	return nil
}

// New creates a Config by parsing environment variables.
// Example: LINEUP_HTTP_PORT, LINEUP_DATA_DIR.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("LINEUP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("data_dir", cfg.DataDir).
		Int("txn_retries", cfg.TxnRetries).
		Str("extractor_url", cfg.ExtractorURL).
		Str("vision_url", cfg.VisionURL).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing.
func NewForTesting(dataDir string) *Config {
	return &Config{
		Environment:     EnvTesting,
		HTTPPort:        8080,
		DataDir:         dataDir,
		TxnRetries:      5,
		ExtractorURL:    "http://localhost:9090",
		VisionURL:       "http://localhost:9091",
		UpstreamTimeout: 5 * time.Second,
		DefaultImage:    "https://storage.lineup.app/images/default.png",
		DevAPIKey:       "sk_local_lineup_dev_key",
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
