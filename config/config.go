// Package config handles runtime configuration for the agent tooling.
//
// Everything is environment-driven: the tools run as headless agents, so
// settings arrive through the process environment (optionally seeded from a
// .env file) rather than config files.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/AION721963/aion-wallet-sdk/pkg/aion"
	"github.com/AION721963/aion-wallet-sdk/pkg/moltbook"
)

// Config holds the agent's runtime settings.
type Config struct {
	// Platform
	Username      string `envconfig:"AION_USERNAME"`
	APIBaseURL    string `envconfig:"AION_API_URL"`
	WalletAddress string `envconfig:"AION_WALLET_ADDRESS"`

	// Moltbook
	MoltbookToken   string `envconfig:"MOLTBOOK_TOKEN"`
	MoltbookBaseURL string `envconfig:"MOLTBOOK_API_URL"`

	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogJSON  bool   `envconfig:"LOG_JSON" default:"false"`
	LogFile  string `envconfig:"LOG_FILE"`
}

// Load reads configuration from the environment, seeded from a .env file in
// the working directory when one exists. Explicitly set variables always win
// over .env entries.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = aion.DefaultBaseURL
	}
	if cfg.MoltbookBaseURL == "" {
		cfg.MoltbookBaseURL = moltbook.DefaultBaseURL
	}
	return cfg, nil
}

// RequireUsername guards commands that talk to the platform.
func (c *Config) RequireUsername() error {
	if c.Username == "" {
		return fmt.Errorf("AION_USERNAME is not set")
	}
	return nil
}

// RequireMoltbookToken guards commands that publish posts.
func (c *Config) RequireMoltbookToken() error {
	if c.MoltbookToken == "" {
		return fmt.Errorf("MOLTBOOK_TOKEN is not set")
	}
	return nil
}
