/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package config loads client settings from ~/.doccert and the environment.
// Variables already set in the environment take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	Prefix      = "DOCCERT"
	EnvFile     = ".doccert"
	Credentials = ".doccert.db"
)

type Config struct {
	AuthURL        string        `envconfig:"AUTH_URL" default:"http://localhost:3002"`
	DocumentURL    string        `envconfig:"DOCUMENT_URL" default:"http://localhost:3003"`
	Timeout        time.Duration `envconfig:"TIMEOUT" default:"10s"`
	ExplorerURL    string        `envconfig:"EXPLORER_URL" default:"https://testnet.xrpl.org/transactions/"`
	CredentialFile string        `envconfig:"CREDENTIAL_FILE"`
	LogFile        string        `envconfig:"LOG_FILE"`
	Output         string        `envconfig:"OUTPUT" default:"json"`
	Debug          bool          `envconfig:"DEBUG"`

	// Used by login when the matching flag is not given
	Email    string `envconfig:"EMAIL"`
	Password string `envconfig:"PASSWORD"`
}

// Load reads ~/.doccert if it exists and then the environment
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("unable to locate home directory: %w", err)
	}
	return LoadFile(filepath.Join(homeDir, EnvFile))
}

// LoadFile is Load with an explicit env file. A missing file is not an
// error.
func LoadFile(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", envPath, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config from environment: %w", err)
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) finish() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("%s_TIMEOUT must be positive, got %s", Prefix, c.Timeout)
	}

	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	if c.Output != "json" && c.Output != "yaml" {
		return fmt.Errorf("%s_OUTPUT must be json or yaml, got %q", Prefix, c.Output)
	}

	if c.CredentialFile == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("unable to locate home directory: %w", err)
		}
		c.CredentialFile = filepath.Join(homeDir, Credentials)
	}
	return nil
}
