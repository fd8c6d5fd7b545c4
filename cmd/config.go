package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/murray-rothbot/murray-go/murray"
)

// Config is the CLI configuration file.
type Config struct {
	Endpoints murray.BaseEndpoints `yaml:"endpoints"`
	Network   string               `yaml:"network"`
	Timeout   time.Duration        `yaml:"timeout"`
	Log       LogConfig            `yaml:"log"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// DefaultConfigPath returns ~/.murray/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".murray", "config.yaml"), nil
}

// LoadConfig reads path. A missing file yields the defaults unless the path
// was given explicitly.
func LoadConfig(path string, explicit bool) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Set defaults
	if config.Network == "" {
		config.Network = "mainnet"
	}
	if config.Timeout == 0 {
		config.Timeout = 15 * time.Second
	}
	if config.Log.Level == "" {
		config.Log.Level = "warn"
	}
	if config.Log.MaxSizeMB == 0 {
		config.Log.MaxSizeMB = 50
	}
	if config.Log.MaxBackups == 0 {
		config.Log.MaxBackups = 3
	}
	if config.Log.MaxAgeDays == 0 {
		config.Log.MaxAgeDays = 28
	}

	return config, nil
}

// apply lets command-line flags win over the file.
func (config *Config) apply(c *cli) {
	if c.overrides.Blockchain != "" {
		config.Endpoints.Blockchain = c.overrides.Blockchain
	}
	if c.overrides.Prices != "" {
		config.Endpoints.Prices = c.overrides.Prices
	}
	if c.overrides.Lightning != "" {
		config.Endpoints.Lightning = c.overrides.Lightning
	}
	if c.logLevel != "" {
		config.Log.Level = c.logLevel
	}
	if c.logFile != "" {
		config.Log.File = c.logFile
	}
	if c.network != "" {
		config.Network = c.network
	}
}
