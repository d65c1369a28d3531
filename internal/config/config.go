package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/budget-tracker-dev/budget-tracker/internal/model"
)

// Config represents the top-level budget.yaml configuration.
type Config struct {
	Ledger     LedgerConfig `yaml:"ledger"`
	Editor     string       `yaml:"editor,omitempty"`
	Categories []string     `yaml:"categories"`
	Log        LogConfig    `yaml:"log"`
}

// LedgerConfig names the files inside the data directory.
type LedgerConfig struct {
	File     string `yaml:"file"`
	Currency string `yaml:"currency,omitempty"`
}

// LogConfig controls the app log.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// Load reads a budget.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			File: "expenses.csv",
		},
		Categories: model.SuggestedCategories,
		Log: LogConfig{
			Level: "info",
			File:  "expenses.log",
		},
	}
}

// LoadOrDefault loads path if it exists, falling back to Default when the
// file is absent. A present but unreadable file is still an error.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
