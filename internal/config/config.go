package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file expected at the project root.
const FileName = "passbook.yaml"

// Config represents the top-level passbook.yaml configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Display DisplayConfig `yaml:"display"`
	Git     GitConfig     `yaml:"git"`
}

// DataConfig locates the persisted collections.
type DataConfig struct {
	Dir string `yaml:"dir"` // relative to the project root
}

// DisplayConfig controls rendering and the refresh cadence.
type DisplayConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
	RefreshSeconds int    `yaml:"refresh_seconds"`
}

// GitConfig controls optional git snapshots of the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a passbook.yaml file from disk.
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

// Default returns the configuration a fresh project starts with.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "data",
		},
		Display: DisplayConfig{
			CurrencySymbol: "$",
			RefreshSeconds: 60,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Passbook",
			AuthorEmail: "passbook@localhost",
		},
	}
}
