// Package cli provides CLI-specific logic including configuration loading.
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the .mr-review.yml configuration file.
type Config struct {
	Version    string          `yaml:"version"`
	Mode       string          `yaml:"mode"`
	Weights    string          `yaml:"weights"`
	Thresholds ThresholdConfig `yaml:"thresholds"`
	Prompt     PromptConfig    `yaml:"prompt"`
	Output     OutputConfig    `yaml:"output"`
}

// ThresholdConfig overrides the weight table's routing thresholds.
// Zero values keep the table's own thresholds.
type ThresholdConfig struct {
	Selection int `yaml:"selection"`
	Mention   int `yaml:"mention"`
}

// PromptConfig holds operator overrides for prompt composition.
type PromptConfig struct {
	// System replaces the built-in integrated-mode system prompt when set.
	System string `yaml:"system"`
}

// OutputConfig controls report output settings.
type OutputConfig struct {
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
}

// LoadConfig reads and parses a .mr-review.yml configuration file.
// If path is empty, it looks for .mr-review.yml in the current directory.
// If the default config file is not found, sensible defaults are returned.
// If an explicitly specified config file is not found, an error is returned.
func LoadConfig(path string) (*Config, error) {
	useDefault := path == ""
	if useDefault {
		path = ".mr-review.yml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && useDefault {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("cli: reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cli: parsing config %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// DefaultConfig returns a Config with sensible defaults matching the
// documented .mr-review.yml schema.
func DefaultConfig() *Config {
	cfg := &Config{Version: "1"}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.Mode == "" {
		cfg.Mode = "persona"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "terminal"
	}
}
