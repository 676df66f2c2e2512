// Package config loads application configuration from YAML files and
// environment variables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultsConfig represents the summarizer defaults configuration.
type DefaultsConfig struct {
	Summarizer struct {
		ShortPercentage  int `yaml:"short_percentage"`
		MediumPercentage int `yaml:"medium_percentage"`
		LongPercentage   int `yaml:"long_percentage"`
		MaxInputWords    int `yaml:"max_input_words"`
		RetentionDays    int `yaml:"retention_days"`
	} `yaml:"summarizer"`
}

// BuiltinDefaults returns the configuration used when no YAML file is provided.
func BuiltinDefaults() *DefaultsConfig {
	var config DefaultsConfig
	config.Summarizer.ShortPercentage = 20
	config.Summarizer.MediumPercentage = 40
	config.Summarizer.LongPercentage = 60
	config.Summarizer.MaxInputWords = 10000
	config.Summarizer.RetentionDays = 30
	return &config
}

// LoadDefaults loads summarizer defaults from a YAML file. An empty path
// returns the built-in defaults.
// The path parameter is expected to come from a trusted source (command-line argument or hardcoded default).
func LoadDefaults(path string) (*DefaultsConfig, error) {
	if path == "" {
		return BuiltinDefaults(), nil
	}

	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := BuiltinDefaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateDefaults(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func validateDefaults(config *DefaultsConfig) error {
	s := config.Summarizer

	if s.ShortPercentage < 5 || s.ShortPercentage > 95 {
		return fmt.Errorf("short_percentage must be between 5 and 95")
	}

	if s.MediumPercentage < 5 || s.MediumPercentage > 95 {
		return fmt.Errorf("medium_percentage must be between 5 and 95")
	}

	if s.LongPercentage < 5 || s.LongPercentage > 95 {
		return fmt.Errorf("long_percentage must be between 5 and 95")
	}

	if s.MaxInputWords < 100 {
		return fmt.Errorf("max_input_words must be at least 100")
	}

	if s.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be positive")
	}

	return nil
}
