// Package config provides configuration loading and structs for the
// kensaku server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug  bool         `yaml:"debug"`
	Server ServerConfig `yaml:"server"`
	Query  QueryConfig  `yaml:"query"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// QueryConfig holds query compiler settings. Vocabulary and currency
// rates are compile-time tables and intentionally not configurable.
type QueryConfig struct {
	MinTermLength  int   `yaml:"min_term_length"`
	PrefixMatch    *bool `yaml:"prefix_match"`
	MaxQueryRunes  int   `yaml:"max_query_runes"`
	TimeoutSeconds int   `yaml:"timeout_seconds"` // HTTP request timeout
}

// PrefixMatchOrDefault returns whether compiled terms get the prefix-match
// suffix; defaults to true when unset.
func (q *QueryConfig) PrefixMatchOrDefault() bool {
	if q.PrefixMatch != nil {
		return *q.PrefixMatch
	}
	return true
}

// Load reads and parses the config file at path and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// Default returns a config with every default applied, for running
// without a config file.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}
