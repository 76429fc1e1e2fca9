// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Scoring
	BenchmarksPath  string `json:"benchmarks_path,omitempty"`  // Path to a custom benchmark table JSON
	DefaultIndustry string `json:"default_industry,omitempty"` // Industry applied when a context omits one

	// Behavior
	Verbose            bool `json:"verbose,omitempty"`               // Print detailed score breakdowns
	RateLimitPerMinute int  `json:"rate_limit_per_minute,omitempty"` // Per-client request budget
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("config error: 'rate_limit_per_minute' must be non-negative")
	}
	if c.BenchmarksPath != "" {
		if _, err := os.Stat(c.BenchmarksPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: benchmark file not found: %s", c.BenchmarksPath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.BenchmarksPath == "" {
		result.BenchmarksPath = defaults.BenchmarksPath
	}
	if result.DefaultIndustry == "" {
		result.DefaultIndustry = defaults.DefaultIndustry
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimitPerMinute == 0 {
		if defaults.RateLimitPerMinute > 0 {
			result.RateLimitPerMinute = defaults.RateLimitPerMinute
		} else {
			result.RateLimitPerMinute = 600
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
