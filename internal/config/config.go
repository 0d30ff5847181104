// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the resolved bot configuration after defaults, the
// config file, and CLI flags have been applied.
type Config struct {
	// Behavior
	CriticalWeight    float64 // Probability of the critical tone (0.0-1.0)
	MaxAttempts       int     // Generation attempts on rate-limit errors
	RetryDelaySeconds int     // Fixed sleep between rate-limit retries
	MaxWords          int     // Word cutoff for unpunctuated output (0 disables)
	Model             string  // Generation model name
	APIKey            string  // Gemini API key
	Verbose           bool    // Print detailed debug information
}

// FileConfig mirrors Config with pointer fields so a config file can set a
// knob to its zero value: max_words 0 disables the cutoff and
// critical_weight 0 means every post is uplifting. A nil field means the
// file did not mention the key.
type FileConfig struct {
	CriticalWeight    *float64 `json:"critical_weight"`
	MaxAttempts       *int     `json:"max_attempts"`
	RetryDelaySeconds *int     `json:"retry_delay_seconds"`
	MaxWords          *int     `json:"max_words"`
	Model             *string  `json:"model"`
	APIKey            *string  `json:"api_key"`
	Verbose           *bool    `json:"verbose"`
}

// DefaultConfig returns the stock knob values: the 30/70 uplifting/critical
// split and the 15-word cutoff observed in production.
func DefaultConfig() Config {
	return Config{
		CriticalWeight:    0.7,
		MaxAttempts:       3,
		RetryDelaySeconds: 15,
		MaxWords:          15,
		Model:             "gemini-2.5-flash-lite",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*FileConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyTo overlays the keys the file actually set onto cfg, leaving the
// rest untouched.
func (f *FileConfig) ApplyTo(cfg *Config) {
	if f.CriticalWeight != nil {
		cfg.CriticalWeight = *f.CriticalWeight
	}
	if f.MaxAttempts != nil {
		cfg.MaxAttempts = *f.MaxAttempts
	}
	if f.RetryDelaySeconds != nil {
		cfg.RetryDelaySeconds = *f.RetryDelaySeconds
	}
	if f.MaxWords != nil {
		cfg.MaxWords = *f.MaxWords
	}
	if f.Model != nil {
		cfg.Model = *f.Model
	}
	if f.APIKey != nil {
		cfg.APIKey = *f.APIKey
	}
	if f.Verbose != nil {
		cfg.Verbose = *f.Verbose
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.CriticalWeight < 0 || c.CriticalWeight > 1 {
		return fmt.Errorf("config error: 'critical_weight' must be between 0 and 1")
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("config error: 'max_attempts' must be non-negative")
	}
	if c.RetryDelaySeconds < 0 {
		return fmt.Errorf("config error: 'retry_delay_seconds' must be non-negative")
	}
	if c.MaxWords < 0 {
		return fmt.Errorf("config error: 'max_words' must be non-negative")
	}
	return nil
}
