package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat fftpub configuration stored alongside a
// workspace. It carries the disclosure-control settings and rendering
// policy; per-service structure lives in the embedded service definitions.
type Config struct {
	Version string `json:"version"`

	// Threshold is the first-level suppression cutoff: totals in
	// (0, threshold) are disclosive. Must be at least 2.
	Threshold int `json:"threshold"`

	// Tolerance is the allowed absolute difference between an entity's
	// category-count sum and its declared total before the run aborts.
	Tolerance int `json:"tolerance"`

	// RedactionMarker replaces suppressed values in rendered output.
	RedactionMarker string `json:"redaction_marker"`

	// RedactTotals controls whether a masked entity's rendered response
	// total is starred as well, or left visible with only the breakdown
	// redacted. The true total is always retained internally.
	RedactTotals bool `json:"redact_totals"`

	// DefaultService selects the service type when --service is omitted.
	DefaultService string `json:"default_service"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() *Config {
	return &Config{
		Version:         "1",
		Threshold:       5,
		Tolerance:       0,
		RedactionMarker: "*",
		RedactTotals:    false,
		DefaultService:  "inpatient",
	}
}

// Validate checks the settings that suppression is undefined without.
func (c *Config) Validate() error {
	if c.Threshold < 2 {
		return fmt.Errorf("threshold must be at least 2, got %d", c.Threshold)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %d", c.Tolerance)
	}
	if c.RedactionMarker == "" {
		return fmt.Errorf("redaction marker must not be empty")
	}
	if _, err := Service(c.DefaultService); err != nil {
		return fmt.Errorf("default service: %w", err)
	}
	return nil
}

// LoadConfig reads .fftpub/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".fftpub", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes config.json to the directory's .fftpub dir.
func SaveConfig(dir string, cfg *Config) error {
	fftpubDir := filepath.Join(dir, ".fftpub")
	if err := os.MkdirAll(fftpubDir, 0755); err != nil {
		return fmt.Errorf("failed to create .fftpub dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(fftpubDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// LoadOrDefault returns the directory's config, falling back to defaults
// when no config file exists yet.
func LoadOrDefault(dir string) *Config {
	cfg, err := LoadConfig(dir)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
