// Package config handles TOML-based configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"embedscout/internal/output"
)

// Config holds all application configuration.
type Config struct {
	UserAgent   string   `toml:"user_agent"`
	Timeout     Duration `toml:"timeout"`
	Concurrency int      `toml:"concurrency"`
	MaxDepth    int      `toml:"max_depth"`
	Format      string   `toml:"format"`
	Strict      bool     `toml:"strict"`
	History     bool     `toml:"history"`
	LogLevel    string   `toml:"log_level"`
	Debug       bool     `toml:"debug"`
}

// Duration is a time.Duration written as "30s" in the config file.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText renders the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UserAgent:   "",
		Timeout:     Duration{30 * time.Second},
		Concurrency: 4,
		MaxDepth:    1,
		Format:      "json",
		Strict:      false,
		History:     true,
		LogLevel:    "warn",
		Debug:       false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "embedscout"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "embedscout"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

var (
	validLogLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}
)

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if !slices.Contains(output.Formats, c.Format) {
		return fmt.Errorf("unsupported format %q (valid: json, yaml, m3u)", c.Format)
	}
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("unsupported log level %q", c.LogLevel)
	}
	if c.Timeout.Duration <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Concurrency < 1 || c.Concurrency > 32 {
		return fmt.Errorf("concurrency must be between 1 and 32, got %d", c.Concurrency)
	}
	if c.MaxDepth < 0 || c.MaxDepth > 5 {
		return fmt.Errorf("max_depth must be between 0 and 5, got %d", c.MaxDepth)
	}
	return nil
}

// HistoryPath returns the path to the history file.
func HistoryPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "embedscout", "history.tsv"), nil
}
