// Package config handles viscobat configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure shared by the viewer and the
// CLI. Everything has a working default so a missing file is not an error.
type Config struct {
	Service  ServiceConfig `yaml:"service"`
	Language string        `yaml:"language"`
	LogLevel string        `yaml:"log_level"`
	Chart    ChartConfig   `yaml:"chart"`
}

// ServiceConfig points at the remote computation service.
type ServiceConfig struct {
	URL string `yaml:"url"`
	// TimeoutSeconds of 0 disables the client timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// ChartConfig sizes rendered chart images.
type ChartConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Service:  ServiceConfig{URL: "http://localhost:5000", TimeoutSeconds: 0},
		Language: "en",
		LogLevel: "info",
		Chart:    ChartConfig{Width: 900, Height: 320},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "viscobat.yaml"
	}
	return filepath.Join(dir, "viscobat", "config.yaml")
}

// Load reads the configuration from path, layering it over the defaults.
// A missing file yields the defaults; a malformed file is an error. The
// VISCOBAT_SERVICE_URL environment variable overrides the service URL.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if url := os.Getenv("VISCOBAT_SERVICE_URL"); url != "" {
		cfg.Service.URL = url
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Service.URL == "" {
		c.Service.URL = Default().Service.URL
	}
	if c.Service.TimeoutSeconds < 0 {
		c.Service.TimeoutSeconds = 0
	}
	if c.Chart.Width <= 0 {
		c.Chart.Width = Default().Chart.Width
	}
	if c.Chart.Height <= 0 {
		c.Chart.Height = Default().Chart.Height
	}
	if c.Language == "" {
		c.Language = "en"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Timeout returns the configured client timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Service.TimeoutSeconds) * time.Second
}
