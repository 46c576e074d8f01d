// Package config loads settings for the nxncube command-line tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/nxncube"
)

// MaxOrder bounds the cube order accepted from configuration; larger cubes
// do not fit a terminal.
const MaxOrder = 9

// Config holds all CLI configuration.
type Config struct {
	Order     int               `yaml:"order" env:"NXNCUBE_ORDER"`
	LogLevel  string            `yaml:"log_level" env:"NXNCUBE_LOG_LEVEL"`
	LogFormat string            `yaml:"log_format" env:"NXNCUBE_LOG_FORMAT"` // text or json
	Palette   map[string]string `yaml:"palette"`                             // color name -> hex
	NoColor   bool              `yaml:"no_color"`

	// NoColorEnv holds $NO_COLOR; any non-empty value disables color.
	NoColorEnv string `yaml:"-" env:"NO_COLOR"`
}

// DefaultPalette maps color names to terminal hex colors.
var DefaultPalette = map[string]string{
	"white":  "#FFFFFF",
	"yellow": "#FFD500",
	"green":  "#009B48",
	"blue":   "#0046AD",
	"red":    "#B71234",
	"orange": "#FF5800",
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		Order:     3,
		LogLevel:  "warn",
		LogFormat: "text",
		Palette:   make(map[string]string, len(DefaultPalette)),
	}
	for k, v := range DefaultPalette {
		cfg.Palette[k] = v
	}
	return cfg
}

// DefaultPath returns ~/.nxncube/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".nxncube", "config.yaml"), nil
}

// Load reads configuration from a YAML file, then applies environment
// overrides. A missing file is not an error; defaults are used instead.
// An empty path means DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.NoColorEnv != "" {
		cfg.NoColor = true
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillDefaults sets values a partial file left empty.
func (c *Config) fillDefaults() {
	if c.Order == 0 {
		c.Order = 3
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.Palette == nil {
		c.Palette = make(map[string]string, len(DefaultPalette))
	}
	for k, v := range DefaultPalette {
		if _, ok := c.Palette[k]; !ok {
			c.Palette[k] = v
		}
	}
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	if c.Order < 1 || c.Order > MaxOrder {
		return fmt.Errorf("invalid order %d: must be between 1 and %d", c.Order, MaxOrder)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log format %q: must be text or json", c.LogFormat)
	}
	for name := range c.Palette {
		if !knownColor(name) {
			return fmt.Errorf("invalid palette entry %q", name)
		}
	}
	return nil
}

func knownColor(name string) bool {
	for _, c := range nxncube.Colors() {
		if strings.EqualFold(c.Name(), name) {
			return true
		}
	}
	return false
}

// Hex returns the palette color for a sticker color.
func (c *Config) Hex(color nxncube.Color) string {
	for name, hex := range c.Palette {
		if strings.EqualFold(name, color.Name()) {
			return hex
		}
	}
	return DefaultPalette[color.Name()]
}

// NewLogger builds a logger from the configured level and format.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger
}
