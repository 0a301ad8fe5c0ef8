// Package config loads and validates the settings shared by every host.
package config

import (
	"errors"
	"fmt"
	"os"

	"fractal-tree/internal/tree"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure outside the tree section.
var ErrInvalid = errors.New("invalid config")

// Config is the full set of host settings.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Tree   tree.Config  `yaml:"tree"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	TPS      int    `yaml:"tps"`
	HUDWidth int    `yaml:"hud_width"`
}

// LogConfig selects the log level and an optional log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the settings used when no file or flag overrides them.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:    800,
			Height:   600,
			Title:    "fractal tree",
			TPS:      60,
			HUDWidth: 200,
		},
		Tree: tree.DefaultConfig(),
		Log:  LogConfig{Level: "info"},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every section.
func (c *Config) Validate() error {
	w := c.Window
	switch {
	case w.Width <= 0 || w.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, w.Width, w.Height)
	case w.TPS <= 0:
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalid, w.TPS)
	case w.HUDWidth < 0 || w.HUDWidth >= w.Width:
		return fmt.Errorf("%w: hud_width %d must leave room in a %d wide window", ErrInvalid, w.HUDWidth, w.Width)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return c.Tree.Validate()
}

// ApplyPreset replaces the tree section with a named preset.
func (c *Config) ApplyPreset(name string) error {
	p, ok := GetPreset(name)
	if !ok {
		return fmt.Errorf("%w: unknown preset %q", ErrInvalid, name)
	}
	c.Tree = p
	return nil
}
