// Package config loads the optional clockface.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/clockface"
	"github.com/phanxgames/clockface/ebitenclock"
)

// DefaultPath is the file read when no --config flag is given.
const DefaultPath = "clockface.yaml"

// Config represents the optional clockface.yaml configuration.
type Config struct {
	Clock  ebitenclock.LiveOptions `yaml:"clock"`
	Window WindowConfig            `yaml:"window"`
	Log    LogConfig               `yaml:"log"`
}

// WindowConfig contains desktop window settings.
type WindowConfig struct {
	Title   string `yaml:"title,omitempty"`
	Width   int    `yaml:"width,omitempty"`
	Height  int    `yaml:"height,omitempty"`
	ShowFPS bool   `yaml:"showFPS,omitempty"`
	Debug   bool   `yaml:"debug,omitempty"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Pretty bool   `yaml:"pretty,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	run := ebitenclock.DefaultRunConfig()
	return &Config{
		Clock: ebitenclock.DefaultLiveOptions(),
		Window: WindowConfig{
			Title:  run.Title,
			Width:  run.Width,
			Height: run.Height,
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadOptional reads the file at path if present. A missing file yields the
// defaults; keys absent from the file keep their default values.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values the renderer cannot recover from.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive (got %dx%d)", c.Window.Width, c.Window.Height)
	}
	if _, err := clockface.EasingByName(c.Clock.TickEasing); err != nil {
		return fmt.Errorf("clock.tickEasing: %w", err)
	}
	return nil
}

// RunConfig converts the window settings for ebitenclock.Run.
func (c *Config) RunConfig() ebitenclock.RunConfig {
	rc := ebitenclock.DefaultRunConfig()
	if c.Window.Title != "" {
		rc.Title = c.Window.Title
	}
	rc.Width = c.Window.Width
	rc.Height = c.Window.Height
	rc.ShowFPS = c.Window.ShowFPS
	rc.Debug = c.Window.Debug
	return rc
}
