// Package config loads holes settings from a .holes.yaml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/unbound-force/holes/internal/glyph"
	"github.com/unbound-force/holes/internal/holes"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working
// directory when no path is given.
const DefaultFileName = ".holes.yaml"

// Config holds the settings that .holes.yaml can provide. Command-line
// flags override these values.
type Config struct {
	// Mode is the digit extraction mode: "strict" or "lenient".
	Mode string `yaml:"mode"`

	// Format is the default output format: "text" or "json".
	Format string `yaml:"format"`

	// MaxHoles fails the count command when the total exceeds it.
	// Zero means no limit.
	MaxHoles int `yaml:"max_holes"`

	// Glyphs overrides the hole count of individual digits, keyed by
	// the digit ("0" through "9").
	Glyphs map[string]int `yaml:"glyphs"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Mode:   string(holes.Strict),
		Format: "text",
	}
}

// Load reads the config at path. An empty path loads DefaultFileName
// from the working directory if it exists and otherwise returns
// DefaultConfig. Values missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every setting holds an accepted value.
func (c *Config) Validate() error {
	if _, err := holes.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", c.Format)
	}
	if c.MaxHoles < 0 {
		return fmt.Errorf("invalid max_holes %d: must be >= 0", c.MaxHoles)
	}
	if _, err := glyph.Default().With(c.Glyphs); err != nil {
		return err
	}
	return nil
}

// Table returns the glyph table with the configured overrides applied.
func (c *Config) Table() (glyph.Table, error) {
	return glyph.Default().With(c.Glyphs)
}

// ExtractMode returns the configured extraction mode.
func (c *Config) ExtractMode() (holes.Mode, error) {
	return holes.ParseMode(c.Mode)
}
