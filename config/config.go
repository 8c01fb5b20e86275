// Package config loads gac's configuration: a built-in default overlaid
// by an optional `.gacrc.yml` project file, with CLI flags given the
// final say (spec.md-expansion §4.9).
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name gac looks for in the working
// directory.
const FileName = ".gacrc.yml"

// Config holds gac's runtime settings.
type Config struct {
	Workers     int    `yaml:"workers"`
	DefaultGame string `yaml:"default_game"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
}

// DefaultConfig returns the built-in defaults, before any file or flag
// overlay is applied.
func DefaultConfig() Config {
	return Config{
		Workers:     runtime.NumCPU(),
		DefaultGame: "a",
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

// Load reads path (typically FileName) and overlays any fields it sets
// onto DefaultConfig. A missing file is not an error: Load returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return merge(cfg, overlay), nil
}

// merge overlays onto base every field overlay sets to a non-zero value,
// leaving base's value (the default or a previously-applied layer)
// untouched otherwise. This is the same "overlay wins where non-empty"
// shape used for CLI-flag precedence in cmd/gac.
func merge(base, overlay Config) Config {
	if overlay.Workers > 0 {
		base.Workers = overlay.Workers
	}
	if overlay.DefaultGame != "" {
		base.DefaultGame = overlay.DefaultGame
	}
	if overlay.LogLevel != "" {
		base.LogLevel = overlay.LogLevel
	}
	if overlay.LogFormat != "" {
		base.LogFormat = overlay.LogFormat
	}
	return base
}

// ApplyWorkers overlays a CLI-supplied worker count onto cfg when n > 0,
// giving CLI flags the final say over both the config file and the
// built-in default.
func (c Config) ApplyWorkers(n int) Config {
	if n > 0 {
		c.Workers = n
	}
	return c
}

// ApplyDefaultGame overlays a CLI-supplied default game tag onto cfg
// when g is non-empty.
func (c Config) ApplyDefaultGame(g string) Config {
	if g != "" {
		c.DefaultGame = g
	}
	return c
}
