// Package config loads emulator settings. Values come from the defaults,
// then an optional TOML file, then UNIXEMU_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "UNIXEMU"

// Config holds all emulator configuration.
type Config struct {
	MaxLines    int       `toml:"max_lines" split_words:"true"`
	Title       string    `toml:"title"`
	StartInHome bool      `toml:"start_in_home" split_words:"true"`
	Log         LogConfig `toml:"log"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `toml:"level"`
	// File receives log output; empty means stderr.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MaxLines:    20,
		Title:       "Welcome to the Unix Emulator",
		StartInHome: true,
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Dir returns the config directory.
// Resolution order: $UNIXEMU_CONFIG_DIR > $XDG_CONFIG_HOME/unixemu > ~/.config/unixemu
func Dir() string {
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "unixemu")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "unixemu")
}

// Path returns the config file path, or "" when no directory can be
// resolved.
func Path() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// Load reads the config file at Path (if any) and applies environment
// overrides.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load with an explicit file path. A missing file is not an
// error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		_, err := toml.DecodeFile(path, cfg)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var logLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.MaxLines < 1 {
		return fmt.Errorf("max_lines must be at least 1, got %d", c.MaxLines)
	}
	if !logLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
