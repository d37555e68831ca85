// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultConfigFile   = "tasklist.toml"
	DefaultTasksFile    = "tasks.txt"
	DefaultStorage      = "text"
	DefaultLogLevel     = "info"
	DefaultWindowWidth  = 520
	DefaultWindowHeight = 600
)

// Config holds the full configuration for the task list.
type Config struct {
	// Paths
	TasksFile string `toml:"tasks_file"`
	Storage   string `toml:"storage"` // text or sqlite

	// Logging
	LogLevel string `toml:"log_level"`

	// Window
	WindowWidth  int `toml:"window_width"`
	WindowHeight int `toml:"window_height"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		TasksFile:    DefaultTasksFile,
		Storage:      DefaultStorage,
		LogLevel:     DefaultLogLevel,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyDefaults fills fields a config file set to empty strings.
func (c *Config) applyDefaults() {
	if c.TasksFile == "" {
		c.TasksFile = DefaultTasksFile
	}
	if c.Storage == "" {
		c.Storage = DefaultStorage
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	switch c.Storage {
	case "text", "sqlite":
	default:
		return fmt.Errorf("storage must be \"text\" or \"sqlite\", got %q", c.Storage)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
