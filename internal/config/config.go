// Package config loads editmap CLI settings from an optional TOML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the CLI settings.
type Config struct {
	// Validate rejects unsorted or overlapping edit lists before use.
	Validate bool `toml:"validate"`

	// Output selects the result encoding: "text" or "json".
	Output string `toml:"output"`

	// Watch re-runs the command when the edits file changes.
	Watch bool `toml:"watch"`

	// LogLevel is the commonlog verbosity used in watch mode.
	LogLevel int `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Validate: true,
		Output:   "text",
		LogLevel: 1,
	}
}

// Load reads a config file and applies environment overrides. A
// missing file is not an error; the defaults are used.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("reading config file %s: %w", path, err)
			}
		} else if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv folds in EDITMAP_-prefixed environment variables.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("EDITMAP_OUTPUT"); ok {
		c.Output = v
	}
	if v, ok := os.LookupEnv("EDITMAP_VALIDATE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Validate = b
		}
	}
	if v, ok := os.LookupEnv("EDITMAP_LOG_LEVEL"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.LogLevel = n
		}
	}
}

func (c *Config) validate() error {
	switch c.Output {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
}
