// Package config holds the optional YAML configuration. Every setting
// has a sensible default; flags override whatever the file provides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultDatasetURL is the well-known open periodic-table dataset.
const DefaultDatasetURL = "https://raw.githubusercontent.com/Bowserinator/Periodic-Table-JSON/master/PeriodicTableJSON.json"

var validate = validator.New()

// Config is the full application configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Log     LogConfig     `yaml:"log"`
}

// DatasetConfig points at the dataset document.
type DatasetConfig struct {
	// Source is an http(s) URL or a local file path.
	Source string `yaml:"source" validate:"required"`
}

// LogConfig controls the slog sink. The TUI owns the terminal, so logs
// only ever go to a file; an empty File disables logging entirely.
type LogConfig struct {
	File   string `yaml:"file"`
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Dataset: DatasetConfig{Source: DefaultDatasetURL},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads and validates a YAML config file, layered over defaults.
// An empty path returns the defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct constraints.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return fmt.Errorf("invalid config: %s fails %q constraint", f.Namespace(), f.Tag())
	}
	return fmt.Errorf("invalid config: %w", err)
}
