package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dahuapp/dahu/pkg/capture"
)

// DefaultConfigName is the config file picked up from the working
// directory when --config is not given.
const DefaultConfigName = "dahu.yaml"

// Config captures the user-adjustable knobs of the CLI.
type Config struct {
	Keys    capture.Keymap `yaml:"keys"`
	Logging LoggingConfig  `yaml:"logging"`
}

// LoggingConfig defines log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

func defaultConfig() Config {
	return Config{
		Keys:    capture.DefaultKeymap(),
		Logging: LoggingConfig{Level: "info"},
	}
}

// loadConfig reads configuration from disk if present, otherwise
// returning defaults. An explicitly given path must exist; the implied
// ./dahu.yaml may be absent.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
