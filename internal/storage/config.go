package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file,
	// looked up in the working directory.
	userConfigFile = ".lmsconfig.yaml"

	// DefaultDataFile is the backing file used when the config and
	// the --file flag specify nothing else.
	DefaultDataFile = "library_data.json"

	// DefaultColorMode leaves color output up to terminal detection.
	DefaultColorMode = "auto"
)

// Config represents user configuration from .lmsconfig.yaml.
// The file is user-managed and never written by lms.
type Config struct {
	// DataFile is the path of the JSON backing file.
	DataFile string `yaml:"data_file"`

	// Color controls colored output: auto, always or never.
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile: DefaultDataFile,
		Color:    DefaultColorMode,
	}
}

// LoadConfig loads .lmsconfig.yaml from dir if it exists, otherwise
// returns defaults. Partial config files are merged with defaults.
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, userConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("invalid color mode %q in %s (expected auto, always or never)", cfg.Color, userConfigFile)
	}

	return cfg, nil
}
