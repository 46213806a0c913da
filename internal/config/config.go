// Package config loads credentials and defaults for the CLI: environment
// variables first, then ~/.config/vstore/config.yml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the settings every command needs. It is loaded once at
// process start and passed explicitly into services.
type Config struct {
	APIKey  string `yaml:"api_key,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
	Model   string `yaml:"model,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "vstore"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
)

// ErrMissingAPIKey indicates no credential was found anywhere. It is fatal
// at startup.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

// configCache caches the loaded config for the process lifetime.
var configCache *Config

// Path returns the config file path. Respects XDG_CONFIG_HOME, defaults to
// ~/.config/vstore/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the config file (if present) and applies environment
// overrides: OPENAI_API_KEY, OPENAI_BASE_URL, VSTORE_MODEL. A missing
// credential returns ErrMissingAPIKey.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	cfg := &Config{}
	if path := Path(); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if url := os.Getenv("OPENAI_BASE_URL"); url != "" {
		cfg.BaseURL = url
	}
	if model := os.Getenv("VSTORE_MODEL"); model != "" {
		cfg.Model = model
	}

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	configCache = cfg
	return cfg, nil
}

// Reset clears the cached config. Useful for testing.
func Reset() {
	configCache = nil
}
