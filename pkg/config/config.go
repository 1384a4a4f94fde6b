package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional file configuration. The API key and base URL are
// injected into the client from here rather than living as process-wide
// constants, so tests can point everything at a local server.
type Config struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Results int    `yaml:"results"`
}

const defaultResults = 5

// DefaultPath returns ~/.config/recipefinder/config.yaml.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "recipefinder", "config.yaml")
}

// Load reads the config file at the default path. A missing file yields the
// defaults; an unreadable or invalid file is an error, unlike the favorites
// store, because a half-applied config silently changes behavior.
func Load() (Config, error) {
	return LoadFile(DefaultPath())
}

func LoadFile(path string) (Config, error) {
	cfg := Config{Results: defaultResults}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Results <= 0 {
		cfg.Results = defaultResults
	}
	return cfg, nil
}
