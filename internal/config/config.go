package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig    `yaml:"storage"`
	Autosave    bool             `yaml:"autosave"`
	AutoCommit  AutoCommitConfig `yaml:"auto_commit"`
	KeyMappings KeyMappings      `yaml:"key_mappings"`
	ColorScheme ColorScheme      `yaml:"theme"`
}

// StorageConfig selects where the board is persisted
type StorageConfig struct {
	// Backend is "json" (default) or "sqlite"
	Backend string `yaml:"backend"`
	// Path is relative to the working directory unless absolute
	Path string `yaml:"path"`
}

// AutoCommitConfig controls the git hook that runs before the board opens
type AutoCommitConfig struct {
	Enabled bool          `yaml:"enabled"`
	Push    *bool         `yaml:"push"`
	Timeout time.Duration `yaml:"timeout"`
}

// ShouldPush reports whether the hook pushes after committing (default true)
func (a AutoCommitConfig) ShouldPush() bool {
	return a.Push == nil || *a.Push
}

const (
	defaultJSONPath     = "tasks.json"
	defaultSQLitePath   = "tasks.db"
	defaultAutoCommitTO = 30 * time.Second
)

// Default returns the configuration used when no config file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, falling back to defaults when the file
// does not exist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "quadro", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "quadro", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = "json"
	}
	if c.Storage.Path == "" {
		if c.Storage.Backend == "sqlite" {
			c.Storage.Path = defaultSQLitePath
		} else {
			c.Storage.Path = defaultJSONPath
		}
	}
	if c.AutoCommit.Timeout <= 0 {
		c.AutoCommit.Timeout = defaultAutoCommitTO
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
