// ABOUTME: Vitals configuration management with backend selection.
// ABOUTME: Handles settings, defaults, and the storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pulsekit/vitals/internal/charmkv"
	"github.com/pulsekit/vitals/internal/models"
	"github.com/pulsekit/vitals/internal/storage"
)

// Config stores vitals tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "charm".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for SQLite data storage.
	// Supports ~ expansion. Defaults to ~/.local/share/vitals.
	DataDir string `json:"data_dir,omitempty"`

	// User is the user ID records are stored under. Defaults to "local".
	User string `json:"user,omitempty"`

	// DefaultRange is the analytics lookback window used when no
	// --range flag is given. Defaults to 30d.
	DefaultRange string `json:"default_range,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetUser returns the configured user ID, defaulting to "local".
func (c *Config) GetUser() string {
	if c.User == "" {
		return "local"
	}
	return c.User
}

// GetDefaultRange returns the configured default time range. An
// unrecognized configured value resolves to the 30-day window.
func (c *Config) GetDefaultRange() models.TimeRange {
	return models.ParseTimeRange(c.DefaultRange)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore creates a Store implementation based on the configured backend.
func (c *Config) OpenStore() (storage.Store, error) {
	switch backend := c.GetBackend(); backend {
	case "sqlite":
		dbPath := filepath.Join(c.GetDataDir(), "vitals.db")
		return storage.Open(dbPath)
	case "charm":
		return charmkv.Open()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "vitals", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
