// ABOUTME: Tests for configuration loading, defaults, and persistence.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pulsekit/vitals/internal/models"
)

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}

	if cfg.GetBackend() != "sqlite" {
		t.Errorf("expected default backend sqlite, got %q", cfg.GetBackend())
	}
	if cfg.GetUser() != "local" {
		t.Errorf("expected default user local, got %q", cfg.GetUser())
	}
	if cfg.GetDefaultRange() != models.Range30Days {
		t.Errorf("expected default range 30d, got %q", cfg.GetDefaultRange())
	}
}

func TestConfigOverrides(t *testing.T) {
	cfg := &Config{
		Backend:      "charm",
		User:         "harper",
		DefaultRange: "90d",
	}

	if cfg.GetBackend() != "charm" {
		t.Errorf("unexpected backend: %q", cfg.GetBackend())
	}
	if cfg.GetUser() != "harper" {
		t.Errorf("unexpected user: %q", cfg.GetUser())
	}
	if cfg.GetDefaultRange() != models.Range90Days {
		t.Errorf("unexpected range: %q", cfg.GetDefaultRange())
	}
}

func TestConfigBadRangeFallsBack(t *testing.T) {
	cfg := &Config{DefaultRange: "fortnight"}
	if cfg.GetDefaultRange() != models.Range30Days {
		t.Errorf("expected fallback to 30d, got %q", cfg.GetDefaultRange())
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GetBackend() != "sqlite" {
		t.Error("expected default config for missing file")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Backend: "charm", User: "harper", DefaultRange: "7d"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Backend != "charm" || loaded.User != "harper" || loaded.DefaultRange != "7d" {
		t.Errorf("unexpected loaded config: %+v", loaded)
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "postgres"}
	if _, err := cfg.OpenStore(); err == nil {
		t.Error("expected error for unknown backend")
	}
}
