// ABOUTME: Tests for vitalog configuration.
// ABOUTME: Covers defaults, env overrides, path expansion, and the store factory.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/vitalog/internal/store"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetBackend(); got != "file" {
		t.Errorf("GetBackend() = %q, want file", got)
	}
	if got := cfg.GetListenAddr(); got != ":9002" {
		t.Errorf("GetListenAddr() = %q, want :9002", got)
	}
	if got := cfg.ToolHandlerURL(); got != "http://localhost:9002/api/avatar-tool" {
		t.Errorf("ToolHandlerURL() = %q", got)
	}
}

func TestToolHandlerURLTrimsSlash(t *testing.T) {
	cfg := &Config{SiteURL: "https://health.example.com/"}
	if got := cfg.ToolHandlerURL(); got != "https://health.example.com/api/avatar-tool" {
		t.Errorf("ToolHandlerURL() = %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

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

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VITALOG_BACKEND", "sqlite")
	t.Setenv("VITALOG_DATA_DIR", t.TempDir())
	t.Setenv("VITALOG_LISTEN_ADDR", ":8099")
	t.Setenv("VITALOG_AVATAR_API_KEY", "k")
	t.Setenv("VITALOG_SITE_URL", "https://health.example.com")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.GetBackend() != "sqlite" {
		t.Errorf("backend = %q", cfg.GetBackend())
	}
	if cfg.GetListenAddr() != ":8099" {
		t.Errorf("listen addr = %q", cfg.GetListenAddr())
	}
	if cfg.AvatarAPIKey != "k" {
		t.Errorf("api key = %q", cfg.AvatarAPIKey)
	}
	if !strings.HasPrefix(cfg.ToolHandlerURL(), "https://health.example.com") {
		t.Errorf("tool handler url = %q", cfg.ToolHandlerURL())
	}
}

func TestOpenStoreBackends(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		cfg := &Config{Backend: "file", DataDir: t.TempDir()}
		s, err := cfg.OpenStore()
		if err != nil {
			t.Fatalf("OpenStore failed: %v", err)
		}
		defer s.Close()
		if _, ok := s.(*store.FileStore); !ok {
			t.Errorf("expected *store.FileStore, got %T", s)
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := &Config{Backend: "sqlite", DataDir: t.TempDir()}
		s, err := cfg.OpenStore()
		if err != nil {
			t.Fatalf("OpenStore failed: %v", err)
		}
		defer s.Close()
		if _, ok := s.(*store.SQLiteStore); !ok {
			t.Errorf("expected *store.SQLiteStore, got %T", s)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := &Config{Backend: "carrier-pigeon"}
		if _, err := cfg.OpenStore(); err == nil {
			t.Error("expected error for unknown backend")
		}
	})
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Backend: "sqlite", ListenAddr: ":7000"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Backend != "sqlite" || loaded.ListenAddr != ":7000" {
		t.Errorf("round trip failed: %+v", loaded)
	}
}
