// ABOUTME: Vitalog configuration management with backend selection.
// ABOUTME: Handles settings, env overrides, and the storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/vitalog/internal/store"
)

// Config stores vitalog configuration.
type Config struct {
	// Backend selects the storage backend: "file" (default), "sqlite", or "charm".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. The file backend puts
	// health-data.json here, sqlite puts vitalog.db here, and charm roots its
	// local KV replica here when set. Supports ~ expansion.
	// Defaults to ~/.local/share/vitalog.
	DataDir string `json:"data_dir,omitempty"`

	// ListenAddr is the HTTP server bind address. Defaults to ":9002".
	ListenAddr string `json:"listen_addr,omitempty"`

	// AvatarAPIKey authenticates against the avatar service.
	AvatarAPIKey string `json:"avatar_api_key,omitempty"`

	// AvatarAPIURL overrides the avatar service base URL.
	AvatarAPIURL string `json:"avatar_api_url,omitempty"`

	// SiteURL is the public base URL of this server, used to build the
	// tool-handler callback URL given to the avatar service.
	SiteURL string `json:"site_url,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "file".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "file"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetListenAddr returns the HTTP bind address.
func (c *Config) GetListenAddr() string {
	if c.ListenAddr == "" {
		return ":9002"
	}
	return c.ListenAddr
}

// ToolHandlerURL returns the public URL the avatar service calls back for
// tool invocations.
func (c *Config) ToolHandlerURL() string {
	site := c.SiteURL
	if site == "" {
		site = "http://localhost:9002"
	}
	return strings.TrimRight(site, "/") + "/api/avatar-tool"
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "vitalog")
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
func (c *Config) OpenStore() (store.Store, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case "file":
		return store.NewFileStore(filepath.Join(dataDir, "health-data.json"))
	case "sqlite":
		return store.OpenSQLite(filepath.Join(dataDir, "vitalog.db"))
	case "charm":
		if c.DataDir != "" {
			return store.OpenCharmAt(dataDir)
		}
		return store.OpenCharm()
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
	return filepath.Join(configDir, "vitalog", "config.json")
}

// Load reads config from disk, then applies environment overrides.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)

	var cfg Config
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	return &cfg, nil
}

// applyEnv lets environment variables override file settings.
func (c *Config) applyEnv() {
	if v := os.Getenv("VITALOG_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("VITALOG_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("VITALOG_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("VITALOG_AVATAR_API_KEY"); v != "" {
		c.AvatarAPIKey = v
	}
	if v := os.Getenv("VITALOG_AVATAR_API_URL"); v != "" {
		c.AvatarAPIURL = v
	}
	if v := os.Getenv("VITALOG_SITE_URL"); v != "" {
		c.SiteURL = v
	}
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
