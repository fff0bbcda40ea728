package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the per-installation configuration. On disk it is a JSON object;
// unknown keys are ignored and missing keys keep their defaults, so old and
// new versions can share a config file.
type Config struct {
	AssetLibraryPath      string `json:"asset_library_path"`
	DefaultCategory       string `json:"default_category"`
	AutoGenerateThumbnail bool   `json:"auto_generate_thumbnail"`
	ThumbnailSize         [2]int `json:"thumbnail_size"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		AssetLibraryPath:      "",
		DefaultCategory:       "Uncategorized",
		AutoGenerateThumbnail: true,
		ThumbnailSize:         [2]int{256, 256},
	}
}

// normalize repairs values that would break downstream consumers.
func (c *Config) normalize() {
	if c.DefaultCategory == "" {
		c.DefaultCategory = "Uncategorized"
	}
	if c.ThumbnailSize[0] <= 0 || c.ThumbnailSize[1] <= 0 {
		c.ThumbnailSize = [2]int{256, 256}
	}
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Decoding over the defaults means absent keys keep their default
	// values; encoding/json ignores unknown keys on its own.
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes the config file, creating its directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}

// DefaultPath returns the per-user config file location.
// Follows XDG Base Directory specification on Unix and uses AppData on Windows
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "cura", "config.json"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Check if we're on Windows by looking for APPDATA
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "cura", "config.json"), nil
	}

	return filepath.Join(homeDir, ".config", "cura", "config.json"), nil
}
