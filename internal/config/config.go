package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Config represents the marknote preferences
type Config struct {
	NotesDir      string  `json:"notes_dir"`
	LogFile       string  `json:"log_file"`
	BaseFontSize  float64 `json:"base_font_size"`
	RetentionDays int     `json:"retention_days"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		NotesDir:      filepath.Join(xdg.DataHome, "marknote", "notes"),
		LogFile:       filepath.Join(os.TempDir(), "marknote.log"),
		BaseFontSize:  14,
		RetentionDays: 30,
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "marknote", "config.json")
	}
	return filepath.Join(home, ".config", "marknote", "config.json")
}

// Load reads configuration from the config directory
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Zero or negative values fall back to defaults rather than
	// producing an unusable editor.
	if cfg.BaseFontSize <= 0 {
		cfg.BaseFontSize = DefaultConfig().BaseFontSize
	}
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = DefaultConfig().RetentionDays
	}
	if cfg.NotesDir == "" {
		cfg.NotesDir = DefaultConfig().NotesDir
	}

	return cfg, nil
}

// Save writes configuration to the config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Retention returns the trash retention window as a duration
func (c *Config) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}
