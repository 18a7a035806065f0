// Package config provides configuration management for Power Profiles Tray.
// It handles loading, saving, and managing application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yllada/power-profiles-tray/common"
)

// Config represents the application configuration.
// All settings are persisted to a YAML file in the user's config directory.
type Config struct {
	// Theme forces the icon theme: "light", "dark", or "auto" (detect).
	Theme string `yaml:"theme"`
	// IconDir is an optional directory of replacement icon assets.
	// It must follow the <dir>/<mode>/<profile>.png layout of the bundled set.
	IconDir string `yaml:"icon_dir,omitempty"`
	// RefreshIntervalSeconds is how often the tray resyncs with the daemon.
	RefreshIntervalSeconds int `yaml:"refresh_interval_seconds"`
	// MouseReverse reverses the direction of the Cycle Profile action.
	MouseReverse bool `yaml:"mouse_reverse"`
	// ShowNotifications enables desktop notifications for profile changes.
	ShowNotifications bool `yaml:"show_notifications"`
	// HistoryEnabled records profile switches in the local history database.
	HistoryEnabled bool `yaml:"history_enabled"`
}

// DefaultConfig returns the default configuration.
// These are sensible defaults for most users.
func DefaultConfig() *Config {
	return &Config{
		Theme:                  "auto",
		RefreshIntervalSeconds: 3,
		MouseReverse:           false,
		ShowNotifications:      true,
		HistoryEnabled:         true,
	}
}

// Load loads the configuration from the config file.
// If the file doesn't exist, it creates one with default values.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	// If it doesn't exist, return default configuration
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.Save(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	var config Config
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}

	// Validate values
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validate verifies that configuration values are valid
func (c *Config) validate() error {
	validThemes := []string{"auto", "light", "dark"}
	isValidTheme := false
	for _, t := range validThemes {
		if c.Theme == t {
			isValidTheme = true
			break
		}
	}
	if !isValidTheme {
		c.Theme = "auto" // Fallback to default
	}

	if c.RefreshIntervalSeconds < 1 {
		c.RefreshIntervalSeconds = DefaultConfig().RefreshIntervalSeconds
	}

	return nil
}

// Save saves the configuration to the file
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}

	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "power-profiles-tray", "config.yaml"), nil
}
