package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	UI        UIConfig        `mapstructure:"ui"`
	Scan      ScanConfig      `mapstructure:"scan"`
	Inventory InventoryConfig `mapstructure:"inventory"`
	History   HistoryConfig   `mapstructure:"history"`
}

type GeneralConfig struct {
	DefaultAccounts       []string `mapstructure:"default_accounts"`
	DefaultRegions        []string `mapstructure:"default_regions"`
	DefaultServices       []string `mapstructure:"default_services"`
	ConfirmDestructiveOps bool     `mapstructure:"confirm_destructive_ops"`
	PageSize              int      `mapstructure:"page_size"`
}

type UIConfig struct {
	Theme        string `mapstructure:"theme"`
	MouseEnabled bool   `mapstructure:"mouse_enabled"`
}

type ScanConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	MaxResults     int `mapstructure:"max_results"`
}

// InventoryConfig points at the inventory store the query engine runs
// against. The password is never read from the config file; it comes from the
// credential store.
type InventoryConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type HistoryConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	MaxEntries int  `mapstructure:"max_entries"`
}

// GetDefaults returns a Config with all default values
func GetDefaults() *Config {
	return &Config{
		General: GeneralConfig{
			ConfirmDestructiveOps: true,
			PageSize:              100,
		},
		UI: UIConfig{
			Theme:        "default",
			MouseEnabled: true,
		},
		Scan: ScanConfig{
			TimeoutSeconds: 60,
			MaxResults:     10000,
		},
		Inventory: InventoryConfig{
			Host:     "localhost",
			Port:     5432,
			Database: "inventory",
			User:     "tagpilot",
			SSLMode:  "prefer",
		},
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: 1000,
		},
	}
}

// Load loads configuration from files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config paths in priority order: user config dir, then cwd
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "tagpilot"))
	}
	v.AddConfigPath(".")

	v.SetDefault("general.confirm_destructive_ops", true)
	v.SetDefault("general.page_size", 100)
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.mouse_enabled", true)
	v.SetDefault("scan.timeout_seconds", 60)
	v.SetDefault("scan.max_results", 10000)
	v.SetDefault("inventory.host", "localhost")
	v.SetDefault("inventory.port", 5432)
	v.SetDefault("inventory.database", "inventory")
	v.SetDefault("inventory.user", "tagpilot")
	v.SetDefault("inventory.ssl_mode", "prefer")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.max_entries", 1000)

	// Missing file is fine, defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the loaded configuration for values the console cannot
// work with
func (c *Config) Validate() error {
	if c.General.PageSize <= 0 {
		return fmt.Errorf("general.page_size must be positive, got %d", c.General.PageSize)
	}
	if c.Scan.TimeoutSeconds <= 0 {
		return fmt.Errorf("scan.timeout_seconds must be positive, got %d", c.Scan.TimeoutSeconds)
	}
	if c.Scan.MaxResults <= 0 {
		return fmt.Errorf("scan.max_results must be positive, got %d", c.Scan.MaxResults)
	}
	if c.Inventory.Port <= 0 || c.Inventory.Port > 65535 {
		return fmt.Errorf("inventory.port must be in 1-65535, got %d", c.Inventory.Port)
	}
	if c.History.Enabled && c.History.MaxEntries <= 0 {
		return fmt.Errorf("history.max_entries must be positive when history is enabled, got %d", c.History.MaxEntries)
	}
	return nil
}

// GetConfigPath returns the user config directory path
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "tagpilot"), nil
}
