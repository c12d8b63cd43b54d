package models

import "time"

// Profile is a saved search: a scope plus the canonical filter clause. Only
// the textual clause is persisted; the structured condition list is rebuilt
// from it when a profile is opened for editing.
type Profile struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Filter      string    `yaml:"filter"`
	Scope       Scope     `yaml:"scope"`
	Tags        []string  `yaml:"tags,omitempty"`
	CreatedAt   time.Time `yaml:"created_at"`
	UpdatedAt   time.Time `yaml:"updated_at"`
	LastUsed    time.Time `yaml:"last_used,omitempty"`
	UsageCount  int       `yaml:"usage_count"`
}

// InventoryConfig describes how to reach the inventory store that the query
// engine runs against
type InventoryConfig struct {
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
}
