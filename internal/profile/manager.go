package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tagpilot/tagpilot/internal/export"
	"github.com/tagpilot/tagpilot/internal/models"
	"gopkg.in/yaml.v3"
)

// Manager manages saved search profiles. A profile stores the canonical
// filter clause as text; the structured condition list is rebuilt from it by
// the filter parser when the profile is opened for editing.
type Manager struct {
	path     string
	profiles []models.Profile
}

// NewManager creates a new profile manager
func NewManager(configDir string) (*Manager, error) {
	path := filepath.Join(configDir, "profiles.yaml")

	m := &Manager{
		path:     path,
		profiles: []models.Profile{},
	}

	if _, err := os.Stat(path); err == nil {
		if err := m.Load(); err != nil {
			return nil, fmt.Errorf("failed to load profiles: %w", err)
		}
	}

	return m, nil
}

// Load loads profiles from the YAML file
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("failed to read profiles file: %w", err)
	}

	if err := yaml.Unmarshal(data, &m.profiles); err != nil {
		return fmt.Errorf("failed to parse profiles: %w", err)
	}

	return nil
}

// Save saves profiles to the YAML file
func (m *Manager) Save() error {
	data, err := yaml.Marshal(m.profiles)
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profiles file: %w", err)
	}

	return nil
}

// Add adds a new profile. The filter clause may be empty: a profile can bound
// a scope without narrowing it.
func (m *Manager) Add(name, description, filterClause string, scope models.Scope, tags []string) (*models.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("profile name cannot be empty")
	}

	// Names are unique, case-insensitive
	for _, p := range m.profiles {
		if strings.EqualFold(p.Name, name) {
			return nil, fmt.Errorf("a profile with the name '%s' already exists (names are case-insensitive)", name)
		}
	}

	prof := models.Profile{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Filter:      strings.TrimSpace(filterClause),
		Scope:       scope,
		Tags:        tags,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	m.profiles = append(m.profiles, prof)

	if err := m.Save(); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &prof, nil
}

// Update updates an existing profile
func (m *Manager) Update(id string, name, description, filterClause string, scope models.Scope, tags []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}

	for _, p := range m.profiles {
		if p.ID != id && strings.EqualFold(p.Name, name) {
			return fmt.Errorf("a profile with the name '%s' already exists (names are case-insensitive)", name)
		}
	}

	for i, p := range m.profiles {
		if p.ID == id {
			m.profiles[i].Name = name
			m.profiles[i].Description = strings.TrimSpace(description)
			m.profiles[i].Filter = strings.TrimSpace(filterClause)
			m.profiles[i].Scope = scope
			m.profiles[i].Tags = tags
			m.profiles[i].UpdatedAt = time.Now()
			if err := m.Save(); err != nil {
				return fmt.Errorf("failed to save profile: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("profile with ID '%s' was not found", id)
}

// Delete deletes a profile by ID
func (m *Manager) Delete(id string) error {
	for i, p := range m.profiles {
		if p.ID == id {
			m.profiles = append(m.profiles[:i], m.profiles[i+1:]...)
			if err := m.Save(); err != nil {
				return fmt.Errorf("failed to save profiles after deletion: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("profile with ID '%s' was not found", id)
}

// Get returns a profile by ID
func (m *Manager) Get(id string) (*models.Profile, error) {
	for _, p := range m.profiles {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("profile with ID '%s' was not found", id)
}

// GetAll returns all profiles
func (m *Manager) GetAll() []models.Profile {
	return m.profiles
}

// Search searches profiles by name, description, or tags
func (m *Manager) Search(query string) []models.Profile {
	if query == "" {
		return m.profiles
	}

	query = strings.ToLower(query)
	var results []models.Profile

	for _, p := range m.profiles {
		if strings.Contains(strings.ToLower(p.Name), query) {
			results = append(results, p)
			continue
		}
		if strings.Contains(strings.ToLower(p.Description), query) {
			results = append(results, p)
			continue
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), query) {
				results = append(results, p)
				break
			}
		}
	}

	return results
}

// RecordUsage updates usage statistics for a profile
func (m *Manager) RecordUsage(id string) error {
	for i, p := range m.profiles {
		if p.ID == id {
			m.profiles[i].UsageCount++
			m.profiles[i].LastUsed = time.Now()
			if err := m.Save(); err != nil {
				return fmt.Errorf("failed to save usage statistics: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("profile with ID '%s' was not found", id)
}

// GetRecent returns the most recently used profiles
func (m *Manager) GetRecent(limit int) []models.Profile {
	sorted := make([]models.Profile, len(m.profiles))
	copy(sorted, m.profiles)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LastUsed.After(sorted[j].LastUsed)
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	return sorted
}

// ExportToCSV exports all profiles to a CSV file
func (m *Manager) ExportToCSV(customPath ...string) (string, error) {
	if len(m.profiles) == 0 {
		return "", fmt.Errorf("no profiles to export")
	}

	path := filepath.Join(filepath.Dir(m.path), "profiles.csv")
	if len(customPath) > 0 && customPath[0] != "" {
		path = customPath[0]
	}

	if err := export.ProfilesToCSV(m.profiles, path); err != nil {
		return "", fmt.Errorf("failed to export profiles to CSV: %w", err)
	}

	return path, nil
}

// ExportToJSON exports all profiles to a JSON file
func (m *Manager) ExportToJSON(customPath ...string) (string, error) {
	if len(m.profiles) == 0 {
		return "", fmt.Errorf("no profiles to export")
	}

	path := filepath.Join(filepath.Dir(m.path), "profiles.json")
	if len(customPath) > 0 && customPath[0] != "" {
		path = customPath[0]
	}

	if err := export.ProfilesToJSON(m.profiles, path); err != nil {
		return "", fmt.Errorf("failed to export profiles to JSON: %w", err)
	}

	return path, nil
}
