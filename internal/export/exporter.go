package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tagpilot/tagpilot/internal/models"
)

const timeLayout = "2006-01-02 15:04:05"

// ProfilesToCSV exports search profiles to a CSV file
func ProfilesToCSV(profiles []models.Profile, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Name", "Description", "Filter", "Accounts", "Regions", "Services", "Tags", "Created", "Updated", "Last Used", "Usage Count"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, p := range profiles {
		lastUsed := ""
		if !p.LastUsed.IsZero() {
			lastUsed = p.LastUsed.Format(timeLayout)
		}

		row := []string{
			p.Name,
			p.Description,
			p.Filter,
			strings.Join(p.Scope.Accounts, ", "),
			strings.Join(p.Scope.Regions, ", "),
			strings.Join(p.Scope.Services, ", "),
			strings.Join(p.Tags, ", "),
			p.CreatedAt.Format(timeLayout),
			p.UpdatedAt.Format(timeLayout),
			lastUsed,
			fmt.Sprintf("%d", p.UsageCount),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

// ProfilesToJSON exports search profiles to a JSON file
func ProfilesToJSON(profiles []models.Profile, path string) error {
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles to JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}

// ResourcesToCSV exports scan results to a CSV file. Resource tags are
// flattened into sorted key=value pairs so rows stay stable across exports.
func ResourcesToCSV(resources []models.Resource, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"ARN", "Account", "Region", "Service", "Type", "Name", "Created", "Tags"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range resources {
		row := []string{
			r.ARN,
			r.Account,
			r.Region,
			r.Service,
			r.Type,
			r.Name,
			r.CreatedAt.Format(timeLayout),
			flattenTags(r.Tags),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

// ResourcesToJSON exports scan results to a JSON file
func ResourcesToJSON(resources []models.Resource, path string) error {
	data, err := json.MarshalIndent(resources, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resources to JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}

func flattenTags(tags map[string]string) string {
	if len(tags) == 0 {
		return ""
	}

	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+tags[k])
	}
	return strings.Join(pairs, ", ")
}
