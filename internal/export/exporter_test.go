package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tagpilot/tagpilot/internal/models"
)

func testProfiles() []models.Profile {
	return []models.Profile{
		{
			ID:          "p-1",
			Name:        "Untagged prod",
			Description: "Prod resources with commas, quotes \"and\" special chars",
			Filter:      "POSITION('env: prod' IN tags) > 0 AND POSITION('owner' IN tags) = 0",
			Scope: models.Scope{
				Accounts: []string{"123456789012"},
				Regions:  []string{"us-east-1", "eu-west-1"},
				Services: []string{"ec2", "s3"},
			},
			Tags:       []string{"cleanup", "prod"},
			CreatedAt:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC),
			LastUsed:   time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC),
			UsageCount: 5,
		},
		{
			ID:        "p-2",
			Name:      "Old instances",
			Filter:    "creation_date < '2023-01-01 00:00'",
			CreatedAt: time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 2, 13, 0, 0, 0, time.UTC),
		},
	}
}

func TestProfilesToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.csv")

	if err := ProfilesToCSV(testProfiles(), path); err != nil {
		t.Fatalf("ProfilesToCSV failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open exported file: %v", err)
	}
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to read CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if records[0][0] != "Name" || records[0][2] != "Filter" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "Untagged prod" {
		t.Errorf("row 1 name = %q", records[1][0])
	}
	if !strings.Contains(records[1][2], "POSITION('env: prod' IN tags)") {
		t.Errorf("row 1 filter not preserved: %q", records[1][2])
	}
	if records[1][4] != "us-east-1, eu-west-1" {
		t.Errorf("row 1 regions = %q", records[1][4])
	}
	if records[2][9] != "" {
		t.Errorf("expected empty last-used for never-used profile, got %q", records[2][9])
	}
}

func TestProfilesToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")

	if err := ProfilesToJSON(testProfiles(), path); err != nil {
		t.Fatalf("ProfilesToJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read exported file: %v", err)
	}

	var decoded []models.Profile
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported JSON does not decode: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(decoded))
	}
	if decoded[1].Filter != "creation_date < '2023-01-01 00:00'" {
		t.Errorf("filter not preserved: %q", decoded[1].Filter)
	}
}

func TestResourcesToCSV_FlattensTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.csv")

	resources := []models.Resource{
		{
			ARN:       "arn:aws:ec2:us-east-1:123456789012:instance/i-0abc",
			Account:   "123456789012",
			Region:    "us-east-1",
			Service:   "ec2",
			Type:      "instance",
			Name:      "web-1",
			CreatedAt: time.Date(2023, 5, 1, 8, 30, 0, 0, time.UTC),
			Tags:      map[string]string{"env": "prod", "app": "web"},
		},
	}

	if err := ResourcesToCSV(resources, path); err != nil {
		t.Fatalf("ResourcesToCSV failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open exported file: %v", err)
	}
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to read CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}
	if records[1][7] != "app=web, env=prod" {
		t.Errorf("tags should be sorted key=value pairs, got %q", records[1][7])
	}
}

func TestResourcesToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.json")

	resources := []models.Resource{
		{ARN: "arn:aws:s3:::my-bucket", Service: "s3", Type: "bucket", Name: "my-bucket"},
	}

	if err := ResourcesToJSON(resources, path); err != nil {
		t.Fatalf("ResourcesToJSON failed: %v", err)
	}

	var decoded []models.Resource
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read exported file: %v", err)
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported JSON does not decode: %v", err)
	}
	if len(decoded) != 1 || decoded[0].ARN != "arn:aws:s3:::my-bucket" {
		t.Errorf("unexpected decoded resources: %+v", decoded)
	}
}
