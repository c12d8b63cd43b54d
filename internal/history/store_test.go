package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/tagpilot/tagpilot/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleRun(id, clause string) models.ScanRun {
	return models.ScanRun{
		ID: id,
		Scope: models.Scope{
			Accounts: []string{"123456789012"},
			Regions:  []string{"us-east-1", "eu-west-1"},
			Services: []string{"ec2"},
		},
		Filter:      clause,
		Duration:    1500 * time.Millisecond,
		Status:      models.ScanSucceeded,
		Matched:     42,
		TagsApplied: 40,
	}
}

func TestStore_AddAndGetRecent(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add(sampleRun("scan-1", "creation_date > '2023-01-01 00:00'")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	runs, err := s.GetRecent(10)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.ID != "scan-1" {
		t.Errorf("id = %q", r.ID)
	}
	if r.Filter != "creation_date > '2023-01-01 00:00'" {
		t.Errorf("filter = %q", r.Filter)
	}
	if len(r.Scope.Regions) != 2 || r.Scope.Regions[1] != "eu-west-1" {
		t.Errorf("regions = %v", r.Scope.Regions)
	}
	if r.Status != models.ScanSucceeded {
		t.Errorf("status = %v", r.Status)
	}
	if r.Duration != 1500*time.Millisecond {
		t.Errorf("duration = %v", r.Duration)
	}
	if r.Matched != 42 || r.TagsApplied != 40 {
		t.Errorf("counts = %d matched, %d applied", r.Matched, r.TagsApplied)
	}
}

func TestStore_Search(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add(sampleRun("scan-1", "POSITION('prod' IN tags) > 0")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add(sampleRun("scan-2", "creation_date < '2022-01-01 00:00'")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	runs, err := s.Search("prod", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "scan-1" {
		t.Errorf("unexpected search results: %+v", runs)
	}
}

func TestStore_Prune(t *testing.T) {
	s := newTestStore(t)

	for _, id := range []string{"scan-1", "scan-2", "scan-3"} {
		if err := s.Add(sampleRun(id, "")); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	if err := s.Prune(2); err != nil {
		t.Fatalf("Prune failed: %v", err)
	}

	runs, err := s.GetRecent(10)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs after prune, got %d", len(runs))
	}
}

func TestStore_EmptyScopeRoundTrips(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add(models.ScanRun{ID: "scan-1", Status: models.ScanFailed, Error: "timeout"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	runs, err := s.GetRecent(1)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Scope.Accounts != nil {
		t.Errorf("expected nil accounts for empty scope, got %v", runs[0].Scope.Accounts)
	}
	if runs[0].Error != "timeout" {
		t.Errorf("error = %q", runs[0].Error)
	}
}
