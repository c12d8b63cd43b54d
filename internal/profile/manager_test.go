package profile

import (
	"strings"
	"testing"

	"github.com/tagpilot/tagpilot/internal/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestAddAndGet(t *testing.T) {
	m := newTestManager(t)

	scope := models.Scope{Accounts: []string{"123456789012"}, Regions: []string{"us-east-1"}}
	p, err := m.Add("prod cleanup", "stale prod resources", "creation_date < '2024-01-01'", scope, []string{"prod"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if p.ID == "" {
		t.Error("expected generated ID")
	}

	got, err := m.Get(p.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "prod cleanup" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.Filter != "creation_date < '2024-01-01'" {
		t.Errorf("Filter = %q", got.Filter)
	}
	if len(got.Scope.Accounts) != 1 || got.Scope.Accounts[0] != "123456789012" {
		t.Errorf("Scope.Accounts = %v", got.Scope.Accounts)
	}
}

func TestAddRejectsDuplicateNames(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Add("Cleanup", "", "", models.Scope{}, nil); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := m.Add("cleanup", "", "", models.Scope{}, nil); err == nil {
		t.Error("expected case-insensitive duplicate name to be rejected")
	}
}

func TestAddRejectsEmptyName(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Add("  ", "", "", models.Scope{}, nil); err == nil {
		t.Error("expected empty name to be rejected")
	}
}

func TestEmptyFilterAllowed(t *testing.T) {
	m := newTestManager(t)

	p, err := m.Add("scope only", "", "", models.Scope{Services: []string{"s3"}}, nil)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if p.Filter != "" {
		t.Errorf("Filter = %q, want empty", p.Filter)
	}
}

func TestUpdate(t *testing.T) {
	m := newTestManager(t)

	p, err := m.Add("old", "", "", models.Scope{}, nil)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	err = m.Update(p.ID, "new", "desc", "POSITION('env=prod' IN tags) > 0", models.Scope{}, []string{"x"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, _ := m.Get(p.ID)
	if got.Name != "new" || got.Filter != "POSITION('env=prod' IN tags) > 0" {
		t.Errorf("unexpected profile after update: %+v", got)
	}
}

func TestDelete(t *testing.T) {
	m := newTestManager(t)

	p, _ := m.Add("doomed", "", "", models.Scope{}, nil)
	if err := m.Delete(p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get(p.ID); err == nil {
		t.Error("expected Get to fail after delete")
	}
	if err := m.Delete("missing"); err == nil {
		t.Error("expected delete of unknown ID to fail")
	}
}

func TestPersistenceAcrossManagers(t *testing.T) {
	dir := t.TempDir()

	m1, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if _, err := m1.Add("persisted", "", "creation_date > '2025-01-01'", models.Scope{}, nil); err != nil {
		t.Fatalf("Add: %v", err)
	}

	m2, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager (reload): %v", err)
	}
	all := m2.GetAll()
	if len(all) != 1 || all[0].Name != "persisted" {
		t.Errorf("reloaded profiles = %+v", all)
	}
}

func TestSearch(t *testing.T) {
	m := newTestManager(t)

	m.Add("prod cleanup", "removes stale prod", "", models.Scope{}, []string{"prod"})
	m.Add("dev audit", "lists dev resources", "", models.Scope{}, []string{"dev", "audit"})

	if got := m.Search("prod"); len(got) != 1 || got[0].Name != "prod cleanup" {
		t.Errorf("Search(prod) = %+v", got)
	}
	if got := m.Search("audit"); len(got) != 1 || got[0].Name != "dev audit" {
		t.Errorf("Search(audit) = %+v", got)
	}
	if got := m.Search(""); len(got) != 2 {
		t.Errorf("Search(empty) returned %d profiles, want 2", len(got))
	}
}

func TestRecordUsageAndGetRecent(t *testing.T) {
	m := newTestManager(t)

	a, _ := m.Add("first", "", "", models.Scope{}, nil)
	b, _ := m.Add("second", "", "", models.Scope{}, nil)

	if err := m.RecordUsage(b.ID); err != nil {
		t.Fatalf("RecordUsage: %v", err)
	}
	if err := m.RecordUsage(a.ID); err != nil {
		t.Fatalf("RecordUsage: %v", err)
	}

	recent := m.GetRecent(1)
	if len(recent) != 1 || recent[0].ID != a.ID {
		t.Errorf("GetRecent(1) = %+v", recent)
	}

	got, _ := m.Get(a.ID)
	if got.UsageCount != 1 {
		t.Errorf("UsageCount = %d, want 1", got.UsageCount)
	}
}

func TestExportToCSV(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.ExportToCSV(); err == nil {
		t.Error("expected export of empty profile list to fail")
	}

	m.Add("exported", "", "creation_date = '2025-06-01'", models.Scope{}, nil)
	path, err := m.ExportToCSV()
	if err != nil {
		t.Fatalf("ExportToCSV: %v", err)
	}
	if !strings.HasSuffix(path, "profiles.csv") {
		t.Errorf("path = %q", path)
	}
}
