package scope

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseAccountsLine(t *testing.T) {
	entry, err := parseAccountsLine("123456789012:prod:us-east-1,eu-west-1")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if entry.ID != "123456789012" {
		t.Errorf("id = %q", entry.ID)
	}
	if entry.Alias != "prod" {
		t.Errorf("alias = %q", entry.Alias)
	}
	if len(entry.Regions) != 2 || entry.Regions[0] != "us-east-1" {
		t.Errorf("regions = %v", entry.Regions)
	}
}

func TestParseAccountsLine_IDOnly(t *testing.T) {
	entry, err := parseAccountsLine("123456789012")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if entry.Alias != "" || entry.Regions != nil {
		t.Errorf("expected bare entry, got %+v", entry)
	}
}

func TestParseAccountsLine_Invalid(t *testing.T) {
	for _, line := range []string{"", "abc:alias", "12345:short", "1234567890123:long"} {
		if _, err := parseAccountsLine(line); err == nil {
			t.Errorf("expected error for %q", line)
		}
	}
}

func TestParseAccountsFileAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts")
	content := "# production accounts\n\n123456789012:prod:us-east-1\n210987654321:staging\nnot-an-account\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write accounts file: %v", err)
	}

	entries, err := parseAccountsFileAt(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries (comments and invalid lines skipped), got %d", len(entries))
	}
	if entries[0].ID != "123456789012" || entries[1].Alias != "staging" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestParseAccountsFileAt_InsecurePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts")
	if err := os.WriteFile(path, []byte("123456789012\n"), 0644); err != nil {
		t.Fatalf("failed to write accounts file: %v", err)
	}

	if _, err := parseAccountsFileAt(path); err == nil {
		t.Error("expected permission error for 0644 file")
	}
}

func TestParseAccountsFileAt_Missing(t *testing.T) {
	entries, err := parseAccountsFileAt(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %v", entries)
	}
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv("TAGPILOT_ACCOUNTS", "123456789012, 210987654321")
	t.Setenv("TAGPILOT_REGIONS", "us-east-1")
	t.Setenv("TAGPILOT_SERVICES", "")

	s := FromEnvironment()
	if s == nil {
		t.Fatal("expected scope from environment")
	}
	if len(s.Accounts) != 2 || s.Accounts[1] != "210987654321" {
		t.Errorf("accounts = %v", s.Accounts)
	}
	if len(s.Regions) != 1 || s.Regions[0] != "us-east-1" {
		t.Errorf("regions = %v", s.Regions)
	}
	if s.Services != nil {
		t.Errorf("services = %v, want none", s.Services)
	}
}

func TestFromEnvironment_Unset(t *testing.T) {
	t.Setenv("TAGPILOT_ACCOUNTS", "")
	t.Setenv("TAGPILOT_REGIONS", "")
	t.Setenv("TAGPILOT_SERVICES", "")

	if s := FromEnvironment(); s != nil {
		t.Errorf("expected nil scope, got %+v", s)
	}
}
