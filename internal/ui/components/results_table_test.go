package components

import (
	"testing"
	"time"

	"github.com/tagpilot/tagpilot/internal/models"
	"github.com/tagpilot/tagpilot/internal/ui/theme"
)

func testResources() []models.Resource {
	created := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	return []models.Resource{
		{ARN: "arn:aws:s3:::bucket-a", Account: "123456789012", Region: "us-east-1", Service: "s3", Type: "bucket", Name: "bucket-a", CreatedAt: created, Tags: map[string]string{"env": "prod", "team": "core"}},
		{ARN: "arn:aws:ec2:us-west-2:123456789012:instance/i-1", Account: "123456789012", Region: "us-west-2", Service: "ec2", Type: "instance", Name: "web-1", CreatedAt: created},
		{ARN: "arn:aws:rds:eu-west-1:210987654321:db:orders", Account: "210987654321", Region: "eu-west-1", Service: "rds", Type: "db", Name: "orders", CreatedAt: created},
	}
}

func TestSetResources(t *testing.T) {
	rt := NewResultsTable(theme.DefaultTheme())
	rt.SetResources(testResources(), 3)

	if rt.Len() != 3 {
		t.Fatalf("Len = %d, want 3", rt.Len())
	}
	if rt.rows[0][0] != "bucket-a" {
		t.Errorf("first row name = %q", rt.rows[0][0])
	}
	if rt.rows[0][6] != "env=prod, team=core" {
		t.Errorf("first row tags = %q, want sorted key=value list", rt.rows[0][6])
	}
	if rt.rows[1][6] != "" {
		t.Errorf("untagged resource rendered tags %q", rt.rows[1][6])
	}
}

func TestSelectedFollowsCursor(t *testing.T) {
	rt := NewResultsTable(theme.DefaultTheme())
	rt.SetResources(testResources(), 3)
	rt.VisibleRows = 10

	if got := rt.Selected(); got == nil || got.Name != "bucket-a" {
		t.Errorf("initial Selected = %+v", got)
	}

	rt.MoveSelection(2)
	if got := rt.Selected(); got == nil || got.Name != "orders" {
		t.Errorf("Selected after move = %+v", got)
	}

	// Bounds are clamped
	rt.MoveSelection(10)
	if rt.SelectedRow != 2 {
		t.Errorf("SelectedRow = %d, want 2", rt.SelectedRow)
	}
	rt.MoveSelection(-10)
	if rt.SelectedRow != 0 {
		t.Errorf("SelectedRow = %d, want 0", rt.SelectedRow)
	}
}

func TestSelectedNilWhenEmpty(t *testing.T) {
	rt := NewResultsTable(theme.DefaultTheme())
	rt.SetResources(nil, 0)

	if got := rt.Selected(); got != nil {
		t.Errorf("Selected = %+v, want nil", got)
	}
}

func TestFormatTags(t *testing.T) {
	got := formatTags(map[string]string{"b": "2", "a": "1"})
	if got != "a=1, b=2" {
		t.Errorf("formatTags = %q", got)
	}
	if formatTags(nil) != "" {
		t.Errorf("formatTags(nil) = %q, want empty", formatTags(nil))
	}
}
