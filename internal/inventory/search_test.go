package inventory

import (
	"strings"
	"testing"

	"github.com/tagpilot/tagpilot/internal/models"
)

func TestBuildSearchSQL_FullScope(t *testing.T) {
	scope := models.Scope{
		Accounts: []string{"123456789012"},
		Regions:  []string{"us-east-1"},
		Services: []string{"ec2", "s3"},
	}
	clause := "creation_date > '2023-01-01 00:00' AND POSITION('prod' IN tags) > 0"

	sql, args := buildSearchSQL(scope, clause, 100)

	want := "SELECT " + resourceColumns + " FROM resources" +
		" WHERE account_id = ANY($1) AND region = ANY($2) AND service = ANY($3)" +
		" AND (" + clause + ") ORDER BY creation_date DESC LIMIT $4"
	if sql != want {
		t.Errorf("sql = %q\nwant %q", sql, want)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(args))
	}
	if args[3] != 100 {
		t.Errorf("limit arg = %v", args[3])
	}
}

func TestBuildSearchSQL_EmptyScopeAndClause(t *testing.T) {
	sql, args := buildSearchSQL(models.Scope{}, "", 50)

	if strings.Contains(sql, "WHERE") {
		t.Errorf("expected no WHERE for empty scope and clause, got %q", sql)
	}
	if len(args) != 1 {
		t.Errorf("expected only the limit arg, got %v", args)
	}
}

func TestBuildSearchSQL_ClauseOnly(t *testing.T) {
	sql, _ := buildSearchSQL(models.Scope{}, "POSITION('x' IN metadata) = 0", 10)

	if !strings.Contains(sql, "WHERE (POSITION('x' IN metadata) = 0)") {
		t.Errorf("clause should be parenthesized as the only WHERE part, got %q", sql)
	}
}

func TestBuildCountSQL(t *testing.T) {
	scope := models.Scope{Regions: []string{"eu-west-1"}}

	sql, args := buildCountSQL(scope, "creation_date < '2022-01-01 00:00'")

	want := "SELECT COUNT(*) FROM resources WHERE region = ANY($1) AND (creation_date < '2022-01-01 00:00')"
	if sql != want {
		t.Errorf("sql = %q\nwant %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("expected 1 arg, got %d", len(args))
	}
}

func TestParseTags(t *testing.T) {
	tags := parseTags("env=prod, app=web, orphaned")
	if len(tags) != 3 {
		t.Fatalf("expected 3 tags, got %d: %v", len(tags), tags)
	}
	if tags["env"] != "prod" || tags["app"] != "web" {
		t.Errorf("unexpected tags: %v", tags)
	}
	if v, ok := tags["orphaned"]; !ok || v != "" {
		t.Errorf("bare key should map to empty value, got %v", tags)
	}

	if parseTags("") != nil {
		t.Error("empty column should parse to nil")
	}
}
