package components

import (
	"testing"

	"github.com/tagpilot/tagpilot/internal/filter"
	"github.com/tagpilot/tagpilot/internal/models"
	"github.com/tagpilot/tagpilot/internal/ui/theme"
)

func testConditions() []models.Condition {
	return []models.Condition{
		{ID: "a", Field: models.FieldCreationDate, Operation: models.OpGreaterThan, Value: "2025-01-01", Connector: models.ConnectorNone},
		{ID: "b", Field: models.FieldTags, Operation: models.OpExists, Value: "env=prod", Connector: models.ConnectorAnd},
	}
}

func TestChipsToggleConnector(t *testing.T) {
	fc := NewFilterChips(theme.DefaultTheme())
	fc.SetConditions(testConditions())

	fc.toggleConnector("b")
	conds := fc.Conditions()
	if conds[1].Connector != models.ConnectorOr {
		t.Errorf("Connector = %q, want OR", conds[1].Connector)
	}

	fc.toggleConnector("b")
	if fc.Conditions()[1].Connector != models.ConnectorAnd {
		t.Errorf("Connector = %q, want AND after second toggle", fc.Conditions()[1].Connector)
	}
}

func TestChipsRemoveCondition(t *testing.T) {
	fc := NewFilterChips(theme.DefaultTheme())
	fc.SetConditions(testConditions())

	fc.removeCondition("a")
	conds := fc.Conditions()
	if len(conds) != 1 {
		t.Fatalf("len = %d, want 1", len(conds))
	}
	if conds[0].ID != "b" {
		t.Errorf("remaining ID = %q, want b", conds[0].ID)
	}
	// The new head of the list must not carry a connector
	if conds[0].Connector != models.ConnectorNone {
		t.Errorf("Connector = %q, want none on first condition", conds[0].Connector)
	}
}

func TestChipsRemoveUnknownIDIsNoop(t *testing.T) {
	fc := NewFilterChips(theme.DefaultTheme())
	fc.SetConditions(testConditions())

	fc.removeCondition("missing")
	if len(fc.Conditions()) != 2 {
		t.Errorf("len = %d, want 2", len(fc.Conditions()))
	}
}

func TestChipsTokensMirrorClause(t *testing.T) {
	fc := NewFilterChips(theme.DefaultTheme())
	conds := testConditions()
	conds = append(conds, models.Condition{
		ID: "c", Field: models.FieldMetadata, Operation: models.OpNotExists, Value: "", Connector: models.ConnectorOr,
	})
	fc.SetConditions(conds)

	// The empty-value condition is filtered exactly like Build filters it
	if got, want := len(fc.tokens), 3; got != want {
		t.Fatalf("token count = %d, want %d", got, want)
	}
	if fc.tokens[1].Kind != filter.TokenConnector || fc.tokens[1].Label != "AND" {
		t.Errorf("middle token = %+v, want AND connector", fc.tokens[1])
	}
}
