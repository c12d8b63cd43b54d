package filter

import (
	"testing"

	"github.com/tagpilot/tagpilot/internal/models"
)

func TestTokenize_Empty(t *testing.T) {
	if got := Tokenize(nil, Callbacks{}); len(got) != 0 {
		t.Errorf("expected no tokens for empty list, got %d", len(got))
	}
}

func TestTokenize_MirrorsBuildFilter(t *testing.T) {
	conds := []models.Condition{
		{ID: "a", Field: models.FieldCreationDate, Operation: models.OpGreaterThan, Value: ""},
		{ID: "b", Field: models.FieldTags, Operation: models.OpExists, Value: "prod", Connector: models.ConnectorAnd},
	}

	toks := Tokenize(conds, Callbacks{})
	if len(toks) != 1 {
		t.Fatalf("expected exactly one token (no connector for a lone survivor), got %d", len(toks))
	}
	if toks[0].Kind != TokenCondition {
		t.Errorf("token kind = %v, want TokenCondition", toks[0].Kind)
	}
	if toks[0].Label != "Tags CONTAINS 'prod'" {
		t.Errorf("label = %q, want %q", toks[0].Label, "Tags CONTAINS 'prod'")
	}
}

func TestTokenize_ConnectorBetweenConditions(t *testing.T) {
	conds := []models.Condition{
		{ID: "a", Field: models.FieldCreationDate, Operation: models.OpLessThan, Value: "2024-01-01 00:00"},
		{ID: "b", Field: models.FieldMetadata, Operation: models.OpNotExists, Value: "legacy", Connector: models.ConnectorOr},
	}

	toks := Tokenize(conds, Callbacks{})
	if len(toks) != 3 {
		t.Fatalf("expected condition, connector, condition; got %d tokens", len(toks))
	}
	if toks[0].Label != "Creation Date < '2024-01-01 00:00'" {
		t.Errorf("first label = %q", toks[0].Label)
	}
	if toks[1].Kind != TokenConnector || toks[1].Label != "OR" {
		t.Errorf("middle token = %+v, want OR connector", toks[1])
	}
	if toks[1].ConditionID != "b" {
		t.Errorf("connector token belongs to %q, want %q", toks[1].ConditionID, "b")
	}
	if toks[2].Label != "Metadata NOT CONTAINS 'legacy'" {
		t.Errorf("last label = %q", toks[2].Label)
	}
}

func TestTokenize_Callbacks(t *testing.T) {
	conds := []models.Condition{
		{ID: "a", Field: models.FieldCreationDate, Operation: models.OpEqual, Value: "2024-06-01 00:00"},
		{ID: "b", Field: models.FieldTags, Operation: models.OpExists, Value: "prod", Connector: models.ConnectorAnd},
	}

	var toggled, removed []string
	toks := Tokenize(conds, Callbacks{
		ToggleConnector: func(id string) { toggled = append(toggled, id) },
		RemoveCondition: func(id string) { removed = append(removed, id) },
	})
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(toks))
	}

	if toks[1].Toggle == nil {
		t.Fatal("connector token should carry a toggle callback")
	}
	toks[1].Toggle()
	if len(toggled) != 1 || toggled[0] != "b" {
		t.Errorf("toggle should target the condition owning the connector, got %v", toggled)
	}

	if toks[0].Remove == nil || toks[2].Remove == nil {
		t.Fatal("condition tokens should carry remove callbacks")
	}
	toks[2].Remove()
	if len(removed) != 1 || removed[0] != "b" {
		t.Errorf("remove should be keyed by condition id, got %v", removed)
	}

	if toks[0].Toggle != nil {
		t.Error("condition tokens must not be toggleable")
	}
	if toks[1].Remove != nil {
		t.Error("connector tokens must not be independently removable")
	}
}

func TestTokenize_ReadOnlyWithoutCallbacks(t *testing.T) {
	conds := []models.Condition{
		{ID: "a", Field: models.FieldTags, Operation: models.OpExists, Value: "prod"},
	}

	toks := Tokenize(conds, Callbacks{})
	if toks[0].Remove != nil || toks[0].Toggle != nil {
		t.Error("expected inert tokens when no callbacks are provided")
	}
}

func TestTokenize_DateOperatorShownAsSymbol(t *testing.T) {
	conds := []models.Condition{
		{ID: "a", Field: models.FieldCreationDate, Operation: models.OpGreaterOrEqual, Value: "2024-01-01 00:00"},
	}

	toks := Tokenize(conds, Callbacks{})
	if toks[0].Label != "Creation Date >= '2024-01-01 00:00'" {
		t.Errorf("label = %q", toks[0].Label)
	}
}
