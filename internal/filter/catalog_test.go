package filter

import (
	"testing"

	"github.com/tagpilot/tagpilot/internal/models"
)

func TestOperationsFor_CreationDate(t *testing.T) {
	ops := OperationsFor(models.FieldCreationDate)
	want := []models.Operation{models.OpGreaterThan, models.OpLessThan, models.OpEqual}
	if len(ops) != len(want) {
		t.Fatalf("expected %d operations, got %d", len(want), len(ops))
	}
	for i, w := range want {
		if ops[i].Op != w {
			t.Errorf("ops[%d] = %q, want %q", i, ops[i].Op, w)
		}
	}
	// The catalog deliberately does not offer >= or <= even though the parser
	// reads them from stored clauses.
	for _, op := range ops {
		if op.Op == models.OpGreaterOrEqual || op.Op == models.OpLessOrEqual {
			t.Errorf("catalog should not offer %q", op.Op)
		}
	}
}

func TestOperationsFor_SubstringFields(t *testing.T) {
	for _, f := range []models.Field{models.FieldMetadata, models.FieldTags} {
		ops := OperationsFor(f)
		if len(ops) != 2 {
			t.Fatalf("%s: expected 2 operations, got %d", f, len(ops))
		}
		if ops[0].Op != models.OpExists || ops[0].Label != "CONTAINS" {
			t.Errorf("%s: ops[0] = %+v", f, ops[0])
		}
		if ops[1].Op != models.OpNotExists || ops[1].Label != "NOT CONTAINS" {
			t.Errorf("%s: ops[1] = %+v", f, ops[1])
		}
	}
}

func TestOperationsFor_UnknownField(t *testing.T) {
	if ops := OperationsFor(models.Field("owner")); ops != nil {
		t.Errorf("expected nil for unknown field, got %v", ops)
	}
}

func TestDefaultOperation(t *testing.T) {
	if op := DefaultOperation(models.FieldCreationDate); op != models.OpGreaterThan {
		t.Errorf("creation_date default = %q, want >", op)
	}
	if op := DefaultOperation(models.FieldTags); op != models.OpExists {
		t.Errorf("tags default = %q, want EXISTS", op)
	}
	if op := DefaultOperation(models.Field("owner")); op != "" {
		t.Errorf("unknown field default = %q, want empty", op)
	}
}

func TestFieldLabel(t *testing.T) {
	if got := FieldLabel(models.FieldCreationDate); got != "Creation Date" {
		t.Errorf("FieldLabel = %q", got)
	}
	if got := FieldLabel(models.Field("owner")); got != "owner" {
		t.Errorf("unknown field label = %q, want raw name", got)
	}
}

func TestFields_Order(t *testing.T) {
	fields := Fields()
	want := []models.Field{models.FieldCreationDate, models.FieldMetadata, models.FieldTags}
	if len(fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(fields))
	}
	for i, w := range want {
		if fields[i] != w {
			t.Errorf("fields[%d] = %q, want %q", i, fields[i], w)
		}
	}
}
