package filter

import (
	"fmt"

	"github.com/tagpilot/tagpilot/internal/models"
)

// OperationChoice pairs a display label with the operation it selects
type OperationChoice struct {
	Label string
	Op    models.Operation
}

// fieldSpec couples a field with its operation set and its textual encoding.
// All per-field dispatch in this package goes through this table, so an
// operation can never be paired with a field that does not own it.
type fieldSpec struct {
	field  models.Field
	label  string
	ops    []OperationChoice
	encode func(c models.Condition) string
}

func encodeDate(c models.Condition) string {
	return fmt.Sprintf("creation_date %s '%s'", c.Operation, c.Value)
}

func encodeSubstring(field models.Field) func(c models.Condition) string {
	return func(c models.Condition) string {
		cmp := "> 0"
		if c.Operation == models.OpNotExists {
			cmp = "= 0"
		}
		return fmt.Sprintf("POSITION('%s' IN %s) %s", c.Value, field, cmp)
	}
}

// The catalog offers only >, <, = for dates. >= and <= remain recognized by
// the parser so clauses stored by older builds still load.
var fieldSpecs = []fieldSpec{
	{
		field: models.FieldCreationDate,
		label: "Creation Date",
		ops: []OperationChoice{
			{Label: ">", Op: models.OpGreaterThan},
			{Label: "<", Op: models.OpLessThan},
			{Label: "=", Op: models.OpEqual},
		},
		encode: encodeDate,
	},
	{
		field: models.FieldMetadata,
		label: "Metadata",
		ops: []OperationChoice{
			{Label: "CONTAINS", Op: models.OpExists},
			{Label: "NOT CONTAINS", Op: models.OpNotExists},
		},
		encode: encodeSubstring(models.FieldMetadata),
	},
	{
		field: models.FieldTags,
		label: "Tags",
		ops: []OperationChoice{
			{Label: "CONTAINS", Op: models.OpExists},
			{Label: "NOT CONTAINS", Op: models.OpNotExists},
		},
		encode: encodeSubstring(models.FieldTags),
	},
}

func specFor(f models.Field) (fieldSpec, bool) {
	for _, s := range fieldSpecs {
		if s.field == f {
			return s, true
		}
	}
	return fieldSpec{}, false
}

// Fields returns the filterable fields in catalog order
func Fields() []models.Field {
	fields := make([]models.Field, len(fieldSpecs))
	for i, s := range fieldSpecs {
		fields[i] = s.field
	}
	return fields
}

// FieldLabel returns the human-readable label for a field
func FieldLabel(f models.Field) string {
	if s, ok := specFor(f); ok {
		return s.label
	}
	return string(f)
}

// OperationsFor returns the operations a field supports, in catalog order
func OperationsFor(f models.Field) []OperationChoice {
	s, ok := specFor(f)
	if !ok {
		return nil
	}
	ops := make([]OperationChoice, len(s.ops))
	copy(ops, s.ops)
	return ops
}

// DefaultOperation returns the operation a condition resets to when its field
// changes
func DefaultOperation(f models.Field) models.Operation {
	s, ok := specFor(f)
	if !ok || len(s.ops) == 0 {
		return ""
	}
	return s.ops[0].Op
}

// OperationLabel returns the display label for an operation on a field.
// Operations outside the catalog (>=, <= from stored clauses) fall back to
// their symbol.
func OperationLabel(f models.Field, op models.Operation) string {
	if s, ok := specFor(f); ok {
		for _, choice := range s.ops {
			if choice.Op == op {
				return choice.Label
			}
		}
	}
	return string(op)
}
