package models

// Field identifies a filterable resource attribute
type Field string

const (
	FieldCreationDate Field = "creation_date"
	FieldMetadata     Field = "metadata"
	FieldTags         Field = "tags"
)

// Operation represents a filter comparison operation
type Operation string

const (
	OpGreaterThan    Operation = ">"
	OpLessThan       Operation = "<"
	OpEqual          Operation = "="
	OpGreaterOrEqual Operation = ">=" // recognized in stored clauses, not offered by the catalog
	OpLessOrEqual    Operation = "<=" // recognized in stored clauses, not offered by the catalog
	OpExists         Operation = "EXISTS"
	OpNotExists      Operation = "NOT EXISTS"
)

// Connector joins a condition to the one immediately preceding it in the list.
// The first condition in a list always carries ConnectorNone.
type Connector string

const (
	ConnectorNone Connector = ""
	ConnectorAnd  Connector = "AND"
	ConnectorOr   Connector = "OR"
)

// Toggle flips AND to OR and back. ConnectorNone is returned unchanged.
func (c Connector) Toggle() Connector {
	switch c {
	case ConnectorAnd:
		return ConnectorOr
	case ConnectorOr:
		return ConnectorAnd
	}
	return c
}

// Condition represents a single filter predicate. ID is opaque, unique within
// a list and used only for UI reconciliation; it carries no query semantics.
type Condition struct {
	ID        string
	Field     Field
	Operation Operation
	Value     string
	Connector Connector
}
