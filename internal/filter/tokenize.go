package filter

import (
	"fmt"
	"strings"

	"github.com/tagpilot/tagpilot/internal/models"
)

// TokenKind distinguishes the two chip flavors
type TokenKind int

const (
	// TokenConnector labels the AND/OR joint before a condition; toggling it
	// flips the connector on the condition it belongs to
	TokenConnector TokenKind = iota
	// TokenCondition labels one predicate and can be removed
	TokenCondition
)

// DisplayToken is an ephemeral projection of a condition list for chip
// rendering. Tokens hold no state of their own and are rebuilt on every call.
type DisplayToken struct {
	Kind        TokenKind
	Label       string
	ConditionID string
	Toggle      func() // set on connector tokens when callbacks are provided
	Remove      func() // set on condition tokens when callbacks are provided
}

// Callbacks carries the mutations a chip view may trigger. Either or both may
// be nil for purely read-only rendering.
type Callbacks struct {
	ToggleConnector func(conditionID string)
	RemoveCondition func(conditionID string)
}

// Tokenize projects a condition list into display tokens. Conditions with an
// empty value are filtered out exactly like Build filters them, so the chips
// always show what the emitted clause contains. Every surviving condition
// after the first is preceded by a connector token carrying that condition's
// own connector.
func Tokenize(conds []models.Condition, cb Callbacks) []DisplayToken {
	var toks []DisplayToken
	for _, c := range conds {
		if strings.TrimSpace(c.Value) == "" {
			continue
		}
		if _, ok := specFor(c.Field); !ok {
			continue
		}

		if len(toks) > 0 {
			conn := c.Connector
			if conn == models.ConnectorNone {
				conn = models.ConnectorAnd
			}
			ct := DisplayToken{
				Kind:        TokenConnector,
				Label:       string(conn),
				ConditionID: c.ID,
			}
			if cb.ToggleConnector != nil {
				id := c.ID
				ct.Toggle = func() { cb.ToggleConnector(id) }
			}
			toks = append(toks, ct)
		}

		dt := DisplayToken{
			Kind:        TokenCondition,
			Label:       conditionLabel(c),
			ConditionID: c.ID,
		}
		if cb.RemoveCondition != nil {
			id := c.ID
			dt.Remove = func() { cb.RemoveCondition(id) }
		}
		toks = append(toks, dt)
	}
	return toks
}

func conditionLabel(c models.Condition) string {
	return fmt.Sprintf("%s %s '%s'", FieldLabel(c.Field), OperationLabel(c.Field, c.Operation), c.Value)
}
