package filter

import (
	"strings"

	"github.com/tagpilot/tagpilot/internal/models"
)

// Build serializes a condition list into the canonical WHERE-clause text
// submitted to the query engine and stored inside profiles.
//
// Conditions whose value is empty or all-whitespace are dropped, so a
// half-edited condition never corrupts the emitted clause. The first surviving
// condition is emitted without a connector; every later one is joined with its
// own connector, not its original list position, so deleting an incomplete
// low-index condition does not shift which connector the rest use.
//
// Build is total: it never fails. Conditions with an unrecognized field
// contribute nothing.
func Build(conds []models.Condition) string {
	var b strings.Builder
	for _, c := range conds {
		if strings.TrimSpace(c.Value) == "" {
			continue
		}
		spec, ok := specFor(c.Field)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			conn := c.Connector
			if conn == models.ConnectorNone {
				conn = models.ConnectorAnd
			}
			b.WriteByte(' ')
			b.WriteString(string(conn))
			b.WriteByte(' ')
		}
		b.WriteString(spec.encode(c))
	}
	return b.String()
}
