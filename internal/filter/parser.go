package filter

import (
	"strings"

	"github.com/google/uuid"
	"github.com/tagpilot/tagpilot/internal/models"
)

// Parser reconstructs a condition list from canonical clause text. The zero
// value is ready to use; NewID may be set to make condition ids deterministic
// in tests.
type Parser struct {
	NewID func() string
}

// Parse is shorthand for a Parser with uuid-generated condition ids.
func Parse(text string) []models.Condition {
	return Parser{}.Parse(text)
}

// Parse rebuilds a best-effort condition list from arbitrary clause text,
// which may be empty, hand-edited or written by an older build.
//
// The input is lexed into tokens and read as a flat sequence of
// predicate (connector predicate)* with no grouping. Text that fits no
// predicate shape is skipped, and a predicate whose pieces are missing is
// dropped while scanning continues, so malformed input degrades to a partial
// or empty list instead of an error. A connector lexically precedes the
// predicate it joins, so it is held until the next predicate is produced and
// attached there; the first condition produced always gets ConnectorNone.
//
// Every produced condition receives a fresh id. Correctness is only
// guaranteed for values that do not contain the grammar's reserved tokens
// (the quote character, AND, OR, POSITION(, IN metadata, IN tags,
// creation_date); see Build.
func (p Parser) Parse(text string) []models.Condition {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	newID := p.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	r := &reader{toks: lexAll(text)}
	var conds []models.Condition
	pending := models.ConnectorNone

	for {
		tok := r.next()
		if tok.kind == tokenEOF {
			break
		}
		switch tok.kind {
		case tokenConnector:
			pending = models.Connector(tok.val)
		case tokenField:
			mark := r.pos
			c, ok := readDatePredicate(r)
			if !ok {
				// Dropped candidate: resume just past the anchor so an
				// embedded predicate is still found.
				r.pos = mark
				continue
			}
			conds, pending = attach(conds, c, pending, newID)
		case tokenPosition:
			mark := r.pos
			c, ok := readPositionPredicate(r)
			if !ok {
				r.pos = mark
				continue
			}
			conds, pending = attach(conds, c, pending, newID)
		}
	}
	return conds
}

// attach finishes a parsed predicate: the first condition gets no connector,
// later ones take the pending connector. A later predicate with no connector
// between it and the previous one has no defined place in the clause and is
// dropped.
func attach(conds []models.Condition, c models.Condition, pending models.Connector, newID func() string) ([]models.Condition, models.Connector) {
	switch {
	case len(conds) == 0:
		c.Connector = models.ConnectorNone
	case pending != models.ConnectorNone:
		c.Connector = pending
	default:
		return conds, pending
	}
	c.ID = newID()
	return append(conds, c), models.ConnectorNone
}

// reader walks the token stream with an explicit cursor
type reader struct {
	toks []token
	pos  int
}

func (r *reader) next() token {
	if r.pos >= len(r.toks) {
		return token{kind: tokenEOF}
	}
	t := r.toks[r.pos]
	r.pos++
	return t
}

func (r *reader) peek() token {
	if r.pos >= len(r.toks) {
		return token{kind: tokenEOF}
	}
	return r.toks[r.pos]
}

// seek consumes tokens until it finds one of the wanted kind. It stops
// without consuming at a connector or EOF, which bound the current
// predicate's span.
func (r *reader) seek(kind tokenKind) (token, bool) {
	for {
		t := r.peek()
		switch t.kind {
		case tokenEOF, tokenConnector:
			return token{}, false
		case kind:
			r.next()
			return t, true
		default:
			r.next()
		}
	}
}

// readDatePredicate reads `<op> '<value>'` after a creation_date anchor. The
// lexer already prefers the two-character >= and <= over > and <.
func readDatePredicate(r *reader) (models.Condition, bool) {
	op, ok := r.seek(tokenCompare)
	if !ok {
		return models.Condition{}, false
	}
	val, ok := r.seek(tokenQuoted)
	if !ok {
		return models.Condition{}, false
	}
	return models.Condition{
		Field:     models.FieldCreationDate,
		Operation: models.Operation(op.val),
		Value:     val.val,
	}, true
}

// readPositionPredicate reads `'<value>' IN <field>) <cmp> 0` after a
// POSITION( anchor. `> 0` means the substring exists, `= 0` that it does not.
func readPositionPredicate(r *reader) (models.Condition, bool) {
	val, ok := r.seek(tokenQuoted)
	if !ok {
		return models.Condition{}, false
	}
	if _, ok := r.seek(tokenIn); !ok {
		return models.Condition{}, false
	}
	field, ok := r.seek(tokenIdent)
	if !ok {
		return models.Condition{}, false
	}
	if _, ok := r.seek(tokenRParen); !ok {
		return models.Condition{}, false
	}
	cmp, ok := r.seek(tokenCompare)
	if !ok || (cmp.val != ">" && cmp.val != "=") {
		return models.Condition{}, false
	}
	num, ok := r.seek(tokenNumber)
	if !ok || num.val != "0" {
		return models.Condition{}, false
	}

	op := models.OpExists
	if cmp.val == "=" {
		op = models.OpNotExists
	}
	return models.Condition{
		Field:     models.Field(field.val),
		Operation: op,
		Value:     val.val,
	}, true
}
