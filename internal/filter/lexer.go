package filter

type tokenKind int

const (
	tokenEOF       tokenKind = iota
	tokenField               // creation_date
	tokenPosition            // POSITION(
	tokenIn                  // IN
	tokenIdent               // metadata, tags
	tokenRParen              // )
	tokenQuoted              // '...' with quotes stripped
	tokenCompare             // >= <= > < =
	tokenNumber              // digit run
	tokenConnector           // AND, OR
	tokenJunk                // anything the grammar does not know
)

type token struct {
	kind tokenKind
	val  string
}

// lexer splits clause text into tokens. It never fails: text it cannot place
// in the grammar comes out as junk tokens the reader skips over, which is what
// makes the parser tolerant of hand-edited or truncated clauses. Quoted
// literals are consumed whole, so AND/OR inside a value never registers as a
// connector.
type lexer struct {
	input string
	pos   int
}

func lexAll(input string) []token {
	lx := &lexer{input: input}
	var toks []token
	for {
		t := lx.next()
		toks = append(toks, t)
		if t.kind == tokenEOF {
			return toks
		}
	}
}

func (l *lexer) next() token {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return token{kind: tokenEOF}
	}

	ch := l.input[l.pos]
	switch {
	case ch == '\'':
		return l.readQuoted()
	case ch == ')':
		l.pos++
		return token{kind: tokenRParen, val: ")"}
	case ch == '>' || ch == '<':
		if l.pos+1 < len(l.input) && l.input[l.pos+1] == '=' {
			op := l.input[l.pos : l.pos+2]
			l.pos += 2
			return token{kind: tokenCompare, val: op}
		}
		l.pos++
		return token{kind: tokenCompare, val: string(ch)}
	case ch == '=':
		l.pos++
		return token{kind: tokenCompare, val: "="}
	case isDigit(ch):
		return l.readNumber()
	case isWordChar(ch):
		return l.readWord()
	default:
		l.pos++
		return token{kind: tokenJunk, val: string(ch)}
	}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

// readQuoted consumes a single-quoted literal. An unterminated quote cannot
// delimit a value, so it degrades to junk rather than swallowing the rest of
// the input as a literal.
func (l *lexer) readQuoted() token {
	start := l.pos + 1
	for i := start; i < len(l.input); i++ {
		if l.input[i] == '\'' {
			val := l.input[start:i]
			l.pos = i + 1
			return token{kind: tokenQuoted, val: val}
		}
	}
	l.pos = len(l.input)
	return token{kind: tokenJunk, val: l.input[start-1:]}
}

func (l *lexer) readNumber() token {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	return token{kind: tokenNumber, val: l.input[start:l.pos]}
}

func (l *lexer) readWord() token {
	start := l.pos
	for l.pos < len(l.input) && isWordChar(l.input[l.pos]) {
		l.pos++
	}
	word := l.input[start:l.pos]

	switch word {
	case "creation_date":
		return token{kind: tokenField, val: word}
	case "POSITION":
		if l.pos < len(l.input) && l.input[l.pos] == '(' {
			l.pos++
			return token{kind: tokenPosition, val: "POSITION("}
		}
		return token{kind: tokenJunk, val: word}
	case "IN":
		return token{kind: tokenIn, val: word}
	case "AND", "OR":
		return token{kind: tokenConnector, val: word}
	case "metadata", "tags":
		return token{kind: tokenIdent, val: word}
	default:
		return token{kind: tokenJunk, val: word}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isWordChar(ch byte) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}
