package token

import "fmt"

type Token struct {
	Type   Type
	Text   string
	Source *Location
}

type Type uint

// Type constants used by the lexer and parser.
const (
	INVALID Type = iota
	ERROR
	EOF

	// Atomic expressions & literals
	SYMBOL
	NUMBER
	ATOM

	COMMENT

	// Delimiters
	PAREN_L
	PAREN_R
	BRACE_L
	BRACE_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		ERROR:   "error",
		EOF:     "EOF",
		SYMBOL:  "symbol",
		NUMBER:  "number",
		ATOM:    "atom",
		COMMENT: ";",
		PAREN_L: "(",
		PAREN_R: ")",
		BRACE_L: "[",
		BRACE_R: "]",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Closer returns the delimiter that closes typ, or INVALID if typ does not
// open a list.
func (typ Type) Closer() Type {
	switch typ {
	case PAREN_L:
		return PAREN_R
	case BRACE_L:
		return BRACE_R
	}
	return INVALID
}

type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1)
	Col  int // line column number (starting at 1)
}

func (loc *Location) String() string {
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
