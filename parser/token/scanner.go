package token

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Scanner facilitates construction of tokens from source text.  The entire
// input is read when the Scanner is created; Err reports any read failure.
type Scanner struct {
	file string
	src  []byte
	err  error

	start     int // byte offset of the current token
	startLine int
	startCol  int

	next int  // byte offset of the rune following c
	c    rune // the last rune scanned
	line int  // line of the next rune
	col  int  // column of the next rune
}

// NewScanner initializes and returns a new Scanner over the contents of r.
func NewScanner(file string, r io.Reader) *Scanner {
	src, err := io.ReadAll(r)
	s := &Scanner{
		file: file,
		src:  src,
		err:  err,
		line: 1,
		col:  1,
	}
	s.Ignore()
	return s
}

// Err returns the error encountered reading the scanner's input, if any.
func (s *Scanner) Err() error {
	return s.err
}

// EmitToken returns a token containing the text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to skip all text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.next
	s.startLine = s.line
	s.startCol = s.col
}

// Text returns a string containing text scanned since the last call to either
// EmitToken or Ignore.
func (s *Scanner) Text() string {
	return string(s.src[s.start:s.next])
}

// Rune returns the last rune scanned.
func (s *Scanner) Rune() rune {
	return s.c
}

// Peek returns the next rune to be scanned.  Peek returns false at the end of
// input or when the next bytes are not valid utf-8.
func (s *Scanner) Peek() (rune, bool) {
	if s.next >= len(s.src) {
		return 0, false
	}
	c, n := utf8.DecodeRune(s.src[s.next:])
	if c == utf8.RuneError && n == 1 {
		return utf8.RuneError, false
	}
	return c, true
}

// ScanRune scans the next rune into the current token.  ScanRune returns
// io.EOF at the end of input.
func (s *Scanner) ScanRune() error {
	if s.next >= len(s.src) {
		return io.EOF
	}
	c, n := utf8.DecodeRune(s.src[s.next:])
	if c == utf8.RuneError && n == 1 {
		return fmt.Errorf("%v: invalid utf-8 sequence starting with byte %q", s.Loc(), s.src[s.next])
	}
	s.c = c
	s.next += n
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return nil
}

// LocStart returns a Location referencing the beginning of the current token.
func (s *Scanner) LocStart() *Location {
	return &Location{
		File: s.file,
		Pos:  s.start,
		Line: s.startLine,
		Col:  s.startCol,
	}
}

// Loc returns a Location referencing the next rune to be scanned.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.next,
		Line: s.line,
		Col:  s.col,
	}
}
