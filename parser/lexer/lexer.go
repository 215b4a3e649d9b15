package lexer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/parser/token"
)

const miscWordRunes = "0123456789" + miscWordSymbols
const miscWordSymbols = "._+-*/=<>!&~%?$"

type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	// readErr is the first error returned by the scanner.  Once set every
	// subsequent token is an error (or EOF).
	readErr error
}

func New(s *token.Scanner) *Lexer {
	lex := &Lexer{
		scanner: s,
	}
	if err := s.Err(); err != nil {
		lex.readErr = err
	}
	return lex
}

func (lex *Lexer) NextToken() *token.Token {
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readErr = lex.skipWhitespace()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readChar()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	switch lex.ch {
	case '(':
		return lex.scanner.EmitToken(token.PAREN_L)
	case ')':
		return lex.scanner.EmitToken(token.PAREN_R)
	case '[':
		return lex.scanner.EmitToken(token.BRACE_L)
	case ']':
		return lex.scanner.EmitToken(token.BRACE_R)
	case ';':
		for {
			c, ok := lex.scanner.Peek()
			if !ok || c == '\n' {
				break
			}
			if err := lex.readChar(); err != nil {
				return lex.emitError(err, false)
			}
		}
		return lex.scanner.EmitToken(token.COMMENT)
	case ':':
		if !isWord(lex.peekRune()) {
			return lex.errorf("atom name expected after %q", lex.ch)
		}
		if err := lex.readSymbol(); err != nil {
			return lex.emitError(err, false)
		}
		return lex.scanner.EmitToken(token.ATOM)
	case '-', '+':
		if isDigit(lex.peekRune()) {
			return lex.readNumber()
		}
	}

	if isDigit(lex.ch) {
		return lex.readNumber()
	}
	if isWordStart(lex.ch) {
		if err := lex.readSymbol(); err != nil {
			return lex.emitError(err, false)
		}
		return lex.scanner.EmitToken(token.SYMBOL)
	}

	lex.readErr = fmt.Errorf("unexpected text starting with %q", lex.ch)
	return lex.emit(token.INVALID, lex.readErr.Error())
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) emitError(err error, expectEOF bool) *token.Token {
	if err == io.EOF {
		if expectEOF {
			return lex.emit(token.EOF, "")
		}
		return lex.emit(token.ERROR, "unexpected EOF")
	}
	return lex.emit(token.ERROR, err.Error())
}

func (lex *Lexer) errorf(format string, v ...interface{}) *token.Token {
	return lex.emitError(fmt.Errorf(format, v...), false)
}

func (lex *Lexer) readSymbol() error {
	for isWord(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	return nil
}

// readNumber scans the remainder of a decimal literal.  The current rune is
// either a digit or a sign followed by a digit.
func (lex *Lexer) readNumber() *token.Token {
	if err := lex.readDigits(); err != nil {
		return lex.emitError(err, false)
	}
	if lex.peekRune() == '.' {
		if err := lex.readChar(); err != nil {
			return lex.emitError(err, false)
		}
		if !isDigit(lex.peekRune()) {
			return lex.errorf("invalid number literal: %v", lex.scanner.Text())
		}
		if err := lex.readDigits(); err != nil {
			return lex.emitError(err, false)
		}
	}
	switch lex.peekRune() {
	case 'e', 'E':
		if err := lex.readChar(); err != nil {
			return lex.emitError(err, false)
		}
		switch lex.peekRune() {
		case '+', '-':
			if err := lex.readChar(); err != nil {
				return lex.emitError(err, false)
			}
		}
		if !isDigit(lex.peekRune()) {
			return lex.errorf("invalid number literal: %v", lex.scanner.Text())
		}
		if err := lex.readDigits(); err != nil {
			return lex.emitError(err, false)
		}
	}
	if isWord(lex.peekRune()) {
		return lex.errorf("invalid number literal: %v%c", lex.scanner.Text(), lex.peekRune())
	}
	return lex.scanner.EmitToken(token.NUMBER)
}

func (lex *Lexer) readDigits() error {
	for isDigit(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	return nil
}

func (lex *Lexer) skipWhitespace() error {
	for unicode.IsSpace(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

// peekRune returns the next rune, or zero at the end of input.
func (lex *Lexer) peekRune() rune {
	r, ok := lex.scanner.Peek()
	if !ok {
		return 0
	}
	return r
}

func (lex *Lexer) readChar() error {
	lex.readErr = lex.scanner.ScanRune()
	if lex.readErr != nil {
		return lex.readErr
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

func isWordStart(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(miscWordSymbols, c)
}

func isWord(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(miscWordRunes, c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
