// Package parser provides a lisp parser.
//
//	expr     := '(' <expr>* ')' | '[' <expr>* ']' | <number> | <atom> | <symbol>
//	number   := /[+-]?[0-9]+/ <fraction>? <exponent>?
//	fraction := '.' /[0-9]+/
//	exponent := /[eE][+-]?[0-9]+/
//	atom     := ':' <symbol>
//	symbol   := /[[:alpha:]._+\-*\/=<>!&~%?$][[:alnum:]._+\-*\/=<>!&~%?$]*/
//
// Comments start with ';' and extend to the end of the line.  A list whose
// first element is a symbol reads as a call of that symbol.
package parser

import (
	"bytes"

	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/ast"
	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/lisp"
	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/parser/rdparser"
)

// ErrIncomplete is matched (using errors.Is) by errors returned when the
// input ends in the middle of an expression.
var ErrIncomplete = rdparser.ErrIncomplete

// NewReader returns a new lisp.Reader.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

// Parse parses the program in text.  The name is used to report the location
// of syntax errors.
func Parse(name string, text []byte) ([]ast.Node, error) {
	return NewReader().Read(name, bytes.NewReader(text))
}
