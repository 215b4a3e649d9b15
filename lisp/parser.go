package lisp

import (
	"io"

	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/ast"
)

// Reader abstracts a parser implementation so that it may be implemented in a
// separate package as an optional/swappable component.
type Reader interface {
	// Read the contents of r and return the sequence of expressions that it
	// contains.  The returned expressions are evaluated in order in the
	// interpreter's current scope.
	Read(name string, r io.Reader) ([]ast.Node, error)
}
