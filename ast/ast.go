// Package ast defines the expression tree shared by the reader and the
// evaluator.
//
// A program is a sequence of Nodes.  Every Node is one of *Number, *Atom,
// *Variable or *Call; there are no other node kinds.  Lists delimited with
// either parentheses or square brackets both read as a *Call.
package ast

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Node is an expression in the tree.
type Node interface {
	String() string
	node()
}

// Number is a decimal literal.  The literal's scale is preserved, so 1.0 and 1
// are distinct literals with distinct printed forms.
type Number struct {
	Value decimal.Decimal
}

// Atom is a literal tag written :name.  Name excludes the leading colon.
type Atom struct {
	Name string
}

// Variable is a reference to a bound name.
type Variable struct {
	Name string
}

// Call is a list.  When the first element of the list was a symbol Name holds
// it and Args holds the remaining elements.  Otherwise Name is empty and Args
// holds every element of the list.
type Call struct {
	Name string
	Args []Node
}

func (*Number) node()   {}
func (*Atom) node()     {}
func (*Variable) node() {}
func (*Call) node()     {}

func (n *Number) String() string {
	return FormatDecimal(n.Value)
}

func (n *Atom) String() string {
	return ":" + n.Name
}

func (n *Variable) String() string {
	return n.Name
}

func (n *Call) String() string {
	var buf strings.Builder
	buf.WriteString("(")
	buf.WriteString(n.Name)
	for i, arg := range n.Args {
		if i > 0 || n.Name != "" {
			buf.WriteString(" ")
		}
		buf.WriteString(arg.String())
	}
	buf.WriteString(")")
	return buf.String()
}

// FormatDecimal returns the canonical text of d.  Digits after the decimal
// point are kept as they were written (or computed), so 1.0 renders as "1.0"
// and not "1".
func FormatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// IsSelector returns true if name is a dotted selector such as .field or
// .field=.
func IsSelector(name string) bool {
	return strings.HasPrefix(name, ".")
}
