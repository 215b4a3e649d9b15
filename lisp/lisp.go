package lisp

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/ast"
)

// ValueType is the type of a Value
type ValueType uint

// Possible ValueType values
const (
	VInvalid ValueType = iota
	VNull
	VBool
	VNumber
	VAtom
	VFunction
	VObject
)

var valueTypeStrings = []string{
	VInvalid:  "INVALID",
	VNull:     "null",
	VBool:     "bool",
	VNumber:   "number",
	VAtom:     "atom",
	VFunction: "function",
	VObject:   "object",
}

func (t ValueType) String() string {
	if int(t) >= len(valueTypeStrings) {
		return valueTypeStrings[VInvalid]
	}
	return valueTypeStrings[t]
}

// Value is a runtime value.  Null, booleans, numbers and atoms are primitives
// and are never mutated after construction.  A function value points at its
// Function and an object value points at its Object; two values are the same
// object when their Obj pointers are equal.
type Value struct {
	Type ValueType
	Num  decimal.Decimal
	Str  string // atom text, including the leading colon
	Bool bool
	Fun  *Function
	Obj  *Object
}

// Builtin is the native implementation of a function.
type Builtin func(in *Interpreter, args []*Value) (*Value, error)

// Function is a callable value.  Exactly one of Builtin or Body is set.  A
// user function's Env is the scope it was defined in.  Env is shared with
// every other holder of the scope so definitions made there after the function
// was created are visible to its body.
type Function struct {
	Name    string
	Builtin Builtin
	Params  []string
	Body    ast.Node
	Env     *Scope
}

// Null returns the null value.
func Null() *Value {
	return &Value{Type: VNull}
}

// Bool returns a boolean value.
func Bool(b bool) *Value {
	return &Value{Type: VBool, Bool: b}
}

// Number returns a numeric value.
func Number(x decimal.Decimal) *Value {
	return &Value{Type: VNumber, Num: x}
}

// Int returns a numeric value for the integer x.
func Int(x int64) *Value {
	return Number(decimal.NewFromInt(x))
}

// Atom returns the atom :name.
func Atom(name string) *Value {
	return &Value{Type: VAtom, Str: ":" + name}
}

// Fun returns a native function value.
func Fun(name string, fn Builtin) *Value {
	return &Value{
		Type: VFunction,
		Fun:  &Function{Name: name, Builtin: fn},
	}
}

// Lambda returns a user function that evaluates body in a child of env with
// params bound to its arguments.
func Lambda(name string, params []string, body ast.Node, env *Scope) *Value {
	return &Value{
		Type: VFunction,
		Fun: &Function{
			Name:   name,
			Params: params,
			Body:   body,
			Env:    env,
		},
	}
}

// Obj returns a value referring to obj.
func Obj(obj *Object) *Value {
	return &Value{Type: VObject, Obj: obj}
}

// IsPrimitive returns true if v is null, a boolean, a number or an atom.
func (v *Value) IsPrimitive() bool {
	switch v.Type {
	case VNull, VBool, VNumber, VAtom:
		return true
	}
	return false
}

// IsNull returns true if v is the null value.
func (v *Value) IsNull() bool {
	return v.Type == VNull
}

func (v *Value) String() string {
	var buf bytes.Buffer
	writeValue(&buf, v, nil)
	return buf.String()
}

func writeValue(buf *bytes.Buffer, v *Value, open map[*Object]bool) {
	switch v.Type {
	case VNull:
		buf.WriteString(NullSymbol)
	case VBool:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case VNumber:
		buf.WriteString(ast.FormatDecimal(v.Num))
	case VAtom:
		buf.WriteString(v.Str)
	case VFunction:
		impl := "<lambda>"
		if v.Fun.Builtin != nil {
			impl = "<builtin>"
		}
		fmt.Fprintf(buf, "(function %s %s)", v.Fun.Name, impl)
	case VObject:
		writeObject(buf, v.Obj, open)
	default:
		fmt.Fprintf(buf, "%#v", v)
	}
}

// writeObject renders obj's own fields.  An object already being rendered
// further up (a field that refers back to its owner) is abbreviated.
func writeObject(buf *bytes.Buffer, obj *Object, open map[*Object]bool) {
	buf.WriteString("(object")
	if obj.Name != "" {
		buf.WriteString(" ")
		buf.WriteString(obj.Name)
	}
	if open[obj] {
		buf.WriteString(" ...)")
		return
	}
	if open == nil {
		open = make(map[*Object]bool)
	}
	open[obj] = true
	defer delete(open, obj)
	for _, field := range obj.Fields() {
		buf.WriteString(" [")
		buf.WriteString(field.Name)
		buf.WriteString(" ")
		writeValue(buf, field.Value, open)
		buf.WriteString("]")
	}
	buf.WriteString(")")
}
