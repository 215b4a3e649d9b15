package lisp

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/ast"
)

// Interpreter evaluates expression trees.  It holds the current scope, which
// is replaced while a block or call is evaluated and restored when the block
// or call returns, successfully or not.
//
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	Stack  *CallStack
	Reader Reader

	// DivisionPrecision is the number of fractional digits kept by ``/'' when
	// a quotient does not terminate.
	DivisionPrecision int32

	global *Scope
	scope  *Scope
}

// New returns an Interpreter whose global scope holds null, the arithmetic
// builtins and the root Object.  The given Configs are applied in order.
func New(config ...Config) (*Interpreter, error) {
	global := NewScope(nil)
	in := &Interpreter{
		Stack:             &CallStack{},
		DivisionPrecision: DefaultDivisionPrecision,
		global:            global,
		scope:             global,
	}
	global.Define(NullSymbol, Null())
	err := in.AddBuiltins()
	if err != nil {
		return nil, err
	}
	global.Define(RootObjectName, Obj(NewObject(RootObjectName, global)))
	for _, c := range config {
		err := c(in)
		if err != nil {
			return nil, err
		}
	}
	return in, nil
}

// AddBuiltins binds the given funs to their names in the global scope.  When
// called with no arguments AddBuiltins adds the DefaultBuiltins.
func (in *Interpreter) AddBuiltins(funs ...BuiltinDef) error {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		if in.global.Resolve(f.Name(), true).IsPresent() {
			return fmt.Errorf("symbol already defined: %s", f.Name())
		}
		in.global.Define(f.Name(), Fun(f.Name(), f.Eval))
	}
	return nil
}

// Global returns the interpreter's global scope.
func (in *Interpreter) Global() *Scope {
	return in.global
}

// Scope returns the scope in which expressions are currently evaluated.
// Between calls to Eval this is the global scope.
func (in *Interpreter) Scope() *Scope {
	return in.scope
}

// Errorf returns an EvalError carrying a copy of the current call stack.
func (in *Interpreter) Errorf(c Condition, format string, v ...interface{}) *EvalError {
	err := Errorf(c, format, v...)
	if in.Stack.Height() > 0 {
		err.Stack = in.Stack.Copy()
	}
	return err
}

// Eval evaluates node in the current scope and returns the resulting Value.
func (in *Interpreter) Eval(node ast.Node) (*Value, error) {
	switch node := node.(type) {
	case *ast.Number:
		return Number(node.Value), nil
	case *ast.Atom:
		return Atom(node.Name), nil
	case *ast.Variable:
		v, ok := in.scope.Resolve(node.Name, false).Get()
		if !ok {
			return nil, in.Errorf(UndefinedVariable, "undefined variable: %s", node.Name)
		}
		return v, nil
	case *ast.Call:
		return in.evalCall(node)
	case nil:
		return nil, in.Errorf(InvalidForm, "nil expression")
	default:
		return nil, in.Errorf(InvalidForm, "unknown expression type: %T", node)
	}
}

func (in *Interpreter) evalCall(call *ast.Call) (*Value, error) {
	switch call.Name {
	case "do":
		return in.opDo(call)
	case "def":
		return in.opDef(call)
	case "set!":
		return in.opSet(call)
	case "object":
		return in.opObject(call)
	}
	if ast.IsSelector(call.Name) {
		return in.evalSelector(call)
	}
	f, ok := in.scope.Resolve(call.Name, false).Get()
	if !ok {
		return nil, in.Errorf(UndefinedFunction, "undefined function: %s", call.Name)
	}
	if f.Type != VFunction {
		return nil, in.Errorf(NotInvokable, "%s is not invokable: %v (%s)", call.Name, f, f.Type)
	}
	args, err := in.evalArgs(call.Args)
	if err != nil {
		return nil, err
	}
	return in.Call(f, args)
}

// evalArgs evaluates each expression in the current scope, left to right.
func (in *Interpreter) evalArgs(exprs []ast.Node) ([]*Value, error) {
	args := make([]*Value, len(exprs))
	for i, expr := range exprs {
		v, err := in.Eval(expr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// Call invokes the function value fun with args.
func (in *Interpreter) Call(fun *Value, args []*Value) (*Value, error) {
	return in.call(fun, args, "")
}

// call invokes fun, recording receiver (an object display name) in the call
// frame when fun is a method.
func (in *Interpreter) call(fun *Value, args []*Value, receiver string) (*Value, error) {
	if fun.Type != VFunction {
		return nil, in.Errorf(NotInvokable, "value is not invokable: %v (%s)", fun, fun.Type)
	}
	f := fun.Fun
	if !in.Stack.Push(CallFrame{Name: f.Name, Receiver: receiver}) {
		return nil, in.Errorf(StackExhausted, "maximum stack height exceeded: %d", in.Stack.MaxHeight)
	}
	defer in.Stack.Pop()

	if f.Builtin != nil {
		v, err := f.Builtin(in, args)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return Null(), nil
		}
		return v, nil
	}
	if len(args) != len(f.Params) {
		return nil, in.Errorf(ArityMismatch, "%s expects %d arguments (got %d)",
			f.Name, len(f.Params), len(args))
	}
	env := NewScope(f.Env)
	for i, name := range f.Params {
		env.Define(name, args[i])
	}
	return in.EvalIn(env, f.Body)
}

// EvalIn evaluates node with scope as the current scope.  The previous scope
// is restored before EvalIn returns.
func (in *Interpreter) EvalIn(scope *Scope, node ast.Node) (*Value, error) {
	prev := in.scope
	in.scope = scope
	defer func() { in.scope = prev }()
	return in.Eval(node)
}

// evalSequence evaluates exprs in order in the current scope and returns the
// last value, or null when exprs is empty.
func (in *Interpreter) evalSequence(exprs []ast.Node) (*Value, error) {
	val := Null()
	for _, expr := range exprs {
		v, err := in.Eval(expr)
		if err != nil {
			return nil, err
		}
		val = v
	}
	return val, nil
}

// Load reads the source in r using the interpreter's Reader and evaluates
// each expression in the current scope.  Load returns the value of the last
// expression, or null when the source is empty.
func (in *Interpreter) Load(name string, r io.Reader) (*Value, error) {
	if in.Reader == nil {
		return nil, fmt.Errorf("no reader configured")
	}
	exprs, err := in.Reader.Read(name, r)
	if err != nil {
		return nil, err
	}
	return in.evalSequence(exprs)
}

// LoadString parses and evaluates source, as Load.
func (in *Interpreter) LoadString(name, source string) (*Value, error) {
	return in.Load(name, strings.NewReader(source))
}

// LoadBytes parses and evaluates source, as Load.
func (in *Interpreter) LoadBytes(name string, source []byte) (*Value, error) {
	return in.Load(name, bytes.NewReader(source))
}
