package lisp

import (
	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/ast"
)

// (do expr ...)
//
// Expressions are evaluated in a new scope nested under the current scope.
// Nothing defined inside the block is visible after it returns.
func (in *Interpreter) opDo(call *ast.Call) (*Value, error) {
	prev := in.scope
	in.scope = NewScope(prev)
	defer func() { in.scope = prev }()
	return in.evalSequence(call.Args)
}

// (def name expr)
// (def (name param ...) body)
func (in *Interpreter) opDef(call *ast.Call) (*Value, error) {
	if len(call.Args) != 2 {
		return nil, in.Errorf(InvalidForm, "def: two arguments expected (got %d)", len(call.Args))
	}
	switch target := call.Args[0].(type) {
	case *ast.Variable:
		if in.scope.Resolve(target.Name, true).IsPresent() {
			return nil, in.Errorf(RedefinedIdentifier, "def: redefined identifier: %s", target.Name)
		}
		v, err := in.Eval(call.Args[1])
		if err != nil {
			return nil, err
		}
		in.scope.Define(target.Name, v)
		return v, nil
	case *ast.Call:
		if target.Name == "" {
			return nil, in.Errorf(InvalidForm, "def: function name is not a symbol: %v", target)
		}
		if in.scope.Resolve(target.Name, true).IsPresent() {
			return nil, in.Errorf(RedefinedIdentifier, "def: redefined identifier: %s", target.Name)
		}
		params, err := in.formals("def", target.Args)
		if err != nil {
			return nil, err
		}
		fun := Lambda(target.Name, params, call.Args[1], in.scope)
		in.scope.Define(target.Name, fun)
		return fun, nil
	default:
		return nil, in.Errorf(InvalidForm, "def: first argument is not a symbol or a function signature: %v", target)
	}
}

// (set! name expr)
//
// The existing binding of name is overwritten in the scope that holds it.
func (in *Interpreter) opSet(call *ast.Call) (*Value, error) {
	if len(call.Args) != 2 {
		return nil, in.Errorf(InvalidForm, "set!: two arguments expected (got %d)", len(call.Args))
	}
	target, ok := call.Args[0].(*ast.Variable)
	if !ok {
		return nil, in.Errorf(InvalidForm, "set!: first argument is not a symbol: %v", call.Args[0])
	}
	if in.scope.Resolve(target.Name, false).IsAbsent() {
		return nil, in.Errorf(UndefinedVariable, "set!: undefined variable: %s", target.Name)
	}
	v, err := in.Eval(call.Args[1])
	if err != nil {
		return nil, err
	}
	if !in.scope.Rebind(target.Name, v) {
		return nil, in.Errorf(UndefinedVariable, "set!: undefined variable: %s", target.Name)
	}
	return v, nil
}

// (object [name] clause ...)
//
// Each clause is either a field, [field expr], or a method,
// [(.method param ...) body].  Field expressions are evaluated in the new
// object's own scope, in order, so later clauses can refer to earlier fields.
func (in *Interpreter) opObject(call *ast.Call) (*Value, error) {
	clauses := call.Args
	var name string
	if len(clauses) > 0 {
		if v, ok := clauses[0].(*ast.Variable); ok {
			name = v.Name
			clauses = clauses[1:]
		}
	}
	obj := NewObject(name, in.scope)

	prev := in.scope
	in.scope = obj.Scope
	defer func() { in.scope = prev }()
	for _, clause := range clauses {
		err := in.objectClause(obj, clause)
		if err != nil {
			return nil, err
		}
	}
	return Obj(obj), nil
}

func (in *Interpreter) objectClause(obj *Object, clause ast.Node) error {
	c, ok := clause.(*ast.Call)
	if !ok {
		return in.Errorf(InvalidForm, "object: clause is not a list: %v", clause)
	}
	if c.Name == "" {
		return in.objectMethod(obj, c)
	}
	if len(c.Args) != 1 {
		return in.Errorf(InvalidForm, "object: field %s expects one value (got %d)", c.Name, len(c.Args))
	}
	if c.Name == PrototypeField {
		v, err := in.Eval(c.Args[0])
		if err != nil {
			return err
		}
		if v.Type != VObject {
			return in.Errorf(TypeMismatch, "object: prototype is not an object: %v (%s)", v, v.Type)
		}
		if !obj.SetPrototype(v.Obj) {
			return in.Errorf(CyclicPrototype, "object: cyclic prototype: %v", v)
		}
		return nil
	}
	if obj.Scope.Resolve(c.Name, true).IsPresent() {
		return in.Errorf(RedefinedIdentifier, "object: redefined field: %s", c.Name)
	}
	v, err := in.Eval(c.Args[0])
	if err != nil {
		return err
	}
	obj.Scope.Define(c.Name, v)
	return nil
}

// [(.method param ...) body]
func (in *Interpreter) objectMethod(obj *Object, c *ast.Call) error {
	if len(c.Args) != 2 {
		return in.Errorf(InvalidForm, "object: method clause expects a signature and a body: %v", c)
	}
	sig, ok := c.Args[0].(*ast.Call)
	if !ok || !ast.IsSelector(sig.Name) || sig.Name == SelectorPrefix {
		return in.Errorf(InvalidForm, "object: method name is not a selector: %v", c.Args[0])
	}
	if obj.Scope.Resolve(sig.Name, true).IsPresent() {
		return in.Errorf(RedefinedIdentifier, "object: redefined method: %s", sig.Name)
	}
	params, err := in.formals("object", sig.Args)
	if err != nil {
		return err
	}
	obj.Scope.Define(sig.Name, Lambda(sig.Name, params, c.Args[1], obj.Scope))
	return nil
}

// formals returns the parameter names declared by a function or method
// signature.
func (in *Interpreter) formals(op string, exprs []ast.Node) ([]string, error) {
	params := make([]string, len(exprs))
	seen := make(map[string]bool, len(exprs))
	for i, expr := range exprs {
		v, ok := expr.(*ast.Variable)
		if !ok {
			return nil, in.Errorf(InvalidForm, "%s: parameter is not a symbol: %v", op, expr)
		}
		if seen[v.Name] {
			return nil, in.Errorf(InvalidForm, "%s: duplicate parameter: %s", op, v.Name)
		}
		seen[v.Name] = true
		params[i] = v.Name
	}
	return params, nil
}
