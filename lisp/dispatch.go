package lisp

import (
	"strings"

	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/ast"
)

// Selectors with built in meaning.  They are handled before attribute lookup,
// so objects cannot override them.
const (
	selectorPrototype    = ".prototype"
	selectorSetPrototype = ".prototype="
	selectorInstance     = ".instance?"
)

// (.selector target arg ...)
func (in *Interpreter) evalSelector(call *ast.Call) (*Value, error) {
	if len(call.Args) == 0 {
		return nil, in.Errorf(InvalidForm, "%s: no target object", call.Name)
	}
	target, err := in.Eval(call.Args[0])
	if err != nil {
		return nil, err
	}
	if target.Type != VObject {
		return nil, in.Errorf(TypeMismatch, "%s: target is not an object: %v (%s)", call.Name, target, target.Type)
	}
	args, err := in.evalArgs(call.Args[1:])
	if err != nil {
		return nil, err
	}
	return in.Send(target.Obj, call.Name, args)
}

// Send dispatches selector to obj with the given (evaluated) arguments, as if
// by the expression (selector obj arg ...).
func (in *Interpreter) Send(obj *Object, selector string, args []*Value) (*Value, error) {
	switch selector {
	case selectorPrototype:
		if len(args) != 0 {
			return nil, in.Errorf(InvalidForm, "%s: no arguments expected (got %d)", selector, len(args))
		}
		if obj.Proto == nil {
			return Null(), nil
		}
		return Obj(obj.Proto), nil
	case selectorSetPrototype:
		proto, err := in.objectArg(selector, args)
		if err != nil {
			return nil, err
		}
		if !obj.SetPrototype(proto.Obj) {
			return nil, in.Errorf(CyclicPrototype, "%s: cyclic prototype: %v", selector, proto)
		}
		return proto, nil
	case selectorInstance:
		candidate, err := in.objectArg(selector, args)
		if err != nil {
			return nil, err
		}
		return Bool(obj.IsInstance(candidate.Obj)), nil
	}

	attr := strings.TrimPrefix(selector, SelectorPrefix)
	if attr == "" || attr == SetterSuffix {
		return nil, in.Errorf(InvalidForm, "invalid selector: %s", selector)
	}
	if strings.HasSuffix(attr, SetterSuffix) {
		if len(args) != 1 {
			return nil, in.Errorf(InvalidForm, "%s: one argument expected (got %d)", selector, len(args))
		}
		obj.SetField(strings.TrimSuffix(attr, SetterSuffix), args[0])
		return args[0], nil
	}

	v, ok := obj.Attribute(selector).Get()
	if !ok {
		return nil, in.Errorf(UndefinedAttribute, "undefined attribute %s on %s", selector, objectLabel(obj))
	}
	if v.Type == VFunction {
		return in.call(v, args, obj.Name)
	}
	if len(args) != 0 {
		return nil, in.Errorf(NotInvokable, "%s: field is not invokable: %v (%s)", selector, v, v.Type)
	}
	return v, nil
}

func (in *Interpreter) objectArg(selector string, args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, in.Errorf(InvalidForm, "%s: one argument expected (got %d)", selector, len(args))
	}
	if args[0].Type != VObject {
		return nil, in.Errorf(TypeMismatch, "%s: argument is not an object: %v (%s)", selector, args[0], args[0].Type)
	}
	return args[0], nil
}

func objectLabel(obj *Object) string {
	if obj.Name == "" {
		return "anonymous object"
	}
	return "object " + obj.Name
}
