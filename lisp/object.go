package lisp

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Object is a prototype based object.  Its fields and methods live in Scope,
// whose lexical parent is the scope that was active when the object was
// constructed.  Proto is a delegation link consulted by attribute lookup only;
// it never takes part in lexical lookup.
type Object struct {
	Name  string
	Scope *Scope
	Proto *Object
}

// NewObject returns an object with an empty own scope nested under parent.
func NewObject(name string, parent *Scope) *Object {
	return &Object{
		Name:  name,
		Scope: NewScope(parent),
	}
}

// Attribute resolves the selector key (e.g. ``.field'') along the prototype
// chain of obj.  On each object the dotted key is consulted first, then the
// plain field name.  The first object in the chain binding either spelling
// wins.
func (obj *Object) Attribute(key string) mo.Option[*Value] {
	field := strings.TrimPrefix(key, SelectorPrefix)
	for o := obj; o != nil; o = o.Proto {
		if v := o.Scope.Resolve(key, true); v.IsPresent() {
			return v
		}
		if v := o.Scope.Resolve(field, true); v.IsPresent() {
			return v
		}
	}
	return mo.None[*Value]()
}

// SetField binds name to v in the own scope of obj.  When obj already binds
// the dotted spelling of name, that binding is replaced so the new value is
// the one Attribute finds.  Prototypes are never modified, so setting a field
// that obj inherits shadows it.
func (obj *Object) SetField(name string, v *Value) {
	if key := SelectorPrefix + name; obj.Scope.Resolve(key, true).IsPresent() {
		obj.Scope.Define(key, v)
		return
	}
	obj.Scope.Define(name, v)
}

// SetPrototype makes proto the prototype of obj.  A nil proto clears the
// prototype.  SetPrototype returns false and leaves obj unchanged if obj is
// proto or appears in the prototype chain of proto.
func (obj *Object) SetPrototype(proto *Object) bool {
	for o := proto; o != nil; o = o.Proto {
		if o == obj {
			return false
		}
	}
	obj.Proto = proto
	return true
}

// IsInstance returns true if candidate is obj or appears in its prototype
// chain.
func (obj *Object) IsInstance(candidate *Object) bool {
	for o := obj; o != nil; o = o.Proto {
		if o == candidate {
			return true
		}
	}
	return false
}

// Fields returns the fields of obj in definition order.  Methods and any other
// dotted bindings are excluded, as are inherited fields.
func (obj *Object) Fields() []Binding {
	return lo.Filter(obj.Scope.Collect(true), func(b Binding, _ int) bool {
		return !strings.HasPrefix(b.Name, SelectorPrefix)
	})
}
