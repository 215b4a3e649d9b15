package lisp

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/samber/mo"
)

// Scope is a lexical environment.  A Scope owns its own bindings and refers to
// (but does not own) its parent, which may be shared by many children.
// Bindings are kept in insertion order.
type Scope struct {
	Parent *Scope
	vars   *linkedhashmap.Map
}

// Binding is a name bound to a value, as returned by Scope.Collect.
type Binding struct {
	Name  string
	Value *Value
}

// NewScope returns a new, empty Scope nested under parent.  The parent may be
// nil for a root scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Parent: parent,
		vars:   linkedhashmap.New(),
	}
}

// Define binds name to v in s, replacing any binding of name already in s.
// Bindings in parent scopes are never touched.  A replaced binding keeps its
// original position in the ordering.
func (s *Scope) Define(name string, v *Value) {
	if v == nil {
		panic("nil value")
	}
	s.vars.Put(name, v)
}

// Resolve returns the value bound to name.  When local is false the parent
// chain is searched outward from s.  When local is true only s is inspected.
func (s *Scope) Resolve(name string, local bool) mo.Option[*Value] {
	for scope := s; scope != nil; scope = scope.Parent {
		if v, ok := scope.vars.Get(name); ok {
			return mo.Some(v.(*Value))
		}
		if local {
			break
		}
	}
	return mo.None[*Value]()
}

// Rebind replaces the value of name in the nearest scope, starting with s,
// that binds it.  Rebind returns false if no scope in the chain binds name, in
// which case nothing is modified.
func (s *Scope) Rebind(name string, v *Value) bool {
	for scope := s; scope != nil; scope = scope.Parent {
		if _, ok := scope.vars.Get(name); ok {
			scope.vars.Put(name, v)
			return true
		}
	}
	return false
}

// Collect returns the bindings visible from s.  When local is true only the
// bindings of s are returned.  Otherwise the bindings of the whole chain are
// merged with closer scopes overriding farther ones.  Collect is meant for
// display and introspection only.
func (s *Scope) Collect(local bool) []Binding {
	if local || s.Parent == nil {
		return s.bindings()
	}
	merged := linkedhashmap.New()
	for _, b := range s.Parent.Collect(false) {
		merged.Put(b.Name, b.Value)
	}
	it := s.vars.Iterator()
	for it.Next() {
		merged.Put(it.Key(), it.Value())
	}
	return toBindings(merged)
}

// Len returns the number of bindings in s, excluding its parents.
func (s *Scope) Len() int {
	return s.vars.Size()
}

func (s *Scope) bindings() []Binding {
	return toBindings(s.vars)
}

func toBindings(m *linkedhashmap.Map) []Binding {
	bindings := make([]Binding, 0, m.Size())
	it := m.Iterator()
	for it.Next() {
		bindings = append(bindings, Binding{
			Name:  it.Key().(string),
			Value: it.Value().(*Value),
		})
	}
	return bindings
}
