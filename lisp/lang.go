package lisp

// SelectorPrefix begins every attribute selector, e.g. ``.field''.
const SelectorPrefix = "."

// SetterSuffix ends a selector that assigns a field, e.g. ``.field=''.
const SetterSuffix = "="

// PrototypeField is the object clause name that sets a new object's prototype
// rather than defining a field.
const PrototypeField = "prototype"

// RootObjectName is the global name (and display name) of the root object.
const RootObjectName = "Object"

// NullSymbol is the global name bound to the null value.
const NullSymbol = "null"
