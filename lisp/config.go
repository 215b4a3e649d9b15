package lisp

import "fmt"

// Config is a function that configures an Interpreter.
type Config func(in *Interpreter) error

// WithMaximumStackHeight returns a Config that prevents the interpreter's call
// stack from exceeding n frames.  Calls that would exceed it fail with
// StackExhausted.  A value of zero or less leaves the height unbounded.
func WithMaximumStackHeight(n int) Config {
	return func(in *Interpreter) error {
		in.Stack.MaxHeight = n
		return nil
	}
}

// WithDivisionPrecision returns a Config that sets the number of fractional
// digits kept by division when a quotient does not terminate.
func WithDivisionPrecision(n int32) Config {
	return func(in *Interpreter) error {
		if n < 1 {
			return fmt.Errorf("division precision must be positive: %d", n)
		}
		in.DivisionPrecision = n
		return nil
	}
}

// WithReader returns a Config that makes the interpreter use r to parse source
// streams passed to Load.  There is no default Reader.
func WithReader(r Reader) Config {
	return func(in *Interpreter) error {
		in.Reader = r
		return nil
	}
}

// WithGlobal returns a Config that binds name to v in the global scope.  It is
// an error to rebind a name that is already defined globally.
func WithGlobal(name string, v *Value) Config {
	return func(in *Interpreter) error {
		if in.global.Resolve(name, true).IsPresent() {
			return fmt.Errorf("global already defined: %s", name)
		}
		in.global.Define(name, v)
		return nil
	}
}

// WithBuiltin returns a Config that binds a native function to name in the
// global scope.
func WithBuiltin(name string, fn Builtin) Config {
	return WithGlobal(name, Fun(name, fn))
}
