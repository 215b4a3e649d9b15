package lisp

import "fmt"

// Condition classifies an evaluation failure.  A Condition is itself an error
// so callers can test for a class of failure with errors.Is.
//
//		if errors.Is(err, lisp.UndefinedVariable) { ... }
type Condition uint

// Possible Condition values
const (
	ConditionInvalid Condition = iota
	UndefinedVariable
	UndefinedFunction
	UndefinedAttribute
	RedefinedIdentifier
	InvalidForm
	ArityMismatch
	NotInvokable
	TypeMismatch
	CyclicPrototype
	DivisionByZero
	StackExhausted
	numConditions
)

var conditionStrings = [numConditions]string{
	ConditionInvalid:    "INVALID",
	UndefinedVariable:   "undefined-variable",
	UndefinedFunction:   "undefined-function",
	UndefinedAttribute:  "undefined-attribute",
	RedefinedIdentifier: "redefined-identifier",
	InvalidForm:         "invalid-form",
	ArityMismatch:       "arity-mismatch",
	NotInvokable:        "not-invokable",
	TypeMismatch:        "type-mismatch",
	CyclicPrototype:     "cyclic-prototype",
	DivisionByZero:      "division-by-zero",
	StackExhausted:      "stack-exhausted",
}

func (c Condition) String() string {
	if c >= numConditions {
		return conditionStrings[ConditionInvalid]
	}
	return conditionStrings[c]
}

// Error implements the error interface.
func (c Condition) Error() string {
	return c.String()
}

// EvalError is the error returned by every failed evaluation.  Stack is a
// snapshot of the interpreter's call stack at the point of failure and may be
// nil when the failure happened outside of any function call.
type EvalError struct {
	Condition Condition
	Message   string
	Stack     *CallStack
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Condition, e.Message)
}

// Unwrap returns the error's Condition.
func (e *EvalError) Unwrap() error {
	return e.Condition
}

// Errorf returns an EvalError with the given condition and a formatted
// message.  The returned error carries no stack.  Interpreter.Errorf should be
// preferred during evaluation.
func Errorf(c Condition, format string, v ...interface{}) *EvalError {
	return &EvalError{
		Condition: c,
		Message:   fmt.Sprintf(format, v...),
	}
}
