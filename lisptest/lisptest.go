// Package lisptest runs table driven evaluation tests against a fresh
// interpreter per test.
package lisptest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/lisp"
	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/parser"
)

// TestExpr is a lisp expression and its expected outcome.  When Err is
// non-nil evaluation must fail with an error matching Err (using errors.Is)
// and Result is ignored.  Otherwise evaluation must succeed and the printed
// value must equal Result.
type TestExpr struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
	Err    error  // the expected failure
}

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by one lisp.Interpreter.
type TestSequence []TestExpr

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewInterpreter returns an interpreter with a parser attached.  Additional
// configuration is applied after the reader is set.
func NewInterpreter(config ...lisp.Config) (*lisp.Interpreter, error) {
	config = append([]lisp.Config{lisp.WithReader(parser.NewReader())}, config...)
	return lisp.New(config...)
}

// RunTestSuite runs each TestSequence in tests on isolated interpreters.
func RunTestSuite(t *testing.T, tests TestSuite, config ...lisp.Config) {
	for _, test := range tests {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			in, err := NewInterpreter(config...)
			require.NoError(t, err)
			for i, expr := range test.TestSequence {
				exprs, err := parser.Parse(test.Name, []byte(expr.Expr))
				if !assert.NoError(t, err, "expr %d: parse error", i) {
					continue
				}
				if !assert.Len(t, exprs, 1, "expr %d: exactly one expression expected", i) {
					continue
				}
				v, err := in.Eval(exprs[0])
				if expr.Err != nil {
					assert.ErrorIs(t, err, expr.Err, "expr %d: %s", i, expr.Expr)
					continue
				}
				if !assert.NoError(t, err, "expr %d: %s", i, expr.Expr) {
					logStack(t, err)
					continue
				}
				assert.Equal(t, expr.Result, v.String(), "expr %d: %s", i, expr.Expr)
			}
			assert.Same(t, in.Global(), in.Scope(), "current scope not restored")
			assert.Zero(t, in.Stack.Height(), "call stack not unwound")
		})
	}
}

// RunTestFile loads the lisp source file at path and checks that its final
// expression prints as result.
func RunTestFile(t *testing.T, path string, result string, config ...lisp.Config) {
	source, err := os.ReadFile(path)
	require.NoError(t, err)
	in, err := NewInterpreter(config...)
	require.NoError(t, err)
	v, err := in.LoadBytes(filepath.Base(path), source)
	if !assert.NoError(t, err) {
		logStack(t, err)
		return
	}
	assert.Equal(t, result, v.String())
}

func logStack(t *testing.T, err error) {
	var lerr *lisp.EvalError
	if errors.As(err, &lerr) && lerr.Stack != nil {
		var buf bytes.Buffer
		lerr.Stack.DebugPrint(&buf)
		t.Log(buf.String())
	}
}
