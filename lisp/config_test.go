package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/ast"
)

func TestConfig(t *testing.T) {
	double := func(in *Interpreter, args []*Value) (*Value, error) {
		return builtinMul(in, append(args, Int(2)))
	}
	in, err := New(
		WithMaximumStackHeight(10),
		WithDivisionPrecision(3),
		WithGlobal("answer", Int(42)),
		WithBuiltin("double", double),
	)
	require.NoError(t, err)
	assert.Equal(t, 10, in.Stack.MaxHeight)
	assert.Equal(t, int32(3), in.DivisionPrecision)

	v, err := in.Eval(&ast.Call{Name: "double", Args: []ast.Node{&ast.Variable{Name: "answer"}}})
	require.NoError(t, err)
	assert.Equal(t, "84", v.String())

	_, err = in.LoadString("test", "1")
	assert.EqualError(t, err, "no reader configured")
}

func TestConfig_errors(t *testing.T) {
	_, err := New(WithDivisionPrecision(0))
	assert.Error(t, err)
	_, err = New(WithGlobal("Object", Null()))
	assert.EqualError(t, err, "global already defined: Object")
	_, err = New(WithBuiltin("+", builtinAdd))
	assert.Error(t, err)

	in, err := New()
	require.NoError(t, err)
	assert.EqualError(t, in.AddBuiltins(), "symbol already defined: +")
}

func TestBuiltin_nilResult(t *testing.T) {
	nothing := func(in *Interpreter, args []*Value) (*Value, error) {
		return nil, nil
	}
	in, err := New(WithBuiltin("nothing", nothing))
	require.NoError(t, err)

	def := &ast.Call{Name: "def", Args: []ast.Node{
		&ast.Variable{Name: "x"},
		&ast.Call{Name: "nothing"},
	}}
	v, err := in.Eval(def)
	require.NoError(t, err)
	assert.Equal(t, "null", v.String())
	v, err = in.Eval(&ast.Variable{Name: "x"})
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}
