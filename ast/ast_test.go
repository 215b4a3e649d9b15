package ast

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatDecimal(t *testing.T) {
	for _, text := range []string{"0", "1", "1.0", "-0.50", "123.456"} {
		assert.Equal(t, text, FormatDecimal(decimal.RequireFromString(text)))
	}
	assert.Equal(t, "1200", FormatDecimal(decimal.RequireFromString("12e2")))
}

func TestString(t *testing.T) {
	call := &Call{
		Name: "object",
		Args: []Node{
			&Variable{Name: "P"},
			&Call{Args: []Node{&Call{Name: ".m"}, &Atom{Name: "ok"}}},
		},
	}
	assert.Equal(t, "(object P ((.m) :ok))", call.String())
	assert.Equal(t, "()", (&Call{}).String())
}

func TestIsSelector(t *testing.T) {
	assert.True(t, IsSelector(".x"))
	assert.True(t, IsSelector(".x="))
	assert.False(t, IsSelector("x"))
	assert.False(t, IsSelector(""))
}
