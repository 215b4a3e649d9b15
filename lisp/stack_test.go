package lisp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallStack(t *testing.T) {
	s := &CallStack{MaxHeight: 2}
	assert.Nil(t, s.Top())
	assert.True(t, s.Push(CallFrame{Name: "f"}))
	assert.True(t, s.Push(CallFrame{Name: ".m", Receiver: "Point"}))
	assert.False(t, s.Push(CallFrame{Name: "g"}))
	assert.Equal(t, 2, s.Height())
	assert.Equal(t, "Point .m", s.Top().String())

	cp := s.Copy()
	assert.Equal(t, CallFrame{Name: ".m", Receiver: "Point"}, s.Pop())
	assert.Equal(t, 1, s.Height())
	assert.Equal(t, 2, cp.Height())

	var buf bytes.Buffer
	_, err := cp.DebugPrint(&buf)
	assert.NoError(t, err)
	assert.Equal(t, "Stack Trace [2 frames -- entrypoint last]:\n  height 1: Point .m\n  height 0: f\n", buf.String())

	s.Pop()
	assert.Panics(t, func() { s.Pop() })

	var nilStack *CallStack
	assert.Equal(t, 0, nilStack.Height())
}
