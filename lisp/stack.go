package lisp

import (
	"fmt"
	"io"
)

// CallStack is the interpreter's function call stack.  It exists for
// diagnostics and to bound recursion depth; values are not stored on it.
type CallStack struct {
	Frames []CallFrame

	// MaxHeight is the greatest number of frames the stack may hold.  A
	// MaxHeight of zero or less means the height is unbounded.
	MaxHeight int
}

// CallFrame is one frame in the CallStack
type CallFrame struct {
	// Name is the name of the called function.  For methods Name is the
	// selector used in the call.
	Name string
	// Receiver is the display name of the object a method was invoked on.
	// It is empty for ordinary function calls and anonymous objects.
	Receiver string
}

func (f *CallFrame) String() string {
	if f.Receiver == "" {
		return f.Name
	}
	return f.Receiver + " " + f.Name
}

// Copy creates a copy of the current stack so that it can be attached to an
// EvalError.
func (s *CallStack) Copy() *CallStack {
	frames := make([]CallFrame, len(s.Frames))
	copy(frames, s.Frames)
	return &CallStack{Frames: frames, MaxHeight: s.MaxHeight}
}

// Height returns the number of frames on the stack.
func (s *CallStack) Height() int {
	if s == nil {
		return 0
	}
	return len(s.Frames)
}

// Top returns the CallFrame at the top of the stack or nil if none exists.
func (s *CallStack) Top() *CallFrame {
	if s == nil || len(s.Frames) == 0 {
		return nil
	}
	return &s.Frames[len(s.Frames)-1]
}

// Push pushes frame onto s.  Push returns false without modifying s if the
// push would exceed s.MaxHeight.
func (s *CallStack) Push(frame CallFrame) bool {
	if s.MaxHeight > 0 && len(s.Frames) >= s.MaxHeight {
		return false
	}
	s.Frames = append(s.Frames, frame)
	return true
}

// Pop removes the top CallFrame from the stack and returns it.
func (s *CallStack) Pop() CallFrame {
	if len(s.Frames) < 1 {
		panic("pop called on an empty stack")
	}
	f := s.Frames[len(s.Frames)-1]
	s.Frames[len(s.Frames)-1] = CallFrame{}
	s.Frames = s.Frames[:len(s.Frames)-1]
	return f
}

// DebugPrint prints s
func (s *CallStack) DebugPrint(w io.Writer) (int, error) {
	n, err := fmt.Fprintf(w, "Stack Trace [%d frames -- entrypoint last]:\n", len(s.Frames))
	if err != nil {
		return n, err
	}
	indent := "  "
	for i := len(s.Frames) - 1; i >= 0; i-- {
		_n, err := fmt.Fprintf(w, "%sheight %d: %s\n", indent, i, s.Frames[i].String())
		n += _n
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
