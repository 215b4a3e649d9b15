package repl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/lisp"
	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/parser"
)

// ExitCommand ends a session when entered on a line by itself.
const ExitCommand = "exit"

// Options configures a repl.
type Options struct {
	Prompt string
	// Trace causes the call stack of a failed evaluation to be printed after
	// the error message.
	Trace  bool
	Logger *zap.Logger
	Stdout io.Writer
	Stderr io.Writer
}

func (opts *Options) withDefaults() Options {
	o := *opts
	if o.Prompt == "" {
		o.Prompt = "> "
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// Session evaluates lines of input in a single interpreter.  Input that ends
// in the middle of an expression is buffered until a later line completes
// it.
type Session struct {
	in   *lisp.Interpreter
	opts Options
	buf  []byte
	done bool
}

// NewSession returns a Session that evaluates input using in.
func NewSession(in *lisp.Interpreter, opts *Options) *Session {
	if opts == nil {
		opts = &Options{}
	}
	return &Session{
		in:   in,
		opts: opts.withDefaults(),
	}
}

// Done returns true after the exit command has been entered.
func (s *Session) Done() bool {
	return s.done
}

// Pending returns true when buffered input is waiting for more lines.
func (s *Session) Pending() bool {
	return len(s.buf) != 0
}

// Reset discards any buffered input.
func (s *Session) Reset() {
	s.buf = nil
}

// Feed adds a line of input to the session.  Once the buffered input holds
// complete expressions they are evaluated and their values printed.  Feed
// returns true if more input is needed to complete an expression.
func (s *Session) Feed(line string) bool {
	if !s.Pending() && strings.TrimSpace(line) == ExitCommand {
		s.done = true
		return false
	}
	s.buf = append(s.buf, line...)
	s.buf = append(s.buf, '\n')
	exprs, err := parser.Parse("stdin", s.buf)
	if errors.Is(err, parser.ErrIncomplete) {
		return true
	}
	s.buf = nil
	if err != nil {
		s.opts.Logger.Debug("parse failed", zap.Error(err))
		s.errln("error:", err)
		return false
	}
	for _, expr := range exprs {
		v, err := s.in.Eval(expr)
		if err != nil {
			s.opts.Logger.Debug("evaluation failed", zap.Stringer("expr", expr), zap.Error(err))
			s.errln("error:", err)
			s.trace(err)
			return false
		}
		fmt.Fprintln(s.opts.Stdout, v)
	}
	return false
}

func (s *Session) trace(err error) {
	var lerr *lisp.EvalError
	if !s.opts.Trace || !errors.As(err, &lerr) || lerr.Stack == nil {
		return
	}
	var buf bytes.Buffer
	lerr.Stack.DebugPrint(&buf)
	s.opts.Stderr.Write(buf.Bytes())
}

func (s *Session) errln(v ...interface{}) {
	fmt.Fprintln(s.opts.Stderr, v...)
}

// RunRepl runs a simple repl over the terminal, evaluating input in in.
func RunRepl(in *lisp.Interpreter, opts *Options) error {
	s := NewSession(in, opts)
	prompt := s.opts.Prompt
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
		Stdout: s.opts.Stdout,
		Stderr: s.opts.Stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	for !s.Done() {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			s.Reset()
			rl.SetPrompt(prompt)
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if s.Feed(line) {
			rl.SetPrompt(contPrompt)
		} else {
			rl.SetPrompt(prompt)
		}
	}
	if s.Pending() {
		s.opts.Logger.Debug("discarding incomplete input", zap.ByteString("input", s.buf))
	}
	s.opts.Logger.Debug("repl done")
	return nil
}
