package rdparser

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/ast"
	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/lisp"
	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/parser/lexer"
	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/parser/token"
)

// ErrIncomplete is matched by parse errors caused by input that ended in the
// middle of an expression.  Supplying more input may allow parsing to
// succeed.
var ErrIncomplete = errors.New("incomplete expression")

// Error is a syntax error with the location at which it was detected.
type Error struct {
	Source     *token.Location
	Msg        string
	Incomplete bool
}

func (err *Error) Error() string {
	if err.Source == nil {
		return err.Msg
	}
	return fmt.Sprintf("%v: %s", err.Source, err.Msg)
}

// Is allows errors.Is(err, ErrIncomplete) to detect truncated input.
func (err *Error) Is(target error) bool {
	return err.Incomplete && target == ErrIncomplete
}

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Interpreter.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, r io.Reader) ([]ast.Node, error) {
	s := token.NewScanner(name, r)
	p := New(s)
	return p.ParseProgram()
}

// Parser is a lisp parser.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
	}
	p.initTokens()
	return p
}

func (p *Parser) initTokens() {
	// Setup the peek token so the parser is in the proper state when the first
	// parse function is called.
	p.ReadToken()
}

// ParseProgram parses expressions until the end of input.
func (p *Parser) ParseProgram() ([]ast.Node, error) {
	var exprs []ast.Node

	for {
		p.skipComments()
		if p.expect(token.EOF) {
			break
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}

	return exprs, nil
}

// ParseExpression parses a single expression.
func (p *Parser) ParseExpression() (ast.Node, error) {
	p.skipComments()
	switch p.PeekType() {
	case token.NUMBER:
		return p.ParseNumber()
	case token.ATOM:
		return p.ParseAtom()
	case token.SYMBOL:
		return p.ParseSymbol()
	case token.PAREN_L, token.BRACE_L:
		return p.ParseList()
	case token.EOF:
		p.ReadToken()
		return nil, p.incomplete("unexpected end of input")
	case token.ERROR, token.INVALID:
		p.ReadToken()
		if p.Token().Text == "unexpected EOF" {
			return nil, p.incomplete(p.Token().Text)
		}
		return nil, p.errorf("%s", p.Token().Text)
	default:
		p.ReadToken()
		return nil, p.errorf("unexpected %s", p.Token().Type)
	}
}

func (p *Parser) ParseNumber() (ast.Node, error) {
	if !p.expect(token.NUMBER) {
		return nil, p.errorf("invalid number literal: %v", p.PeekType())
	}
	text := p.Token().Text
	x, err := decimal.NewFromString(text)
	if err != nil {
		return nil, p.errorf("invalid number literal: %v", text)
	}
	return &ast.Number{Value: x}, nil
}

func (p *Parser) ParseAtom() (ast.Node, error) {
	if !p.expect(token.ATOM) {
		return nil, p.errorf("invalid atom: %v", p.PeekType())
	}
	return &ast.Atom{Name: p.Token().Text[1:]}, nil
}

func (p *Parser) ParseSymbol() (ast.Node, error) {
	if !p.expect(token.SYMBOL) {
		return nil, p.errorf("invalid symbol: %v", p.PeekType())
	}
	return &ast.Variable{Name: p.Token().Text}, nil
}

// ParseList parses a parenthesized or bracketed list.  A list whose first
// element is a symbol becomes a call naming that symbol.
func (p *Parser) ParseList() (ast.Node, error) {
	if !p.expect(token.PAREN_L, token.BRACE_L) {
		return nil, p.errorf("invalid list: %v", p.PeekType())
	}
	open := p.Token()
	closer := open.Type.Closer()
	var cells []ast.Node
	for {
		p.skipComments()
		if p.expect(token.EOF) {
			return nil, p.incompletef(open.Source, "unmatched %s", open.Text)
		}
		if p.expect(closer) {
			break
		}
		if p.expect(token.PAREN_R, token.BRACE_R) {
			return nil, p.errorf("%s closes %s opened at %v", p.Token().Text, open.Text, open.Source)
		}
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		cells = append(cells, x)
	}
	call := &ast.Call{Args: cells}
	if len(cells) > 0 {
		if v, ok := cells[0].(*ast.Variable); ok {
			call.Name = v.Name
			call.Args = cells[1:]
		}
	}
	return call, nil
}

func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

func (p *Parser) Token() *token.Token {
	return p.curr
}

func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) skipComments() {
	for p.expect(token.COMMENT) {
	}
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	if len(typ) == 0 {
		return peekType != token.EOF
	}
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(format string, v ...interface{}) error {
	return &Error{
		Source: p.Token().Source,
		Msg:    fmt.Sprintf(format, v...),
	}
}

func (p *Parser) incomplete(msg string) error {
	return p.incompletef(p.Token().Source, "%s", msg)
}

func (p *Parser) incompletef(loc *token.Location, format string, v ...interface{}) error {
	return &Error{
		Source:     loc,
		Msg:        fmt.Sprintf(format, v...),
		Incomplete: true,
	}
}
