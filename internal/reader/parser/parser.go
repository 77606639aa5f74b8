// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for fl commands.
package parser

import (
	"errors"
	"fmt"

	"github.com/ergrt/float/internal/reader/ast"
	"github.com/ergrt/float/internal/reader/token"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	emit  func(ast.Node)  // Function to call to emit a parsed command.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of commands.
func New(emit func(ast.Node), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits commands until there are no more
// tokens. A command that fails to parse is emitted as an *ast.Error
// and parsing resumes on the next line.
func (p *T) Parse() {
	for t := p.peek(); t != nil; t = p.peek() {
		if t.Is('\n') {
			p.consume()

			continue
		}

		p.emit(p.command())
	}
}

func (p *T) command() (n ast.Node) {
	start := p.peek().Source()

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		var err error

		switch r := r.(type) {
		case error:
			err = r
		case string:
			err = errors.New(r)
		default:
			err = fmt.Errorf("%v", r)
		}

		n = ast.NewError(start, err)

		p.discard()
	}()

	n = p.assignment()

	if t := p.peek(); t != nil && !t.Is('\n') {
		p.unexpected(t)
	}

	return n
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

// discard skips the rest of the current line.
func (p *T) discard() {
	for t := p.peek(); t != nil; t = p.peek() {
		p.consume()

		if t.Is('\n') {
			return
		}
	}
}

func (p *T) expect(c token.Class) *token.T {
	t := p.peek()
	if !t.Is(c) {
		p.unexpected(t)
	}

	return p.consume()
}

func (p *T) peek() *token.T {
	if p.ahead == 0 {
		p.token = p.item()
		p.ahead = 1
	}

	return p.token
}

func (p *T) unexpected(t *token.T) {
	switch {
	case t == nil:
		panic("unexpected end of input")
	case t.Is(token.Error):
		panic(t.Value())
	case t.Is('\n'):
		panic(t.Source().String() + ": unexpected end of line")
	}

	panic(t.Source().String() + ": unexpected '" + t.Value() + "'")
}

// Grammar.

func (p *T) assignment() ast.Node {
	n := p.comparison()

	if !p.peek().Is('=') {
		return n
	}

	name, ok := n.(*ast.Name)
	if !ok {
		p.unexpected(p.peek())
	}

	p.consume()

	return ast.NewAssign(name.Source(), name.Value, p.comparison())
}

func (p *T) comparison() ast.Node {
	n := p.sum()

	if t := p.peek(); p.operator(t, "==", "!=", "<", "<=", ">", ">=") {
		p.consume()

		n = ast.NewBinary(t.Source(), t.Value(), n, p.sum())
	}

	return n
}

func (p *T) sum() ast.Node {
	n := p.product()

	for t := p.peek(); p.operator(t, "+", "-"); t = p.peek() {
		p.consume()

		n = ast.NewBinary(t.Source(), t.Value(), n, p.product())
	}

	return n
}

func (p *T) product() ast.Node {
	n := p.unary()

	for t := p.peek(); p.operator(t, "*", "/", "//"); t = p.peek() {
		p.consume()

		n = ast.NewBinary(t.Source(), t.Value(), n, p.unary())
	}

	return n
}

func (p *T) unary() ast.Node {
	if t := p.peek(); p.operator(t, "-", "+") {
		p.consume()

		return ast.NewUnary(t.Source(), t.Value(), p.unary())
	}

	return p.power()
}

func (p *T) power() ast.Node {
	n := p.postfix()

	if t := p.peek(); p.operator(t, "**") {
		p.consume()

		n = ast.NewBinary(t.Source(), t.Value(), n, p.unary())
	}

	return n
}

func (p *T) postfix() ast.Node {
	n := p.primary()

	for {
		t := p.peek()

		switch {
		case t.Is('.'):
			p.consume()

			name := p.expect(token.Name)
			p.expect('(')

			n = ast.NewMethod(name.Source(), n, name.Value(), p.arguments())
		case t.Is('('):
			p.consume()

			n = ast.NewCall(t.Source(), n, p.arguments())
		default:
			return n
		}
	}
}

// arguments parses a comma separated list after an opening parenthesis.
func (p *T) arguments() []ast.Node {
	args := []ast.Node{}

	if p.peek().Is(')') {
		p.consume()

		return args
	}

	for {
		args = append(args, p.comparison())

		if p.peek().Is(',') {
			p.consume()

			continue
		}

		p.expect(')')

		return args
	}
}

func (p *T) primary() ast.Node {
	t := p.peek()

	switch {
	case t.Is(token.Number):
		p.consume()

		return ast.NewNumber(t.Source(), t.Value())
	case t.Is(token.String):
		p.consume()

		return ast.NewString(t.Source(), t.Value())
	case t.Is(token.Name):
		p.consume()

		return ast.NewName(t.Source(), t.Value())
	case t.Is('('):
		p.consume()

		n := p.comparison()

		p.expect(')')

		return n
	}

	p.unexpected(t)

	return nil
}

func (p *T) operator(t *token.T, ops ...string) bool {
	if !t.Is(token.Operator) {
		return false
	}

	for _, op := range ops {
		if t.Value() == op {
			return true
		}
	}

	return false
}
