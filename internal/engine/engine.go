// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed fl commands.
package engine

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ergrt/float/internal/engine/commands"
	"github.com/ergrt/float/internal/interface/cell"
	"github.com/ergrt/float/internal/interface/literal"
	"github.com/ergrt/float/internal/reader"
	"github.com/ergrt/float/internal/reader/ast"
	"github.com/ergrt/float/internal/type/builtin"
	"github.com/ergrt/float/internal/type/env"
	"github.com/ergrt/float/internal/type/errsys"
	"github.com/ergrt/float/internal/type/num"
	"github.com/ergrt/float/internal/type/str"
)

// T (engine) evaluates commands against a top-level environment.
type T struct {
	env     *env.T
	log     *slog.Logger
	methods map[string]commands.Method
}

// New creates a new engine. Builtins live in a scope enclosing the
// user's so that they can be shadowed.
func New(log *slog.Logger) *T {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	builtins := env.New(nil)
	for k, v := range commands.Functions() {
		builtins.Define(k, v)
	}

	return &T{
		env:     env.New(builtins),
		log:     log,
		methods: commands.Methods(),
	}
}

// Evaluate evaluates the command n. Assignments evaluate to nil.
func (e *T) Evaluate(n ast.Node) (cell.T, error) {
	e.log.Debug("evaluate", "command", n.String(), "source", n.Source().String())

	if a, ok := n.(*ast.Assign); ok {
		v, err := e.eval(a.Value)
		if err != nil {
			return nil, err
		}

		e.env.Define(a.Name, v)

		return nil, nil
	}

	return e.eval(n)
}

// Names returns the names visible to commands.
func (e *T) Names() []string {
	return e.env.Names()
}

// Source evaluates every command in text. Values are written to out
// and evaluation errors to errs. It returns the number of errors.
func (e *T) Source(name, text string, out, errs io.Writer) int {
	failed := 0

	reader.Read(name, text, func(n ast.Node) {
		c, err := e.Evaluate(n)

		switch {
		case err != nil:
			failed++

			fmt.Fprintln(errs, "fl:", err)
		case c != nil:
			fmt.Fprintln(out, literal.String(c))
		}
	})

	return failed
}

func (e *T) eval(n ast.Node) (cell.T, error) {
	switch n := n.(type) {
	case *ast.Error:
		return nil, n.Err
	case *ast.Number:
		v, err := num.Parse(n.Text)
		if err != nil {
			return nil, located(n, err)
		}

		return v, nil
	case *ast.String:
		return str.New(n.Value), nil
	case *ast.Name:
		r := e.env.Lookup(n.Value)
		if r == nil {
			return nil, located(n, fmt.Errorf("%s is not defined", n.Value))
		}

		return r.Get(), nil
	case *ast.Unary:
		return e.unary(n)
	case *ast.Binary:
		return e.binary(n)
	case *ast.Call:
		return e.call(n)
	case *ast.Method:
		return e.method(n)
	case *ast.Assign:
		return nil, located(n, fmt.Errorf("cannot use assignment to %s as a value", n.Name))
	}

	return nil, located(n, fmt.Errorf("cannot evaluate %s", n))
}

func (e *T) all(ns []ast.Node) ([]cell.T, error) {
	cs := make([]cell.T, len(ns))

	for i, n := range ns {
		c, err := e.eval(n)
		if err != nil {
			return nil, err
		}

		cs[i] = c
	}

	return cs, nil
}

func (e *T) call(n *ast.Call) (cell.T, error) {
	f, err := e.eval(n.Func)
	if err != nil {
		return nil, err
	}

	if !builtin.Is(f) {
		return nil, located(n, fmt.Errorf("%s is not callable", f.Name()))
	}

	args, err := e.all(n.Args)
	if err != nil {
		return nil, err
	}

	c, err := builtin.To(f).Call(args)
	if err != nil {
		return nil, located(n, fmt.Errorf("%s: %w", n.Func, err))
	}

	return c, nil
}

func (e *T) method(n *ast.Method) (cell.T, error) {
	recv, err := e.eval(n.Receiver)
	if err != nil {
		return nil, err
	}

	m, ok := e.methods[n.Name]
	if !ok {
		return nil, located(n, fmt.Errorf("%s has no method %s", recv.Name(), n.Name))
	}

	args, err := e.all(n.Args)
	if err != nil {
		return nil, err
	}

	// A failed result passes through everything but inspection.
	if errsys.Is(recv) && n.Name != "is_ok" && n.Name != "repr" {
		return recv, nil
	}

	c, err := m(recv, args)
	if err != nil {
		return nil, located(n, err)
	}

	return c, nil
}

func located(n ast.Node, err error) error {
	return fmt.Errorf("%s: %w", n.Source(), err)
}
