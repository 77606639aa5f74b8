// Released under an MIT license. See LICENSE.

package engine

import (
	"fmt"

	"github.com/ergrt/float/internal/control"
	"github.com/ergrt/float/internal/interface/cell"
	"github.com/ergrt/float/internal/interface/floating"
	"github.com/ergrt/float/internal/reader/ast"
	"github.com/ergrt/float/internal/type/errsys"
	"github.com/ergrt/float/internal/type/flt"
	"github.com/ergrt/float/internal/type/fltmut"
	"github.com/ergrt/float/internal/type/num"
	"github.com/ergrt/float/internal/type/truth"
)

// comparer is satisfied by both Float and Float!.
type comparer interface {
	Eq(floating.T) bool
	Ne(floating.T) bool
	Lt(floating.T) bool
	Le(floating.T) bool
	Gt(floating.T) bool
	Ge(floating.T) bool
}

//nolint:gochecknoglobals
var comparisons = map[string]func(comparer, floating.T) bool{
	"==": comparer.Eq,
	"!=": comparer.Ne,
	"<":  comparer.Lt,
	"<=": comparer.Le,
	">":  comparer.Gt,
	">=": comparer.Ge,
}

func (e *T) binary(n *ast.Binary) (cell.T, error) {
	l, err := e.eval(n.Left)
	if err != nil {
		return nil, err
	}

	r, err := e.eval(n.Right)
	if err != nil {
		return nil, err
	}

	if cmp, ok := comparisons[n.Op]; ok {
		return e.compare(n, cmp, l, r)
	}

	op, ok := flt.Lookup(n.Op)
	if !ok {
		return nil, located(n, fmt.Errorf("unknown operator %s", n.Op))
	}

	return e.arithmetic(n, op, l, r)
}

func (e *T) unary(n *ast.Unary) (cell.T, error) {
	c, err := e.eval(n.Operand)
	if err != nil {
		return nil, err
	}

	if errsys.Is(c) {
		return c, nil
	}

	v, ok := floating.Value(c)
	if !ok || fltmut.Is(c) {
		return nil, located(n, fmt.Errorf("bad operand type for unary %s: %s", n.Op, c.Name()))
	}

	if n.Op == "+" {
		return c, nil
	}

	if flt.Is(c) {
		return flt.To(c).Neg(), nil
	}

	return num.New(-v), nil
}

// arithmetic dispatches on the kinds of l and r. The left operand's
// own method is preferred; a native float on the left defers to the
// reflected method of a Float on the right.
func (e *T) arithmetic(n ast.Node, op flt.Op, l, r cell.T) (cell.T, error) {
	switch {
	case errsys.Is(l):
		return l, nil
	case errsys.Is(r):
		return r, nil
	}

	lf, lok := l.(floating.T)
	rf, rok := r.(floating.T)

	if !lok || !rok {
		return nil, unsupported(n, op, l, r)
	}

	var (
		c   cell.T
		err error
	)

	switch {
	case fltmut.Is(l):
		e.log.Debug("dispatch", "op", op.String(), "left", l.Name(), "right", r.Name(), "form", "cell")

		var m *fltmut.T

		m, err = fltmut.To(l).Apply(op, rf)
		c, err = control.Then(m, err, asCell[*fltmut.T])
	case flt.Is(l):
		e.log.Debug("dispatch", "op", op.String(), "left", l.Name(), "right", r.Name(), "form", "direct")

		var v flt.T

		v, err = flt.To(l).Apply(op, rf)
		c, err = control.Then(v, err, asCell[flt.T])
	case flt.Is(r):
		e.log.Debug("dispatch", "op", op.String(), "left", l.Name(), "right", r.Name(), "form", "reflected")

		var v flt.T

		v, err = flt.To(r).ApplyReflected(op, lf)
		c, err = control.Then(v, err, asCell[flt.T])
	case num.Is(l) && num.Is(r):
		var v float64

		v, err = flt.Native(op, lf.Float64(), rf.Float64())
		c, err = control.Then(v, err, func(f float64) cell.T { return num.New(f) })
	default:
		return nil, unsupported(n, op, l, r)
	}

	if err != nil {
		return nil, located(n, err)
	}

	return c, nil
}

func (e *T) compare(n *ast.Binary, cmp func(comparer, floating.T) bool, l, r cell.T) (cell.T, error) {
	lv, lok := floating.Value(l)
	rv, rok := floating.Value(r)

	if !lok || !rok {
		switch n.Op {
		case "==":
			return truth.New(l.Equal(r)), nil
		case "!=":
			return truth.New(!l.Equal(r)), nil
		}

		return nil, located(n, fmt.Errorf("'%s' not supported between %s and %s", n.Op, l.Name(), r.Name()))
	}

	c, ok := l.(comparer)
	if !ok {
		c = flt.New(lv)
	}

	return truth.New(cmp(c, flt.New(rv))), nil
}

func asCell[T cell.T](v T) cell.T {
	return v
}

func unsupported(n ast.Node, op flt.Op, l, r cell.T) error {
	return located(n, fmt.Errorf("unsupported operand types for %s: %s and %s", op, l.Name(), r.Name()))
}
