// Released under an MIT license. See LICENSE.

// Package fltmut provides fl's mutable float cell type.
package fltmut

import (
	"fmt"

	"github.com/ergrt/float/internal/control"
	"github.com/ergrt/float/internal/interface/boolean"
	"github.com/ergrt/float/internal/interface/cell"
	"github.com/ergrt/float/internal/interface/floating"
	"github.com/ergrt/float/internal/interface/literal"
	"github.com/ergrt/float/internal/type/flt"
)

const name = "Float!"

// T (Float!) owns exactly one Float. Arithmetic on a T produces a new
// T; the owned Float is never replaced.
type T struct {
	v flt.T
}

// New creates a Float! from anything flt.TryNew accepts or from any
// value that exposes a native float, including another Float!.
func New(v any) (*T, error) {
	if f, ok := v.(floating.T); ok {
		return Mutate(flt.New(f.Float64())), nil
	}

	x, err := flt.TryNew(v)

	return control.Then(x, err, Mutate)
}

// Mutate returns a new Float! that owns the Float v.
func Mutate(v flt.T) *T {
	return &T{v: v}
}

// Deref returns the Float owned by c.
func (c *T) Deref() flt.T {
	return c.v
}

// The Float! type is a cell.

// Equal returns true if d is a Float! holding the same value as c.
func (c *T) Equal(d cell.T) bool {
	return Is(d) && c.v == To(d).v
}

// Name returns the type name for the Float! c.
func (c *T) Name() string {
	return name
}

// The Float! type is a boolean.

// Bool returns the truth value of the owned Float.
func (c *T) Bool() bool {
	return c.v.Bool()
}

// The Float! type is floating.

// Float64 returns the owned value as a float64.
func (c *T) Float64() float64 {
	return c.v.Float64()
}

// The Float! type has a literal representation.

// Literal returns the literal representation of the owned Float.
func (c *T) Literal() string {
	return c.v.Literal()
}

// The Float! type is a stringer.

// String returns the text of the owned Float.
func (c *T) String() string {
	return c.v.String()
}

// Comparisons accept a Float or a Float!.

// Eq reports whether c == o.
func (c *T) Eq(o floating.T) bool {
	return c.v.Eq(o)
}

// Ne reports whether c != o.
func (c *T) Ne(o floating.T) bool {
	return c.v.Ne(o)
}

// Lt reports whether c < o.
func (c *T) Lt(o floating.T) bool {
	return c.v.Lt(o)
}

// Le reports whether c <= o.
func (c *T) Le(o floating.T) bool {
	return c.v.Le(o)
}

// Gt reports whether c > o.
func (c *T) Gt(o floating.T) bool {
	return c.v.Gt(o)
}

// Ge reports whether c >= o.
func (c *T) Ge(o floating.T) bool {
	return c.v.Ge(o)
}

// Arithmetic is limited to + - * // and **. There is no true division
// and there are no reflected forms.

// Add returns a new Float! holding c + o.
func (c *T) Add(o floating.T) (*T, error) {
	return wrap(c.v.Add(o))
}

// Sub returns a new Float! holding c - o.
func (c *T) Sub(o floating.T) (*T, error) {
	return wrap(c.v.Sub(o))
}

// Mul returns a new Float! holding c * o.
func (c *T) Mul(o floating.T) (*T, error) {
	return wrap(c.v.Mul(o))
}

// FloorDiv returns a new Float! holding c // o.
func (c *T) FloorDiv(o floating.T) (*T, error) {
	return wrap(c.v.FloorDiv(o))
}

// Pow returns a new Float! holding c ** o.
func (c *T) Pow(o floating.T) (*T, error) {
	return wrap(c.v.Pow(o))
}

// Apply dispatches o to the matching method. It fails for operators
// a Float! does not support.
func (c *T) Apply(o flt.Op, y floating.T) (*T, error) {
	switch o {
	case flt.Plus:
		return c.Add(y)
	case flt.Minus:
		return c.Sub(y)
	case flt.Times:
		return c.Mul(y)
	case flt.FloorDivide:
		return c.FloorDiv(y)
	case flt.Power:
		return c.Pow(y)
	}

	return nil, fmt.Errorf("%s does not support %s", name, o)
}

func wrap(v flt.T, err error) (*T, error) {
	return control.Then(v, err, Mutate)
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if m, ok := c.(*T); ok {
		return m
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	// The Float! type is a cell.
	_ = cell.T(&t)

	// The Float! type has a truth value.
	_ = boolean.T(&t)

	// The Float! type exposes a native float.
	_ = floating.T(&t)

	// The Float! type has a literal representation.
	_ = literal.T(&t)

	// The Float! type is a stringer.
	_ = fmt.Stringer(&t)
}
