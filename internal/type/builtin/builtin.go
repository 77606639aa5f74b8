// Released under an MIT license. See LICENSE.

// Package builtin provides fl's builtin function type.
package builtin

import (
	"github.com/ergrt/float/internal/interface/cell"
	"github.com/ergrt/float/internal/interface/literal"
)

const name = "Builtin"

// Function is the Go implementation of a builtin.
type Function func(args []cell.T) (cell.T, error)

// T (builtin) is a named Go function callable from fl.
type T struct {
	fn   Function
	name string
}

// New creates a new builtin called n.
func New(n string, fn Function) *T {
	return &T{fn: fn, name: n}
}

// Call applies the builtin b to args.
func (b *T) Call(args []cell.T) (cell.T, error) {
	return b.fn(args)
}

// Equal returns true if c is the same builtin as b.
func (b *T) Equal(c cell.T) bool {
	return Is(c) && b == To(c)
}

// Literal returns the literal representation of the builtin b.
func (b *T) Literal() string {
	return "<builtin " + b.name + ">"
}

// Name returns the type name for the builtin b.
func (b *T) Name() string {
	return name
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if b, ok := c.(*T); ok {
		return b
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	_ = cell.T(&t)
	_ = literal.T(&t)
}
