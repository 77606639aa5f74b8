// Released under an MIT license. See LICENSE.

// Package truth provides fl's boolean value type.
package truth

import (
	"github.com/ergrt/float/internal/interface/boolean"
	"github.com/ergrt/float/internal/interface/cell"
	"github.com/ergrt/float/internal/interface/literal"
)

const name = "Bool"

// T (Bool) wraps Go's bool type.
type T bool

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// New returns the shared Bool for b.
func New(b bool) *T {
	if b {
		return True
	}

	return False
}

// Bool returns the boolean value of the Bool b.
func (b *T) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is a Bool with a matching value.
func (b *T) Equal(c cell.T) bool {
	return Is(c) && b.Bool() == To(c).Bool()
}

// Literal returns the literal representation of the Bool b.
func (b *T) Literal() string {
	return b.String()
}

// Name returns the type name for the Bool b.
func (b *T) Name() string {
	return name
}

// String returns the text of the Bool b.
func (b *T) String() string {
	if bool(*b) {
		return "True"
	}

	return "False"
}

func f() *T {
	v := T(false)

	return &v
}

func t() *T {
	v := T(true)

	return &v
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

	// The Bool type is a cell.
	_ = cell.T(&t)

	// The Bool type has a literal representation.
	_ = literal.T(&t)

	// The Bool type has a truth value.
	_ = boolean.T(&t)
}
