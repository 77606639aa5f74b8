// Released under an MIT license. See LICENSE.

// Package num provides fl's native float type.
//
// Numeric literals evaluate to a num. A num is what Float validates
// against; it is not itself a Float.
package num

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ergrt/float/internal/interface/boolean"
	"github.com/ergrt/float/internal/interface/cell"
	"github.com/ergrt/float/internal/interface/floating"
	"github.com/ergrt/float/internal/interface/literal"
	"github.com/ergrt/float/internal/type/flt"
)

const name = "float"

// T (float) wraps Go's float64 type.
type T float64

// New creates a new float from the float64 f.
func New(f float64) T {
	return T(f)
}

// Parse creates a new float from its text. Literals too large for a
// float are infinite.
func Parse(s string) (T, error) {
	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return T(f), nil
	} else if err != nil {
		return 0, fmt.Errorf("invalid float literal %q", s)
	}

	return T(f), nil
}

// The float type is a cell.

// Equal returns true if c is a float with the same value as n.
func (n T) Equal(c cell.T) bool {
	return Is(c) && n == To(c)
}

// Name returns the type name for the float n.
func (n T) Name() string {
	return name
}

// The float type is a boolean.

// Bool returns false for zero and true for any other value.
func (n T) Bool() bool {
	return n != 0
}

// The float type is floating.

// Float64 returns the value of n.
func (n T) Float64() float64 {
	return float64(n)
}

// The float type has a literal representation.

// Literal returns the literal representation of the float n.
func (n T) Literal() string {
	return flt.Repr(float64(n))
}

// The float type is a stringer.

// String returns the text of the float n.
func (n T) String() string {
	return n.Literal()
}

// Value returns n as a Go float64 so it can be passed to flt.TryNew.
func (n T) Value() any {
	return float64(n)
}

// The two functions below could be generated for each type.

// Is returns true if c is a T.
func Is(c cell.T) bool {
	_, ok := c.(T)
	return ok
}

// To returns a T if c is a T; Otherwise it panics.
func To(c cell.T) T {
	if n, ok := c.(T); ok {
		return n
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	// The float type is a cell.
	_ = cell.T(t)

	// The float type has a truth value.
	_ = boolean.T(t)

	// The float type exposes a native float.
	_ = floating.T(t)

	// The float type has a literal representation.
	_ = literal.T(t)
}
