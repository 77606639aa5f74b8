// Released under an MIT license. See LICENSE.

// Package flt provides fl's immutable float type.
package flt

import (
	"errors"
	"fmt"

	"github.com/ergrt/float/internal/interface/boolean"
	"github.com/ergrt/float/internal/interface/cell"
	"github.com/ergrt/float/internal/interface/floating"
	"github.com/ergrt/float/internal/interface/literal"
)

const name = "Float"

// ErrNotFloat is returned when a Float is requested for a value that
// is not already a native float.
var ErrNotFloat = errors.New("not a float")

// T (Float) wraps Go's float64 type. A T is never altered.
type T float64

// New wraps the float64 f as a Float. It does not validate.
func New(f float64) T {
	return T(f)
}

// TryNew creates a Float from v if v is already a native float.
func TryNew(v any) (T, error) {
	switch v := v.(type) {
	case T:
		return v, nil
	case float64:
		return New(v), nil
	case float32:
		return New(float64(v)), nil
	}

	return 0, fmt.Errorf("%w: %s", ErrNotFloat, kind(v))
}

// kind names the type of v, preferring the runtime's own type names.
func kind(v any) string {
	if c, ok := v.(cell.T); ok {
		return c.Name()
	}

	return fmt.Sprintf("%T", v)
}

// The Float type is a cell.

// Equal returns true if c is a Float with the same value as x.
func (x T) Equal(c cell.T) bool {
	return Is(c) && x == To(c)
}

// Name returns the type name for the Float x.
func (x T) Name() string {
	return name
}

// The Float type is a boolean.

// Bool returns false for zero and true for any other value.
func (x T) Bool() bool {
	return x != 0
}

// The Float type is floating.

// Float64 returns the value of x as a float64.
func (x T) Float64() float64 {
	return float64(x)
}

// The Float type has a literal representation.

// Literal returns the literal representation of the Float x.
func (x T) Literal() string {
	return x.String()
}

// The Float type is a stringer.

// String returns the text of the Float x.
func (x T) String() string {
	return Repr(float64(x))
}

// Comparisons delegate to native float comparison.

// Cmp returns -1, 0 or +1 depending on whether x is less than, equal
// to, or greater than y. Unordered values (NaN) compare as 0.
func (x T) Cmp(y floating.T) int {
	a, b := float64(x), y.Float64()

	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// Eq reports whether x == y.
func (x T) Eq(y floating.T) bool {
	return float64(x) == y.Float64()
}

// Ne reports whether x != y.
func (x T) Ne(y floating.T) bool {
	return float64(x) != y.Float64()
}

// Lt reports whether x < y.
func (x T) Lt(y floating.T) bool {
	return float64(x) < y.Float64()
}

// Le reports whether x <= y.
func (x T) Le(y floating.T) bool {
	return float64(x) <= y.Float64()
}

// Gt reports whether x > y.
func (x T) Gt(y floating.T) bool {
	return float64(x) > y.Float64()
}

// Ge reports whether x >= y.
func (x T) Ge(y floating.T) bool {
	return float64(x) >= y.Float64()
}

// The two functions below could be generated for each type.

// Is returns true if c is a T.
func Is(c cell.T) bool {
	_, ok := c.(T)
	return ok
}

// To returns a T if c is a T; Otherwise it panics.
func To(c cell.T) T {
	if x, ok := c.(T); ok {
		return x
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	// The Float type is a cell.
	_ = cell.T(t)

	// The Float type has a truth value.
	_ = boolean.T(t)

	// The Float type exposes a native float.
	_ = floating.T(t)

	// The Float type has a literal representation.
	_ = literal.T(t)

	// The Float type is a stringer.
	_ = fmt.Stringer(t)
}
