// Released under an MIT license. See LICENSE.

// Package floating defines the interface for fl's float-like types.
package floating

import (
	"github.com/ergrt/float/internal/interface/cell"
)

// T (floating) is anything that exposes an underlying float value.
// Both the immutable Float and the mutable Float! satisfy it, so
// operations that accept either normalize through Float64.
type T interface {
	Float64() float64
}

// Value returns the float64 value for a cell and true, if possible.
func Value(c cell.T) (float64, bool) {
	f, ok := c.(T)
	if !ok {
		return 0, false
	}

	return f.Float64(), true
}
