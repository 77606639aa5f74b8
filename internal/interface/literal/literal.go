// Released under an MIT license. See LICENSE.

// Package literal defines the interface for fl types that have a textual representation.
package literal

import (
	"github.com/ergrt/float/internal/interface/cell"
)

// T (literal) is any type that can be expressed as a literal.
type T interface {
	Literal() string
}

// String returns the literal string representation for a cell.
// Cells without one are shown by type name.
func String(c cell.T) string {
	l, ok := c.(T)
	if !ok {
		return "<" + c.Name() + ">"
	}

	return l.Literal()
}
