// Released under an MIT license. See LICENSE.

// Package boolean defines the interface for fl's types with a truth value.
package boolean

import (
	"fmt"

	"github.com/ergrt/float/internal/interface/cell"
)

// T (boolean) is anything that evaluates to a true or false value.
type T interface {
	Bool() bool
}

// Value returns the bool value for a cell, if possible.
func Value(c cell.T) (bool, error) {
	b, ok := c.(T)
	if !ok {
		return false, fmt.Errorf("%s cannot be used in a boolean expression", c.Name())
	}

	return b.Bool(), nil
}
