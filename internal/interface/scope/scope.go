// Released under an MIT license. See LICENSE.

// Package scope defines the interface for fl's environments.
package scope

import (
	"github.com/ergrt/float/internal/interface/cell"
	"github.com/ergrt/float/internal/interface/reference"
)

// T (scope) maps names to references.
type T interface {
	Define(k string, v cell.T)
	Lookup(k string) reference.T
	Names() []string
}
