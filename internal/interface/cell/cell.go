// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all fl values.
package cell

// T (cell) is the basic unit of storage in fl.
type T interface {
	Equal(c T) bool
	Name() string
}
