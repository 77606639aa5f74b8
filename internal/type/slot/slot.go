// Released under an MIT license. See LICENSE.

// Package slot provides fl's variable type.
//
// Rebinding a variable replaces the value held by its slot. The value
// itself, Float! included, is never written through.
package slot

import (
	"sync"

	"github.com/ergrt/float/internal/interface/cell"
	"github.com/ergrt/float/internal/interface/reference"
)

// T (slot) holds a cell value.
type T struct {
	sync.RWMutex
	c cell.T
}

// New creates a new slot with the cell c.
func New(c cell.T) *T {
	return &T{c: c}
}

// Get returns the cell in slot s.
func (s *T) Get() cell.T {
	s.RLock()
	defer s.RUnlock()

	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *T) Set(c cell.T) {
	s.Lock()
	defer s.Unlock()

	s.c = c
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	_ = reference.T(&t)
}
