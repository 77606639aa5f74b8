// Released under an MIT license. See LICENSE.

// Package env provides fl's name to value mapping type.
package env

import (
	"sort"
	"sync"

	"github.com/ergrt/float/internal/interface/cell"
	"github.com/ergrt/float/internal/interface/reference"
	"github.com/ergrt/float/internal/interface/scope"
	"github.com/ergrt/float/internal/type/slot"
)

// T (env) maps names to references, falling back to an enclosing scope.
type T struct {
	sync.RWMutex
	m        map[string]reference.T
	previous scope.T
}

// New creates a new env enclosed by previous, which may be nil.
func New(previous scope.T) *T {
	return &T{m: map[string]reference.T{}, previous: previous}
}

// Define associates the name k with the cell v in the env e. An
// existing binding in e is rebound in place.
func (e *T) Define(k string, v cell.T) {
	e.Lock()
	defer e.Unlock()

	if r, ok := e.m[k]; ok {
		r.Set(v)

		return
	}

	e.m[k] = slot.New(v)
}

// Lookup retrieves the reference associated with the name k.
func (e *T) Lookup(k string) reference.T {
	if e == nil {
		return nil
	}

	e.RLock()
	r := e.m[k]
	e.RUnlock()

	if r == nil && e.previous != nil {
		return e.previous.Lookup(k)
	}

	return r
}

// Names returns the sorted names visible from e.
func (e *T) Names() []string {
	seen := map[string]bool{}

	e.RLock()
	for k := range e.m {
		seen[k] = true
	}
	e.RUnlock()

	if e.previous != nil {
		for _, k := range e.previous.Names() {
			seen[k] = true
		}
	}

	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	_ = scope.T(&t)
}
