// Released under an MIT license. See LICENSE.

// Package commands provides fl's builtin functions and methods.
package commands

import (
	"github.com/ergrt/float/internal/interface/cell"
	"github.com/ergrt/float/internal/type/builtin"
)

// Method is the Go implementation of a method. It receives the
// evaluated receiver and arguments.
type Method func(recv cell.T, args []cell.T) (cell.T, error)

// Functions returns the builtins bound in the outermost scope.
func Functions() map[string]*builtin.T {
	fs := map[string]builtin.Function{
		"Bool":   boolOf,
		"Float":  float,
		"Float!": floatMut,
		"repr":   repr,
		"type":   typeOf,
	}

	m := make(map[string]*builtin.T, len(fs))
	for k, fn := range fs {
		m[k] = builtin.New(k, fn)
	}

	return m
}

// Methods returns the methods callable as receiver.name(args).
func Methods() map[string]Method {
	return map[string]Method{
		"deref":  deref,
		"is_ok":  isOk,
		"mutate": mutate,
		"repr":   reprMethod,
	}
}
