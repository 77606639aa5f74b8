// Released under an MIT license. See LICENSE.

package env

import (
	"testing"

	"github.com/ergrt/float/internal/type/flt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAndLookup(t *testing.T) {
	e := New(nil)

	assert.Nil(t, e.Lookup("x"))

	e.Define("x", flt.New(1))

	r := e.Lookup("x")
	require.NotNil(t, r)
	assert.Equal(t, flt.New(1), r.Get())

	e.Define("x", flt.New(2))
	assert.Same(t, r, e.Lookup("x"), "rebinding reuses the slot")
	assert.Equal(t, flt.New(2), r.Get())
}

func TestEnclosingScope(t *testing.T) {
	outer := New(nil)
	outer.Define("pi", flt.New(3.14))
	outer.Define("e", flt.New(2.72))

	inner := New(outer)
	inner.Define("x", flt.New(1))

	assert.Equal(t, flt.New(3.14), inner.Lookup("pi").Get())
	assert.Nil(t, outer.Lookup("x"))
	assert.Equal(t, []string{"e", "pi", "x"}, inner.Names())
}
