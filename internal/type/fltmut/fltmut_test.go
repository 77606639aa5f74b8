// Released under an MIT license. See LICENSE.

package fltmut

import (
	"errors"
	"testing"
	"testing/quick"

	"github.com/ergrt/float/internal/type/flt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCell(t *testing.T, v any) *T {
	t.Helper()

	c, err := New(v)
	require.NoError(t, err)

	return c
}

func TestNew(t *testing.T) {
	assert.Equal(t, flt.New(2.5), newCell(t, 2.5).Deref())
	assert.Equal(t, flt.New(2.5), newCell(t, flt.New(2.5)).Deref())
	assert.Equal(t, flt.New(2.5), newCell(t, newCell(t, 2.5)).Deref())

	c, err := New("x")
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, flt.ErrNotFloat))
}

func TestMutateRoundTrip(t *testing.T) {
	f := func(v float64) bool {
		return Mutate(flt.New(v)).Deref() == flt.New(v)
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestArithmeticReturnsNewCell(t *testing.T) {
	c := newCell(t, 2.0)
	o := flt.New(3.0)

	for _, op := range []func(*T) (*T, error){
		func(c *T) (*T, error) { return c.Add(o) },
		func(c *T) (*T, error) { return c.Sub(o) },
		func(c *T) (*T, error) { return c.Mul(o) },
		func(c *T) (*T, error) { return c.FloorDiv(o) },
		func(c *T) (*T, error) { return c.Pow(o) },
	} {
		r, err := op(c)
		require.NoError(t, err)
		assert.NotSame(t, c, r)
		assert.Equal(t, flt.New(2.0), c.Deref())
	}
}

func TestArithmetic(t *testing.T) {
	c := newCell(t, 7.0)

	r, err := c.Add(flt.New(1))
	require.NoError(t, err)
	assert.Equal(t, flt.New(8), r.Deref())

	r, err = c.Sub(newCell(t, 2.0))
	require.NoError(t, err)
	assert.Equal(t, flt.New(5), r.Deref())

	r, err = c.FloorDiv(flt.New(2))
	require.NoError(t, err)
	assert.Equal(t, flt.New(3), r.Deref())

	r, err = c.Pow(newCell(t, 2.0))
	require.NoError(t, err)
	assert.Equal(t, flt.New(49), r.Deref())
}

func TestScenario(t *testing.T) {
	r, err := Mutate(flt.New(2.0)).Mul(flt.New(3.0))
	require.NoError(t, err)

	assert.IsType(t, &T{}, r)
	assert.Equal(t, flt.New(6.0), r.Deref())
}

func TestApply(t *testing.T) {
	c := newCell(t, 6.0)

	r, err := c.Apply(flt.Times, flt.New(2))
	require.NoError(t, err)
	assert.Equal(t, flt.New(12), r.Deref())

	_, err = c.Apply(flt.Divide, flt.New(2))
	assert.EqualError(t, err, "Float! does not support /")
}

func TestComparisonNormalizesOperand(t *testing.T) {
	three := newCell(t, 3.0)

	assert.True(t, three.Eq(flt.New(3.0)))
	assert.True(t, three.Eq(newCell(t, 3.0)))
	assert.True(t, three.Lt(newCell(t, 4.0)))
	assert.True(t, three.Le(newCell(t, 3.0)))
	assert.True(t, three.Ne(flt.New(4.0)))
	assert.True(t, three.Gt(flt.New(2.0)))
	assert.True(t, three.Ge(newCell(t, 3.0)))
	assert.False(t, three.Gt(newCell(t, 4.0)))
}

func TestCellProtocol(t *testing.T) {
	c := newCell(t, 2.5)

	assert.Equal(t, "Float!", c.Name())
	assert.Equal(t, "2.5", c.String())
	assert.Equal(t, "2.5", c.Literal())
	assert.True(t, c.Equal(newCell(t, 2.5)))
	assert.False(t, c.Equal(flt.New(2.5)))
	assert.True(t, c.Bool())
	assert.Equal(t, 2.5, c.Float64())
	assert.True(t, Is(c))
	assert.Same(t, c, To(c))
	assert.False(t, Is(flt.New(1)))
}
