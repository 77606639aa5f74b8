// Released under an MIT license. See LICENSE.

package flt

import (
	"errors"
	"math"
	"testing"
	"testing/quick"

	"github.com/ergrt/float/internal/interface/floating"
	"github.com/ergrt/float/internal/type/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryNewAcceptsNativeFloats(t *testing.T) {
	f := func(x float64) bool {
		v, err := TryNew(x)

		return err == nil && (v.Float64() == x || math.IsNaN(x))
	}

	require.NoError(t, quick.Check(f, nil))

	v, err := TryNew(float32(0.5))
	require.NoError(t, err)
	assert.Equal(t, New(0.5), v)

	v, err = TryNew(New(2.5))
	require.NoError(t, err)
	assert.Equal(t, New(2.5), v)
}

func TestTryNewRejectsEverythingElse(t *testing.T) {
	for _, v := range []any{"x", "2.5", 1, int64(3), nil, true, []float64{1}} {
		got, err := TryNew(v)

		require.Error(t, err, "%#v", v)
		assert.True(t, errors.Is(err, ErrNotFloat), "%#v: %v", v, err)
		assert.Contains(t, err.Error(), "not a float")
		assert.Zero(t, got)
	}
}

func TestScenario(t *testing.T) {
	v, err := TryNew(2.5)
	require.NoError(t, err)
	assert.Equal(t, New(2.5), v)

	sum, err := New(2.5).Add(New(1.5))
	require.NoError(t, err)
	assert.Equal(t, New(4.0), sum)

	_, err = TryNew("x")
	assert.ErrorIs(t, err, ErrNotFloat)
}

func TestAdditionIsNativeAndCommutative(t *testing.T) {
	f := func(a, b float64) bool {
		x, y := New(a), New(b)

		ab, err1 := x.Add(y)
		ba, err2 := y.Add(x)

		if err1 != nil || err2 != nil {
			return false
		}

		if math.IsNaN(a + b) {
			return math.IsNaN(ab.Float64()) && math.IsNaN(ba.Float64())
		}

		return ab.Float64() == a+b && ab == ba
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestMultiplicationIsCommutative(t *testing.T) {
	f := func(a, b float64) bool {
		ab, _ := New(a).Mul(New(b))
		ba, _ := New(b).Mul(New(a))

		return ab == ba || math.IsNaN(a*b)
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestOperators(t *testing.T) {
	x, y := New(7), New(2)

	for _, tc := range []struct {
		name string
		op   func(floating.T) (T, error)
		want T
	}{
		{"add", x.Add, 9},
		{"add-reflected", x.AddReflected, 9},
		{"sub", x.Sub, 5},
		{"sub-reflected", x.SubReflected, -5},
		{"mul", x.Mul, 14},
		{"mul-reflected", x.MulReflected, 14},
		{"div", x.Div, 3.5},
		{"div-reflected", x.DivReflected, 2.0 / 7.0},
		{"floordiv", x.FloorDiv, 3},
		{"floordiv-reflected", x.FloorDivReflected, 0},
		{"pow", x.Pow, 49},
		{"pow-reflected", x.PowReflected, 128},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(y)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFloorDivision(t *testing.T) {
	for _, tc := range []struct {
		x, y float64
		want float64
	}{
		{-7, 2, -4},
		{7, -2, -4},
		{1, 0.1, 9},
		{-1, 0.1, -10},
		{0.3, 0.1, 2},
		{-1, math.Inf(1), -1},
		{1, math.Inf(1), 0},
		{1, math.Inf(-1), -1},
	} {
		got, err := New(tc.x).FloorDiv(New(tc.y))
		require.NoError(t, err)
		assert.Equal(t, New(tc.want), got, "%v // %v", tc.x, tc.y)
	}

	got, err := New(0.1).FloorDivReflected(New(1))
	require.NoError(t, err)
	assert.Equal(t, New(9), got)

	got, err = New(0).FloorDiv(New(-1))
	require.NoError(t, err)
	assert.True(t, math.Signbit(got.Float64()), "0 // -1 is -0.0")

	got, err = New(math.Inf(1)).FloorDiv(New(1))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.Float64()))
}

func TestDivisionByZeroIsNative(t *testing.T) {
	got, err := New(1).Div(New(0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(got.Float64(), 1))

	got, err = New(0).FloorDiv(New(0))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.Float64()))
}

func TestOperandsAreNotAltered(t *testing.T) {
	x, y := New(1.5), New(2.5)

	_, err := x.Sub(y)
	require.NoError(t, err)

	assert.Equal(t, New(1.5), x)
	assert.Equal(t, New(2.5), y)
}

func TestLookup(t *testing.T) {
	for _, s := range []string{"+", "-", "*", "/", "//", "**"} {
		o, ok := Lookup(s)
		require.True(t, ok, s)
		assert.Equal(t, s, o.String())
	}

	_, ok := Lookup("%")
	assert.False(t, ok)
}

func TestUnknownOperatorFails(t *testing.T) {
	_, err := New(1).Apply(Op(42), New(1))
	assert.EqualError(t, err, "unknown operator Op(42)")

	_, err = New(1).ApplyReflected(Op(-1), New(1))
	assert.Error(t, err)
}

func TestComparisons(t *testing.T) {
	a, b := New(3), New(4)

	assert.True(t, a.Eq(New(3)))
	assert.True(t, a.Ne(b))
	assert.True(t, a.Lt(b))
	assert.True(t, a.Le(b))
	assert.True(t, a.Le(New(3)))
	assert.True(t, b.Gt(a))
	assert.True(t, b.Ge(a))
	assert.False(t, a.Gt(b))

	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 0, a.Cmp(New(3)))
	assert.Equal(t, 1, b.Cmp(a))

	nan := New(math.NaN())
	assert.False(t, nan.Eq(nan))
	assert.True(t, nan.Ne(nan))
}

func TestCellProtocol(t *testing.T) {
	x := New(2)

	assert.Equal(t, "Float", x.Name())
	assert.True(t, x.Equal(New(2)))
	assert.False(t, x.Equal(New(3)))
	assert.True(t, x.Bool())
	assert.False(t, New(0).Bool())
	assert.True(t, Is(x))
	assert.Equal(t, x, To(x))
}

func TestRepr(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{4, "4.0"},
		{2.5, "2.5"},
		{-1.25, "-1.25"},
		{0.1, "0.1"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1.5e-7, "1.5e-07"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.5e300, "1.5e+300"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	} {
		assert.Equal(t, tc.want, Repr(tc.in), "%v", tc.in)
	}

	assert.Equal(t, "6.0", New(6).String())
	assert.Equal(t, "6.0", New(6).Literal())
}

func TestTryNewNamesTheRejectedType(t *testing.T) {
	_, err := TryNew("x")
	assert.EqualError(t, err, "not a float: string")

	_, err = TryNew(str.New("x"))
	assert.EqualError(t, err, "not a float: Str")

	_, err = TryNew(nil)
	assert.EqualError(t, err, "not a float: <nil>")
}

func TestNeg(t *testing.T) {
	assert.Equal(t, New(-2.5), New(2.5).Neg())
	assert.Equal(t, "-0.0", New(0).Neg().String())
	assert.Equal(t, "0.0", New(0).Neg().Neg().String())
	assert.Equal(t, "-inf", New(math.Inf(1)).Neg().String())
}
