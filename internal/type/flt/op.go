// Released under an MIT license. See LICENSE.

package flt

import (
	"fmt"
	"math"

	"github.com/ergrt/float/internal/control"
	"github.com/ergrt/float/internal/interface/floating"
)

// Op identifies a binary arithmetic operator.
type Op int

// Arithmetic operators.
const (
	Plus Op = iota
	Minus
	Times
	Divide
	FloorDivide
	Power
)

type operator struct {
	symbol string
	native func(x, y float64) float64
}

//nolint:gochecknoglobals
var operators = [...]operator{
	Plus:        {"+", func(x, y float64) float64 { return x + y }},
	Minus:       {"-", func(x, y float64) float64 { return x - y }},
	Times:       {"*", func(x, y float64) float64 { return x * y }},
	Divide:      {"/", func(x, y float64) float64 { return x / y }},
	FloorDivide: {"//", floorDiv},
	Power:       {"**", math.Pow},
}

// floorDiv is computed from the remainder so that x == (x//y)*y + x%y.
// Division by zero yields the native quotient's Inf or NaN.
func floorDiv(x, y float64) float64 {
	if y == 0 {
		return math.Floor(x / y)
	}

	mod := math.Mod(x, y)
	div := (x - mod) / y

	if mod != 0 && (y < 0) != (mod < 0) {
		div--
	}

	if div == 0 {
		return math.Copysign(0, x/y)
	}

	fd := math.Floor(div)
	if div-fd > 0.5 {
		fd++
	}

	return fd
}

// Lookup returns the operator written as symbol.
func Lookup(symbol string) (Op, bool) {
	for i, o := range operators {
		if o.symbol == symbol {
			return Op(i), true
		}
	}

	return 0, false
}

// String returns the symbol for the operator o.
func (o Op) String() string {
	if !o.valid() {
		return fmt.Sprintf("Op(%d)", int(o))
	}

	return operators[o].symbol
}

func (o Op) valid() bool {
	return o >= 0 && int(o) < len(operators)
}

// Native performs the operator o on two native floats.
func Native(o Op, x, y float64) (float64, error) {
	if !o.valid() {
		return 0, fmt.Errorf("unknown operator %s", o)
	}

	return operators[o].native(x, y), nil
}

// Apply computes x o y and wraps the outcome as a Float.
func (x T) Apply(o Op, y floating.T) (T, error) {
	r, err := Native(o, float64(x), y.Float64())

	return control.Then(r, err, New)
}

// ApplyReflected computes y o x, with x as the right-hand operand.
func (x T) ApplyReflected(o Op, y floating.T) (T, error) {
	r, err := Native(o, y.Float64(), float64(x))

	return control.Then(r, err, New)
}

// Neg returns -x. The sign of zero is flipped.
func (x T) Neg() T {
	return -x
}

// Add returns x + y.
func (x T) Add(y floating.T) (T, error) {
	return x.Apply(Plus, y)
}

// AddReflected returns y + x.
func (x T) AddReflected(y floating.T) (T, error) {
	return x.ApplyReflected(Plus, y)
}

// Sub returns x - y.
func (x T) Sub(y floating.T) (T, error) {
	return x.Apply(Minus, y)
}

// SubReflected returns y - x.
func (x T) SubReflected(y floating.T) (T, error) {
	return x.ApplyReflected(Minus, y)
}

// Mul returns x * y.
func (x T) Mul(y floating.T) (T, error) {
	return x.Apply(Times, y)
}

// MulReflected returns y * x.
func (x T) MulReflected(y floating.T) (T, error) {
	return x.ApplyReflected(Times, y)
}

// Div returns x / y. Division by zero follows native float semantics.
func (x T) Div(y floating.T) (T, error) {
	return x.Apply(Divide, y)
}

// DivReflected returns y / x.
func (x T) DivReflected(y floating.T) (T, error) {
	return x.ApplyReflected(Divide, y)
}

// FloorDiv returns the floor of x / y.
func (x T) FloorDiv(y floating.T) (T, error) {
	return x.Apply(FloorDivide, y)
}

// FloorDivReflected returns the floor of y / x.
func (x T) FloorDivReflected(y floating.T) (T, error) {
	return x.ApplyReflected(FloorDivide, y)
}

// Pow returns x ** y.
func (x T) Pow(y floating.T) (T, error) {
	return x.Apply(Power, y)
}

// PowReflected returns y ** x.
func (x T) PowReflected(y floating.T) (T, error) {
	return x.ApplyReflected(Power, y)
}
