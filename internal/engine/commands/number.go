// Released under an MIT license. See LICENSE.

package commands

import (
	"errors"
	"fmt"

	"github.com/ergrt/float/internal/common/validate"
	"github.com/ergrt/float/internal/control"
	"github.com/ergrt/float/internal/interface/cell"
	"github.com/ergrt/float/internal/type/errsys"
	"github.com/ergrt/float/internal/type/flt"
	"github.com/ergrt/float/internal/type/fltmut"
)

// valuer is implemented by cells that wrap a plain Go value.
type valuer interface {
	Value() any
}

// native returns the Go value a constructor should validate. A failed
// result is not validated again; it is returned as the error.
func native(c cell.T) (any, error) {
	if e, ok := c.(*errsys.T); ok {
		return nil, e
	}

	if v, ok := c.(valuer); ok {
		return v.Value(), nil
	}

	return c, nil
}

// result converts a fallible construction into a cell. A failure is
// a value, not an evaluation error, and a failed result is kept as is.
func result[T cell.T](v T, err error) (cell.T, error) {
	var failed *errsys.T

	switch {
	case errors.As(err, &failed):
		return failed, nil
	case err != nil:
		return errsys.New(err), nil
	}

	return v, nil
}

func float(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	v, err := native(args[0])
	f, err := control.Bind(v, err, flt.TryNew)

	return result(f, err)
}

func floatMut(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	v, err := native(args[0])
	c, err := control.Bind(v, err, fltmut.New)

	return result(c, err)
}

func deref(recv cell.T, args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 0, 0); err != nil {
		return nil, err
	}

	if !fltmut.Is(recv) {
		return nil, noMethod(recv, "deref")
	}

	return fltmut.To(recv).Deref(), nil
}

func mutate(recv cell.T, args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 0, 0); err != nil {
		return nil, err
	}

	if !flt.Is(recv) {
		return nil, noMethod(recv, "mutate")
	}

	return fltmut.Mutate(flt.To(recv)), nil
}

func noMethod(recv cell.T, name string) error {
	return fmt.Errorf("%s has no method %s", recv.Name(), name)
}
