// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/ergrt/float/internal/common/validate"
	"github.com/ergrt/float/internal/interface/boolean"
	"github.com/ergrt/float/internal/interface/cell"
	"github.com/ergrt/float/internal/interface/literal"
	"github.com/ergrt/float/internal/type/errsys"
	"github.com/ergrt/float/internal/type/str"
	"github.com/ergrt/float/internal/type/truth"
)

// boolOf reports the truth value of a cell. A failed result is false.
func boolOf(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	b, err := boolean.Value(args[0])
	if err != nil {
		return nil, err
	}

	return truth.New(b), nil
}

func isOk(recv cell.T, args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 0, 0); err != nil {
		return nil, err
	}

	return truth.New(!errsys.Is(recv)), nil
}

func repr(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return str.New(literal.String(args[0])), nil
}

func reprMethod(recv cell.T, args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 0, 0); err != nil {
		return nil, err
	}

	return str.New(literal.String(recv)), nil
}

func typeOf(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return str.New(args[0].Name()), nil
}
