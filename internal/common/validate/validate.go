// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to builtins and methods.
package validate

import (
	"fmt"

	"github.com/ergrt/float/internal/interface/cell"
)

// Fixed returns an error unless between min and max arguments were passed.
func Fixed(args []cell.T, min, max int) error {
	n := len(args)

	switch {
	case n < min:
		return fmt.Errorf("expected %s, passed %d", Count(min, "argument", "s"), n)
	case n > max:
		return fmt.Errorf("expected %s, passed %d", Count(max, "argument", "s"), n)
	}

	return nil
}

// Count formats n and label, adding the plural suffix p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
