// Released under an MIT license. See LICENSE.

package flt

import (
	"math"
	"strconv"
	"strings"
)

// Repr returns the runtime's textual representation of f: the
// shortest round-tripping decimal, always with a fractional part or an
// exponent. Exponent notation is used below 1e-4 and from 1e16 up.
func Repr(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)

	exp, err := strconv.Atoi(s[strings.LastIndexByte(s, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return s
	}

	s = strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}
