// Released under an MIT license. See LICENSE.

// Package control provides the combinators used to thread fallible
// results through value constructors.
package control

// Then applies f to v when err is nil and returns the result as a
// success. When err is not nil, f is not called and err is returned
// unchanged alongside the zero value of U.
func Then[T, U any](v T, err error, f func(T) U) (U, error) {
	if err != nil {
		var zero U

		return zero, err
	}

	return f(v), nil
}

// Bind is like Then but for a fallible f.
func Bind[T, U any](v T, err error, f func(T) (U, error)) (U, error) {
	if err != nil {
		var zero U

		return zero, err
	}

	return f(v)
}
