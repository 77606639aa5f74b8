// Released under an MIT license. See LICENSE.

// Package token is shared by the fl lexer and parser.
package token

import (
	"strconv"
	"unicode"

	"github.com/ergrt/float/internal/type/loc"
)

// Class is a token's type. Punctuation uses the rune itself.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source loc.T
	value  string
}

// Token classes.
const (
	Error Class = iota

	Name Class = unicode.MaxRune + iota
	Number
	Operator
	String
)

// New creates a new token.
func New(class Class, value string, source loc.T) *T {
	return &T{
		class:  class,
		source: source,
		value:  value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Name:
		return "Name"
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case String:
		return "String"
	}

	return strconv.QuoteRune(rune(c))
}

// Class returns the class of the token t.
func (t *T) Class() Class {
	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *T) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Source returns the source location for this token.
func (t *T) Source() *loc.T {
	s := t.source
	return &s
}

// String returns the token's string representation. Useful for debugging.
func (t *T) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Value returns the token's string value.
func (t *T) Value() string {
	return t.value
}
