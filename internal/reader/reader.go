// Released under an MIT license. See LICENSE.

// Package reader encapsulates the fl lexer and parser.
package reader

import (
	"github.com/ergrt/float/internal/reader/ast"
	"github.com/ergrt/float/internal/reader/lexer"
	"github.com/ergrt/float/internal/reader/parser"
)

// Read parses all of text, labelled with name, and passes each
// command to emit in order.
func Read(name, text string, emit func(ast.Node)) {
	l := lexer.New(name)

	l.Scan(text)

	parser.New(emit, l.Token).Parse()
}
