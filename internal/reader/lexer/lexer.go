// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for fl expressions.
//
// Like oh's lexer, it uses the state function approach of Go's
// text/template lexer described in Rob Pike's talk "Lexical Scanning
// in Go". See https://talks.golang.org/2011/lex.slide for more.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ergrt/float/internal/reader/token"
	"github.com/ergrt/float/internal/type/loc"
	"github.com/michaelmacinnis/adapted"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Column of the next rune on the current line.
	state action   // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return &T{
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		tokens: make(chan *token.T, 4),
	}
}

// Scan passes a text buffer to the lexer for scanning. Buffers are
// expected to end on a token boundary, typically a newline.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		select {
		case t := <-l.tokens:
			return t
		default:
		}

		if l.state == nil {
			if !l.gather() {
				return nil
			}

			l.state = skipSpace
		}

		l.state = l.state(l)
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.source
	if c == '\n' {
		// Report newline as part of the line it ends.
		source.Line--
	}

	l.tokens <- token.New(c, v, source)
	l.skip()
}

func (l *T) fail(msg string) action {
	l.emit(token.Error, l.source.String()+": "+msg)

	return skipSpace
}

func (l *T) gather() bool {
	if len(l.queue) == 0 {
		return false
	}

	l.bytes = strings.Join(l.queue, "")
	l.queue = nil
	l.first = 0
	l.index = 0

	return true
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNameRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// T states.

func skipSpace(l *T) action {
	r, w := l.peek()

	switch {
	case r == eof:
		return nil
	case r == ' ' || r == '\t' || r == '\r':
		l.accept(r, w)
		l.skip()
	case r == '\n':
		l.accept(r, w)
		l.emit('\n', "\n")
	case r == '#':
		return skipComment
	case r == '"':
		l.accept(r, w)
		return scanString
	case isDigit(r):
		return scanNumber
	case r == '.':
		l.accept(r, w)
		if n, _ := l.peek(); isDigit(n) {
			return scanFraction
		}

		l.emit('.', l.Text())
	case r == '_' || unicode.IsLetter(r):
		return scanName
	case strings.ContainsRune("(),", r):
		l.accept(r, w)
		l.emit(token.Class(r), l.Text())
	default:
		return scanOperator
	}

	return skipSpace
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()
		if r == eof || r == '\n' {
			break
		}

		l.accept(r, w)
	}

	l.skip()

	return skipSpace
}

func scanDigits(l *T) {
	for {
		r, w := l.peek()
		if !isDigit(r) {
			return
		}

		l.accept(r, w)
	}
}

func scanNumber(l *T) action {
	scanDigits(l)

	if r, w := l.peek(); r == '.' {
		l.accept(r, w)

		return scanFraction
	}

	return scanExponent
}

func scanFraction(l *T) action {
	scanDigits(l)

	return scanExponent
}

func scanExponent(l *T) action {
	if r, w := l.peek(); r == 'e' || r == 'E' {
		l.accept(r, w)

		if r, w = l.peek(); r == '+' || r == '-' {
			l.accept(r, w)
		}

		if r, _ = l.peek(); !isDigit(r) {
			return l.fail("malformed exponent in " + l.Text())
		}

		scanDigits(l)
	}

	l.emit(token.Number, l.Text())

	return skipSpace
}

func scanName(l *T) action {
	for {
		r, w := l.peek()
		if !isNameRune(r) {
			break
		}

		l.accept(r, w)
	}

	// A trailing '!' names a mutable type or procedure, but not in x!=y.
	if r, w := l.peek(); r == '!' {
		if !strings.HasPrefix(l.bytes[l.index+w:], "=") {
			l.accept(r, w)
		}
	}

	l.emit(token.Name, l.Text())

	return skipSpace
}

func scanOperator(l *T) action {
	r := l.next()

	switch r {
	case '*', '/', '=', '<', '>':
		n, w := l.peek()
		if n == r && (r == '*' || r == '/' || r == '=') {
			l.accept(n, w)
		} else if n == '=' && (r == '<' || r == '>') {
			l.accept(n, w)
		}
	case '!':
		n, w := l.peek()
		if n != '=' {
			return l.fail("unexpected '!'")
		}

		l.accept(n, w)
	case '+', '-':
	default:
		return l.fail("unexpected " + string(r))
	}

	if l.Text() == "=" {
		l.emit('=', l.Text())
	} else {
		l.emit(token.Operator, l.Text())
	}

	return skipSpace
}

func scanString(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof, '\n':
			return l.fail("unterminated string")
		case '\\':
			l.accept(r, w)

			r, w = l.peek()
			if r == eof || r == '\n' {
				return l.fail("unterminated string")
			}
		case '"':
			body := l.bytes[l.first+1 : l.index]
			l.accept(r, w)

			s, err := adapted.ActualBytes(body)
			if err != nil {
				return l.fail(err.Error())
			}

			l.emit(token.String, s)

			return skipSpace
		}

		l.accept(r, w)
	}
}
