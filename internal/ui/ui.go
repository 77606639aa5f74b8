// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for fl.
package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/ergrt/float/internal/engine/commands"
	"github.com/ergrt/float/internal/interface/cell"
	"github.com/ergrt/float/internal/interface/literal"
	"github.com/ergrt/float/internal/reader/ast"
	"github.com/ergrt/float/internal/reader/lexer"
	"github.com/ergrt/float/internal/reader/parser"
	"github.com/ergrt/float/internal/reader/token"
	"github.com/ergrt/float/internal/system/config"
	"github.com/ergrt/float/internal/system/history"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process parsed commands.
type Evaluator interface {
	Evaluate(command ast.Node) (cell.T, error)
	Names() []string
}

// Run reads commands with a line editor and passes them to e until
// the user ends input.
func Run(e Evaluator, cfg *config.T, out, errs io.Writer, log *slog.Logger) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(Completer(e))

	if cfg.History != "" {
		if err := history.Load(cfg.History, cli.ReadHistory); err != nil {
			log.Warn("cannot load history", "path", cfg.History, "err", err)
		}
	}

	for {
		aborted := false

		l := lexer.New("fl")

		p := parser.New(Printer(e, out, errs), func() *token.T {
			for {
				t := l.Token()
				if t != nil {
					return t
				}

				line, err := cli.Prompt(cfg.Prompt)

				switch {
				case err == nil:
					if strings.TrimSpace(line) != "" {
						cli.AppendHistory(line)
					}
				case errors.Is(err, liner.ErrPromptAborted):
					aborted = true

					return nil
				case errors.Is(err, io.EOF):
					fmt.Fprintln(out)

					return nil
				default:
					log.Error("cannot read input", "err", err)

					return nil
				}

				l.Scan(line + "\n")
			}
		})

		p.Parse()

		if !aborted {
			break
		}
	}

	if cfg.History == "" {
		return nil
	}

	return history.Save(cfg.History, cfg.HistoryLimit, cli.WriteHistory)
}

// Printer returns a function that evaluates each command and writes
// its value to out or its error to errs.
func Printer(e Evaluator, out, errs io.Writer) func(ast.Node) {
	return func(n ast.Node) {
		c, err := e.Evaluate(n)

		switch {
		case err != nil:
			fmt.Fprintln(errs, "fl:", err)
		case c != nil:
			fmt.Fprintln(out, literal.String(c))
		}
	}
}

// Completer completes the word before the cursor from the names
// visible to e and the methods every value responds to.
func Completer(e Evaluator) liner.WordCompleter {
	return func(line string, pos int) (head string, completions []string, tail string) {
		head, tail = line[:pos], line[pos:]

		start := strings.LastIndexFunc(head, func(r rune) bool {
			return !(r == '_' || r == '!' || r == '.' ||
				'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
		}) + 1

		word := head[start:]
		head = head[:start]

		candidates := e.Names()

		if i := strings.LastIndexByte(word, '.'); i >= 0 {
			head += word[:i+1]
			word = word[i+1:]
			candidates = methods()
		}

		for _, c := range candidates {
			if strings.HasPrefix(c, word) {
				completions = append(completions, c)
			}
		}

		return head, completions, tail
	}
}

func methods() []string {
	ms := []string{}
	for k := range commands.Methods() {
		ms = append(ms, k+"()")
	}

	sort.Strings(ms)

	return ms
}
