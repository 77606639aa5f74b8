// Released under an MIT license. See LICENSE.

/*
Fl evaluates expressions over the runtime's float values.

A Float is an immutable, validated float. A Float! is a cell that owns
one Float; arithmetic on a cell yields a new cell. Numeric literals are
native floats, and Float(...) validates them:

	> Float(2.5) + Float(1.5)
	4.0
	> Float("x")
	Error("not a float: string")
	> c = Float(2.0).mutate()
	> c * Float(3.0)
	6.0
	> c
	2.0

Run fl with a script, with -c and a command, or with no arguments for
an interactive session.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ergrt/float/internal/engine"
	"github.com/ergrt/float/internal/system/config"
	"github.com/ergrt/float/internal/system/options"
	"github.com/ergrt/float/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := options.Parse(argv)
	if err != nil {
		fmt.Fprintln(stderr, "fl:", err)

		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "fl:", err)

		return 2
	}

	level := slog.LevelInfo
	if opts.Debug || cfg.Debug {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	e := engine.New(log)

	var name, text string

	switch {
	case opts.Command != "":
		name, text = "-c", opts.Command+"\n"
	case opts.Script != "":
		b, err := os.ReadFile(opts.Script)
		if err != nil {
			fmt.Fprintln(stderr, "fl:", err)

			return 1
		}

		name, text = opts.Script, string(b)
	case opts.Interactive:
		if err := ui.Run(e, cfg, stdout, stderr, log); err != nil {
			log.Error("cannot save history", "path", cfg.History, "err", err)
		}

		return 0
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintln(stderr, "fl:", err)

			return 1
		}

		name, text = "stdin", string(b)
	}

	if e.Source(name, text, stdout, stderr) > 0 {
		return 1
	}

	return 0
}
