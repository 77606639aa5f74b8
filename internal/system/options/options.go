// Released under an MIT license. See LICENSE.

// Package options parses fl's command line.
package options

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "fl 0.1.0"

const usage = `fl

Usage:
  fl [-d] SCRIPT
  fl [-d] -c COMMAND
  fl [-di] [-s]
  fl -h
  fl -v

Arguments:
  SCRIPT     Path to an fl script.

Options:
  -c, --command=COMMAND  Evaluate the specified command.
  -d, --debug            Log evaluation details to stderr.
  -i, --interactive      Invert interactive mode.
  -s, --stdin            Read commands from stdin.
  -h, --help             Display this help.
  -v, --version          Print fl version.

If fl's stdin is a TTY and fl was invoked without a script, a command
or -s, the interactive line editor is used. Otherwise commands are
read from stdin without prompting.
`

//nolint:gochecknoglobals
var (
	// Help is called for -h and -v. It exits by default.
	Help = docopt.PrintHelpAndExit

	isTerminal = isatty.IsTerminal
)

// T holds the parsed command line.
type T struct {
	Command     string
	Debug       bool
	Interactive bool
	Script      string
}

// Parse parses argv, which should not include the program name.
func Parse(argv []string) (*T, error) {
	p := &docopt.Parser{HelpHandler: Help}

	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, fmt.Errorf("parse options: %w", err)
	}

	o := &T{}

	o.Command, _ = opts.String("--command")
	o.Script, _ = opts.String("SCRIPT")
	o.Debug, _ = opts.Bool("--debug")

	stdin, _ := opts.Bool("--stdin")

	if o.Command == "" && o.Script == "" && !stdin {
		o.Interactive = isTerminal(os.Stdin.Fd())
	}

	invertInteractive, _ := opts.Bool("--interactive")
	o.Interactive = o.Interactive != invertInteractive

	return o, nil
}
