// Released under an MIT license. See LICENSE.

// Package history persists the interactive line editor's history.
package history

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Load passes the history file at path to read. A missing file is not an error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save writes the history produced by write to path, keeping at most
// the last limit entries. A limit of zero or less keeps everything.
func Save(path string, limit int, write func(w io.Writer) (int, error)) error {
	var b bytes.Buffer

	_, err := write(&b)
	if err != nil {
		return err
	}

	lines := strings.SplitAfter(b.String(), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	if limit > 0 && len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return err
	}

	err = replace(f, strings.Join(lines, ""))
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

// replace overwrites the contents of f with s while holding its lock.
func replace(f *os.File, s string) error {
	unlock, err := lock(f)
	if err != nil {
		return err
	}

	if err = f.Truncate(0); err == nil {
		_, err = f.WriteString(s)
	}

	if uerr := unlock(); err == nil {
		err = uerr
	}

	return err
}
