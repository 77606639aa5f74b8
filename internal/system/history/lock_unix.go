// Released under an MIT license. See LICENSE.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package history

import (
	"os"

	"golang.org/x/sys/unix"
)

// lock holds an exclusive advisory lock on f until unlock is called.
func lock(f *os.File) (func() error, error) {
	fd := int(f.Fd())

	if err := unix.Flock(fd, unix.LOCK_EX); err != nil {
		return nil, err
	}

	return func() error {
		return unix.Flock(fd, unix.LOCK_UN)
	}, nil
}
