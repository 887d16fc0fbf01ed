//go:build unix

package fsops

import (
	"os"

	"golang.org/x/sys/unix"
)

// unlink removes a file entry. Unlike os.Remove it never falls back to
// rmdir, so directories fail with the kernel's error.
func unlink(name string) error {
	for {
		err := unix.Unlink(name)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return &os.PathError{Op: "unlink", Path: name, Err: err}
		}
		return nil
	}
}

func rmdir(name string) error {
	for {
		err := unix.Rmdir(name)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return &os.PathError{Op: "rmdir", Path: name, Err: err}
		}
		return nil
	}
}
