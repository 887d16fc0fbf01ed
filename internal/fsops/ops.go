// Package fsops implements the filesystem operations behind the shell
// commands. Every operation acts relative to the process working directory
// and reports failures as *OpError.
package fsops

import (
	"os"
)

// Ops performs filesystem operations in the current working directory.
type Ops struct {
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// New creates an Ops using conventional permissions (0755 for directories,
// 0644 for files, both subject to the umask).
func New() *Ops {
	return &Ops{
		dirPerm:  0o755,
		filePerm: 0o644,
	}
}

// Getwd returns the absolute path of the current working directory.
func (o *Ops) Getwd() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", opError(OpGetwd, "", err)
	}
	return dir, nil
}

// Chdir changes the process working directory.
func (o *Ops) Chdir(name string) error {
	if err := os.Chdir(name); err != nil {
		return opError(OpChdir, name, err)
	}
	return nil
}
