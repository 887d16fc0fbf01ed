package fsops

import (
	"os"
)

// List returns the names in the working directory, sorted, without "." and
// "..".
func (o *Ops) List() ([]string, error) {
	entries, err := os.ReadDir(".")
	if err != nil {
		return nil, opError(OpList, ".", err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

// Mkdir creates a single directory. The parent must exist.
func (o *Ops) Mkdir(name string) error {
	if err := os.Mkdir(name, o.dirPerm); err != nil {
		return opError(OpMkdir, name, err)
	}
	return nil
}

// RemoveDir removes an empty directory. Files are refused.
func (o *Ops) RemoveDir(name string) error {
	if err := rmdir(name); err != nil {
		return opError(OpRmdir, name, err)
	}
	return nil
}
