package fsops

import (
	"io"
	"os"
	"unicode/utf8"
)

// ReadFile returns the contents of name as text.
func (o *Ops) ReadFile(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", opError(OpRead, name, err)
	}
	if !utf8.Valid(data) {
		return "", opError(OpRead, name, ErrInvalidUTF8)
	}
	return string(data), nil
}

// CreateFile creates or truncates name. Non-empty content is written
// followed by a newline.
func (o *Ops) CreateFile(name, content string) error {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, o.filePerm)
	if err != nil {
		return opError(OpCreate, name, err)
	}

	if content == "" {
		return closeFile(f, OpCreate, name, nil)
	}
	if _, err := f.WriteString(content + "\n"); err != nil {
		return closeFile(f, OpWrite, name, opError(OpWrite, name, err))
	}
	return closeFile(f, OpWrite, name, nil)
}

// closeFile closes c and reports a close failure as op, unless err already
// holds an earlier failure.
func closeFile(c io.Closer, op Op, name string, err error) error {
	if cerr := c.Close(); cerr != nil && err == nil {
		return opError(op, name, cerr)
	}
	return err
}

// RemoveFile unlinks name. Directories are refused.
func (o *Ops) RemoveFile(name string) error {
	if err := unlink(name); err != nil {
		return opError(OpRemove, name, err)
	}
	return nil
}
