package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrInvalidUTF8 is returned by ReadFile when the file is not valid text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Op names the filesystem operation that failed.
type Op string

const (
	OpList   Op = "list"
	OpGetwd  Op = "getwd"
	OpRead   Op = "read"
	OpCreate Op = "create"
	OpWrite  Op = "write"
	OpMkdir  Op = "mkdir"
	OpRemove Op = "remove"
	OpRmdir  Op = "rmdir"
	OpChdir  Op = "chdir"
)

// OpError records a failed operation, the path it targeted and the
// underlying system error.
type OpError struct {
	Op   Op
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Description())
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Description())
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Description returns the system-reported text of the failure, without the
// operation and path prefixes the os package adds.
func (e *OpError) Description() string {
	return describe(e.Err)
}

func describe(err error) string {
	for {
		switch e := err.(type) {
		case *fs.PathError:
			err = e.Err
		case *os.LinkError:
			err = e.Err
		case *os.SyscallError:
			err = e.Err
		case nil:
			return ""
		default:
			return err.Error()
		}
	}
}

func opError(op Op, path string, err error) error {
	return &OpError{Op: op, Path: path, Err: err}
}
