package chksum

import (
	"errors"
	"fmt"
)

var (
	// ErrIsTerminal indicates that the input stream is an interactive terminal.
	// No byte is read from such a stream.
	ErrIsTerminal = errors.New("cannot process terminal input")

	// ErrInvalidChunkSize indicates that a configured chunk size is not a positive integer.
	ErrInvalidChunkSize = errors.New("chunk size must be a positive integer")

	// ErrNilAlgorithm indicates that no hash algorithm was supplied.
	ErrNilAlgorithm = errors.New("algorithm cannot be nil")

	// ErrNilInput indicates that no input, or an input wrapping a nil handle, was supplied.
	ErrNilInput = errors.New("input cannot be nil")
)

// IOError records an I/O failure together with the operation and path that caused it.
// The original cause is available through errors.Unwrap, so checks such as
// errors.Is(err, fs.ErrNotExist) keep working.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func ioError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
