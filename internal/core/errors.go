package core

import (
	"errors"
	"fmt"
)

// Error kinds. Every error the core returns wraps exactly one of these.
var (
	// ErrIO marks read, write and permission failures.
	ErrIO = errors.New("i/o error")
	// ErrNotFound marks an expected bundle subtree or file that is missing.
	ErrNotFound = errors.New("not found")
)

// OpError records the operation and path that failed.
type OpError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func ioError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var opErr *OpError
	if errors.As(err, &opErr) {
		return err
	}
	return &OpError{Op: op, Path: path, Kind: ErrIO, Err: err}
}

func notFound(op, path string) error {
	return &OpError{Op: op, Path: path, Kind: ErrNotFound}
}
