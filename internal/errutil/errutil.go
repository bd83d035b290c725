package errutil

import (
	"errors"
)

var (
	ErrIllegalParameter = errors.New("illegal parameter")
	ErrConfig           = errors.New("invalid configuration")
	ErrRender           = errors.New("render failed")
	ErrIO               = errors.New("io operation failed")
)

type markedError struct {
	kind error
	err  error
}

func (e *markedError) Error() string { return e.kind.Error() + ": " + e.err.Error() }
func (e *markedError) Unwrap() error { return e.err }

func (e *markedError) Is(target error) bool {
	return target == e.kind
}

// Mark attaches kind to err so that errors.Is(err, kind) holds while the
// wrapped chain stays reachable. Mark returns nil for a nil err.
func Mark(err, kind error) error {
	if err == nil {
		return nil
	}
	return &markedError{kind: kind, err: err}
}
