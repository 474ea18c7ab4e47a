package models

import (
	"errors"
	"fmt"
)

// ErrCategoryNotFound is returned when no category matches a slug.
// It is a valid negative result, not a fault.
var ErrCategoryNotFound = errors.New("category not found")

// TransportError reports a failed query against the catalog backend.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func transportError(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}

// IsTransportError reports whether err is, or wraps, a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
