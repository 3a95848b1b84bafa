// Package codes defines the status taxonomy shared by accessors, table
// loading and descriptor resolution.
//
// Every failure is returned to the immediate caller as one of these sentinels,
// usually wrapped with context. ErrNotImplemented is an expected outcome of
// dispatch and callers branch on it like any other result.
package codes

import "errors"

var (
	ErrNotFound        = errors.New("codes: not found")
	ErrIOProblem       = errors.New("codes: io problem")
	ErrOutOfMemory     = errors.New("codes: out of memory")
	ErrInvalidArgument = errors.New("codes: invalid argument")
	ErrNotImplemented  = errors.New("codes: not implemented")
	ErrArrayTooSmall   = errors.New("codes: array too small")
)

// IsNotImplemented reports whether err is a dispatch fallthrough.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}
