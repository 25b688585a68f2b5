package sysctl

import "errors"

var (
	// ErrMissing indicates that the named parameter does not exist.
	ErrMissing = errors.New("sysctl: no such parameter")

	// ErrType indicates that the parameter exists but is not a 32-bit integer.
	ErrType = errors.New("sysctl: unexpected value type")
)
