package msr

import "errors"

var (
	// ErrOpen indicates that a register-access device node is missing or
	// cannot be opened.
	ErrOpen = errors.New("msr: open device")

	// ErrRead indicates that the OS rejected a register read.
	ErrRead = errors.New("msr: read register")

	// ErrShortRead indicates that a positioned read returned fewer than
	// eight bytes.
	ErrShortRead = errors.New("msr: short read")
)
