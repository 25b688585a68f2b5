package cores

import "errors"

var (
	// ErrAfterRestriction indicates an attempt to open a device after the
	// process entered its restricted state.
	ErrAfterRestriction = errors.New("cores: open after restriction")

	// ErrSpent indicates that an Opened set was already restricted.
	ErrSpent = errors.New("cores: handle set already restricted")
)
