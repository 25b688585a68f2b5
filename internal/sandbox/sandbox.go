// Package sandbox restricts the process to the register reads it needs.
//
// On FreeBSD the reducer uses Capsicum: every handle is limited to ioctl(2),
// then to the listed ioctl codes, and finally the process enters capability
// mode. Elsewhere it is a no-op and the process runs unsandboxed.
package sandbox

import "errors"

// ErrRestrict indicates that the OS rejected a restriction step. A partial
// sandbox is no better than none, so callers must stop.
var ErrRestrict = errors.New("sandbox: restrict")

// Reducer irreversibly narrows what the process may do with fds.
type Reducer interface {
	Restrict(fds []uintptr, ioctls []uint) error
	// Enforcing reports whether Restrict does anything on this platform.
	Enforcing() bool
}

// NewReducer creates the reducer for the current platform
func NewReducer() Reducer {
	return newPlatformReducer()
}
