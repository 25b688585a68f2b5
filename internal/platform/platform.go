package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrUnsupported is returned by the per-OS fallbacks when the current
// operating system has no implementation.
var ErrUnsupported = errors.New("unsupported operating system")

// SupportedOS represents supported operating systems
type SupportedOS string

const (
	Linux   SupportedOS = "linux"
	FreeBSD SupportedOS = "freebsd"
)

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsSupported returns true if os has a register backend
func IsSupported(os SupportedOS) bool {
	return os == Linux || os == FreeBSD
}

// ValidateSupport returns an error if the current OS is not supported
func ValidateSupport() error {
	if !IsSupported(GetOS()) {
		return fmt.Errorf("%w: %s. Supported: linux, freebsd", ErrUnsupported, runtime.GOOS)
	}
	return nil
}
