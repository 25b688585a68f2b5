//go:build !linux && !freebsd

package msr

import (
	"fmt"

	"github.com/CristiGvl/zenstat/internal/platform"
)

// UnsupportedBackend is a fallback for unsupported platforms
type UnsupportedBackend struct{}

// newPlatformBackend creates a fallback backend for unsupported platforms
func newPlatformBackend(string) Backend {
	return &UnsupportedBackend{}
}

// Open returns an error for unsupported platforms
func (b *UnsupportedBackend) Open(thread int) (Handle, error) {
	return nil, fmt.Errorf("%w: %w", ErrOpen, platform.ErrUnsupported)
}

// Ioctls returns nil
func (b *UnsupportedBackend) Ioctls() []uint {
	return nil
}
