//go:build !linux && !freebsd

package topology

import (
	"context"
	"fmt"

	"github.com/CristiGvl/zenstat/internal/platform"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct{}

// newPlatformReader creates a fallback topology reader for unsupported platforms
func newPlatformReader() Reader {
	return &UnsupportedReader{}
}

// GetInfo returns an error for unsupported platforms
func (r *UnsupportedReader) GetInfo(ctx context.Context) (*Info, error) {
	return nil, fmt.Errorf("topology: %w", platform.ErrUnsupported)
}
