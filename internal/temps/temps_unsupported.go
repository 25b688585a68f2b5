//go:build !linux && !freebsd

package temps

import (
	"context"
	"fmt"

	"github.com/CristiGvl/zenstat/internal/platform"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct{}

// newPlatformReader creates a fallback temperature reader for unsupported platforms
func newPlatformReader() Reader {
	return &UnsupportedReader{}
}

// Read returns an error for unsupported platforms
func (r *UnsupportedReader) Read(ctx context.Context, names []string) ([]Reading, error) {
	return nil, fmt.Errorf("temps: %w", platform.ErrUnsupported)
}
