//go:build freebsd

package temps

import (
	"context"
	"errors"
	"fmt"

	"github.com/CristiGvl/zenstat/internal/sysctl"
)

// FreeBSDReader reads deci-Kelvin temperature sysctls such as
// dev.amdtemp.0.core0.sensor0
type FreeBSDReader struct{}

// newPlatformReader creates a new FreeBSD temperature reader
func newPlatformReader() Reader {
	return &FreeBSDReader{}
}

// Read returns the named sysctls converted to Celsius
func (r *FreeBSDReader) Read(ctx context.Context, names []string) ([]Reading, error) {
	readings := make([]Reading, 0, len(names))
	for _, name := range names {
		c, err := sysctl.Celsius(name)
		if err != nil {
			if errors.Is(err, sysctl.ErrMissing) {
				return nil, fmt.Errorf("%w: %w", ErrMissing, err)
			}
			return nil, fmt.Errorf("temps: %w", err)
		}
		readings = append(readings, Reading{Name: name, Celsius: c})
	}
	return readings, nil
}
