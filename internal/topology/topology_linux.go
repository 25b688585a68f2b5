//go:build linux

package topology

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
)

// LinuxReader implements topology discovery for Linux
type LinuxReader struct {
	counts func(ctx context.Context, logical bool) (int, error)
}

// newPlatformReader creates a new Linux topology reader
func newPlatformReader() Reader {
	return &LinuxReader{counts: cpu.CountsWithContext}
}

// GetInfo returns the physical core count and the threads per core
func (r *LinuxReader) GetInfo(ctx context.Context) (*Info, error) {
	physical, err := r.counts(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("topology: physical cores: %w", err)
	}

	logical, err := r.counts(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("topology: logical threads: %w", err)
	}

	return fromCounts(physical, logical)
}

func fromCounts(physical, logical int) (*Info, error) {
	if physical <= 0 || logical <= 0 {
		return nil, fmt.Errorf("%w: %d cores, %d threads", ErrInvalid, physical, logical)
	}
	if logical%physical != 0 {
		return nil, fmt.Errorf("%w: %d threads on %d cores", ErrInconsistent, logical, physical)
	}

	info := &Info{
		Cores:          physical,
		ThreadsPerCore: logical / physical,
	}
	return info, nil
}
