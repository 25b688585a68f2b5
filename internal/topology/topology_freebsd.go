//go:build freebsd

package topology

import (
	"context"
	"fmt"

	"github.com/CristiGvl/zenstat/internal/sysctl"
)

const (
	coresSysctl          = "kern.smp.cores"
	threadsPerCoreSysctl = "kern.smp.threads_per_core"
)

// FreeBSDReader implements topology discovery through sysctl(3)
type FreeBSDReader struct{}

// newPlatformReader creates a new FreeBSD topology reader
func newPlatformReader() Reader {
	return &FreeBSDReader{}
}

// GetInfo returns the core and thread counts. The sysctl interface is not
// available in capability mode, so this must run before the sandbox is entered.
func (r *FreeBSDReader) GetInfo(ctx context.Context) (*Info, error) {
	cores, err := sysctl.Int(coresSysctl)
	if err != nil {
		return nil, fmt.Errorf("topology: %w", err)
	}

	threads, err := sysctl.Int(threadsPerCoreSysctl)
	if err != nil {
		return nil, fmt.Errorf("topology: %w", err)
	}

	info := &Info{
		Cores:          int(cores),
		ThreadsPerCore: int(threads),
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}

	return info, nil
}
