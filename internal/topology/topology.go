package topology

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalid indicates a non-positive core or thread count.
	ErrInvalid = errors.New("topology: invalid count")

	// ErrInconsistent indicates that the logical thread count is not a
	// multiple of the physical core count.
	ErrInconsistent = errors.New("topology: threads not evenly distributed across cores")
)

// Info describes the physical layout of the single CPU package
type Info struct {
	Cores          int `json:"cores"`
	ThreadsPerCore int `json:"threads_per_core"`
}

// Validate returns an error unless both counts are positive
func (i *Info) Validate() error {
	if i.Cores <= 0 {
		return fmt.Errorf("%w: %d cores", ErrInvalid, i.Cores)
	}
	if i.ThreadsPerCore <= 0 {
		return fmt.Errorf("%w: %d threads per core", ErrInvalid, i.ThreadsPerCore)
	}
	return nil
}

// FirstThread returns the logical thread index of the first hardware thread
// of the given physical core. Sibling threads share the per-core registers,
// so this is the only thread each core is accessed through.
func (i *Info) FirstThread(core int) int {
	return core * i.ThreadsPerCore
}

// Threads returns the first thread of every core in ascending core order.
func (i *Info) Threads() []int {
	threads := make([]int, i.Cores)
	for c := range threads {
		threads[c] = i.FirstThread(c)
	}
	return threads
}

// Reader interface for topology discovery
type Reader interface {
	GetInfo(ctx context.Context) (*Info, error)
}

// NewReader creates a new topology reader for the current platform
func NewReader() Reader {
	return newPlatformReader()
}
