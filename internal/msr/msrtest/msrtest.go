// Package msrtest provides in-memory register backends and reducers that
// record the order of opens, restriction and reads.
package msrtest

import (
	"fmt"

	"github.com/CristiGvl/zenstat/internal/msr"
)

// Backend serves fixed register values per logical thread.
type Backend struct {
	// Values maps a thread to the value every register read returns.
	Values  map[int]uint64
	OpenErr map[int]error
	ReadErr map[int]error
	Codes   []uint

	// Opened lists opened threads in call order.
	Opened []int
	// Sealed is set by a Reducer bound to this backend.
	Sealed bool
	// OpenedAfterSeal lists threads opened after Sealed was set.
	OpenedAfterSeal []int
	// ReadsBeforeSeal counts reads issued before Sealed was set.
	ReadsBeforeSeal int
	// Reads lists the threads read, in call order.
	Reads []int
}

// Open implements msr.Backend.
func (b *Backend) Open(thread int) (msr.Handle, error) {
	if b.Sealed {
		b.OpenedAfterSeal = append(b.OpenedAfterSeal, thread)
	}
	if err := b.OpenErr[thread]; err != nil {
		return nil, fmt.Errorf("%w: %w", msr.ErrOpen, err)
	}
	b.Opened = append(b.Opened, thread)
	return &Handle{b: b, thread: thread}, nil
}

// Ioctls implements msr.Backend.
func (b *Backend) Ioctls() []uint {
	return b.Codes
}

// Handle is a Backend handle.
type Handle struct {
	b      *Backend
	thread int
	// Regs lists the registers read through this handle.
	Regs []uint32
}

// Read implements msr.Handle.
func (h *Handle) Read(reg uint32) (uint64, error) {
	if !h.b.Sealed {
		h.b.ReadsBeforeSeal++
	}
	h.Regs = append(h.Regs, reg)
	h.b.Reads = append(h.b.Reads, h.thread)
	if err := h.b.ReadErr[h.thread]; err != nil {
		return 0, fmt.Errorf("%w: %w", msr.ErrRead, err)
	}
	return h.b.Values[h.thread], nil
}

// Fd returns a fake descriptor derived from the thread index.
func (h *Handle) Fd() uintptr {
	return FdBase + uintptr(h.thread)
}

// FdBase offsets fake descriptors away from stdio.
const FdBase = 100

// Reducer records Restrict calls and seals its Backend.
type Reducer struct {
	Backend *Backend
	Err     error

	Calls  int
	FDs    []uintptr
	Ioctls []uint
}

// Restrict implements sandbox.Reducer.
func (r *Reducer) Restrict(fds []uintptr, ioctls []uint) error {
	r.Calls++
	r.FDs = append([]uintptr(nil), fds...)
	r.Ioctls = append([]uint(nil), ioctls...)
	if r.Backend != nil {
		r.Backend.Sealed = true
	}
	return r.Err
}

// Enforcing implements sandbox.Reducer.
func (r *Reducer) Enforcing() bool {
	return true
}
