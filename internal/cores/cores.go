// Package cores owns the per-core register handles and the one-way
// transition from unrestricted to restricted process state.
//
// Handles can only be created by a Gate, which refuses once any set it
// opened has been restricted. Registers can only be read through the
// *Restricted value that Opened.Restrict returns.
package cores

import (
	"fmt"
	"sync/atomic"

	"github.com/CristiGvl/zenstat/internal/msr"
	"github.com/CristiGvl/zenstat/internal/sandbox"
	"github.com/CristiGvl/zenstat/internal/topology"
)

// Gate tracks the one-way restricted state. The Process gate models the
// state of the running process; tests use their own.
type Gate struct {
	restricted atomic.Bool
}

var process = &Gate{}

// Process returns the gate of the running process.
func Process() *Gate {
	return process
}

// NewGate returns an unrestricted gate.
func NewGate() *Gate {
	return &Gate{}
}

// Restricted reports whether a set opened through g has been restricted.
func (g *Gate) Restricted() bool {
	return g.restricted.Load()
}

// Open opens the per-core handles through the Process gate.
func Open(b msr.Backend, topo *topology.Info) (*Opened, error) {
	return process.Open(b, topo)
}

// Opened is the set of handles before restriction, one per physical core.
type Opened struct {
	gate    *Gate
	handles []msr.Handle
	threads []int
	ioctls  []uint
	spent   bool
}

// Open opens the first hardware thread of every physical core in ascending
// core order.
func (g *Gate) Open(b msr.Backend, topo *topology.Info) (*Opened, error) {
	if g.restricted.Load() {
		return nil, ErrAfterRestriction
	}
	if err := topo.Validate(); err != nil {
		return nil, err
	}

	o := &Opened{
		gate:    g,
		handles: make([]msr.Handle, 0, topo.Cores),
		threads: topo.Threads(),
		ioctls:  b.Ioctls(),
	}
	for core, thread := range o.threads {
		h, err := b.Open(thread)
		if err != nil {
			return nil, fmt.Errorf("core %d (thread %d): %w", core, thread, err)
		}
		o.handles = append(o.handles, h)
	}

	return o, nil
}

// Threads returns the logical thread each core was opened through.
func (o *Opened) Threads() []int {
	return append([]int(nil), o.threads...)
}

// Restrict hands every descriptor to r and marks the process restricted.
// The set may be restricted once; on failure the process must not continue.
func (o *Opened) Restrict(r sandbox.Reducer) (*Restricted, error) {
	if o.spent {
		return nil, ErrSpent
	}
	o.spent = true

	fds := make([]uintptr, len(o.handles))
	for i, h := range o.handles {
		fds[i] = h.Fd()
	}

	// Mark first: a failed restriction may have applied some steps.
	o.gate.restricted.Store(true)
	if err := r.Restrict(fds, o.ioctls); err != nil {
		return nil, err
	}

	handles := o.handles
	o.handles = nil
	return &Restricted{handles: handles}, nil
}

// Restricted is the set of handles after restriction.
type Restricted struct {
	handles []msr.Handle
}

// Len returns the number of cores.
func (r *Restricted) Len() int {
	return len(r.handles)
}

// ReadAll reads reg on every core. Values are indexed by core.
func (r *Restricted) ReadAll(reg uint32) ([]uint64, error) {
	values := make([]uint64, len(r.handles))
	for core, h := range r.handles {
		v, err := h.Read(reg)
		if err != nil {
			return nil, fmt.Errorf("core %d: %w", core, err)
		}
		values[core] = v
	}
	return values, nil
}
