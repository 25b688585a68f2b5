// Package stats runs one diagnostic pass: topology, temperatures, register
// handles, restriction, reads, decoding and reporting, in that order.
package stats

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/CristiGvl/zenstat/internal/config"
	"github.com/CristiGvl/zenstat/internal/cores"
	"github.com/CristiGvl/zenstat/internal/msr"
	"github.com/CristiGvl/zenstat/internal/platform"
	"github.com/CristiGvl/zenstat/internal/pstate"
	"github.com/CristiGvl/zenstat/internal/report"
	"github.com/CristiGvl/zenstat/internal/sandbox"
	"github.com/CristiGvl/zenstat/internal/temps"
	"github.com/CristiGvl/zenstat/internal/topology"
)

// Snapshot holds the decoded state of every core, by core index, and the
// temperature readings.
type Snapshot struct {
	Cores []pstate.State  `json:"cores"`
	Temps []temps.Reading `json:"temps"`
}

// Runner represents one diagnostic pass
type Runner struct {
	cfg      *config.Config
	topology topology.Reader
	temps    temps.Reader
	backend  msr.Backend
	reducer  sandbox.Reducer
	gate     *cores.Gate
	log      *slog.Logger
}

// NewRunner creates a runner wired to the current platform
func NewRunner(cfg *config.Config, log *slog.Logger) (*Runner, error) {
	if err := platform.ValidateSupport(); err != nil {
		return nil, err
	}

	return &Runner{
		cfg:      cfg,
		topology: topology.NewReader(),
		temps:    temps.NewReader(),
		backend:  msr.NewBackend(cfg.DevicePath),
		reducer:  sandbox.NewReducer(),
		gate:     cores.Process(),
		log:      log,
	}, nil
}

// Collect performs the whole sequence and returns the decoded values.
// Every error is final; nothing is retried.
func (r *Runner) Collect(ctx context.Context) (*Snapshot, error) {
	topo, err := r.topology.GetInfo(ctx)
	if err != nil {
		return nil, err
	}
	r.log.Debug("topology", "cores", topo.Cores, "threads_per_core", topo.ThreadsPerCore)

	readings, err := r.temps.Read(ctx, r.cfg.Sensors)
	if err != nil {
		return nil, err
	}

	opened, err := r.gate.Open(r.backend, topo)
	if err != nil {
		return nil, err
	}
	r.log.Debug("opened register devices", "threads", opened.Threads())

	if !r.reducer.Enforcing() {
		r.log.Debug("no capability mechanism on this platform, running unsandboxed", "os", platform.GetOS())
	}
	locked, err := opened.Restrict(r.reducer)
	if err != nil {
		return nil, err
	}

	raw, err := locked.ReadAll(r.cfg.Register)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Cores: make([]pstate.State, len(raw)),
		Temps: readings,
	}
	for core, v := range raw {
		s := pstate.Decode(v)
		if !s.Plausible() {
			r.log.Warn("implausible P-state", "core", core, "raw", fmt.Sprintf("%#x", v),
				"fid", s.FID, "did", s.DID, "vid", s.VID)
		}
		snap.Cores[core] = s
	}

	return snap, nil
}

// Run collects a snapshot and writes the report to w. Nothing is written
// unless every core was read.
func (r *Runner) Run(ctx context.Context, w io.Writer) error {
	snap, err := r.Collect(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, snap.Cores, snap.Temps); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}
