// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sim runs the Hodgkin-Huxley membrane patch under the pulse protocol.

Sim owns the state for a run and drives it forward with fixed-step explicit
Euler.  Each step evaluates the stimulus, advances the gates, recomputes the
currents, advances V, and records everything into the hhlog.Log, in that
order.  Runs are sequential and deterministic: the same Config always gives
the same values.
*/
package sim

import (
	"github.com/emer/hh/hh"
	"github.com/emer/hh/hhlog"
	"github.com/emer/hh/spikes"
	"github.com/rs/xid"
)

// Sim encapsulates one simulation run: the config, the evolving state,
// and the recorded series.
type Sim struct {
	Config      Config     `desc:"fixed parameters for the run"`
	State       hh.State   `desc:"current state -- after Run, the state after the final step"`
	Log         *hhlog.Log `view:"no-inline" desc:"recorded series, one row per step"`
	RunID       string     `inactive:"+" desc:"unique id of the last run, also stored in the log metadata"`
	DivergeStep int        `inactive:"+" desc:"first step whose state was NaN or Inf, -1 if none"`
	diverged    hh.State
}

// New returns a new Sim with the given config
func New(cfg Config) *Sim {
	ss := &Sim{Config: cfg}
	ss.Init()
	return ss
}

// NewDefault returns a new Sim with the default config
func NewDefault() *Sim {
	cfg := Config{}
	cfg.Defaults()
	return New(cfg)
}

// Init resets the state to the initial conditions and allocates an
// empty log sized for the configured number of steps
func (ss *Sim) Init() {
	ss.Config.Update()
	ss.Config.Membrane.InitState(&ss.State)
	ss.RunID = xid.New().String()
	ss.Log = hhlog.NewLog("HH", ss.Config.Steps())
	ss.Log.SetMeta("run", ss.RunID)
	ss.DivergeStep = -1
}

// Run validates the config, re-initializes, and runs all steps.
// It only returns an error for an invalid config: numerical divergence
// does not stop the run and is reported by Err.
func (ss *Sim) Run() error {
	if err := ss.Config.Validate(); err != nil {
		return err
	}
	ss.Init()
	steps := ss.Config.Steps()
	for step := 0; step < steps; step++ {
		ss.StepAt(step)
	}
	return nil
}

// StepAt performs integration step number step and records it in the
// corresponding row of the log.  Steps must be taken in order from 0.
func (ss *Sim) StepAt(step int) {
	cf := &ss.Config
	st := &ss.State
	inj := cf.Pulse.Current(step, cf.Dt)
	cf.Membrane.Step(st, inj, cf.Dt)
	t := float64(step) * cf.Dt
	if ss.DivergeStep < 0 && !st.IsFinite() {
		ss.DivergeStep = step
		ss.diverged = *st
	}
	if step < ss.Log.Rows() {
		ss.Log.Record(step, t, st)
	}
}

// Err returns a *DivergenceError if the last run produced a NaN or Inf
// state, and nil otherwise
func (ss *Sim) Err() error {
	if ss.DivergeStep < 0 {
		return nil
	}
	return &DivergenceError{Step: ss.DivergeStep, Time: float64(ss.DivergeStep) * ss.Config.Dt, State: ss.diverged}
}

// Spikes returns the spikes detected in the recorded V series
func (ss *Sim) Spikes() []spikes.Spike {
	return ss.Config.Spikes.Detect(ss.Log.Values(hhlog.Time), ss.Log.Values(hhlog.V))
}

// Run runs a simulation with the given config and returns the recorded log.
// The error is from config validation only -- see Sim.Err for divergence.
func Run(cfg Config) (*hhlog.Log, error) {
	ss := &Sim{Config: cfg}
	if err := ss.Run(); err != nil {
		return nil, err
	}
	return ss.Log, nil
}
