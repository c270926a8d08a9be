// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/emer/hh/hh"
	"github.com/emer/hh/spikes"
	"github.com/emer/hh/stim"
)

// ErrConfig is returned by Validate for configurations that can not be run
var ErrConfig = errors.New("sim: invalid config")

// stepsTol absorbs round-off in Time / Dt so that, e.g., 250 / 0.01 gives
// 25000 steps and not 24999
const stepsTol = 1.0e-9

// Config has the overall configuration of one simulation run.
// All values are fixed for the duration of a run.
type Config struct {
	Membrane hh.Params     `view:"inline" desc:"membrane physiology and initial conditions"`
	Pulse    stim.Pulse    `view:"inline" desc:"current injection protocol"`
	Spikes   spikes.Params `view:"inline" desc:"spike detection used for summaries and sweeps"`
	Dt       float64       `def:"0.01" min:"0" desc:"integration time step (ms)"`
	Time     float64       `def:"250" min:"0" desc:"total simulated time (ms) -- the run takes floor(Time / Dt) steps"`
}

func (cf *Config) Defaults() {
	cf.Membrane.Defaults()
	cf.Pulse.Defaults()
	cf.Spikes.Defaults()
	cf.Dt = 0.01
	cf.Time = 250
	cf.Update()
}

// Update must be called after any changes to parameters
func (cf *Config) Update() {
	cf.Membrane.Update()
	cf.Pulse.Update()
	cf.Spikes.Update()
}

// Validate returns an error wrapping ErrConfig (and the component error)
// if the run can not be performed.  A Time shorter than Dt is valid and
// gives a run with zero steps.
func (cf *Config) Validate() error {
	if !(cf.Dt > 0) || math.IsInf(cf.Dt, 0) {
		return fmt.Errorf("%w: Dt = %v must be > 0", ErrConfig, cf.Dt)
	}
	if !(cf.Time >= 0) || math.IsInf(cf.Time, 0) {
		return fmt.Errorf("%w: Time = %v must be >= 0", ErrConfig, cf.Time)
	}
	if err := cf.Membrane.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := cf.Pulse.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}

// Steps returns the number of integration steps, floor(Time / Dt).
// A Time shorter than Dt always gives 0.
func (cf *Config) Steps() int {
	if !(cf.Dt > 0) || !(cf.Time > 0) || cf.Time < cf.Dt {
		return 0
	}
	return int(math.Floor(cf.Time/cf.Dt + stepsTol))
}

// OpenConfig reads TOML config values from filename on top of the current
// values in cf, so any field not present in the file keeps its value.
// Call Defaults first to get the standard values for missing fields.
func OpenConfig(cf *Config, filename string) error {
	md, err := toml.DecodeFile(filename, cf)
	if err != nil {
		return fmt.Errorf("sim.OpenConfig: %w", err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return fmt.Errorf("sim.OpenConfig: %s: unknown keys: %v", filename, und)
	}
	cf.Update()
	return nil
}
