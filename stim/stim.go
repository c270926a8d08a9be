// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stim provides the current injection protocol used to drive the membrane:
a periodic rectangular pulse train with an explicit onset.

Timing is compared in units of integration steps with a small tolerance,
so a step is on only if its start time step*dt lies inside a pulse, and
no step before Onset is ever on, whether or not dt divides the timings.
*/
package stim

import (
	"errors"
	"fmt"
	"math"
)

// ErrPulse is returned by Validate for unusable pulse parameters
var ErrPulse = errors.New("stim: invalid pulse parameters")

// stepTol is the tolerance, in steps, on step boundaries: 50 / 0.01 is
// 5000 steps even though neither value is exact in floating point
const stepTol = 1.0e-9

// Pulse is a periodic rectangular current pulse: Magnitude is injected for
// Duration, starting at Onset and again every Period thereafter.
type Pulse struct {
	Magnitude float64 `def:"25" desc:"injected current during the on phase (uA/cm^2)"`
	Duration  float64 `def:"1" min:"0" desc:"duration of each pulse (ms)"`
	Period    float64 `def:"50" min:"0" desc:"time from the start of one pulse to the start of the next (ms)"`
	Onset     float64 `def:"-1" desc:"time of the first pulse (ms) -- nothing is injected before this.  Negative means one Period, leaving the first full period quiet"`
}

func (ps *Pulse) Defaults() {
	ps.Magnitude = 25
	ps.Duration = 1
	ps.Period = 50
	ps.Onset = -1
}

// Update must be called after any changes to parameters
func (ps *Pulse) Update() {
}

// Validate returns an error wrapping ErrPulse if the pulse can not be evaluated
func (ps *Pulse) Validate() error {
	switch {
	case ps.Duration < 0:
		return fmt.Errorf("%w: Duration %v < 0", ErrPulse, ps.Duration)
	case ps.Period < 0:
		return fmt.Errorf("%w: Period %v < 0", ErrPulse, ps.Period)
	case math.IsNaN(ps.Onset):
		return fmt.Errorf("%w: Onset is NaN", ErrPulse)
	case ps.Period > 0 && ps.Duration > ps.Period:
		return fmt.Errorf("%w: Duration %v > Period %v", ErrPulse, ps.Duration, ps.Period)
	}
	return nil
}

// OnsetTime returns the time of the first pulse (ms): Onset, or Period
// when Onset is negative
func (ps *Pulse) OnsetTime() float64 {
	if ps.Onset < 0 {
		return ps.Period
	}
	return ps.Onset
}

// FirstStep returns the first step whose start time is at or after
// OnsetTime: the earliest step that can be on
func (ps *Pulse) FirstStep(dt float64) int {
	return int(math.Ceil(ps.OnsetTime()/dt - stepTol))
}

// On returns true if the pulse is in its on phase at the given step, i.e.,
// step*dt >= OnsetTime and (step*dt - OnsetTime) mod Period < Duration.
// A Period of less than one step gives a single pulse at OnsetTime.
func (ps *Pulse) On(step int, dt float64) bool {
	if step < ps.FirstStep(dt) {
		return false
	}
	k := math.Max(float64(step)-ps.OnsetTime()/dt, 0)
	if per := ps.Period / dt; per >= 1-stepTol {
		k -= math.Floor(k/per+stepTol) * per
		k = math.Max(k, 0)
	}
	return k < ps.Duration/dt-stepTol
}

// Current returns the injected current at the given step: exactly
// Magnitude during the on phase, 0 otherwise
func (ps *Pulse) Current(step int, dt float64) float64 {
	if ps.On(step, dt) {
		return ps.Magnitude
	}
	return 0
}
