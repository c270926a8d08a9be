// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"

	"github.com/emer/hh/hhlog"
	"github.com/emer/hh/spikes"
)

// SweepResult summarizes one run of a Sweep
type SweepResult struct {
	Magnitude float64 `desc:"pulse magnitude for this run (uA/cm^2)"`
	Spikes    int     `desc:"number of spikes detected"`
	Rate      float64 `desc:"mean firing rate over the whole run (Hz)"`
	PeakV     float64 `desc:"maximum V over the run (mV)"`
	Diverged  bool    `desc:"true if the run produced a NaN or Inf state"`
}

// Sweep runs the config once for each pulse magnitude, in order, and
// returns a summary of each run.  Only the pulse magnitude differs
// between runs.
func Sweep(cfg Config, mags []float64) ([]SweepResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	res := make([]SweepResult, len(mags))
	ss := &Sim{Config: cfg}
	for i, mag := range mags {
		ss.Config.Pulse.Magnitude = mag
		if err := ss.Run(); err != nil {
			return nil, err
		}
		spks := ss.Spikes()
		pk := math.Inf(-1)
		if ss.Log.Rows() > 0 {
			pk = ss.Log.Range(hhlog.V).Max
		}
		res[i] = SweepResult{
			Magnitude: mag,
			Spikes:    len(spks),
			Rate:      spikes.Rate(len(spks), cfg.Time),
			PeakV:     pk,
			Diverged:  ss.DivergeStep >= 0,
		}
	}
	return res, nil
}

// Magnitudes returns n evenly spaced magnitudes from lo to hi inclusive
func Magnitudes(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	mags := make([]float64, n)
	inc := (hi - lo) / float64(n-1)
	for i := range mags {
		mags[i] = lo + float64(i)*inc
	}
	return mags
}
