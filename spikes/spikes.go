// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spikes detects action potentials in a recorded membrane potential trace,
using an upward threshold crossing with hysteresis: after a spike is counted,
V has to fall below Rearm before the next crossing can count.
*/
package spikes

// Params are the spike detection parameters
type Params struct {
	Thr   float64 `def:"0" desc:"upward crossing of this potential (mV) counts as a spike"`
	Rearm float64 `def:"-30" desc:"potential (mV) that V must fall below after a spike before another spike can be counted -- must be <= Thr"`
}

func (sp *Params) Defaults() {
	sp.Thr = 0
	sp.Rearm = -30
	sp.Update()
}

func (sp *Params) Update() {
	if sp.Rearm > sp.Thr {
		sp.Rearm = sp.Thr
	}
}

// Spike is one detected action potential
type Spike struct {
	Step int     `desc:"index of the first sample at or above Thr"`
	Time float64 `desc:"time of that sample (ms)"`
	Peak float64 `desc:"maximum V from the crossing until re-arming (mV)"`
}

// Detect returns the spikes in the trace v, with times t aligned by index.
// t may be nil, in which case Time is left at 0.
func (sp *Params) Detect(t, v []float64) []Spike {
	var spks []Spike
	armed := true
	for i, vi := range v {
		if armed {
			if vi >= sp.Thr {
				s := Spike{Step: i, Peak: vi}
				if i < len(t) {
					s.Time = t[i]
				}
				spks = append(spks, s)
				armed = false
			}
			continue
		}
		cur := &spks[len(spks)-1]
		if vi > cur.Peak {
			cur.Peak = vi
		}
		if vi < sp.Rearm {
			armed = true
		}
	}
	return spks
}

// ISIs returns the inter-spike intervals (ms) between successive spikes
func ISIs(spks []Spike) []float64 {
	if len(spks) < 2 {
		return nil
	}
	isi := make([]float64, len(spks)-1)
	for i := 1; i < len(spks); i++ {
		isi[i-1] = spks[i].Time - spks[i-1].Time
	}
	return isi
}

// Rate returns the mean firing rate in Hz for n spikes over dur msec
func Rate(n int, dur float64) float64 {
	if dur <= 0 {
		return 0
	}
	return float64(n) / (dur / 1000)
}
