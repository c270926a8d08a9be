// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hh is the overall repository for a Hodgkin-Huxley single membrane patch
simulation implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-packages:

* chans: per-channel (K, Na, leak) value sets used for conductances, reversal
potentials and currents.

* kinetics: the empirical rate constants alpha / beta of the n, m, h gates,
with guarded removable singularities, plus steady state and time constants.

* stim: the periodic rectangular current pulse protocol, with an explicit onset.

* hh: the membrane physiology parameters, the state, the ionic currents and
the single explicit Euler step that advances gates, currents and voltage in a
fixed order.

* hhlog: the recorded time series, one etable.Table row per step.

* sim: the run loop that owns the state, divergence reporting, and pulse
magnitude sweeps.

* spikes: action potential detection on a recorded voltage trace.

* plots: terminal charts of gates, voltage and currents over time.

* cmd/hhsim: command-line program to run, sweep, and inspect rate constants and the steady-state I-V curve.
*/
package hh
