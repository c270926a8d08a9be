// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import "github.com/goki/ki/kit"

// Gates are the three Hodgkin-Huxley gating variables
type Gates int

//go:generate stringer -type=Gates

var KiT_Gates = kit.Enums.AddEnum(GatesN, kit.NotBitFlag, nil)

func (ev Gates) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Gates) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The gates
const (
	// N is the K+ activation gate: I_K is proportional to n^4
	N Gates = iota

	// M is the Na+ activation gate: I_Na is proportional to m^p h
	M

	// H is the Na+ inactivation gate
	H

	GatesN
)

// Rates returns the opening and closing rates of gate g at voltage arg v
func (g Gates) Rates(v float64) (alpha, beta float64) {
	switch g {
	case N:
		return AlphaN(v), BetaN(v)
	case M:
		return AlphaM(v), BetaM(v)
	case H:
		return AlphaH(v), BetaH(v)
	}
	return 0, 0
}

// Deriv returns dx/dt for gate g with current value x at voltage arg v
func (g Gates) Deriv(x, v float64) float64 {
	switch g {
	case N:
		return DnDt(x, v)
	case M:
		return DmDt(x, v)
	case H:
		return DhDt(x, v)
	}
	return 0
}

// SteadyState returns the value x_inf = alpha / (alpha + beta) that gate g
// relaxes to when v is held fixed
func (g Gates) SteadyState(v float64) float64 {
	a, b := g.Rates(v)
	return a / (a + b)
}

// Tau returns the relaxation time constant 1 / (alpha + beta), in ms,
// of gate g at fixed v
func (g Gates) Tau(v float64) float64 {
	a, b := g.Rates(v)
	return 1 / (a + b)
}
