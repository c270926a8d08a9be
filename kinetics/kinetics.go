// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package kinetics provides the empirical voltage-dependent rate constants of the
Hodgkin-Huxley (1952) squid giant axon model, for the potassium activation gate n,
the sodium activation gate m, and the sodium inactivation gate h.

Each gate x opens at rate alpha_x(v) and closes at rate beta_x(v), so that the
fraction of open gates follows dx/dt = alpha_x(v) (1 - x) - beta_x(v) x.

The voltage argument v uses the original HH convention: it is the displacement
from rest with the sign reversed (v = Vrest - V, in mV), so that depolarization
gives negative v.  Callers are responsible for converting a membrane potential
into this form.

AlphaN and AlphaM have the form a x / (exp(x / 10) - 1), which is 0/0 at x = 0.
Within SingularTol of that point the linear expansion around the analytic
limit is returned instead, so the rates stay finite for every finite v.
*/
package kinetics

import "math"

// SingularTol is the distance in mV from the removable singularity of AlphaN
// (v = -10) and AlphaM (v = -25) within which the limit expansion is used
const SingularTol = 1.0e-6

// AlphaN is the opening rate (1/ms) of the K+ activation gate n.
// At v = -10 this is the limit 0.1.
func AlphaN(v float64) float64 {
	x := v + 10
	if math.Abs(x) < SingularTol {
		return 0.1 - 0.005*x
	}
	return 0.01 * (v + 10) / (math.Exp((v+10)/10) - 1)
}

// BetaN is the closing rate (1/ms) of the K+ activation gate n
func BetaN(v float64) float64 {
	return 0.125 * math.Exp(v/80)
}

// AlphaM is the opening rate (1/ms) of the Na+ activation gate m.
// At v = -25 this is the limit 1.
func AlphaM(v float64) float64 {
	x := v + 25
	if math.Abs(x) < SingularTol {
		return 1 - 0.05*x
	}
	return 0.1 * (v + 25) / (math.Exp((v+25)/10) - 1)
}

// BetaM is the closing rate (1/ms) of the Na+ activation gate m
func BetaM(v float64) float64 {
	return 4 * math.Exp(v/18)
}

// AlphaH is the opening (de-inactivation) rate (1/ms) of the Na+ gate h
func AlphaH(v float64) float64 {
	return 0.07 * math.Exp(v/20)
}

// BetaH is the closing (inactivation) rate (1/ms) of the Na+ gate h
func BetaH(v float64) float64 {
	return 1 / (math.Exp((v+30)/10) + 1)
}

// Deriv returns the first-order gating kinetics alpha (1 - x) - beta x
func Deriv(x, alpha, beta float64) float64 {
	return alpha*(1-x) - beta*x
}

// DnDt returns the rate of change of the K+ activation gate n at voltage arg v
func DnDt(n, v float64) float64 {
	return Deriv(n, AlphaN(v), BetaN(v))
}

// DmDt returns the rate of change of the Na+ activation gate m at voltage arg v
func DmDt(m, v float64) float64 {
	return Deriv(m, AlphaM(v), BetaM(v))
}

// DhDt returns the rate of change of the Na+ inactivation gate h at voltage arg v
func DhDt(h, v float64) float64 {
	return Deriv(h, AlphaH(v), BetaH(v))
}
