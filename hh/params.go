// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import (
	"errors"
	"fmt"
	"math"

	"github.com/emer/hh/chans"
	"github.com/emer/hh/kinetics"
)

// KExp is the exponent on the K+ activation gate n in I_K
const KExp = 4

// NaExpDefault is the canonical Hodgkin-Huxley exponent on the Na+ activation
// gate m in I_Na
const NaExpDefault = 3

// ErrParams is returned by Validate for physiology that can not be integrated
var ErrParams = errors.New("hh: invalid membrane parameters")

// hh.Params contains the fixed physiology of the membrane patch and the
// functions that compute currents and advance the state by one step.
// Values are in the classic HH units: mV, ms, mS/cm^2, uF/cm^2, uA/cm^2.
// Params are not modified by any of the update functions, so one Params
// can drive any number of States.
type Params struct {
	Gbar  chans.Chans `view:"inline" desc:"[Defaults: 36, 120, 0.3] maximal conductances (mS/cm^2) for K, Na, leak channels"`
	Erev  chans.Chans `view:"inline" desc:"[Defaults: -77, 50, -54.387] reversal potentials (mV) for K, Na, leak channels"`
	C     float64     `def:"1" min:"0" desc:"membrane capacitance (uF/cm^2)"`
	Vrest float64     `def:"-65" desc:"resting potential (mV) -- gates are driven by Vrest - V"`
	NaExp int         `def:"3,4" min:"1" desc:"exponent p on the Na activation gate in I_Na = Gbar.Na m^p h (E_Na - V) -- 3 is canonical HH, 4 reproduces older traces"`
	Init  InitParams  `view:"inline" desc:"initial values of state variables"`
}

func (pr *Params) Defaults() {
	pr.Gbar.SetAll(36, 120, 0.3)
	pr.Erev.SetAll(-77, 50, -54.387)
	pr.C = 1
	pr.Vrest = -65
	pr.NaExp = NaExpDefault
	pr.Init.Defaults()
	pr.Update()
}

// Update must be called after any changes to parameters
func (pr *Params) Update() {
	pr.Init.Update()
}

// Validate returns an error wrapping ErrParams if the voltage update would
// divide by zero or the Na exponent is meaningless
func (pr *Params) Validate() error {
	if pr.C == 0 || math.IsNaN(pr.C) {
		return fmt.Errorf("%w: capacitance C = %v", ErrParams, pr.C)
	}
	if pr.NaExp < 1 {
		return fmt.Errorf("%w: NaExp = %d must be >= 1", ErrParams, pr.NaExp)
	}
	return nil
}

// InitParams are the initial values of the state variables
type InitParams struct {
	V      float64 `def:"-65" desc:"initial membrane potential (mV)"`
	N      float64 `def:"0.317" desc:"initial K+ activation gate"`
	M      float64 `def:"0.0529" desc:"initial Na+ activation gate"`
	H      float64 `def:"0.5961" desc:"initial Na+ inactivation gate"`
	Steady bool    `desc:"ignore N, M, H and start each gate at its steady state for the initial V"`
}

func (ip *InitParams) Defaults() {
	ip.V = -65
	ip.N = 0.317
	ip.M = 0.0529
	ip.H = 0.5961
	ip.Steady = false
}

func (ip *InitParams) Update() {
}

///////////////////////////////////////////////////////////////////////
//  Init

// InitState sets the state to the initial conditions, with currents
// computed from them and no injected current
func (pr *Params) InitState(st *State) {
	st.V = pr.Init.V
	if pr.Init.Steady {
		gv := pr.GateV(st.V)
		st.N = kinetics.N.SteadyState(gv)
		st.M = kinetics.M.SteadyState(gv)
		st.H = kinetics.H.SteadyState(gv)
	} else {
		st.N = pr.Init.N
		st.M = pr.Init.M
		st.H = pr.Init.H
	}
	st.Inject = 0
	pr.IFmGates(st)
}

///////////////////////////////////////////////////////////////////////
//  Currents

// GateV returns the voltage argument that drives the gating kinetics for
// membrane potential v: the displacement from rest with the sign flipped,
// Vrest - v, following the original HH voltage convention.
func (pr *Params) GateV(v float64) float64 {
	return pr.Vrest - v
}

// GK returns the K+ conductance Gbar.K n^4
func (pr *Params) GK(n float64) float64 {
	return pr.Gbar.K * math.Pow(n, KExp)
}

// GNa returns the Na+ conductance Gbar.Na m^NaExp h
func (pr *Params) GNa(m, h float64) float64 {
	return pr.Gbar.Na * math.Pow(m, float64(pr.NaExp)) * h
}

// IK returns the K+ current Gbar.K n^4 (E_K - v)
func (pr *Params) IK(n, v float64) float64 {
	return pr.GK(n) * (pr.Erev.K - v)
}

// INa returns the Na+ current Gbar.Na m^NaExp h (E_Na - v)
func (pr *Params) INa(m, h, v float64) float64 {
	return pr.GNa(m, h) * (pr.Erev.Na - v)
}

// ILeak returns the leak current Gbar.L (E_L - v)
func (pr *Params) ILeak(v float64) float64 {
	return pr.Gbar.L * (pr.Erev.L - v)
}

// IFmGates recomputes the ionic currents from the current gates and V,
// as conductance times driving force E - V for each channel
func (pr *Params) IFmGates(st *State) {
	var df chans.Chans
	df.SetFmOtherMinus(pr.Erev, st.V)
	st.I.SetAll(pr.GK(st.N)*df.K, pr.GNa(st.M, st.H)*df.Na, pr.Gbar.L*df.L)
}

// SteadyI returns the currents with V clamped at v and every gate at its
// steady state for v: one point on the steady-state I-V curve.
// Positive currents depolarize, so the net current is 0 at a resting point.
func (pr *Params) SteadyI(v float64) chans.Chans {
	gv := pr.GateV(v)
	n := kinetics.N.SteadyState(gv)
	m := kinetics.M.SteadyState(gv)
	h := kinetics.H.SteadyState(gv)
	return chans.Chans{K: pr.IK(n, v), Na: pr.INa(m, h, v), L: pr.ILeak(v)}
}

///////////////////////////////////////////////////////////////////////
//  Step

// GatesFmV advances n, m, h by one explicit Euler step of size dt,
// driven by the current V
func (pr *Params) GatesFmV(st *State, dt float64) {
	gv := pr.GateV(st.V)
	st.N += kinetics.N.Deriv(st.N, gv) * dt
	st.M += kinetics.M.Deriv(st.M, gv) * dt
	st.H += kinetics.H.Deriv(st.H, gv) * dt
}

// DVdt returns the rate of change of V given the currents in st
func (pr *Params) DVdt(st *State) float64 {
	return (st.I.Sum() + st.Inject) / pr.C
}

// VFmI advances V by one explicit Euler step of size dt from the currents
func (pr *Params) VFmI(st *State, dt float64) {
	st.V += pr.DVdt(st) * dt
}

// Step advances the state by one step of size dt with the given injected
// current.  The order is fixed: gates are updated from the old V, then
// currents are computed from the new gates and the old V, then V is updated
// from those currents.  Changing this order changes the trajectory.
// Non-finite values are not checked and propagate.
func (pr *Params) Step(st *State, inject, dt float64) {
	st.Inject = inject
	pr.GatesFmV(st, dt)
	pr.IFmGates(st)
	pr.VFmI(st, dt)
}
