// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import (
	"fmt"
	"math"

	"github.com/emer/hh/chans"
)

// State holds the dynamic variables of the membrane patch.
// V, N, M, H are integrated state.  I and Inject are derived every step
// and kept only so they can be recorded.
type State struct {
	V      float64     `desc:"membrane potential (mV)"`
	N      float64     `desc:"K+ activation gate, in [0,1]"`
	M      float64     `desc:"Na+ activation gate, in [0,1]"`
	H      float64     `desc:"Na+ inactivation gate, in [0,1]"`
	I      chans.Chans `desc:"ionic currents (uA/cm^2) as of the last step, computed from the updated gates and the pre-update V"`
	Inject float64     `desc:"injected current (uA/cm^2) applied on the last step"`
}

// StateVars are the names of the variables in State, in VarByIndex order
var StateVars = []string{"V", "N", "M", "H", "IK", "INa", "ILeak", "IInject"}

// VarByIndex returns the variable at the given index in StateVars order
func (st *State) VarByIndex(idx int) float64 {
	switch idx {
	case 0:
		return st.V
	case 1:
		return st.N
	case 2:
		return st.M
	case 3:
		return st.H
	case 4:
		return st.I.K
	case 5:
		return st.I.Na
	case 6:
		return st.I.L
	case 7:
		return st.Inject
	}
	return math.NaN()
}

// VarByName returns the variable with the given StateVars name
func (st *State) VarByName(varNm string) (float64, error) {
	for i, nm := range StateVars {
		if nm == varNm {
			return st.VarByIndex(i), nil
		}
	}
	return math.NaN(), fmt.Errorf("hh.State: variable named: %s not found", varNm)
}

// IsFinite returns true if no variable is NaN or Inf
func (st *State) IsFinite() bool {
	for i := range StateVars {
		v := st.VarByIndex(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// GatesInRange returns true if n, m, h are all within [0,1].
// Values outside indicate too large a step or broken parameters.
func (st *State) GatesInRange() bool {
	return st.N >= 0 && st.N <= 1 && st.M >= 0 && st.M <= 1 && st.H >= 0 && st.H <= 1
}
