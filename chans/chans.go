// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the per-channel value sets for the Hodgkin-Huxley
membrane patch: one value for each of the potassium (K+), sodium (Na+) and
leak channels.  The same struct holds maximal conductances, reversal
potentials, or instantaneous currents, depending on context, following the
standard equivalent RC circuit model of a membrane (basic Ohms law equations).
*/
package chans

// Chans are the ion channels of the Hodgkin-Huxley membrane patch
type Chans struct {
	K  float64 `desc:"voltage-gated delayed-rectifier potassium (K+) channels, gated by n^4"`
	Na float64 `desc:"voltage-gated fast sodium (Na+) channels, gated by m^p h"`
	L  float64 `desc:"constant leak channels (mostly Cl-), not voltage gated"`
}

// SetAll sets all the values
func (ch *Chans) SetAll(k, na, l float64) {
	ch.K, ch.Na, ch.L = k, na, l
}

// SetFmOtherMinus sets all the values from other Chans minus given value,
// i.e., the driving force E - V for reversal potentials oth and voltage minus.
func (ch *Chans) SetFmOtherMinus(oth Chans, minus float64) {
	ch.K, ch.Na, ch.L = oth.K-minus, oth.Na-minus, oth.L-minus
}

// Sum returns K + Na + L, in that order
func (ch *Chans) Sum() float64 {
	return ch.K + ch.Na + ch.L
}
