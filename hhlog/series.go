// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hhlog

import "github.com/goki/ki/kit"

// Series are the recorded time series, in column order of the log table
type Series int

//go:generate stringer -type=Series

var KiT_Series = kit.Enums.AddEnum(SeriesN, kit.NotBitFlag, nil)

func (ev Series) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Series) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The series
const (
	// Time is simulated time at the start of the step (ms): row i has Time = i * dt
	Time Series = iota

	// V is the membrane potential after the step (mV)
	V

	// N is the K+ activation gate after the step
	N

	// M is the Na+ activation gate after the step
	M

	// H is the Na+ inactivation gate after the step
	H

	// INa is the Na+ current computed during the step (uA/cm^2)
	INa

	// IK is the K+ current computed during the step (uA/cm^2)
	IK

	// ILeak is the leak current computed during the step (uA/cm^2)
	ILeak

	// IInject is the injected current applied during the step (uA/cm^2)
	IInject

	SeriesN
)

// GateSeries are the gating variables, for the gates chart
var GateSeries = []Series{N, M, H}

// CurrentSeries are the currents, for the currents chart
var CurrentSeries = []Series{INa, IK, ILeak, IInject}
