// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPulseDefaults(t *testing.T) {
	ps := Pulse{}
	ps.Defaults()
	dt := 0.01

	steps := []int{0, 1, 4999, 5000, 5001, 5099, 5100, 9999, 10000, 10099, 10100, 24999}
	cors := []float64{0, 0, 0, 25, 25, 25, 0, 0, 25, 25, 0, 0}
	for i, st := range steps {
		cur := ps.Current(st, dt)
		if cur != cors[i] {
			t.Errorf("pulse err: idx: %v, step: %v, cur: %v, cor: %v\n", i, st, cur, cors[i])
		}
	}
}

func TestPulseQuietBeforeOnset(t *testing.T) {
	ps := Pulse{}
	ps.Defaults()
	dt := 0.01
	for st := 0; st < 5000; st++ {
		if ps.On(st, dt) {
			t.Fatalf("pulse on at step %d before onset", st)
		}
	}
	on := 0
	for st := 5000; st < 5000+5*5000; st++ {
		if ps.On(st, dt) {
			on++
		}
	}
	assert.Equal(t, 5*100, on)
}

func TestPulseOnset(t *testing.T) {
	ps := Pulse{Magnitude: 10, Duration: 2, Period: 20, Onset: 5}
	dt := 0.5
	assert.Equal(t, 5.0, ps.OnsetTime())
	assert.Equal(t, 10, ps.FirstStep(dt))

	assert.Equal(t, 0.0, ps.Current(9, dt))
	assert.Equal(t, 10.0, ps.Current(10, dt))
	assert.Equal(t, 10.0, ps.Current(13, dt))
	assert.Equal(t, 0.0, ps.Current(14, dt))
	assert.Equal(t, 10.0, ps.Current(50, dt))

	ps.Onset = 0
	assert.Equal(t, 10.0, ps.Current(0, dt))
}

func TestPulseSingle(t *testing.T) {
	ps := Pulse{Magnitude: 5, Duration: 1, Period: 0, Onset: 10}
	dt := 0.1
	assert.False(t, ps.On(99, dt))
	assert.True(t, ps.On(100, dt))
	assert.True(t, ps.On(109, dt))
	assert.False(t, ps.On(110, dt))
	assert.False(t, ps.On(1000, dt))
}

func TestPulseValidate(t *testing.T) {
	ps := Pulse{}
	ps.Defaults()
	assert.NoError(t, ps.Validate())

	bad := []Pulse{
		{Duration: -1, Period: 10},
		{Duration: 1, Period: -10},
		{Duration: 1, Period: 10, Onset: math.NaN()},
		{Duration: 20, Period: 10},
	}
	for _, b := range bad {
		assert.ErrorIs(t, b.Validate(), ErrPulse)
	}
}

// dt values that do not divide Onset, Duration or Period: a step is on
// only if its start time lies inside a pulse.
func TestPulseUnevenDt(t *testing.T) {
	ps := Pulse{}
	ps.Defaults()

	dts := []float64{0.7, 0.3, 0.03, 0.07}
	firsts := []int{72, 167, 1667, 715}
	nons := []int{6, 13, 133, 57}
	for i, dt := range dts {
		assert.Equal(t, firsts[i], ps.FirstStep(dt), "dt: %v", dt)
		steps := int(math.Floor(250/dt + 1e-9))
		on := 0
		for st := 0; st < steps; st++ {
			if !ps.On(st, dt) {
				continue
			}
			on++
			tm := float64(st) * dt
			if tm < 50-1e-9 {
				t.Errorf("on before onset: dt: %v step: %v t: %v", dt, st, tm)
			}
			if ph := math.Mod(tm-50, 50); ph >= 1+1e-9 && ph < 50-1e-9 {
				t.Errorf("on outside pulse: dt: %v step: %v t: %v phase: %v", dt, st, tm, ph)
			}
		}
		assert.Equal(t, nons[i], on, "dt: %v", dt)
	}

	assert.False(t, ps.On(71, 0.7))
	assert.True(t, ps.On(72, 0.7))
	assert.False(t, ps.On(73, 0.7))
	assert.True(t, ps.On(143, 0.7))
	assert.True(t, ps.On(144, 0.7))
	assert.False(t, ps.On(145, 0.7))
}

func TestPulseOnsetFollowsPeriod(t *testing.T) {
	ps := Pulse{}
	ps.Defaults()
	assert.Equal(t, 50.0, ps.OnsetTime())

	ps.Period = 100
	dt := 0.01
	assert.Equal(t, 100.0, ps.OnsetTime())
	assert.False(t, ps.On(5000, dt))
	assert.False(t, ps.On(9999, dt))
	assert.True(t, ps.On(10000, dt))
	assert.True(t, ps.On(20000, dt))

	ps.Onset = 30
	assert.Equal(t, 30.0, ps.OnsetTime())
	assert.True(t, ps.On(3000, dt))
	assert.True(t, ps.On(13000, dt))

	single := Pulse{Magnitude: 1, Duration: 1, Onset: -1}
	assert.Equal(t, 0.0, single.OnsetTime())
	assert.True(t, single.On(0, dt))
	assert.False(t, single.On(100, dt))
}
