// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"testing"

	"github.com/emer/hh/hh"
	"github.com/emer/hh/hhlog"
	"github.com/stretchr/testify/assert"
)

func TestDownsample(t *testing.T) {
	vals := []float64{0, 0, 10, 0, 0, 0, -3, 0}
	assert.Equal(t, []float64{10, -3}, Downsample(vals, 2))
	assert.Equal(t, vals, Downsample(vals, 8))
	assert.Equal(t, vals, Downsample(vals, 0))
	assert.Len(t, Downsample(make([]float64, 25000), 100), 100)
}

func TestRender(t *testing.T) {
	lg := hhlog.NewLog("Plot", 50)
	st := &hh.State{V: -65, N: 0.3, M: 0.05, H: 0.6}
	for i := 0; i < 50; i++ {
		st.V = -65 + float64(i%10)
		lg.Record(i, float64(i)*0.1, st)
	}
	pp := Params{}
	pp.Defaults()
	pp.Color = false
	pp.Width = 20
	out := pp.All(lg)
	assert.Contains(t, out, GatesChart.Title)
	assert.Contains(t, out, VoltageChart.Title)
	assert.Contains(t, out, CurrentsChart.Title)
	assert.Contains(t, out, "INa, IK, ILeak, IInject")
	assert.Contains(t, out, "Membrane Voltage (mV): -65 .. -56")
	assert.Contains(t, out, "Proportion of gates open: 0.05 .. 0.6")

	empty := hhlog.NewLog("Empty", 0)
	assert.Contains(t, pp.Render(VoltageChart, empty), "no data")
}
