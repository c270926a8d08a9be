// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package plots renders the three standard views of a run as terminal charts:
gating variables vs. time, membrane voltage vs. time, and currents vs. time.

Series are reduced to one point per column before plotting, keeping the most
extreme value in each column so that brief action potentials stay visible.
*/
package plots

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/emer/hh/hhlog"
	"github.com/guptarohit/asciigraph"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// seriesColors are the chart colors, indexed by hhlog.Series
var seriesColors = [hhlog.SeriesN]asciigraph.AnsiColor{
	hhlog.Time:    asciigraph.Default,
	hhlog.V:       asciigraph.Blue,
	hhlog.N:       asciigraph.Red,
	hhlog.M:       asciigraph.Green,
	hhlog.H:       asciigraph.Yellow,
	hhlog.INa:     asciigraph.Green,
	hhlog.IK:      asciigraph.Red,
	hhlog.ILeak:   asciigraph.Gray,
	hhlog.IInject: asciigraph.Magenta,
}

// Params control the chart size
type Params struct {
	Width  int  `def:"100" min:"10" desc:"number of columns in the plot area"`
	Height int  `def:"12" min:"2" desc:"number of rows in the plot area"`
	Color  bool `def:"true" desc:"use ANSI colors for series"`
}

func (pp *Params) Defaults() {
	pp.Width = 100
	pp.Height = 12
	pp.Color = true
}

// Chart is one of the standard views
type Chart struct {
	Title  string
	YLabel string
	Series []hhlog.Series
}

// Standard charts
var (
	GatesChart    = Chart{Title: "Ion Channel Gates Over Time", YLabel: "Proportion of gates open", Series: hhlog.GateSeries}
	VoltageChart  = Chart{Title: "Membrane Voltage Over Time", YLabel: "Membrane Voltage (mV)", Series: []hhlog.Series{hhlog.V}}
	CurrentsChart = Chart{Title: "Membrane Current Over Time", YLabel: "Membrane Current (uA/cm^2)", Series: hhlog.CurrentSeries}
)

// Render returns the chart of the given log as text
func (pp *Params) Render(ch Chart, lg *hhlog.Log) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(ch.Title))
	b.WriteString("\n")
	if lg.Rows() == 0 {
		b.WriteString(axisStyle.Render("  (no data)"))
		b.WriteString("\n")
		return b.String()
	}
	data := make([][]float64, len(ch.Series))
	names := make([]string, len(ch.Series))
	colors := make([]asciigraph.AnsiColor, len(ch.Series))
	for i, s := range ch.Series {
		data[i] = Downsample(lg.Values(s), pp.Width)
		names[i] = s.String()
		colors[i] = seriesColors[s]
	}
	opts := []asciigraph.Option{
		asciigraph.Height(pp.Height),
		asciigraph.Caption(ch.YLabel + ": " + strings.Join(names, ", ")),
	}
	if pp.Color {
		opts = append(opts, asciigraph.SeriesColors(colors...))
	}
	yr := lg.Ranges(ch.Series...)
	finite := yr.IsValid() && !math.IsInf(yr.Min, 0) && !math.IsInf(yr.Max, 0)
	if finite {
		opts = append(opts, asciigraph.LowerBound(yr.Min), asciigraph.UpperBound(yr.Max))
	}
	b.WriteString(asciigraph.PlotMany(data, opts...))
	b.WriteString("\n")
	tr := lg.Range(hhlog.Time)
	b.WriteString(axisStyle.Render(fmt.Sprintf("  Time (ms): %g .. %g", tr.Min, tr.Max)))
	b.WriteString("\n")
	if finite {
		b.WriteString(axisStyle.Render(fmt.Sprintf("  %s: %.4g .. %.4g", ch.YLabel, yr.Min, yr.Max)))
		b.WriteString("\n")
	}
	return b.String()
}

// All returns the three standard charts of the given log
func (pp *Params) All(lg *hhlog.Log) string {
	return pp.Render(GatesChart, lg) + "\n" + pp.Render(VoltageChart, lg) + "\n" + pp.Render(CurrentsChart, lg)
}

// Downsample reduces vals to at most n points by splitting it into n equal
// bins and keeping, from each bin, the value farthest from the mean of vals
func Downsample(vals []float64, n int) []float64 {
	if n <= 0 || len(vals) <= n {
		cp := make([]float64, len(vals))
		copy(cp, vals)
		return cp
	}
	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))
	out := make([]float64, n)
	for i := range out {
		st := i * len(vals) / n
		ed := (i + 1) * len(vals) / n
		ext := vals[st]
		for _, v := range vals[st:ed] {
			if math.Abs(v-mean) > math.Abs(ext-mean) {
				ext = v
			}
		}
		out[i] = ext
	}
	return out
}
