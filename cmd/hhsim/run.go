// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"

	"github.com/emer/hh/hhlog"
	"github.com/emer/hh/plots"
	"github.com/emer/hh/sim"
	"github.com/emer/hh/spikes"
	"github.com/spf13/cobra"
)

var runFlags struct {
	plot   plots.Params
	noPlot bool
	csv    bool
	size   bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation and plot gates, voltage and currents.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runSim(cmd, cfg)
	},
}

func init() {
	runFlags.plot.Defaults()
	fs := runCmd.Flags()
	fs.BoolVar(&runFlags.noPlot, "no-plot", false, "do not draw the charts")
	fs.BoolVar(&runFlags.csv, "csv", false, "write the recorded series to stdout as CSV instead of charts")
	fs.BoolVar(&runFlags.size, "size", false, "print the memory used by the recorded series")
	fs.IntVar(&runFlags.plot.Width, "width", runFlags.plot.Width, "chart width in columns")
	fs.IntVar(&runFlags.plot.Height, "height", runFlags.plot.Height, "chart height in rows")
	fs.BoolVar(&runFlags.plot.Color, "color", runFlags.plot.Color, "use ANSI colors in charts")
}

func runSim(cmd *cobra.Command, cfg sim.Config) error {
	out := cmd.OutOrStdout()
	ss := sim.New(cfg)
	if err := ss.Run(); err != nil {
		return err
	}
	if err := ss.Err(); err != nil {
		log.Printf("run %s: %v", ss.RunID, err)
	}
	if runFlags.csv {
		return ss.Log.WriteCSV(out)
	}

	spks := ss.Spikes()
	fmt.Fprintf(out, "run: %s\tsteps: %d\tdt: %g ms\ttime: %g ms\n", ss.RunID, ss.Log.Rows(), cfg.Dt, cfg.Time)
	fmt.Fprintf(out, "spikes: %d\n", len(spks))
	for i, sp := range spks {
		fmt.Fprintf(out, "  %3d:\tt: %8.2f ms\tpeak: %7.2f mV\n", i, sp.Time, sp.Peak)
	}
	for _, isi := range spikes.ISIs(spks) {
		fmt.Fprintf(out, "isi: %.2f ms\n", isi)
	}
	if rows := ss.Log.Rows(); rows > 0 {
		fmt.Fprintf(out, "final V: %.3f mV\n", ss.Log.Value(hhlog.V, rows-1))
	}
	if runFlags.size {
		fmt.Fprintln(out, ss.Log.SizeReport())
	}
	if !runFlags.noPlot {
		fmt.Fprintln(out)
		fmt.Fprint(out, runFlags.plot.All(ss.Log))
	}
	return nil
}
