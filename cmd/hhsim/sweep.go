// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"

	"github.com/emer/hh/sim"
	"github.com/spf13/cobra"
)

var sweepFlags struct {
	min, max float64
	n        int
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run once per pulse magnitude and report spike counts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		mags := sim.Magnitudes(sweepFlags.min, sweepFlags.max, sweepFlags.n)
		res, err := sim.Sweep(cfg, mags)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%10s\t%6s\t%8s\t%8s\n", "Magnitude", "Spikes", "Rate", "PeakV")
		for _, r := range res {
			if r.Diverged {
				log.Printf("sweep: magnitude %g diverged", r.Magnitude)
			}
			fmt.Fprintf(out, "%10.3f\t%6d\t%8.2f\t%8.2f\n", r.Magnitude, r.Spikes, r.Rate, r.PeakV)
		}
		return nil
	},
}

func init() {
	fs := sweepCmd.Flags()
	fs.Float64Var(&sweepFlags.min, "min", 0, "first pulse magnitude (uA/cm^2)")
	fs.Float64Var(&sweepFlags.max, "max", 50, "last pulse magnitude (uA/cm^2)")
	fs.IntVar(&sweepFlags.n, "n", 11, "number of magnitudes")
}
