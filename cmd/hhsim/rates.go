// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/emer/hh/kinetics"
	"github.com/spf13/cobra"
)

var ratesFlags struct {
	vstart, vend, vstep float64
}

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print rate constants, steady states and time constants of each gate.",
	Long: `Print alpha, beta, steady state and time constant of the n, m, h gates ` +
		`over a range of gate voltage arguments (Vrest - V, in mV).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !(ratesFlags.vstep > 0) {
			return fmt.Errorf("rates: vstep must be > 0, got %v", ratesFlags.vstep)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%8s", "v")
		for g := kinetics.N; g < kinetics.GatesN; g++ {
			fmt.Fprintf(out, "\t%9s\t%9s\t%9s\t%9s", "a"+g.String(), "b"+g.String(), g.String()+"inf", "tau"+g.String())
		}
		fmt.Fprintln(out)
		nv := int((ratesFlags.vend-ratesFlags.vstart)/ratesFlags.vstep) + 1
		for vi := 0; vi < nv; vi++ {
			v := ratesFlags.vstart + float64(vi)*ratesFlags.vstep
			fmt.Fprintf(out, "%8.2f", v)
			for g := kinetics.N; g < kinetics.GatesN; g++ {
				a, b := g.Rates(v)
				fmt.Fprintf(out, "\t%9.4g\t%9.4g\t%9.4g\t%9.4g", a, b, g.SteadyState(v), g.Tau(v))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	fs := ratesCmd.Flags()
	fs.Float64Var(&ratesFlags.vstart, "vstart", -100, "starting gate voltage argument (mV)")
	fs.Float64Var(&ratesFlags.vend, "vend", 50, "ending gate voltage argument (mV)")
	fs.Float64Var(&ratesFlags.vstep, "vstep", 5, "voltage increment (mV)")
}
