// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ivFlags struct {
	vstart, vend, vstep float64
}

var ivCmd = &cobra.Command{
	Use:   "iv",
	Short: "Print the steady-state current-voltage relation of the membrane.",
	Long: `Print the K, Na and leak currents, and their sum, with V clamped at each ` +
		`membrane potential and every gate at its steady state.  Positive currents ` +
		`depolarize, so the net current crosses 0 at resting points.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if !(ivFlags.vstep > 0) {
			return fmt.Errorf("iv: vstep must be > 0, got %v", ivFlags.vstep)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%8s\t%10s\t%10s\t%10s\t%10s\n", "V", "IK", "INa", "ILeak", "INet")
		nv := int((ivFlags.vend-ivFlags.vstart)/ivFlags.vstep) + 1
		for vi := 0; vi < nv; vi++ {
			v := ivFlags.vstart + float64(vi)*ivFlags.vstep
			iv := cfg.Membrane.SteadyI(v)
			fmt.Fprintf(out, "%8.2f\t%10.4g\t%10.4g\t%10.4g\t%10.4g\n", v, iv.K, iv.Na, iv.L, iv.Sum())
		}
		return nil
	},
}

func init() {
	fs := ivCmd.Flags()
	fs.Float64Var(&ivFlags.vstart, "vstart", -100, "first membrane potential (mV)")
	fs.Float64Var(&ivFlags.vend, "vend", 0, "last membrane potential (mV)")
	fs.Float64Var(&ivFlags.vstep, "vstep", 5, "membrane potential increment (mV)")
}
