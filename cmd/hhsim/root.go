// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/emer/hh/sim"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hhsim",
	Short: "Hodgkin-Huxley membrane patch simulator.",
	Long: `hhsim integrates the Hodgkin-Huxley model of a single membrane patch with ` +
		`fixed-step explicit Euler under a periodic current pulse, and shows the ` +
		`gating variables, membrane voltage and currents over time.`,
	SilenceUsage: true,
}

// modelFlags are the config overrides shared by all simulation commands.
// Only flags that are explicitly set override the config file / defaults.
type modelFlags struct {
	config    string
	dt        float64
	time      float64
	magnitude float64
	duration  float64
	period    float64
	onset     float64
	naExp     int
	steady    bool
}

var mf modelFlags

func init() {
	def := sim.Config{}
	def.Defaults()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&mf.config, "config", "", "TOML file with config values, applied on top of the defaults")
	pf.Float64Var(&mf.dt, "dt", def.Dt, "integration time step (ms)")
	pf.Float64Var(&mf.time, "time", def.Time, "total simulated time (ms)")
	pf.Float64Var(&mf.magnitude, "magnitude", def.Pulse.Magnitude, "pulse current magnitude (uA/cm^2)")
	pf.Float64Var(&mf.duration, "duration", def.Pulse.Duration, "pulse duration (ms)")
	pf.Float64Var(&mf.period, "period", def.Pulse.Period, "pulse period (ms)")
	pf.Float64Var(&mf.onset, "onset", def.Pulse.Onset, "time of the first pulse (ms), negative for one period after the start (the default, so --period alone keeps the first period quiet)")
	pf.IntVar(&mf.naExp, "na-exp", def.Membrane.NaExp, "exponent on the Na activation gate m")
	pf.BoolVar(&mf.steady, "steady", def.Membrane.Init.Steady, "start gates at their steady state instead of the fixed initial values")

	rootCmd.AddCommand(runCmd, sweepCmd, ratesCmd, ivCmd)
}

// loadConfig builds the config from defaults, the optional config file,
// and any explicitly set flags, in that order
func loadConfig(cmd *cobra.Command) (sim.Config, error) {
	cfg := sim.Config{}
	cfg.Defaults()
	if mf.config != "" {
		if err := sim.OpenConfig(&cfg, mf.config); err != nil {
			return cfg, err
		}
	}
	fs := cmd.Flags()
	if fs.Changed("dt") {
		cfg.Dt = mf.dt
	}
	if fs.Changed("time") {
		cfg.Time = mf.time
	}
	if fs.Changed("magnitude") {
		cfg.Pulse.Magnitude = mf.magnitude
	}
	if fs.Changed("duration") {
		cfg.Pulse.Duration = mf.duration
	}
	if fs.Changed("period") {
		cfg.Pulse.Period = mf.period
	}
	if fs.Changed("onset") {
		cfg.Pulse.Onset = mf.onset
	}
	if fs.Changed("na-exp") {
		cfg.Membrane.NaExp = mf.naExp
	}
	if fs.Changed("steady") {
		cfg.Membrane.Init.Steady = mf.steady
	}
	cfg.Update()
	return cfg, cfg.Validate()
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
