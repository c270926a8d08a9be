// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so tests do not see
// values set by earlier Execute calls
func resetFlags(cmds ...*cobra.Command) {
	for _, c := range cmds {
		for _, fs := range []*pflag.FlagSet{c.PersistentFlags(), c.Flags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	}
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags(rootCmd, runCmd, sweepCmd, ratesCmd, ivCmd)
	var b bytes.Buffer
	rootCmd.SetOut(&b)
	rootCmd.SetErr(&b)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), b.String())
	return b.String()
}

func TestRunCmd(t *testing.T) {
	out := execute(t, "run", "--time", "60", "--no-plot")
	assert.Contains(t, out, "steps: 6000")
	assert.Contains(t, out, "spikes: 1\n")

	out = execute(t, "run", "--time", "60", "--width", "30", "--color=false")
	assert.Contains(t, out, "Membrane Voltage Over Time")
	assert.Contains(t, out, "Ion Channel Gates Over Time")

	out = execute(t, "run", "--time", "0.05", "--csv")
	assert.Contains(t, out, "IInject")
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 6, out)
}

func TestRunCmdISI(t *testing.T) {
	out := execute(t, "run", "--time", "120", "--no-plot")
	assert.Contains(t, out, "spikes: 2\n")
	assert.Contains(t, out, "isi: 50.00 ms\n")
	assert.Equal(t, 1, strings.Count(out, "isi:"))
	assert.Contains(t, out, "final V: ")

	out = execute(t, "run", "--time", "0.005", "--no-plot")
	assert.NotContains(t, out, "final V")
}

// changing the period alone moves the first pulse with it
func TestRunCmdPeriod(t *testing.T) {
	out := execute(t, "run", "--period", "100", "--time", "99", "--no-plot")
	assert.Contains(t, out, "spikes: 0\n")

	out = execute(t, "run", "--period", "100", "--time", "150", "--no-plot")
	assert.Contains(t, out, "spikes: 1\n")

	out = execute(t, "run", "--period", "100", "--onset", "50", "--time", "99", "--no-plot")
	assert.Contains(t, out, "spikes: 1\n")
}

func TestRunCmdConfig(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "hh.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Time = 40\n[Pulse]\nOnset = 10\nPeriod = 20\n"), 0o644))
	out := execute(t, "run", "--config", fn, "--no-plot")
	assert.Contains(t, out, "steps: 4000")
	assert.Contains(t, out, "spikes: 2\n")

	// flags override the file
	out = execute(t, "run", "--config", fn, "--time", "20", "--no-plot")
	assert.Contains(t, out, "steps: 2000")
}

func TestSweepCmd(t *testing.T) {
	out := execute(t, "sweep", "--time", "60", "--min", "0", "--max", "10", "--n", "3")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Spikes")
	assert.Equal(t, []string{"0.000", "0"}, strings.Fields(lines[1])[:2])
	assert.Equal(t, []string{"5.000", "0"}, strings.Fields(lines[2])[:2])
	assert.Equal(t, []string{"10.000", "1"}, strings.Fields(lines[3])[:2])
}

func TestRatesCmd(t *testing.T) {
	out := execute(t, "rates", "--vstart", "-10", "--vend", "0", "--vstep", "5")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "aN")
	assert.Contains(t, lines[0], "tauH")
	assert.NotContains(t, out, "NaN")
}

func TestIVCmd(t *testing.T) {
	out := execute(t, "iv", "--vstart", "-100", "--vend", "-60", "--vstep", "20")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "INet")
	cors := [][]string{{"-100.00", "13.68"}, {"-80.00", "7.721"}, {"-60.00", "-8.874"}}
	for i, cor := range cors {
		fs := strings.Fields(lines[i+1])
		require.Len(t, fs, 5)
		assert.Equal(t, cor, []string{fs[0], fs[4]})
	}
}

func TestBadConfig(t *testing.T) {
	resetFlags(rootCmd, runCmd, sweepCmd, ratesCmd, ivCmd)
	var b bytes.Buffer
	rootCmd.SetOut(&b)
	rootCmd.SetErr(&b)
	rootCmd.SetArgs([]string{"run", "--dt", "0", "--no-plot"})
	assert.Error(t, rootCmd.Execute())
}
