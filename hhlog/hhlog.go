// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hhlog records the time series of a membrane simulation into an
etable.Table, one row per integration step and one float64 column per Series.

The table is sized once for the whole run, so all columns always have the same
number of rows and row i of every column belongs to the same step.
*/
package hhlog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
	"github.com/emer/hh/hh"
)

// LogPrec is precision for saving float values in logs
const LogPrec = 6

// Log holds the recorded series of one run
type Log struct {
	Table *etable.Table `view:"no-inline" desc:"one row per step, one column per Series"`
}

// NewLog returns a new log with the given name, sized for steps rows
func NewLog(name string, steps int) *Log {
	lg := &Log{}
	lg.Config(name, steps)
	return lg
}

// Config (re)creates the table with all Series columns and steps rows
func (lg *Log) Config(name string, steps int) {
	if steps < 0 {
		steps = 0
	}
	dt := &etable.Table{}
	dt.SetMetaData("name", name)
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := make(etable.Schema, SeriesN)
	for s := Time; s < SeriesN; s++ {
		sch[s] = etable.Column{Name: s.String(), Type: etensor.FLOAT64, CellShape: nil, DimNames: nil}
	}
	dt.SetFromSchema(sch, steps)
	lg.Table = dt
}

// SetMeta sets a metadata key on the table, e.g., the run id
func (lg *Log) SetMeta(key, val string) {
	lg.Table.SetMetaData(key, val)
}

// Rows returns the number of rows (steps) in the log
func (lg *Log) Rows() int {
	return lg.Table.Rows
}

// Record writes time t and the state after a step into the given row
func (lg *Log) Record(row int, t float64, st *hh.State) {
	dt := lg.Table
	dt.SetCellFloatIdx(int(Time), row, t)
	dt.SetCellFloatIdx(int(V), row, st.V)
	dt.SetCellFloatIdx(int(N), row, st.N)
	dt.SetCellFloatIdx(int(M), row, st.M)
	dt.SetCellFloatIdx(int(H), row, st.H)
	dt.SetCellFloatIdx(int(INa), row, st.I.Na)
	dt.SetCellFloatIdx(int(IK), row, st.I.K)
	dt.SetCellFloatIdx(int(ILeak), row, st.I.L)
	dt.SetCellFloatIdx(int(IInject), row, st.Inject)
}

// Values returns the backing values of the series column.
// Callers must not modify the result -- use Floats for a copy.
func (lg *Log) Values(s Series) []float64 {
	return lg.Table.Cols[s].(*etensor.Float64).Values
}

// Floats returns a copy of the series as an ordered sequence, one per step
func (lg *Log) Floats(s Series) []float64 {
	vals := lg.Values(s)
	cp := make([]float64, len(vals))
	copy(cp, vals)
	return cp
}

// Value returns the series value at the given row
func (lg *Log) Value(s Series, row int) float64 {
	return lg.Table.CellFloatIdx(int(s), row)
}

// Range returns the min and max of the series.
// For an empty log the range is left at infinity (IsValid is false).
func (lg *Log) Range(s Series) minmax.F64 {
	var mr minmax.F64
	mr.SetInfinity()
	for _, v := range lg.Values(s) {
		mr.FitValInRange(v)
	}
	return mr
}

// Ranges returns the range covering all of the given series
func (lg *Log) Ranges(ss ...Series) minmax.F64 {
	var mr minmax.F64
	mr.SetInfinity()
	for _, s := range ss {
		for _, v := range lg.Values(s) {
			mr.FitValInRange(v)
		}
	}
	return mr
}

// SizeReport returns a string reporting the number of rows and the
// memory used by the recorded values
func (lg *Log) SizeReport() string {
	var b strings.Builder
	rows := lg.Rows()
	colMem := rows * 8
	for s := Time; s < SeriesN; s++ {
		fmt.Fprintf(&b, "%10s:\t Rows: %d\t Mem: %v\n", s.String(), rows, (datasize.ByteSize)(colMem).HumanReadable())
	}
	fmt.Fprintf(&b, "\n%10s:\t Rows: %d\t Cols: %d\t Mem: %v\n", "Total", rows, int(SeriesN), (datasize.ByteSize)(colMem*int(SeriesN)).HumanReadable())
	return b.String()
}

// WriteCSV writes the table with headers to w, comma separated, for
// plotting by external tools
func (lg *Log) WriteCSV(w io.Writer) error {
	return lg.Table.WriteCSV(w, etable.Comma, true)
}
