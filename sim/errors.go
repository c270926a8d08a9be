// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"errors"
	"fmt"

	"github.com/emer/hh/hh"
)

// ErrDiverged indicates that the state became NaN or Inf during a run
var ErrDiverged = errors.New("sim: state diverged (NaN or Inf)")

// DivergenceError reports the first step on which the state was not finite.
// The run itself is not stopped: all later steps are still computed and
// recorded.
type DivergenceError struct {
	Step  int
	Time  float64
	State hh.State
}

func (de *DivergenceError) Error() string {
	return fmt.Sprintf("sim: state diverged at step %d (t = %g ms): V=%g n=%g m=%g h=%g", de.Step, de.Time, de.State.V, de.State.N, de.State.M, de.State.H)
}

func (de *DivergenceError) Unwrap() error {
	return ErrDiverged
}
