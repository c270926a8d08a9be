// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrivingForce(t *testing.T) {
	erev := Chans{}
	erev.SetAll(-77, 50, -54.387)

	var df Chans
	df.SetFmOtherMinus(erev, -65)
	assert.Equal(t, -12.0, df.K)
	assert.Equal(t, 115.0, df.Na)
	assert.InDelta(t, 10.613, df.L, 1e-12)
}

func TestSum(t *testing.T) {
	ch := Chans{K: 1, Na: -2, L: 0.5}
	assert.Equal(t, -0.5, ch.Sum())
}
