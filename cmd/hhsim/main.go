// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hhsim runs the Hodgkin-Huxley membrane patch simulation from the command
// line and shows the gating variables, voltage and currents as terminal charts.
package main

func main() {
	Execute()
}
