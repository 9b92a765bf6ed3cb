// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

// epsilon is the float64 machine epsilon (2^-52), used by the Logicle
// root finders' convergence tolerances (spec.md 4.1).
const epsilon = 2.220446049250313e-16
