// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

// Kind is the closed set of scale transforms a Transform can hold
// (spec.md 3.2). The family is closed, so Transform dispatches on Kind to
// an unexported evaluator implementation rather than using an exported
// interface hierarchy -- there is no extension point here beyond Custom.
type Kind int

const (
	Linear Kind = iota
	Log
	InverseHyperbolicSine
	Logicle
	Hyperlog
	Custom
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "Linear"
	case Log:
		return "Log"
	case InverseHyperbolicSine:
		return "InverseHyperbolicSine"
	case Logicle:
		return "Logicle"
	case Hyperlog:
		return "Hyperlog"
	case Custom:
		return "Custom"
	default:
		return "Unknown"
	}
}
