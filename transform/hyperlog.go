// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import "github.com/JCVenterInstitute/flowgate-gating/gerr"

// hyperlogParams validates Hyperlog parameters but does not evaluate the
// transform. spec.md 4.1/9 flags Hyperlog as an open question: the
// reference source never implemented its root finder, and a pass-through
// returning 0 would be silently wrong. We take option (b) from spec.md
// 4.1: refuse with a documented UnsupportedFeature error rather than
// fabricate a root-finding scheme nothing in this corpus demonstrates.
// A future implementation wiring a Hyperlog-specific Halley/rtsafe solver
// (mirroring Logicle's) can replace apply, applyF64 and applyF32 without
// changing this type's exported surface.
type hyperlogParams struct {
	T, A, M, W float64
}

// NewHyperlog validates Hyperlog parameters (same preconditions as
// Logicle: T > 0, M > 0, 0 <= W <= M/2, -W <= A <= M-2W) but every Apply
// call on the resulting Transform returns an UnsupportedFeature error.
func NewHyperlog(t, a, m, w float64, opts ...Option) (*Transform, error) {
	if !(t > 0) {
		return nil, invalidArg("NewHyperlog", "T must be > 0")
	}
	if !(m > 0) {
		return nil, invalidArg("NewHyperlog", "M must be > 0")
	}
	if !(w >= 0 && w <= m/2) {
		return nil, invalidArg("NewHyperlog", "W must satisfy 0 <= W <= M/2")
	}
	if !(a >= -w && a <= m-2*w) {
		return nil, invalidArg("NewHyperlog", "A must satisfy -W <= A <= M-2W")
	}
	p := &hyperlogParams{T: t, A: a, M: m, W: w}
	return newTransform(Hyperlog, p, opts), nil
}

func (p *hyperlogParams) notImplemented(op string) error {
	return gerr.New(gerr.UnsupportedFeature, op, "Hyperlog root-finding is not implemented")
}

func (p *hyperlogParams) apply(float64) (float64, error) {
	return 0, p.notImplemented("Hyperlog.Apply")
}

func (p *hyperlogParams) applyF64([]float64) error {
	return p.notImplemented("Hyperlog.ApplyF64")
}

func (p *hyperlogParams) applyF32([]float32) error {
	return p.notImplemented("Hyperlog.ApplyF32")
}
