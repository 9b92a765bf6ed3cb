// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"math"

	"github.com/chewxy/math32"
)

const ln10 = 2.302585092994046

// ihsParams implements the inverse hyperbolic sine transform:
// y = (asinh(x * sinh(M*ln10)/T) + A*ln10) / ((M+A)*ln10)
type ihsParams struct {
	T, M, A float64

	sinhB float64 // sinh(M*ln10)
	numA  float64 // A*ln10
	denom float64 // (M+A)*ln10
	invT  float64

	sinhB32 float32
	numA32  float32
	denom32 float32
	invT32  float32
}

// NewInverseHyperbolicSine constructs an InverseHyperbolicSine transform.
// Preconditions: T > 0, M > 0, 0 <= A <= M.
func NewInverseHyperbolicSine(t, m, a float64, opts ...Option) (*Transform, error) {
	if !(t > 0) {
		return nil, invalidArg("NewInverseHyperbolicSine", "T must be > 0")
	}
	if !(m > 0) {
		return nil, invalidArg("NewInverseHyperbolicSine", "M must be > 0")
	}
	if !(a >= 0 && a <= m) {
		return nil, invalidArg("NewInverseHyperbolicSine", "A must satisfy 0 <= A <= M")
	}
	p := &ihsParams{
		T: t, M: m, A: a,
		sinhB: math.Sinh(m * ln10),
		numA:  a * ln10,
		denom: (m + a) * ln10,
		invT:  1 / t,
	}
	p.sinhB32 = float32(p.sinhB)
	p.numA32 = float32(p.numA)
	p.denom32 = float32(p.denom)
	p.invT32 = float32(p.invT)
	return newTransform(InverseHyperbolicSine, p, opts), nil
}

func (p *ihsParams) apply(x float64) (float64, error) {
	return (math.Asinh(x*p.sinhB*p.invT) + p.numA) / p.denom, nil
}

func (p *ihsParams) applyF64(xs []float64) error {
	sinhB, numA, denom, invT := p.sinhB, p.numA, p.denom, p.invT
	for i, v := range xs {
		xs[i] = (math.Asinh(v*sinhB*invT) + numA) / denom
	}
	return nil
}

func (p *ihsParams) applyF32(xs []float32) error {
	sinhB, numA, denom, invT := p.sinhB32, p.numA32, p.denom32, p.invT32
	for i, v := range xs {
		xs[i] = (math32.Asinh(v*sinhB*invT) + numA) / denom
	}
	return nil
}
