// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"math"

	"github.com/chewxy/math32"
)

// logParams implements y = log10(x/T)/M + 1. Domain is x > 0; out-of-domain
// values produce whatever log10(<=0) yields on the platform (-Inf or NaN),
// which spec.md 4.1 documents as "not valid input" rather than an error --
// the bulk path must stay branch-free, so we do not special-case it.
type logParams struct {
	T, M     float64
	invT     float64
	invM     float64
	invT32   float32
	invM32   float32
}

// NewLog constructs a Log transform. Preconditions: T > 0, M > 0.
func NewLog(t, m float64, opts ...Option) (*Transform, error) {
	if !(t > 0) {
		return nil, invalidArg("NewLog", "T must be > 0")
	}
	if !(m > 0) {
		return nil, invalidArg("NewLog", "M must be > 0")
	}
	p := &logParams{
		T: t, M: m,
		invT: 1 / t, invM: 1 / m,
		invT32: float32(1 / t), invM32: float32(1 / m),
	}
	return newTransform(Log, p, opts), nil
}

func (p *logParams) apply(x float64) (float64, error) {
	return math.Log10(x*p.invT)*p.invM + 1, nil
}

func (p *logParams) applyF64(xs []float64) error {
	invT, invM := p.invT, p.invM
	for i, v := range xs {
		xs[i] = math.Log10(v*invT)*invM + 1
	}
	return nil
}

func (p *logParams) applyF32(xs []float32) error {
	invT, invM := p.invT32, p.invM32
	for i, v := range xs {
		xs[i] = math32.Log10(v*invT)*invM + 1
	}
	return nil
}
