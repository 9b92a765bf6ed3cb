// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

// linearParams implements y = (x + A) / (T + A), mapping [-A, T] to [0, 1].
type linearParams struct {
	T, A   float64
	invTA  float64
	invTA3 float32
	a32    float32
}

// NewLinear constructs a Linear transform. Preconditions: T > 0, 0 <= A <= T
// (spec.md 4.1).
func NewLinear(t, a float64, opts ...Option) (*Transform, error) {
	if !(t > 0) {
		return nil, invalidArg("NewLinear", "T must be > 0")
	}
	if !(a >= 0 && a <= t) {
		return nil, invalidArg("NewLinear", "A must satisfy 0 <= A <= T")
	}
	p := &linearParams{T: t, A: a, invTA: 1 / (t + a), a32: float32(a), invTA3: float32(1 / (t + a))}
	return newTransform(Linear, p, opts), nil
}

func (p *linearParams) apply(x float64) (float64, error) {
	return (x + p.A) * p.invTA, nil
}

func (p *linearParams) applyF64(xs []float64) error {
	inv, a := p.invTA, p.A
	for i, v := range xs {
		xs[i] = (v + a) * inv
	}
	return nil
}

func (p *linearParams) applyF32(xs []float32) error {
	inv, a := p.invTA3, p.a32
	for i, v := range xs {
		xs[i] = (v + a) * inv
	}
	return nil
}
