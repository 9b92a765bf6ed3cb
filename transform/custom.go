// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

// customParams wraps a caller-supplied scalar function so callers outside
// the closed family (e.g. a file-format loader that encountered a vendor
// extension it cannot interpret) can still carry a Transform through the
// data model (spec.md 3.2 Kind Custom).
type customParams struct {
	fn func(float64) float64
}

// NewCustom wraps fn as a Custom-kind transform. Bulk apply calls fn
// pointwise; there is no vectorized fast path for an opaque function.
func NewCustom(fn func(float64) float64, opts ...Option) (*Transform, error) {
	if fn == nil {
		return nil, invalidArg("NewCustom", "fn must not be nil")
	}
	return newTransform(Custom, &customParams{fn: fn}, opts), nil
}

func (p *customParams) apply(x float64) (float64, error) {
	return p.fn(x), nil
}

func (p *customParams) applyF64(xs []float64) error {
	for i, v := range xs {
		xs[i] = p.fn(v)
	}
	return nil
}

func (p *customParams) applyF32(xs []float32) error {
	for i, v := range xs {
		xs[i] = float32(p.fn(float64(v)))
	}
	return nil
}
