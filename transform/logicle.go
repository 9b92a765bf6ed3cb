// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	// taylorLength is the number of Taylor-series terms kept around x1,
	// matching the reference Logicle implementation spec.md 4.1 describes.
	taylorLength = 16
	// maxHalleyIters bounds the root-polishing loop in evaluate.
	maxHalleyIters = 10
	// maxRtsafeIters bounds the d-solving root finder in solveD.
	maxRtsafeIters = 20

	defaultLogicleT = 262144
	defaultLogicleA = 0
	defaultLogicleM = 4.5
	defaultLogicleW = 0.5
)

// logicleParams holds the derived constants of the Parks-Roederer-Moore
// biexponential transform (spec.md 4.1 Logicle) and evaluates it via
// Halley's method with a Taylor-series fallback near x1 to avoid
// catastrophic cancellation.
type logicleParams struct {
	T, A, M, W float64

	w, x0, x1, x2 float64
	b, d          float64
	a, c, f       float64
	xTaylor       float64
	taylor        [taylorLength]float64
}

// NewLogicle constructs a Logicle transform with explicit parameters.
// Preconditions: T > 0, M > 0, 0 <= W <= M/2, -W <= A <= M-2W.
func NewLogicle(t, a, m, w float64, opts ...Option) (*Transform, error) {
	p, err := newLogicleParams(t, a, m, w)
	if err != nil {
		return nil, err
	}
	return newTransform(Logicle, p, opts), nil
}

// NewLogicleDefault constructs a Logicle transform using the standard
// defaults (T=262144, A=0, M=4.5, W=0.5) called out in spec.md 4.1/8 S3.
func NewLogicleDefault(opts ...Option) (*Transform, error) {
	return NewLogicle(defaultLogicleT, defaultLogicleA, defaultLogicleM, defaultLogicleW, opts...)
}

func newLogicleParams(t, a, m, w float64) (*logicleParams, error) {
	if !(t > 0) {
		return nil, invalidArg("NewLogicle", "T must be > 0")
	}
	if !(m > 0) {
		return nil, invalidArg("NewLogicle", "M must be > 0")
	}
	if !(w >= 0 && w <= m/2) {
		return nil, invalidArg("NewLogicle", "W must satisfy 0 <= W <= M/2")
	}
	if !(a >= -w && a <= m-2*w) {
		return nil, invalidArg("NewLogicle", "A must satisfy -W <= A <= M-2W")
	}

	p := &logicleParams{T: t, A: a, M: m, W: w}
	p.w = w / (m + a)
	p.x2 = a / (m + a)
	p.x1 = p.x2 * p.w
	p.x0 = 2 * p.x1
	p.b = (m + a) * ln10
	p.d = solveD(p.b, p.w)

	ca := math.Exp(p.x0 * (p.b + p.d))
	mfa := math.Exp(p.b*p.x1) - ca/math.Exp(p.d*p.x1)

	p.a = t / (math.Exp(p.b) - mfa - ca/math.Exp(p.d))
	p.c = ca * p.a
	p.f = -mfa * p.a
	p.xTaylor = p.x1 + p.w/4

	posCoef := p.a * math.Exp(p.b*p.x1)
	negCoef := -p.c * math.Exp(-p.d*p.x1)
	for i := 0; i < taylorLength; i++ {
		posCoef *= p.b / float64(i+1)
		negCoef *= -p.d / float64(i+1)
		p.taylor[i] = posCoef + negCoef
	}
	// The second-order term vanishes exactly by construction of d and x1
	// (spec.md 4.1); forcing it avoids carrying forward floating-point
	// noise from the loop above.
	p.taylor[1] = 0

	return p, nil
}

// solveD finds the root d of 2(ln d - ln b) + w(d+b) = 0 on (0, b] using a
// combined Newton/bisection ("rtsafe") search, per spec.md 4.1.
func solveD(b, w float64) float64 {
	if w == 0 {
		return b
	}
	tolerance := 2 * b * epsilon
	dLo, dHi := 0.0, b
	d := (dLo + dHi) / 2
	lastDelta := dHi - dLo

	fb := -2*math.Log(b) + w*b
	f := 2*math.Log(d) + w*d + fb
	var lastF float64
	haveLastF := false

	for i := 0; i < maxRtsafeIters; i++ {
		df := 2/d + w

		useBisection := ((d-dHi)*df-f)*((d-dLo)*df-f) >= 0 || math.Abs(1.9*f) > math.Abs(lastDelta*df)

		var delta float64
		if useBisection {
			delta = (dHi - dLo) / 2
			d = dLo + delta
			if d == dLo {
				return d
			}
		} else {
			delta = f / df
			prev := d
			d -= delta
			if d == prev {
				return d
			}
		}
		if math.Abs(delta) < tolerance {
			return d
		}
		lastDelta = delta

		f = 2*math.Log(d) + w*d + fb
		if f == 0 || (haveLastF && f == lastF) {
			return d
		}
		lastF = f
		haveLastF = true

		if f < 0 {
			dLo = d
		} else {
			dHi = d
		}
	}
	return d
}

// series evaluates the Taylor-series approximation of the biexponential
// around x1, used instead of the direct exponential formula when x is
// close enough to x1 that the direct formula loses precision to
// cancellation.
func (p *logicleParams) series(x float64) float64 {
	xd := x - p.x1
	sum := p.taylor[taylorLength-1]
	for i := taylorLength - 2; i >= 0; i-- {
		sum = sum*xd + p.taylor[i]
	}
	return sum * xd
}

func (p *logicleParams) apply(v float64) (float64, error) {
	return p.evaluate(v), nil
}

func (p *logicleParams) evaluate(v float64) float64 {
	if v == 0 {
		return p.x1
	}
	neg := v < 0
	if neg {
		v = -v
	}

	var x float64
	if v < p.f {
		x = p.x1 + v/p.taylor[0]
	} else {
		x = math.Log(v/p.a) / p.b
	}

	tolerance := 3 * epsilon
	if x > 1 {
		tolerance *= x
	}

	for i := 0; i < maxHalleyIters; i++ {
		abx := p.a * math.Exp(p.b*x)
		cdx := p.c / math.Exp(p.d*x)

		var y float64
		if x < p.xTaylor {
			y = p.series(x) - v
		} else {
			y = (abx + p.f) - (cdx + v)
		}

		dy := p.b*abx + p.d*cdx
		ddy := p.b*p.b*abx - p.d*p.d*cdx

		delta := y / (dy * (1 - y*ddy/(2*dy*dy)))
		x -= delta

		if math.Abs(delta) < tolerance {
			break
		}
	}

	if neg {
		return 2*p.x1 - x
	}
	return x
}

func (p *logicleParams) applyF64(xs []float64) error {
	for i, v := range xs {
		xs[i] = p.evaluate(v)
	}
	return nil
}

// applyF32 runs the same Halley iteration in float32 via math32, so the
// bulk path never round-trips through float64 (spec.md 4.1/5 bulk-apply
// contract).
func (p *logicleParams) applyF32(xs []float32) error {
	a32, b32, c32, d32, f32v := float32(p.a), float32(p.b), float32(p.c), float32(p.d), float32(p.f)
	x1v32, xTaylor32 := float32(p.x1), float32(p.xTaylor)
	var taylor32 [taylorLength]float32
	for i := range p.taylor {
		taylor32[i] = float32(p.taylor[i])
	}
	series32 := func(x float32) float32 {
		xd := x - x1v32
		sum := taylor32[taylorLength-1]
		for i := taylorLength - 2; i >= 0; i-- {
			sum = sum*xd + taylor32[i]
		}
		return sum * xd
	}
	tol32 := float32(3 * epsilon)

	for i, v0 := range xs {
		v := v0
		if v == 0 {
			xs[i] = x1v32
			continue
		}
		neg := v < 0
		if neg {
			v = -v
		}
		var x float32
		if v < f32v {
			x = x1v32 + v/taylor32[0]
		} else {
			x = math32.Log(v/a32) / b32
		}
		tolerance := tol32
		if x > 1 {
			tolerance *= x
		}
		for j := 0; j < maxHalleyIters; j++ {
			abx := a32 * math32.Exp(b32*x)
			cdx := c32 / math32.Exp(d32*x)
			var y float32
			if x < xTaylor32 {
				y = series32(x) - v
			} else {
				y = (abx + f32v) - (cdx + v)
			}
			dy := b32*abx + d32*cdx
			ddy := b32*b32*abx - d32*d32*cdx
			delta := y / (dy * (1 - y*ddy/(2*dy*dy)))
			x -= delta
			if math32.Abs(delta) < tolerance {
				break
			}
		}
		if neg {
			xs[i] = 2*x1v32 - x
		} else {
			xs[i] = x
		}
	}
	return nil
}
