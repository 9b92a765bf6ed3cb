// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/JCVenterInstitute/flowgate-gating/gerr"
)

// difTol mirrors the teacher's nxx1_test.go tolerance-constant style.
const difTol = 1e-9

func TestLinearBounds(t *testing.T) {
	tr, err := NewLinear(100, 10)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}
	lo, err := tr.Apply(-10)
	if err != nil || math.Abs(lo-0) > difTol {
		t.Errorf("Apply(-A) = %v, %v; want 0", lo, err)
	}
	hi, err := tr.Apply(100)
	if err != nil || math.Abs(hi-1) > difTol {
		t.Errorf("Apply(T) = %v, %v; want 1", hi, err)
	}
}

func TestLinearZeroA(t *testing.T) {
	tr, err := NewLinear(50, 0)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}
	if y, _ := tr.Apply(0); math.Abs(y) > difTol {
		t.Errorf("Apply(0) = %v; want 0", y)
	}
	if y, _ := tr.Apply(50); math.Abs(y-1) > difTol {
		t.Errorf("Apply(T) = %v; want 1", y)
	}
}

func TestLinearInvalidParams(t *testing.T) {
	if _, err := NewLinear(0, 0); err == nil {
		t.Error("NewLinear(T=0) should fail")
	}
	if _, err := NewLinear(10, -1); err == nil {
		t.Error("NewLinear(A<0) should fail")
	}
	if _, err := NewLinear(10, 20); err == nil {
		t.Error("NewLinear(A>T) should fail")
	}
}

func TestLogAtT(t *testing.T) {
	tr, err := NewLog(1000, 4)
	if err != nil {
		t.Fatalf("NewLog: %v", err)
	}
	y, err := tr.Apply(1000)
	if err != nil || math.Abs(y-1) > difTol {
		t.Errorf("Apply(T) = %v, %v; want 1 exactly", y, err)
	}
}

func TestInverseHyperbolicSineBounds(t *testing.T) {
	tr, err := NewInverseHyperbolicSine(1000, 4, 0)
	if err != nil {
		t.Fatalf("NewInverseHyperbolicSine: %v", err)
	}
	y0, err := tr.Apply(0)
	if err != nil || math.Abs(y0) > difTol {
		t.Errorf("Apply(0) = %v, %v; want 0 (A = 0)", y0, err)
	}
	yT, err := tr.Apply(1000)
	if err != nil || math.Abs(yT-1) > difTol {
		t.Errorf("Apply(T) = %v, %v; want 1", yT, err)
	}
}

func TestLogicleDefaultsS3(t *testing.T) {
	tr, err := NewLogicleDefault()
	if err != nil {
		t.Fatalf("NewLogicleDefault: %v", err)
	}
	y0, err := tr.Apply(0)
	if err != nil {
		t.Fatalf("Apply(0): %v", err)
	}
	if math.Abs(y0) > 1e-12 {
		t.Errorf("Apply(0) = %v; want exactly x1 == 0 for defaults", y0)
	}

	yT, _ := tr.Apply(262144)
	if math.Abs(yT-1.0) > 1e-6 {
		t.Errorf("Apply(T) = %v; want ~1.0", yT)
	}
}

func TestLogicleReflectionSymmetry(t *testing.T) {
	tr, err := NewLogicleDefault()
	if err != nil {
		t.Fatalf("NewLogicleDefault: %v", err)
	}
	p := tr.impl.(*logicleParams)
	for _, v := range []float64{1, 10, 1000, 50000} {
		pos := p.evaluate(v)
		neg := p.evaluate(-v)
		want := 2*p.x1 - pos
		if math.Abs(neg-want) > 1e-6 {
			t.Errorf("evaluate(-%v) = %v; want %v (2*x1 - evaluate(v))", v, neg, want)
		}
	}
}

func TestSolveDRootProperty(t *testing.T) {
	cases := []struct{ b, w float64 }{
		{1.0, 0.1}, {5.0, 0.5}, {20.0, 0.05}, {100.0, 0.3},
	}
	for _, c := range cases {
		d := solveD(c.b, c.w)
		f := 2*(math.Log(d)-math.Log(c.b)) + c.w*(d+c.b)
		tol := 2 * c.b * epsilon * 10
		if math.Abs(f) > tol {
			t.Errorf("solveD(%v,%v) = %v; residual %v exceeds tolerance %v", c.b, c.w, d, f, tol)
		}
	}
}

func TestSolveDZeroW(t *testing.T) {
	if d := solveD(7.5, 0); d != 7.5 {
		t.Errorf("solveD(b,0) = %v; want b unchanged (no iteration)", d)
	}
}

func TestBulkMatchesScalar(t *testing.T) {
	transforms := map[string]*Transform{}
	if tr, err := NewLinear(100, 10); err == nil {
		transforms["Linear"] = tr
	}
	if tr, err := NewLog(1000, 4); err == nil {
		transforms["Log"] = tr
	}
	if tr, err := NewInverseHyperbolicSine(1000, 4, 1); err == nil {
		transforms["IHS"] = tr
	}
	if tr, err := NewLogicleDefault(); err == nil {
		transforms["Logicle"] = tr
	}

	xs64 := []float64{1, 5, 25, 125, 625, 5000}
	for name, tr := range transforms {
		got := append([]float64(nil), xs64...)
		if err := tr.ApplyF64(got); err != nil {
			t.Fatalf("%s ApplyF64: %v", name, err)
		}
		for i, x := range xs64 {
			want, err := tr.Apply(x)
			if err != nil {
				t.Fatalf("%s Apply: %v", name, err)
			}
			if math.Abs(got[i]-want) > 1e-9 {
				t.Errorf("%s bulk/scalar mismatch at %v: got %v want %v", name, x, got[i], want)
			}
		}

		xs32 := make([]float32, len(xs64))
		for i, x := range xs64 {
			xs32[i] = float32(x)
		}
		if err := tr.ApplyF32(xs32); err != nil {
			t.Fatalf("%s ApplyF32: %v", name, err)
		}
		for i, x := range xs64 {
			want, _ := tr.Apply(x)
			if math.Abs(float64(xs32[i])-want) > 1e-2 {
				t.Errorf("%s f32/f64 mismatch at %v: got %v want %v", name, x, xs32[i], want)
			}
		}
	}
}

func TestHyperlogRefuses(t *testing.T) {
	tr, err := NewHyperlog(1000, 0, 4, 0.5)
	if err != nil {
		t.Fatalf("NewHyperlog: %v", err)
	}
	_, err = tr.Apply(1)
	var ge *gerr.Error
	if !errors.As(err, &ge) || ge.Kind != gerr.UnsupportedFeature {
		t.Errorf("Apply on Hyperlog = %v; want UnsupportedFeature", err)
	}
}

func TestCustomTransform(t *testing.T) {
	tr, err := NewCustom(func(x float64) float64 { return x * 2 })
	if err != nil {
		t.Fatalf("NewCustom: %v", err)
	}
	y, _ := tr.Apply(3)
	if y != 6 {
		t.Errorf("Apply(3) = %v; want 6", y)
	}
}
