// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

import (
	"gonum.org/v1/gonum/mat"

	"github.com/JCVenterInstitute/flowgate-gating/gerr"
)

// ellipsoidShape holds an N-dimensional ellipsoid: a center point, an
// N*N row-major covariance matrix, and a positive squared-distance
// threshold (spec.md 4.2). The covariance is kept as a *mat.SymDense so
// construction can validate positive-definiteness with a Cholesky
// factorization instead of a hand-rolled determinant check.
type ellipsoidShape struct {
	center          []float64
	covariance      *mat.SymDense
	distanceSquared float64
}

// NewEllipsoid constructs an Ellipsoid gate over N >= 2 named dimensions.
// covariance is row-major N*N and must be symmetric positive-definite;
// distanceSquared must be > 0 (spec.md 4.2).
func NewEllipsoid(dimNames []string, center, covariance []float64, distanceSquared float64) (*Gate, error) {
	n := len(dimNames)
	if n < 2 {
		return nil, gerr.New(gerr.InvalidArgument, "NewEllipsoid", "Ellipsoid requires at least 2 dimensions")
	}
	if len(center) != n {
		return nil, gerr.New(gerr.InvalidArgument, "NewEllipsoid", "center length must equal dimension count")
	}
	if len(covariance) != n*n {
		return nil, gerr.New(gerr.InvalidArgument, "NewEllipsoid", "covariance length must equal dimension count squared")
	}
	if !(distanceSquared > 0) {
		return nil, gerr.New(gerr.InvalidArgument, "NewEllipsoid", "distanceSquared must be > 0")
	}

	sym := mat.NewSymDense(n, append([]float64(nil), covariance...))
	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, gerr.New(gerr.InvalidArgument, "NewEllipsoid", "covariance must be symmetric positive-definite")
	}

	shape := &ellipsoidShape{
		center:          append([]float64(nil), center...),
		covariance:      sym,
		distanceSquared: distanceSquared,
	}
	return newGate(Ellipsoid, n, dimNames, shape), nil
}

func (g *Gate) ellipsoidShape() (*ellipsoidShape, error) {
	if g.kind != Ellipsoid {
		return nil, gerr.New(gerr.InvalidArgument, "Gate", "gate is not an Ellipsoid")
	}
	return g.shape.(*ellipsoidShape), nil
}

// Center returns a copy of the ellipsoid's center point.
func (g *Gate) Center() ([]float64, error) {
	es, err := g.ellipsoidShape()
	if err != nil {
		return nil, err
	}
	return append([]float64(nil), es.center...), nil
}

// Covariance returns the row-major N*N covariance matrix.
func (g *Gate) Covariance() ([]float64, error) {
	es, err := g.ellipsoidShape()
	if err != nil {
		return nil, err
	}
	n, _ := es.covariance.Dims()
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = es.covariance.At(i, j)
		}
	}
	return out, nil
}

// DistanceSquared returns the ellipsoid's squared-distance threshold.
func (g *Gate) DistanceSquared() (float64, error) {
	es, err := g.ellipsoidShape()
	if err != nil {
		return 0, err
	}
	return es.distanceSquared, nil
}

// SetCenter replaces the ellipsoid's center point.
func (g *Gate) SetCenter(center []float64) error {
	es, err := g.ellipsoidShape()
	if err != nil {
		return err
	}
	if len(center) != len(es.center) {
		return gerr.New(gerr.InvalidArgument, "Gate.SetCenter", "center length must equal dimension count")
	}
	es.center = append([]float64(nil), center...)
	return nil
}

// SetDistanceSquared replaces the ellipsoid's squared-distance threshold;
// it must be > 0.
func (g *Gate) SetDistanceSquared(d float64) error {
	es, err := g.ellipsoidShape()
	if err != nil {
		return err
	}
	if !(d > 0) {
		return gerr.New(gerr.InvalidArgument, "Gate.SetDistanceSquared", "distanceSquared must be > 0")
	}
	es.distanceSquared = d
	return nil
}

// SetCovariance replaces the ellipsoid's covariance matrix; it must be
// symmetric positive-definite.
func (g *Gate) SetCovariance(covariance []float64) error {
	es, err := g.ellipsoidShape()
	if err != nil {
		return err
	}
	n, _ := es.covariance.Dims()
	if len(covariance) != n*n {
		return gerr.New(gerr.InvalidArgument, "Gate.SetCovariance", "covariance length must equal dimension count squared")
	}
	sym := mat.NewSymDense(n, append([]float64(nil), covariance...))
	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return gerr.New(gerr.InvalidArgument, "Gate.SetCovariance", "covariance must be symmetric positive-definite")
	}
	es.covariance = sym
	return nil
}
