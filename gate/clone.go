// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

import "gonum.org/v1/gonum/mat"

// cloneShape deep-copies a gate's kind-specific shape data (spec.md 4.2
// "All gates expose a clone operation that deep-copies the shape").
func cloneShape(kind Kind, shape any) any {
	switch kind {
	case Rectangle:
		s := shape.(*rectangleShape)
		return &rectangleShape{
			min: append([]float64(nil), s.min...),
			max: append([]float64(nil), s.max...),
		}
	case Polygon:
		s := shape.(*polygonShape)
		return &polygonShape{vertices: append([]Point(nil), s.vertices...)}
	case Ellipsoid:
		s := shape.(*ellipsoidShape)
		n, _ := s.covariance.Dims()
		data := make([]float64, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				data[i*n+j] = s.covariance.At(i, j)
			}
		}
		return &ellipsoidShape{
			center:          append([]float64(nil), s.center...),
			covariance:      mat.NewSymDense(n, data),
			distanceSquared: s.distanceSquared,
		}
	case Quadrant:
		s := shape.(*quadrantShape)
		return &quadrantShape{
			dividers:  append([]Divider(nil), s.dividers...),
			quadrants: append([]NamedQuadrant(nil), s.quadrants...),
		}
	case Boolean:
		s := shape.(*booleanShape)
		return &booleanShape{op: s.op, negate: append([]bool(nil), s.negate...)}
	default:
		return shape
	}
}
