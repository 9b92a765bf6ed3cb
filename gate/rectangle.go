// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

import "github.com/JCVenterInstitute/flowgate-gating/gerr"

// rectangleShape holds one (min, max) pair per dimension (spec.md 4.2).
type rectangleShape struct {
	min, max []float64
}

// NewRectangle constructs a Rectangle gate with one (min, max) bound per
// named dimension. Out-of-order pairs are swapped so min <= max always
// holds (spec.md 4.2, 8 boundary behavior).
func NewRectangle(dimNames []string, mins, maxs []float64) (*Gate, error) {
	n := len(dimNames)
	if n < 1 {
		return nil, gerr.New(gerr.InvalidArgument, "NewRectangle", "Rectangle requires at least 1 dimension")
	}
	if len(mins) != n || len(maxs) != n {
		return nil, gerr.New(gerr.InvalidArgument, "NewRectangle", "mins/maxs length must match dimension count")
	}
	shape := &rectangleShape{min: append([]float64(nil), mins...), max: append([]float64(nil), maxs...)}
	for i := range shape.min {
		if shape.min[i] > shape.max[i] {
			shape.min[i], shape.max[i] = shape.max[i], shape.min[i]
		}
	}
	return newGate(Rectangle, n, dimNames, shape), nil
}

func (g *Gate) rectangleShape() (*rectangleShape, error) {
	if g.kind != Rectangle {
		return nil, gerr.New(gerr.InvalidArgument, "Gate", "gate is not a Rectangle")
	}
	return g.shape.(*rectangleShape), nil
}

// DimMin returns dimension i's minimum bound.
func (g *Gate) DimMin(i int) (float64, error) {
	rs, err := g.rectangleShape()
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= len(rs.min) {
		return 0, gerr.New(gerr.OutOfRange, "Gate.DimMin", "dimension index out of range")
	}
	return rs.min[i], nil
}

// DimMax returns dimension i's maximum bound.
func (g *Gate) DimMax(i int) (float64, error) {
	rs, err := g.rectangleShape()
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= len(rs.max) {
		return 0, gerr.New(gerr.OutOfRange, "Gate.DimMax", "dimension index out of range")
	}
	return rs.max[i], nil
}

// SetRectangleMinMax sets dimension i's (min, max) pair, swapping if given
// out of order, and fires SetRectangleMinMax on the attached observer
// (spec.md 4.2, 8 property 6).
func (g *Gate) SetRectangleMinMax(i int, min, max float64) error {
	rs, err := g.rectangleShape()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(rs.min) {
		return gerr.New(gerr.OutOfRange, "Gate.SetRectangleMinMax", "dimension index out of range")
	}
	if min > max {
		min, max = max, min
	}
	rs.min[i], rs.max[i] = min, max
	g.notify(func(o GateObserver) { o.SetRectangleMinMax(i, min, max) })
	return nil
}
