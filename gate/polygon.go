// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

import "github.com/JCVenterInstitute/flowgate-gating/gerr"

// Point is one polygon vertex.
type Point struct{ X, Y float64 }

// polygonShape holds an ordered list of vertices; closure is implicit
// (the last vertex does not repeat the first) -- spec.md 4.2.
type polygonShape struct {
	vertices []Point
}

// NewPolygon constructs a 2-D Polygon gate over the two named dimensions,
// seeded with the given vertices (may be empty; spec.md 4.2 does not
// require a minimum vertex count at construction).
func NewPolygon(xParam, yParam string, vertices []Point) (*Gate, error) {
	shape := &polygonShape{vertices: append([]Point(nil), vertices...)}
	return newGate(Polygon, 2, []string{xParam, yParam}, shape), nil
}

func (g *Gate) polygonShape() (*polygonShape, error) {
	if g.kind != Polygon {
		return nil, gerr.New(gerr.InvalidArgument, "Gate", "gate is not a Polygon")
	}
	return g.shape.(*polygonShape), nil
}

// NumVertices returns the number of vertices currently in the polygon.
func (g *Gate) NumVertices() (int, error) {
	ps, err := g.polygonShape()
	if err != nil {
		return 0, err
	}
	return len(ps.vertices), nil
}

// VertexAt returns the i'th vertex.
func (g *Gate) VertexAt(i int) (Point, error) {
	ps, err := g.polygonShape()
	if err != nil {
		return Point{}, err
	}
	if i < 0 || i >= len(ps.vertices) {
		return Point{}, gerr.New(gerr.OutOfRange, "Gate.VertexAt", "vertex index out of range")
	}
	return ps.vertices[i], nil
}

// AppendPolygonVertex appends (x, y) as the new last vertex.
func (g *Gate) AppendPolygonVertex(x, y float64) error {
	ps, err := g.polygonShape()
	if err != nil {
		return err
	}
	ps.vertices = append(ps.vertices, Point{x, y})
	i := len(ps.vertices) - 1
	g.notify(func(o GateObserver) { o.AppendPolygonVertex(i, x, y) })
	return nil
}

// SetPolygonVertex overwrites the i'th vertex.
func (g *Gate) SetPolygonVertex(i int, x, y float64) error {
	ps, err := g.polygonShape()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(ps.vertices) {
		return gerr.New(gerr.OutOfRange, "Gate.SetPolygonVertex", "vertex index out of range")
	}
	ps.vertices[i] = Point{x, y}
	g.notify(func(o GateObserver) { o.SetPolygonVertex(i, x, y) })
	return nil
}

// RemovePolygonVertexAt removes the i'th vertex.
func (g *Gate) RemovePolygonVertexAt(i int) error {
	ps, err := g.polygonShape()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(ps.vertices) {
		return gerr.New(gerr.OutOfRange, "Gate.RemovePolygonVertexAt", "vertex index out of range")
	}
	ps.vertices = append(ps.vertices[:i], ps.vertices[i+1:]...)
	g.notify(func(o GateObserver) { o.RemovePolygonVertex(i) })
	return nil
}

// ClearPolygonVertices removes every vertex.
func (g *Gate) ClearPolygonVertices() error {
	ps, err := g.polygonShape()
	if err != nil {
		return err
	}
	ps.vertices = nil
	g.notify(func(o GateObserver) { o.ClearPolygonVertices() })
	return nil
}

// PolygonBoundingBox returns the axis-aligned bounding box of the current
// vertex set. ok is false if the polygon has no vertices.
func (g *Gate) PolygonBoundingBox() (minX, minY, maxX, maxY float64, ok bool, err error) {
	ps, err := g.polygonShape()
	if err != nil {
		return 0, 0, 0, 0, false, err
	}
	if len(ps.vertices) == 0 {
		return 0, 0, 0, 0, false, nil
	}
	minX, minY = ps.vertices[0].X, ps.vertices[0].Y
	maxX, maxY = minX, minY
	for _, v := range ps.vertices[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return minX, minY, maxX, maxY, true, nil
}
