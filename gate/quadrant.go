// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

import (
	"github.com/JCVenterInstitute/flowgate-gating/gerr"
	"github.com/JCVenterInstitute/flowgate-gating/transform"
)

// Divider is one axis a Quadrant gate slices events along: a unique id
// within the gate, the parameter it slices, an optional transform, and a
// strictly-increasing list of division values (spec.md 4.2).
type Divider struct {
	ID         string
	ParamName  string
	Transform  *transform.Transform
	Divisions  []float64
}

// QuadrantPosition ties a divider id to the representative value that
// selects which slab a named quadrant lives in along that divider.
type QuadrantPosition struct {
	DividerID string
	Value     float64
}

// NamedQuadrant is one named region of a Quadrant gate.
type NamedQuadrant struct {
	ID        string
	Positions []QuadrantPosition
}

// quadrantShape holds the dividers and named quadrants of a Quadrant gate.
// spec.md 9's Open Questions note the reference source documents missing
// setters for quadrants; per that note, this type exposes only the
// constructor and read accessors -- write access beyond construction is
// left for downstream extension (recorded in DESIGN.md).
type quadrantShape struct {
	dividers  []Divider
	quadrants []NamedQuadrant
}

// NewQuadrant constructs a Quadrant gate. Divider ids must be unique
// within the gate and each divider's Divisions must be strictly
// increasing; named-quadrant ids must be unique.
func NewQuadrant(dimNames []string, dividers []Divider, quadrants []NamedQuadrant) (*Gate, error) {
	n := len(dimNames)
	if n < 1 {
		return nil, gerr.New(gerr.InvalidArgument, "NewQuadrant", "Quadrant requires at least 1 dimension")
	}
	seen := map[string]bool{}
	for _, d := range dividers {
		if seen[d.ID] {
			return nil, gerr.New(gerr.InvalidArgument, "NewQuadrant", "duplicate divider id: "+d.ID)
		}
		seen[d.ID] = true
		for i := 1; i < len(d.Divisions); i++ {
			if d.Divisions[i] <= d.Divisions[i-1] {
				return nil, gerr.New(gerr.InvalidArgument, "NewQuadrant", "divider divisions must be strictly increasing")
			}
		}
	}
	seenQ := map[string]bool{}
	for _, q := range quadrants {
		if seenQ[q.ID] {
			return nil, gerr.New(gerr.InvalidArgument, "NewQuadrant", "duplicate quadrant id: "+q.ID)
		}
		seenQ[q.ID] = true
	}
	shape := &quadrantShape{
		dividers:  append([]Divider(nil), dividers...),
		quadrants: append([]NamedQuadrant(nil), quadrants...),
	}
	return newGate(Quadrant, n, dimNames, shape), nil
}

func (g *Gate) quadrantShape() (*quadrantShape, error) {
	if g.kind != Quadrant {
		return nil, gerr.New(gerr.InvalidArgument, "Gate", "gate is not a Quadrant")
	}
	return g.shape.(*quadrantShape), nil
}

// Dividers returns the gate's dividers.
func (g *Gate) Dividers() ([]Divider, error) {
	qs, err := g.quadrantShape()
	if err != nil {
		return nil, err
	}
	return append([]Divider(nil), qs.dividers...), nil
}

// DividerByID looks up a divider by id.
func (g *Gate) DividerByID(id string) (Divider, bool, error) {
	qs, err := g.quadrantShape()
	if err != nil {
		return Divider{}, false, err
	}
	for _, d := range qs.dividers {
		if d.ID == id {
			return d, true, nil
		}
	}
	return Divider{}, false, nil
}

// Quadrants returns the gate's named quadrants.
func (g *Gate) Quadrants() ([]NamedQuadrant, error) {
	qs, err := g.quadrantShape()
	if err != nil {
		return nil, err
	}
	return append([]NamedQuadrant(nil), qs.quadrants...), nil
}

// QuadrantByID looks up a named quadrant by id.
func (g *Gate) QuadrantByID(id string) (NamedQuadrant, bool, error) {
	qs, err := g.quadrantShape()
	if err != nil {
		return NamedQuadrant{}, false, err
	}
	for _, q := range qs.quadrants {
		if q.ID == id {
			return q, true, nil
		}
	}
	return NamedQuadrant{}, false, nil
}
