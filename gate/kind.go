// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gate implements the closed family of gate shapes (spec.md 4.2)
// and the gate tree's node type: a mutable record with identity, optional
// metadata, per-dimension parameters, optional additional clustering
// parameters, an ordered child list, and an optional attached observer
// (spec.md 3.3). As in the teacher's leabra.LayerStru / leabra.PrjnStru
// split between structural fields and behavior, gate.go holds the
// lifecycle and cross-cutting mutators while each shape gets its own file.
package gate

// Kind is the closed set of gate shapes (spec.md 3.3).
type Kind int

const (
	Rectangle Kind = iota
	Polygon
	Ellipsoid
	Quadrant
	Boolean
	Custom
)

func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "Rectangle"
	case Polygon:
		return "Polygon"
	case Ellipsoid:
		return "Ellipsoid"
	case Quadrant:
		return "Quadrant"
	case Boolean:
		return "Boolean"
	case Custom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// GatingMethod says which computation populates a gate's inclusion column
// (spec.md 3.3). The gate only records which method is requested; the
// computation itself (DAFi clustering, event-value evaluation) is an
// external collaborator (spec.md 1, 9 Open Questions).
type GatingMethod int

const (
	EventValue GatingMethod = iota
	DafiClusterCentroid
	CustomMethod
)

func (m GatingMethod) String() string {
	switch m {
	case EventValue:
		return "EventValue"
	case DafiClusterCentroid:
		return "DafiClusterCentroid"
	case CustomMethod:
		return "Custom"
	default:
		return "Unknown"
	}
}
