// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gatestate

import (
	"github.com/JCVenterInstitute/flowgate-gating/gate"
	"github.com/JCVenterInstitute/flowgate-gating/transform"
)

func (s *State) recurseForAdditional(wasApplied bool) bool {
	return wasApplied && s.g.GatingMethodValue() != gate.EventValue
}

// AppendAdditionalClusteringParam: append column, reset it; recurse =
// was_applied && method != EventValue (spec.md 4.5).
func (s *State) AppendAdditionalClusteringParam(name string, tr *transform.Transform) {
	wasApplied := s.applied
	s.columns = append(s.columns, column{name: name})
	idx := len(s.columns) - 1
	if s.isF32 {
		s.columns[idx].f32 = make([]float32, s.source.NumEvents())
	} else {
		s.columns[idx].f64 = make([]float64, s.source.NumEvents())
	}
	s.reset(idx, s.recurseForAdditional(wasApplied))
}

// SetAdditionalClusteringParamTransform: reset only that column; recurse
// = was_applied && method != EventValue.
func (s *State) SetAdditionalClusteringParamTransform(name string, tr *transform.Transform) {
	wasApplied := s.applied
	if idx, ok := s.columnIndexByName(name); ok {
		s.reset(idx, s.recurseForAdditional(wasApplied))
	}
}

// RemoveAdditionalClusteringParam: remove column; recurse = was_applied
// && method != EventValue.
func (s *State) RemoveAdditionalClusteringParam(name string) {
	wasApplied := s.applied
	if idx, ok := s.columnIndexByName(name); ok {
		s.columns = append(s.columns[:idx], s.columns[idx+1:]...)
	}
	s.invalidate(s.recurseForAdditional(wasApplied))
}

// ClearAdditionalClusteringParams: remove those columns; recurse = as
// above.
func (s *State) ClearAdditionalClusteringParams() {
	wasApplied := s.applied
	nd := s.g.NumDimensions()
	if nd < len(s.columns) {
		s.columns = s.columns[:nd]
	}
	s.invalidate(s.recurseForAdditional(wasApplied))
}

// SetDimensionParameterName: update column name; reset column; recurse =
// was_applied.
func (s *State) SetDimensionParameterName(i int, name string) {
	wasApplied := s.applied
	if i < 0 || i >= len(s.columns) {
		return
	}
	s.columns[i].name = name
	s.reset(i, wasApplied)
}

// SetDimensionParameterTransform: reset column (reapplies new transform);
// recurse = was_applied.
func (s *State) SetDimensionParameterTransform(i int, tr *transform.Transform) {
	wasApplied := s.applied
	if i < 0 || i >= len(s.columns) {
		return
	}
	s.reset(i, wasApplied)
}

// SetGatingMethod / SetRectangleMinMax / polygon-vertex changes: if
// was_applied, invalidate(true).
func (s *State) SetGatingMethod(m gate.GatingMethod) {
	if s.applied {
		s.invalidate(true)
	}
}

func (s *State) SetRectangleMinMax(dim int, min, max float64) {
	if s.applied {
		s.invalidate(true)
	}
}

func (s *State) AppendPolygonVertex(i int, x, y float64) {
	if s.applied {
		s.invalidate(true)
	}
}

func (s *State) SetPolygonVertex(i int, x, y float64) {
	if s.applied {
		s.invalidate(true)
	}
}

func (s *State) RemovePolygonVertex(i int) {
	if s.applied {
		s.invalidate(true)
	}
}

func (s *State) ClearPolygonVertices() {
	if s.applied {
		s.invalidate(true)
	}
}

// AppendChild: if child has no state, has a state of the wrong type, or
// its state is bound to a different source event table, allocate fresh
// state for it; otherwise invalidate the parent's results recursively
// (spec.md 4.5).
func (s *State) AppendChild(child *gate.Gate) {
	if cs, ok := stateOf(child); ok && cs.source == s.source {
		s.invalidate(true)
		return
	}
	ns, err := New(child, s.source)
	if err != nil {
		return
	}
	child.SetObserver(ns)
}
