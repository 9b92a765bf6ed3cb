// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gatestate

import (
	"github.com/JCVenterInstitute/flowgate-gating/gate"
	"github.com/JCVenterInstitute/flowgate-gating/gerr"
	"github.com/JCVenterInstitute/flowgate-gating/transform"
	"github.com/emer/etable/v2/minmax"
	"gonum.org/v1/gonum/floats"
)

// column is one cached, transformed event-value column plus the metadata
// (spec.md 3.5, 4.5) a reset/transform cycle keeps current. Exactly one of
// f32/f64 is populated, mirroring the owning State's isF32.
type column struct {
	name     string
	longName string
	f32      []float32
	f64      []float64
	// paramRange is the nominal (post-transform) parameter range reported
	// by the source event table; dataRange is the actual observed
	// (post-transform) extent of this column's values, recomputed on
	// every transform() because not every transform is monotonic
	// (spec.md 4.5).
	paramRange minmax.F64
	dataRange  minmax.F64
}

// State is the gate-state cache attached 1:1 to a gate (spec.md 3.5). It
// is installed as its gate's observer (package gate) so that the
// callback semantics of spec.md 4.5 run automatically as the gate
// mutates.
type State struct {
	gate.BaseGateObserver // no-op defaults for callbacks spec.md 4.5 assigns no meaning to

	g      *gate.Gate
	source EventTable
	isF32  bool

	columns   []column
	inclusion []uint8
	applied   bool
}

var _ gate.GateObserver = (*State)(nil)

// New constructs a State for g against source, per the construction
// procedure of spec.md 4.5: the column set is the union of g's dimension
// parameters and additional clustering parameters, in that order; every
// name must exist in source or construction fails with InvalidArgument.
func New(g *gate.Gate, source EventTable) (*State, error) {
	if g == nil || source == nil {
		return nil, gerr.New(gerr.InvalidArgument, "gatestate.New", "gate and source event table must not be nil")
	}
	s := &State{
		g:         g,
		source:    source,
		isF32:     source.IsFloatsNotDoubles(),
		inclusion: make([]uint8, source.NumEvents()),
	}
	for i := range s.inclusion {
		s.inclusion[i] = 1
	}

	names, err := s.paramNames()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if !source.IsParameter(name) {
			return nil, gerr.New(gerr.InvalidArgument, "gatestate.New", "gate references unknown parameter: "+name)
		}
		s.columns = append(s.columns, column{name: name})
	}
	for i := range s.columns {
		if err := s.copyColumnFromSource(i); err != nil {
			return nil, err
		}
		s.updateColumnMetadataFromSource(i)
		if err := s.transformColumn(i); err != nil {
			return nil, err
		}
	}
	s.applied = false
	return s, nil
}

// paramNames returns the gate's dimension parameter names followed by its
// additional clustering parameter names (I-STATE-1).
func (s *State) paramNames() ([]string, error) {
	names := make([]string, 0, s.g.NumDimensions()+len(s.g.AdditionalParams()))
	for i := 0; i < s.g.NumDimensions(); i++ {
		d, err := s.g.Dimension(i)
		if err != nil {
			return nil, err
		}
		names = append(names, d.ParamName)
	}
	for _, a := range s.g.AdditionalParams() {
		names = append(names, a.Name)
	}
	return names, nil
}

// Gate returns the gate this state is attached to.
func (s *State) Gate() *gate.Gate { return s.g }

// Source returns the shared source event table.
func (s *State) Source() EventTable { return s.source }

// Applied reports whether the gating engine has populated the inclusion
// column for this gate.
func (s *State) Applied() bool { return s.applied }

// IsFloatsNotDoubles reports whether this state's columns are f32 (true)
// or f64 (false).
func (s *State) IsFloatsNotDoubles() bool { return s.isF32 }

// InclusionFlags returns a copy of the per-event inclusion column.
func (s *State) InclusionFlags() []uint8 {
	return append([]uint8(nil), s.inclusion...)
}

// ApplyInclusion is how an external gating engine reports its verdict: it
// copies flags into the inclusion column and marks the state applied.
// flags must have exactly source.NumEvents() elements.
func (s *State) ApplyInclusion(flags []uint8) error {
	if len(flags) != len(s.inclusion) {
		return gerr.New(gerr.InvalidArgument, "State.ApplyInclusion", "flags length must equal NumEvents")
	}
	copy(s.inclusion, flags)
	s.applied = true
	return nil
}

// NumColumns returns the number of cached columns.
func (s *State) NumColumns() int { return len(s.columns) }

// ColumnName returns column i's parameter name.
func (s *State) ColumnName(i int) (string, error) {
	if i < 0 || i >= len(s.columns) {
		return "", gerr.New(gerr.OutOfRange, "State.ColumnName", "column index out of range")
	}
	return s.columns[i].name, nil
}

// ColumnF64 returns column i's values. It fails with InvalidArgument if
// this state's columns are f32.
func (s *State) ColumnF64(i int) ([]float64, error) {
	if s.isF32 {
		return nil, gerr.New(gerr.InvalidArgument, "State.ColumnF64", "state columns are f32, not f64")
	}
	if i < 0 || i >= len(s.columns) {
		return nil, gerr.New(gerr.OutOfRange, "State.ColumnF64", "column index out of range")
	}
	return s.columns[i].f64, nil
}

// ColumnF32 returns column i's values. It fails with InvalidArgument if
// this state's columns are f64.
func (s *State) ColumnF32(i int) ([]float32, error) {
	if !s.isF32 {
		return nil, gerr.New(gerr.InvalidArgument, "State.ColumnF32", "state columns are f64, not f32")
	}
	if i < 0 || i >= len(s.columns) {
		return nil, gerr.New(gerr.OutOfRange, "State.ColumnF32", "column index out of range")
	}
	return s.columns[i].f32, nil
}

// ColumnRange returns column i's nominal parameter range and its actual
// observed (post-transform) data range.
func (s *State) ColumnRange(i int) (param, data minmax.F64, err error) {
	if i < 0 || i >= len(s.columns) {
		return minmax.F64{}, minmax.F64{}, gerr.New(gerr.OutOfRange, "State.ColumnRange", "column index out of range")
	}
	return s.columns[i].paramRange, s.columns[i].dataRange, nil
}

func (s *State) columnIndexByName(name string) (int, bool) {
	for i, c := range s.columns {
		if c.name == name {
			return i, true
		}
	}
	return -1, false
}

// invalidate implements spec.md 4.5's internal invalidate(recurse): a
// no-op if already invalid; otherwise clears applied, resets the
// inclusion column to all-1, and (if recurse) propagates to every
// child's state.
func (s *State) invalidate(recurse bool) {
	if !s.applied {
		return
	}
	s.applied = false
	for i := range s.inclusion {
		s.inclusion[i] = 1
	}
	if !recurse {
		return
	}
	for _, c := range s.g.Children() {
		if cs, ok := stateOf(c); ok {
			cs.invalidate(true)
		}
	}
}

// stateOf recovers a gate's attached State, if its observer is one bound
// to the same kind of collaborator (type assertion stands in for the
// "state of wrong type" check spec.md 4.5/4.6 call out).
func stateOf(g *gate.Gate) (*State, bool) {
	s, ok := g.Observer().(*State)
	return s, ok
}

// transformForColumn returns the transform governing column i: the
// dimension transform if i indexes a dimension, else the matching
// additional-parameter transform.
func (s *State) transformForColumn(i int) *transform.Transform {
	nd := s.g.NumDimensions()
	if i < nd {
		d, err := s.g.Dimension(i)
		if err != nil {
			return nil
		}
		return d.Transform
	}
	add := s.g.AdditionalParams()
	j := i - nd
	if j < 0 || j >= len(add) {
		return nil
	}
	return add[j].Transform
}

func (s *State) copyColumnFromSource(i int) error {
	srcIdx, err := s.source.ParameterIndex(s.columns[i].name)
	if err != nil {
		return err
	}
	if s.isF32 {
		src := s.source.ParameterValuesF32(srcIdx)
		s.columns[i].f32 = append(s.columns[i].f32[:0], src...)
	} else {
		src := s.source.ParameterValuesF64(srcIdx)
		s.columns[i].f64 = append(s.columns[i].f64[:0], src...)
	}
	return nil
}

func (s *State) updateColumnMetadataFromSource(i int) {
	srcIdx, err := s.source.ParameterIndex(s.columns[i].name)
	if err != nil {
		return
	}
	s.columns[i].longName = s.source.ParameterLongName(srcIdx)
	s.columns[i].paramRange = minmax.F64{
		Min: s.source.ParameterMin(srcIdx),
		Max: s.source.ParameterMax(srcIdx),
	}
	s.columns[i].dataRange = minmax.F64{
		Min: s.source.ParameterDataMin(srcIdx),
		Max: s.source.ParameterDataMax(srcIdx),
	}
}

// reset implements spec.md 4.5's reset(index, recurse): re-copy the
// column from source, refresh its metadata, invalidate, then re-apply
// its transform.
func (s *State) reset(index int, recurse bool) error {
	if err := s.copyColumnFromSource(index); err != nil {
		return err
	}
	s.updateColumnMetadataFromSource(index)
	s.invalidate(recurse)
	return s.transformColumn(index)
}

func (s *State) resetAll(recurse bool) error {
	for i := range s.columns {
		if err := s.reset(i, recurse); err != nil {
			return err
		}
	}
	return nil
}

// transformColumn implements spec.md 4.5's transform(index): apply the
// column's transform in bulk (if any), carry the nominal range through
// the same scalar transform, recompute the observed data range from the
// (possibly non-monotonically transformed) column, and finally
// invalidate(false).
func (s *State) transformColumn(index int) error {
	tr := s.transformForColumn(index)
	col := &s.columns[index]
	if tr != nil {
		if s.isF32 {
			if err := tr.ApplyF32(col.f32); err != nil {
				return err
			}
		} else {
			if err := tr.ApplyF64(col.f64); err != nil {
				return err
			}
		}
		lo, err := tr.Apply(col.paramRange.Min)
		if err != nil {
			return err
		}
		hi, err := tr.Apply(col.paramRange.Max)
		if err != nil {
			return err
		}
		col.paramRange = minmax.F64{Min: lo, Max: hi}
	}
	recomputeDataRange(col, s.isF32)
	s.invalidate(false)
	return nil
}

func recomputeDataRange(col *column, isF32 bool) {
	if isF32 {
		if len(col.f32) == 0 {
			return
		}
		lo, hi := col.f32[0], col.f32[0]
		for _, v := range col.f32 {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		col.dataRange = minmax.F64{Min: float64(lo), Max: float64(hi)}
		return
	}
	if len(col.f64) == 0 {
		return
	}
	col.dataRange = minmax.F64{Min: floats.Min(col.f64), Max: floats.Max(col.f64)}
}
