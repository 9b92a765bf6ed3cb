// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gatestate

import (
	"testing"

	"github.com/JCVenterInstitute/flowgate-gating/gate"
)

// fakeTable is a minimal in-memory EventTable for tests.
type fakeTable struct {
	names  []string
	values [][]float64
	f32    bool
}

func (f *fakeTable) NumEvents() int          { return len(f.values[0]) }
func (f *fakeTable) NumParameters() int      { return len(f.names) }
func (f *fakeTable) IsParameter(n string) bool {
	for _, p := range f.names {
		if p == n {
			return true
		}
	}
	return false
}
func (f *fakeTable) ParameterIndex(n string) (int, error) {
	for i, p := range f.names {
		if p == n {
			return i, nil
		}
	}
	return 0, errNoSuchParam(n)
}
func (f *fakeTable) ParameterName(i int) string        { return f.names[i] }
func (f *fakeTable) IsFloatsNotDoubles() bool            { return f.f32 }
func (f *fakeTable) ParameterValuesF32(i int) []float32 {
	out := make([]float32, len(f.values[i]))
	for j, v := range f.values[i] {
		out[j] = float32(v)
	}
	return out
}
func (f *fakeTable) ParameterValuesF64(i int) []float64 { return f.values[i] }
func (f *fakeTable) ParameterLongName(i int) string     { return f.names[i] }
func (f *fakeTable) ParameterMin(i int) float64         { return 0 }
func (f *fakeTable) ParameterMax(i int) float64         { return 1 }
func (f *fakeTable) ParameterDataMin(i int) float64     { return 0 }
func (f *fakeTable) ParameterDataMax(i int) float64     { return 1 }

type paramErr string

func (e paramErr) Error() string { return "no such parameter: " + string(e) }
func errNoSuchParam(n string) error { return paramErr(n) }

func mustRect(t *testing.T, dims ...string) *gate.Gate {
	t.Helper()
	min := make([]float64, len(dims))
	max := make([]float64, len(dims))
	for i := range dims {
		max[i] = 1
	}
	g, err := gate.NewRectangle(dims, min, max)
	if err != nil {
		t.Fatalf("NewRectangle: %v", err)
	}
	return g
}

func TestNewPopulatesColumnsAndInclusion(t *testing.T) {
	tbl := &fakeTable{names: []string{"FSC", "SSC"}, values: [][]float64{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6}}}
	g := mustRect(t, "FSC", "SSC")
	s, err := New(g, tbl)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Applied() {
		t.Error("new state should not be applied")
	}
	for _, v := range s.InclusionFlags() {
		if v != 1 {
			t.Errorf("inclusion flags should start all-1, got %v", s.InclusionFlags())
			break
		}
	}
	col, err := s.ColumnF64(0)
	if err != nil {
		t.Fatalf("ColumnF64: %v", err)
	}
	if len(col) != 3 {
		t.Errorf("column length = %d; want 3", len(col))
	}
}

func TestNewRejectsUnknownParameter(t *testing.T) {
	tbl := &fakeTable{names: []string{"FSC"}, values: [][]float64{{0, 1}}}
	g := mustRect(t, "CD4")
	if _, err := New(g, tbl); err == nil {
		t.Error("New should reject a gate referencing an unknown parameter")
	}
}

func TestInvalidateResetsInclusionAndRecurses(t *testing.T) {
	tbl := &fakeTable{names: []string{"FSC"}, values: [][]float64{{0, 1, 0.5}}}
	parent := mustRect(t, "FSC")
	child := mustRect(t, "FSC")
	if err := parent.AppendChild(child); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}

	ps, err := New(parent, tbl)
	if err != nil {
		t.Fatalf("New parent: %v", err)
	}
	parent.SetObserver(ps)
	cs, err := New(child, tbl)
	if err != nil {
		t.Fatalf("New child: %v", err)
	}
	child.SetObserver(cs)

	if err := ps.ApplyInclusion([]uint8{1, 0, 1}); err != nil {
		t.Fatalf("ApplyInclusion: %v", err)
	}
	if err := cs.ApplyInclusion([]uint8{0, 0, 1}); err != nil {
		t.Fatalf("ApplyInclusion: %v", err)
	}
	if !ps.Applied() || !cs.Applied() {
		t.Fatal("both states should be applied before invalidation")
	}

	ps.invalidate(true)
	if ps.Applied() {
		t.Error("parent should no longer be applied")
	}
	if cs.Applied() {
		t.Error("invalidate(true) should recurse and clear the child's applied flag")
	}
	for _, v := range cs.InclusionFlags() {
		if v != 1 {
			t.Errorf("child inclusion flags should reset to all-1, got %v", cs.InclusionFlags())
			break
		}
	}
}

func TestSetRectangleMinMaxInvalidatesWhenApplied(t *testing.T) {
	tbl := &fakeTable{names: []string{"FSC"}, values: [][]float64{{0, 1, 0.5}}}
	g := mustRect(t, "FSC")
	s, err := New(g, tbl)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.SetObserver(s)
	if err := s.ApplyInclusion([]uint8{1, 0, 1}); err != nil {
		t.Fatalf("ApplyInclusion: %v", err)
	}

	if err := g.SetRectangleMinMax(0, 0.2, 0.8); err != nil {
		t.Fatalf("SetRectangleMinMax: %v", err)
	}
	if s.Applied() {
		t.Error("changing rectangle bounds while applied should invalidate the state")
	}
}

func TestAppendAdditionalClusteringParamAddsColumn(t *testing.T) {
	tbl := &fakeTable{names: []string{"FSC", "CD4"}, values: [][]float64{{0, 1}, {0.2, 0.8}}}
	g := mustRect(t, "FSC")
	s, err := New(g, tbl)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.SetObserver(s)

	if err := g.AppendAdditionalClusteringParam("CD4", nil); err != nil {
		t.Fatalf("AppendAdditionalClusteringParam: %v", err)
	}
	if s.NumColumns() != 2 {
		t.Fatalf("NumColumns() = %d; want 2", s.NumColumns())
	}
	name, _ := s.ColumnName(1)
	if name != "CD4" {
		t.Errorf("ColumnName(1) = %q; want CD4", name)
	}
}

func TestAppendChildAllocatesFreshStateWhenMissing(t *testing.T) {
	tbl := &fakeTable{names: []string{"FSC"}, values: [][]float64{{0, 1, 0.5}}}
	parent := mustRect(t, "FSC")
	ps, err := New(parent, tbl)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	parent.SetObserver(ps)

	child := mustRect(t, "FSC")
	if err := parent.AppendChild(child); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	cs, ok := stateOf(child)
	if !ok {
		t.Fatal("child should have had a fresh state installed as its observer")
	}
	if cs.Source() != ps.Source() {
		t.Error("fresh child state should share the parent's source event table")
	}
}
