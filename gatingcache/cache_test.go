// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gatingcache

import (
	"testing"

	"github.com/JCVenterInstitute/flowgate-gating/gate"
	"github.com/JCVenterInstitute/flowgate-gating/gatetree"
)

type fakeTable struct {
	names  []string
	values [][]float64
}

func (f *fakeTable) NumEvents() int            { return len(f.values[0]) }
func (f *fakeTable) NumParameters() int        { return len(f.names) }
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
	return 0, nil
}
func (f *fakeTable) ParameterName(i int) string         { return f.names[i] }
func (f *fakeTable) IsFloatsNotDoubles() bool            { return false }
func (f *fakeTable) ParameterValuesF32(i int) []float32 { return nil }
func (f *fakeTable) ParameterValuesF64(i int) []float64 { return f.values[i] }
func (f *fakeTable) ParameterLongName(i int) string     { return f.names[i] }
func (f *fakeTable) ParameterMin(i int) float64         { return 0 }
func (f *fakeTable) ParameterMax(i int) float64         { return 1 }
func (f *fakeTable) ParameterDataMin(i int) float64     { return 0 }
func (f *fakeTable) ParameterDataMax(i int) float64     { return 1 }

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

func TestNewInstallsStateOnEveryDescendentGate(t *testing.T) {
	tbl := &fakeTable{names: []string{"FSC"}, values: [][]float64{{0, 1, 0.5}}}
	root := mustRect(t, "FSC")
	child := mustRect(t, "FSC")
	if err := root.AppendChild(child); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	trees := gatetree.New()
	if err := trees.AppendTree(root); err != nil {
		t.Fatalf("AppendTree: %v", err)
	}

	c, err := New(tbl, trees)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := stateOf(root); !ok {
		t.Error("root should have a state installed")
	}
	if _, ok := stateOf(child); !ok {
		t.Error("child should have a state installed")
	}
	if c.Source() != tbl {
		t.Error("Source() should return the bound event table")
	}
}

func TestTreeAppendedInstallsStateForNewRoot(t *testing.T) {
	tbl := &fakeTable{names: []string{"FSC"}, values: [][]float64{{0, 1}}}
	trees := gatetree.New()
	if _, err := New(tbl, trees); err != nil {
		t.Fatalf("New: %v", err)
	}

	newRoot := mustRect(t, "FSC")
	if err := trees.AppendTree(newRoot); err != nil {
		t.Fatalf("AppendTree: %v", err)
	}
	if _, ok := stateOf(newRoot); !ok {
		t.Error("a root appended after cache construction should get a fresh state")
	}
}

func TestNewRejectsNilArguments(t *testing.T) {
	tbl := &fakeTable{names: []string{"FSC"}, values: [][]float64{{0}}}
	if _, err := New(tbl, nil); err == nil {
		t.Error("New should reject a nil GateTrees")
	}
	if _, err := New(nil, gatetree.New()); err == nil {
		t.Error("New should reject a nil source event table")
	}
}
