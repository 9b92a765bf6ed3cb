// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

import "testing"

// recordingObserver counts callback invocations for testable-property
// assertions (spec.md 8 property 6).
type recordingObserver struct {
	BaseGateObserver
	rectCalls []struct {
		dim      int
		min, max float64
	}
}

func (r *recordingObserver) SetRectangleMinMax(dim int, min, max float64) {
	r.rectCalls = append(r.rectCalls, struct {
		dim      int
		min, max float64
	}{dim, min, max})
}

func TestRectangleSwapsOutOfOrderMinMax(t *testing.T) {
	g, err := NewRectangle([]string{"FSC"}, []float64{10}, []float64{5})
	if err != nil {
		t.Fatalf("NewRectangle: %v", err)
	}
	min, _ := g.DimMin(0)
	max, _ := g.DimMax(0)
	if min != 5 || max != 10 {
		t.Errorf("got min=%v max=%v; want swapped to min=5 max=10", min, max)
	}
}

func TestSetRectangleMinMaxFiresExactlyOneCallback(t *testing.T) {
	g, _ := NewRectangle([]string{"FSC", "SSC"}, []float64{0, 0}, []float64{1, 1})
	obs := &recordingObserver{}
	g.SetObserver(obs)

	if err := g.SetRectangleMinMax(0, 0.2, 0.8); err != nil {
		t.Fatalf("SetRectangleMinMax: %v", err)
	}
	min, _ := g.DimMin(0)
	max, _ := g.DimMax(0)
	if min != 0.2 || max != 0.8 {
		t.Errorf("dim 0 = [%v,%v]; want [0.2,0.8]", min, max)
	}
	if len(obs.rectCalls) != 1 {
		t.Fatalf("observer saw %d calls; want exactly 1", len(obs.rectCalls))
	}
	if obs.rectCalls[0].dim != 0 || obs.rectCalls[0].min != 0.2 || obs.rectCalls[0].max != 0.8 {
		t.Errorf("observer call = %+v; want {0 0.2 0.8}", obs.rectCalls[0])
	}
}

func TestAppendChildRejectsReparenting(t *testing.T) {
	a, _ := NewRectangle([]string{"X"}, []float64{0}, []float64{1})
	b, _ := NewRectangle([]string{"X"}, []float64{0}, []float64{1})
	c, _ := NewRectangle([]string{"X"}, []float64{0}, []float64{1})

	if err := a.AppendChild(c); err != nil {
		t.Fatalf("a.AppendChild(c): %v", err)
	}
	if err := b.AppendChild(c); err == nil {
		t.Error("b.AppendChild(c) should fail: c already attached to a")
	}
	if a.NumChildren() != 1 || a.Children()[0] != c {
		t.Error("a's child list should still contain c")
	}
	if b.NumChildren() != 0 {
		t.Error("b's child list should be unchanged (empty)")
	}
}

func TestAppendChildRejectsCycle(t *testing.T) {
	root, _ := NewRectangle([]string{"X"}, []float64{0}, []float64{1})
	child, _ := NewRectangle([]string{"X"}, []float64{0}, []float64{1})
	if err := root.AppendChild(child); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	// root is not attached anywhere, but it IS child's parent; attempting
	// to append root under child must fail the cycle check regardless of
	// root's own attached flag.
	if err := child.AppendChild(root); err == nil {
		t.Error("appending an ancestor as a child should fail")
	}
}

func TestAppendRemoveChildRoundTrip(t *testing.T) {
	parent, _ := NewRectangle([]string{"X"}, []float64{0}, []float64{1})
	child, _ := NewRectangle([]string{"X"}, []float64{0}, []float64{1})
	if err := parent.AppendChild(child); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	if err := parent.RemoveChild(child); err != nil {
		t.Fatalf("RemoveChild: %v", err)
	}
	if parent.NumChildren() != 0 {
		t.Errorf("NumChildren() = %d; want 0 after append+remove", parent.NumChildren())
	}
	if child.IsAttached() {
		t.Error("child should no longer be attached")
	}
}

func TestBooleanNotAcceptsAtMostOneChild(t *testing.T) {
	not, err := NewBoolean(Not)
	if err != nil {
		t.Fatalf("NewBoolean: %v", err)
	}
	c1, _ := NewRectangle([]string{"X"}, []float64{0}, []float64{1})
	c2, _ := NewRectangle([]string{"X"}, []float64{0}, []float64{1})
	if err := not.AppendChild(c1); err != nil {
		t.Fatalf("first AppendChild: %v", err)
	}
	if err := not.AppendChild(c2); err == nil {
		t.Error("second AppendChild to a Not gate should fail")
	}
}

func TestBooleanRejectsAdditionalClusteringParams(t *testing.T) {
	b, _ := NewBoolean(And)
	if err := b.AppendAdditionalClusteringParam("foo", nil); err == nil {
		t.Error("Boolean gate should reject additional clustering params")
	}
}

func TestAdditionalClusteringParamDedup(t *testing.T) {
	g, _ := NewRectangle([]string{"FSC"}, []float64{0}, []float64{1})
	if err := g.AppendAdditionalClusteringParam("FSC", nil); err == nil {
		t.Error("should reject additional param repeating a dimension name")
	}
	if err := g.AppendAdditionalClusteringParam("CD4", nil); err != nil {
		t.Fatalf("AppendAdditionalClusteringParam: %v", err)
	}
	if err := g.AppendAdditionalClusteringParam("CD4", nil); err == nil {
		t.Error("should reject duplicate additional param name")
	}
}

func TestCloneEqualExceptID(t *testing.T) {
	parent, _ := NewRectangle([]string{"FSC", "SSC"}, []float64{0, 0}, []float64{1, 1})
	parent.SetName("Lymphocytes")
	child, _ := NewRectangle([]string{"FSC", "SSC"}, []float64{0.2, 0.2}, []float64{0.8, 0.8})
	child.SetName("CD4")
	if err := parent.AppendChild(child); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}

	clone := parent.Clone()
	if clone.ID() == parent.ID() {
		t.Error("clone should have a distinct id")
	}
	if clone.Name() != parent.Name() || clone.Kind() != parent.Kind() {
		t.Error("clone should match original's name/kind")
	}
	if clone.NumChildren() != parent.NumChildren() {
		t.Fatalf("clone has %d children; want %d", clone.NumChildren(), parent.NumChildren())
	}
	cc := clone.Children()[0]
	if cc == child {
		t.Error("clone's child should be a distinct gate object")
	}
	if cc.ID() == child.ID() {
		t.Error("clone's child should have a distinct id")
	}
	if cc.Name() != child.Name() {
		t.Error("clone's child should match original child's name")
	}
	for i := 0; i < parent.NumDimensions(); i++ {
		pmin, _ := parent.DimMin(i)
		pmax, _ := parent.DimMax(i)
		cmin, _ := clone.DimMin(i)
		cmax, _ := clone.DimMax(i)
		if pmin != cmin || pmax != cmax {
			t.Errorf("dim %d bounds differ: parent=[%v,%v] clone=[%v,%v]", i, pmin, pmax, cmin, cmax)
		}
	}
}

func TestEllipsoidRejectsNonPositiveDefiniteCovariance(t *testing.T) {
	// A matrix with a negative eigenvalue.
	cov := []float64{1, 0, 0, -1}
	if _, err := NewEllipsoid([]string{"X", "Y"}, []float64{0, 0}, cov, 1); err == nil {
		t.Error("NewEllipsoid should reject a non positive-definite covariance")
	}
}

func TestEllipsoidAcceptsIdentityCovariance(t *testing.T) {
	cov := []float64{1, 0, 0, 1}
	g, err := NewEllipsoid([]string{"X", "Y"}, []float64{0, 0}, cov, 4)
	if err != nil {
		t.Fatalf("NewEllipsoid: %v", err)
	}
	got, _ := g.Covariance()
	for i, v := range cov {
		if got[i] != v {
			t.Errorf("Covariance()[%d] = %v; want %v", i, got[i], v)
		}
	}
}

func TestQuadrantConstructionValidatesDividers(t *testing.T) {
	_, err := NewQuadrant([]string{"CD4", "CD8"}, []Divider{
		{ID: "d1", ParamName: "CD4", Divisions: []float64{1, 1}},
	}, nil)
	if err == nil {
		t.Error("NewQuadrant should reject non-strictly-increasing divisions")
	}

	g, err := NewQuadrant([]string{"CD4", "CD8"}, []Divider{
		{ID: "d1", ParamName: "CD4", Divisions: []float64{1, 2, 3}},
	}, []NamedQuadrant{
		{ID: "q1", Positions: []QuadrantPosition{{DividerID: "d1", Value: 1}}},
	})
	if err != nil {
		t.Fatalf("NewQuadrant: %v", err)
	}
	d, ok, err := g.DividerByID("d1")
	if err != nil || !ok {
		t.Fatalf("DividerByID: %v, ok=%v", err, ok)
	}
	if len(d.Divisions) != 3 {
		t.Errorf("divider has %d divisions; want 3", len(d.Divisions))
	}
}
