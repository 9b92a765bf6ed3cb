// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

import (
	"github.com/JCVenterInstitute/flowgate-gating/gerr"
	"github.com/JCVenterInstitute/flowgate-gating/ids"
	"github.com/JCVenterInstitute/flowgate-gating/transform"
)

// Dimension is one parameter axis a gate's shape is defined over
// (spec.md 3.3): a parameter name and an optional shared transform.
type Dimension struct {
	ParamName string
	Transform *transform.Transform
}

// AdditionalParam is a parameter consumed by the clustering algorithm but
// not part of the gate's shape (spec.md 3.3, GLOSSARY).
type AdditionalParam struct {
	Name      string
	Transform *transform.Transform
}

// Gate is a mutable geometric or logical classifier (spec.md 3.3). It is
// always constructed via one of the kind-specific constructors
// (NewRectangle, NewPolygon, NewEllipsoid, NewQuadrant, NewBoolean), which
// fix Kind and NumDimensions for its lifetime.
type Gate struct {
	id          ids.GateID
	originalID  string
	name        string
	description string
	notes       string
	reportPrio  uint32
	method      GatingMethod
	kind        Kind

	dims       []Dimension
	additional []AdditionalParam

	children []*Gate

	attached bool
	observer GateObserver

	shape any // *rectangleShape | *polygonShape | *ellipsoidShape | *quadrantShape | *booleanShape

	inCallback bool // re-entrancy guard (spec.md 9)
}

func newGate(kind Kind, numDims int, dimNames []string, shape any) *Gate {
	dims := make([]Dimension, numDims)
	for i := 0; i < numDims; i++ {
		if i < len(dimNames) {
			dims[i].ParamName = dimNames[i]
		}
	}
	return &Gate{
		id:         ids.NextGateID(),
		reportPrio: 1,
		method:     EventValue,
		kind:       kind,
		dims:       dims,
		shape:      shape,
	}
}

// ID returns the gate's process-unique id.
func (g *Gate) ID() ids.GateID { return g.id }

// Kind returns the gate's shape kind.
func (g *Gate) Kind() Kind { return g.kind }

// NumDimensions returns the number of shape dimensions (fixed at
// construction; spec.md 3.3).
func (g *Gate) NumDimensions() int { return len(g.dims) }

// Dimension returns a copy of the i'th dimension descriptor.
func (g *Gate) Dimension(i int) (Dimension, error) {
	if i < 0 || i >= len(g.dims) {
		return Dimension{}, gerr.New(gerr.OutOfRange, "Gate.Dimension", "dimension index out of range")
	}
	return g.dims[i], nil
}

// OriginalID returns the free-form external id tag, or "" if unset.
func (g *Gate) OriginalID() string { return g.originalID }

// Name returns the gate's display name.
func (g *Gate) Name() string { return g.name }

// Description returns the gate's free-form description.
func (g *Gate) Description() string { return g.description }

// Notes returns the gate's diagnostic notes.
func (g *Gate) Notes() string { return g.notes }

// ReportPriority returns the gate's reporting-priority integer (default 1).
func (g *Gate) ReportPriority() uint32 { return g.reportPrio }

// GatingMethodValue returns which computation populates this gate's
// inclusion column.
func (g *Gate) GatingMethodValue() GatingMethod { return g.method }

// IsAttached reports whether this gate is currently held as a child of
// another gate or as a tree root (spec.md 3.3).
func (g *Gate) IsAttached() bool { return g.attached }

// SetAttached is used by gatetree.GateTrees when appending/removing a root;
// it is not part of the public mutation surface for ordinary callers, who
// should use AppendChild/RemoveChild or a tree's AppendTree/RemoveTree.
func (g *Gate) SetAttached(v bool) { g.attached = v }

// Observer returns the gate's attached observer, or nil.
func (g *Gate) Observer() GateObserver { return g.observer }

// SetObserver attaches (or clears, with nil) the gate's observer. Setting
// the observer itself does not fire any callback.
func (g *Gate) SetObserver(o GateObserver) { g.observer = o }

// notify invokes fn with the gate's observer if one is attached, guarding
// against a callback re-entering the mutator that invoked it (spec.md 9).
func (g *Gate) notify(fn func(GateObserver)) {
	if g.observer == nil {
		return
	}
	if g.inCallback {
		return
	}
	g.inCallback = true
	defer func() { g.inCallback = false }()
	fn(g.observer)
}

// --- cross-cutting metadata setters (spec.md 4.4) ---

func (g *Gate) SetOriginalID(s string) {
	g.originalID = s
	g.notify(func(o GateObserver) { o.SetOriginalID(s) })
}

func (g *Gate) SetName(s string) {
	g.name = s
	g.notify(func(o GateObserver) { o.SetName(s) })
}

func (g *Gate) SetDescription(s string) {
	g.description = s
	g.notify(func(o GateObserver) { o.SetDescription(s) })
}

func (g *Gate) SetNotes(s string) {
	g.notes = s
	g.notify(func(o GateObserver) { o.SetNotes(s) })
}

func (g *Gate) SetReportPriority(p uint32) {
	g.reportPrio = p
	g.notify(func(o GateObserver) { o.SetReportPriority(p) })
}

func (g *Gate) SetGatingMethod(m GatingMethod) {
	g.method = m
	g.notify(func(o GateObserver) { o.SetGatingMethod(m) })
}

// SetDimensionParameterName renames dimension i's parameter.
func (g *Gate) SetDimensionParameterName(i int, name string) error {
	if i < 0 || i >= len(g.dims) {
		return gerr.New(gerr.OutOfRange, "Gate.SetDimensionParameterName", "dimension index out of range")
	}
	g.dims[i].ParamName = name
	g.notify(func(o GateObserver) { o.SetDimensionParameterName(i, name) })
	return nil
}

// SetDimensionParameterTransform sets (or clears, with nil) dimension i's
// shared transform reference.
func (g *Gate) SetDimensionParameterTransform(i int, tr *transform.Transform) error {
	if i < 0 || i >= len(g.dims) {
		return gerr.New(gerr.OutOfRange, "Gate.SetDimensionParameterTransform", "dimension index out of range")
	}
	g.dims[i].Transform = tr
	g.notify(func(o GateObserver) { o.SetDimensionParameterTransform(i, tr) })
	return nil
}

// --- additional clustering parameters (spec.md 3.3, 4.4) ---

// AdditionalParams returns the gate's additional clustering parameters.
func (g *Gate) AdditionalParams() []AdditionalParam {
	return append([]AdditionalParam(nil), g.additional...)
}

func (g *Gate) hasParamName(name string) bool {
	for _, d := range g.dims {
		if d.ParamName == name {
			return true
		}
	}
	for _, a := range g.additional {
		if a.Name == name {
			return true
		}
	}
	return false
}

// AppendAdditionalClusteringParam appends a clustering-only parameter.
// Boolean gates do not support additional clustering parameters
// (spec.md 4.3 Boolean); the name must not repeat a dimension parameter or
// another additional parameter (spec.md 3.3).
func (g *Gate) AppendAdditionalClusteringParam(name string, tr *transform.Transform) error {
	if g.kind == Boolean {
		return gerr.New(gerr.InvalidArgument, "Gate.AppendAdditionalClusteringParam", "Boolean gates do not support additional clustering parameters")
	}
	if g.hasParamName(name) {
		return gerr.New(gerr.InvalidArgument, "Gate.AppendAdditionalClusteringParam", "duplicate parameter name: "+name)
	}
	g.additional = append(g.additional, AdditionalParam{Name: name, Transform: tr})
	g.notify(func(o GateObserver) { o.AppendAdditionalClusteringParam(name, tr) })
	return nil
}

// SetAdditionalClusteringParamTransform sets the transform of an existing
// additional clustering parameter by name.
func (g *Gate) SetAdditionalClusteringParamTransform(name string, tr *transform.Transform) error {
	for i := range g.additional {
		if g.additional[i].Name == name {
			g.additional[i].Transform = tr
			g.notify(func(o GateObserver) { o.SetAdditionalClusteringParamTransform(name, tr) })
			return nil
		}
	}
	return gerr.New(gerr.OutOfRange, "Gate.SetAdditionalClusteringParamTransform", "no such additional clustering parameter: "+name)
}

// RemoveAdditionalClusteringParam removes an additional clustering
// parameter by name.
func (g *Gate) RemoveAdditionalClusteringParam(name string) error {
	for i := range g.additional {
		if g.additional[i].Name == name {
			g.additional = append(g.additional[:i], g.additional[i+1:]...)
			g.notify(func(o GateObserver) { o.RemoveAdditionalClusteringParam(name) })
			return nil
		}
	}
	return gerr.New(gerr.OutOfRange, "Gate.RemoveAdditionalClusteringParam", "no such additional clustering parameter: "+name)
}

// ClearAdditionalClusteringParams removes all additional clustering
// parameters.
func (g *Gate) ClearAdditionalClusteringParams() {
	g.additional = nil
	g.notify(func(o GateObserver) { o.ClearAdditionalClusteringParams() })
}

// --- children / tree structure (spec.md 3.3) ---

// Children returns the gate's ordered child list (a copy of the slice
// header; the *Gate elements are shared, not copied).
func (g *Gate) Children() []*Gate {
	return append([]*Gate(nil), g.children...)
}

// NumChildren returns the number of direct children.
func (g *Gate) NumChildren() int { return len(g.children) }

// containsDescendant reports whether target is root or appears anywhere
// in root's descendant subtree.
func containsDescendant(root, target *Gate) bool {
	if root == target {
		return true
	}
	for _, c := range root.children {
		if containsDescendant(c, target) {
			return true
		}
	}
	return false
}

// AppendChild appends child as this gate's newest child. It fails with
// InvalidArgument if child is already attached somewhere, if child == g,
// or if appending child would make g its own descendant (i.e. child is
// currently an ancestor of g) -- spec.md 3.3, 7, 8 S6.
func (g *Gate) AppendChild(child *Gate) error {
	if child == nil {
		return gerr.New(gerr.InvalidArgument, "Gate.AppendChild", "child must not be nil")
	}
	if child == g {
		return gerr.New(gerr.InvalidArgument, "Gate.AppendChild", "a gate cannot be its own child")
	}
	if child.attached {
		return gerr.New(gerr.InvalidArgument, "Gate.AppendChild", "child is already attached to a parent or tree")
	}
	if g.kind == Boolean {
		bs := g.shape.(*booleanShape)
		if bs.op == Not && len(g.children) >= 1 {
			return gerr.New(gerr.InvalidArgument, "Gate.AppendChild", "Not gate accepts at most one child")
		}
	}
	if containsDescendant(child, g) {
		return gerr.New(gerr.InvalidArgument, "Gate.AppendChild", "appending child would make an ancestor cycle")
	}
	g.children = append(g.children, child)
	child.attached = true
	if g.kind == Boolean {
		bs := g.shape.(*booleanShape)
		bs.negate = append(bs.negate, false)
	}
	g.notify(func(o GateObserver) { o.AppendChild(child) })
	return nil
}

// RemoveChild removes child from this gate's child list, if present, and
// clears its attached flag.
func (g *Gate) RemoveChild(child *Gate) error {
	for i, c := range g.children {
		if c == child {
			g.children = append(g.children[:i], g.children[i+1:]...)
			if g.kind == Boolean {
				bs := g.shape.(*booleanShape)
				bs.negate = append(bs.negate[:i], bs.negate[i+1:]...)
			}
			child.attached = false
			g.notify(func(o GateObserver) { o.RemoveChild(child) })
			return nil
		}
	}
	return gerr.New(gerr.OutOfRange, "Gate.RemoveChild", "child not found")
}

// ClearChildren removes all children, clearing each one's attached flag.
func (g *Gate) ClearChildren() {
	for _, c := range g.children {
		c.attached = false
	}
	g.children = nil
	if g.kind == Boolean {
		g.shape.(*booleanShape).negate = nil
	}
	g.notify(func(o GateObserver) { o.ClearChildren() })
}

// Clone deep-copies this gate's shape and children (with fresh ids, since
// clones are standalone and not yet attached anywhere); transforms are
// shared by reference since they are immutable (spec.md 4.2). The clone's
// observer is not copied -- an observer is a relationship to one specific
// gate, not shape data.
func (g *Gate) Clone() *Gate {
	clone := &Gate{
		id:         ids.NextGateID(),
		originalID: g.originalID,
		name:       g.name,
		description: g.description,
		notes:      g.notes,
		reportPrio: g.reportPrio,
		method:     g.method,
		kind:       g.kind,
		dims:       append([]Dimension(nil), g.dims...),
		additional: append([]AdditionalParam(nil), g.additional...),
		shape:      cloneShape(g.kind, g.shape),
	}
	for _, c := range g.children {
		cc := c.Clone()
		clone.children = append(clone.children, cc)
		cc.attached = true
	}
	return clone
}
