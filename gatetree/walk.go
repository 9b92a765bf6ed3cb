// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gatetree

import (
	"fmt"
	"io"

	"github.com/JCVenterInstitute/flowgate-gating/gate"
	"github.com/JCVenterInstitute/flowgate-gating/ids"
	"github.com/JCVenterInstitute/flowgate-gating/transform"
	"github.com/goki/ki/indent"
)

// FindDescendentGates returns every gate reachable from any root, in
// preorder (a gate always precedes its children; spec.md 4.3, 8 property 7).
func (gt *GateTrees) FindDescendentGates() []*gate.Gate {
	gates, _ := gt.FindDescendentGatesWithParentIndexes()
	return gates
}

// FindDescendentGatesWithParentIndexes is FindDescendentGates, paired with
// each gate's parent's index in the same flat list. A root's own parent
// index equals its own index, since it has no parent in the list
// (spec.md 4.3, 8 property 8).
func (gt *GateTrees) FindDescendentGatesWithParentIndexes() ([]*gate.Gate, []int) {
	var gates []*gate.Gate
	var parents []int

	var walk func(g *gate.Gate, parentIdx int)
	walk = func(g *gate.Gate, parentIdx int) {
		idx := len(gates)
		gates = append(gates, g)
		parents = append(parents, parentIdx)
		for _, c := range g.Children() {
			walk(c, idx)
		}
	}

	for _, root := range gt.roots {
		walk(root, len(gates))
	}
	return gates, parents
}

// FindGateByID searches every descendent gate for one with the given id.
func (gt *GateTrees) FindGateByID(id ids.GateID) (*gate.Gate, bool) {
	for _, g := range gt.FindDescendentGates() {
		if g.ID() == id {
			return g, true
		}
	}
	return nil, false
}

// FindTransformByID searches every descendent gate's dimension and
// additional-parameter transforms for one with the given id.
func (gt *GateTrees) FindTransformByID(id ids.TransformID) (*transform.Transform, bool) {
	for _, g := range gt.FindDescendentGates() {
		for i := 0; i < g.NumDimensions(); i++ {
			d, _ := g.Dimension(i)
			if d.Transform != nil && d.Transform.ID() == id {
				return d.Transform, true
			}
		}
		for _, a := range g.AdditionalParams() {
			if a.Transform != nil && a.Transform.ID() == id {
				return a.Transform, true
			}
		}
	}
	return nil, false
}

// FindParentGate returns child's parent gate, or (nil, false) if child is a
// tree root or is not found among the container's descendent gates.
func (gt *GateTrees) FindParentGate(child *gate.Gate) (*gate.Gate, bool) {
	for _, g := range gt.FindDescendentGates() {
		for _, c := range g.Children() {
			if c == child {
				return g, true
			}
		}
	}
	return nil, false
}

// FindNumDescendentGates returns the total number of gates across every
// tree.
func (gt *GateTrees) FindNumDescendentGates() int {
	return len(gt.FindDescendentGates())
}

// DumpTree writes a human-readable, indented listing of every root gate
// and its descendants to w -- one line per gate, child lines nested one
// tab stop per tree level, in the same hand-rolled indentation style as
// FileLog.WriteIndented (package tsvloader) and the teacher's
// leabra.NetworkStru.WriteWtsJSON dump routines.
func (gt *GateTrees) DumpTree(w io.Writer) {
	var walk func(g *gate.Gate, depth int)
	walk = func(g *gate.Gate, depth int) {
		w.Write(indent.TabBytes(depth))
		name := g.Name()
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(w, "#%d %s [%s] dims=%d children=%d\n", g.ID(), name, g.Kind(), g.NumDimensions(), g.NumChildren())
		for _, c := range g.Children() {
			walk(c, depth+1)
		}
	}
	for _, root := range gt.roots {
		walk(root, 0)
	}
}

// FindNumDescendentTransforms returns the number of distinct transforms
// (by id) referenced by any descendent gate's dimensions or additional
// parameters.
func (gt *GateTrees) FindNumDescendentTransforms() int {
	seen := map[ids.TransformID]bool{}
	for _, g := range gt.FindDescendentGates() {
		for i := 0; i < g.NumDimensions(); i++ {
			d, _ := g.Dimension(i)
			if d.Transform != nil {
				seen[d.Transform.ID()] = true
			}
		}
		for _, a := range g.AdditionalParams() {
			if a.Transform != nil {
				seen[a.Transform.ID()] = true
			}
		}
	}
	return len(seen)
}
