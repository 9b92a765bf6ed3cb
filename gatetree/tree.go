// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gatetree implements the gate tree container (spec.md 4.3): an
// unordered set of tree roots, plus optional descriptive metadata, that
// owns its roots the way a gate.Gate owns its children.
package gatetree

import (
	"github.com/JCVenterInstitute/flowgate-gating/gate"
	"github.com/JCVenterInstitute/flowgate-gating/gerr"
)

// GateTrees holds an ordered (but semantically unordered, per spec.md 3.4)
// list of root gates plus descriptive metadata.
type GateTrees struct {
	roots []*gate.Gate

	displayName     string
	description     string
	notes           string
	sourceFileName  string
	fcsFileName     string
	creatorSoftware string

	observer TreeObserver
}

// New constructs an empty GateTrees.
func New() *GateTrees { return &GateTrees{} }

// Observer returns the container's attached observer, or nil.
func (gt *GateTrees) Observer() TreeObserver { return gt.observer }

// SetObserver attaches (or clears, with nil) the container's observer.
func (gt *GateTrees) SetObserver(o TreeObserver) { gt.observer = o }

func (gt *GateTrees) notify(fn func(TreeObserver)) {
	if gt.observer != nil {
		fn(gt.observer)
	}
}

// --- metadata (spec.md 3.4) ---

func (gt *GateTrees) DisplayName() string { return gt.displayName }
func (gt *GateTrees) SetDisplayName(s string) {
	gt.displayName = s
	gt.notify(func(o TreeObserver) { o.SetDisplayName(s) })
}

func (gt *GateTrees) Description() string { return gt.description }
func (gt *GateTrees) SetDescription(s string) {
	gt.description = s
	gt.notify(func(o TreeObserver) { o.SetDescription(s) })
}

func (gt *GateTrees) Notes() string { return gt.notes }
func (gt *GateTrees) SetNotes(s string) {
	gt.notes = s
	gt.notify(func(o TreeObserver) { o.SetNotes(s) })
}

func (gt *GateTrees) SourceFileName() string { return gt.sourceFileName }
func (gt *GateTrees) SetSourceFileName(s string) {
	gt.sourceFileName = s
	gt.notify(func(o TreeObserver) { o.SetSourceFileName(s) })
}

func (gt *GateTrees) FCSFileName() string { return gt.fcsFileName }
func (gt *GateTrees) SetFCSFileName(s string) {
	gt.fcsFileName = s
	gt.notify(func(o TreeObserver) { o.SetFCSFileName(s) })
}

func (gt *GateTrees) CreatorSoftware() string { return gt.creatorSoftware }
func (gt *GateTrees) SetCreatorSoftware(s string) {
	gt.creatorSoftware = s
	gt.notify(func(o TreeObserver) { o.SetCreatorSoftware(s) })
}

// --- root management (spec.md 4.3) ---

// NumTrees returns the number of root gates held.
func (gt *GateTrees) NumTrees() int { return len(gt.roots) }

// GetTree returns the i'th root gate.
func (gt *GateTrees) GetTree(i int) (*gate.Gate, error) {
	if i < 0 || i >= len(gt.roots) {
		return nil, gerr.New(gerr.OutOfRange, "GateTrees.GetTree", "tree index out of range")
	}
	return gt.roots[i], nil
}

// AppendTree appends root as a new tree root. It fails with
// InvalidArgument if root is nil or already attached (spec.md 4.3, 7).
func (gt *GateTrees) AppendTree(root *gate.Gate) error {
	if root == nil {
		return gerr.New(gerr.InvalidArgument, "GateTrees.AppendTree", "root must not be nil")
	}
	if root.IsAttached() {
		return gerr.New(gerr.InvalidArgument, "GateTrees.AppendTree", "root is already attached to a parent or tree")
	}
	gt.roots = append(gt.roots, root)
	root.SetAttached(true)
	gt.notify(func(o TreeObserver) { o.TreeAppended(root) })
	return nil
}

// RemoveTree removes the i'th root gate, clearing its attached flag.
func (gt *GateTrees) RemoveTree(i int) error {
	if i < 0 || i >= len(gt.roots) {
		return gerr.New(gerr.OutOfRange, "GateTrees.RemoveTree", "tree index out of range")
	}
	root := gt.roots[i]
	gt.roots = append(gt.roots[:i], gt.roots[i+1:]...)
	root.SetAttached(false)
	gt.notify(func(o TreeObserver) { o.TreeRemoved(root) })
	return nil
}

// RemoveTreeGate removes root by identity (rather than index), if present.
func (gt *GateTrees) RemoveTreeGate(root *gate.Gate) error {
	for i, r := range gt.roots {
		if r == root {
			return gt.RemoveTree(i)
		}
	}
	return gerr.New(gerr.OutOfRange, "GateTrees.RemoveTreeGate", "root not found")
}

// ClearTrees removes every root gate, clearing each one's attached flag.
func (gt *GateTrees) ClearTrees() {
	for _, r := range gt.roots {
		r.SetAttached(false)
	}
	gt.roots = nil
	gt.notify(func(o TreeObserver) { o.TreesCleared() })
}

// Deidentify clears fields that may carry patient-identifying text: the
// container's notes and referenced FCS file name, and every descendent
// gate's notes (spec.md 4.3, 8 S5, GLOSSARY).
func (gt *GateTrees) Deidentify() {
	gt.notes = ""
	gt.fcsFileName = ""
	for _, g := range gt.FindDescendentGates() {
		g.SetNotes("")
	}
}
