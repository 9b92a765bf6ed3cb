// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gatetree

import "github.com/JCVenterInstitute/flowgate-gating/gate"

// TreeObserver mirrors gate.GateObserver one level up: it receives
// notification of mutations to a GateTrees container itself (spec.md 4.3,
// 4.4), letting a collaborator such as a gating cache keep per-tree state
// in sync without polling. It lives in this package rather than a
// separate one for the same reason gate.GateObserver lives in package
// gate: its methods take *gate.Gate, and gate does not import gatetree.
type TreeObserver interface {
	TreeAppended(root *gate.Gate)
	TreeRemoved(root *gate.Gate)
	TreesCleared()

	SetDisplayName(s string)
	SetDescription(s string)
	SetNotes(s string)
	SetSourceFileName(s string)
	SetFCSFileName(s string)
	SetCreatorSoftware(s string)
}

// BaseTreeObserver is a no-op TreeObserver; embed it to implement only the
// callbacks a collaborator cares about.
type BaseTreeObserver struct{}

func (BaseTreeObserver) TreeAppended(root *gate.Gate) {}
func (BaseTreeObserver) TreeRemoved(root *gate.Gate)  {}
func (BaseTreeObserver) TreesCleared()                {}

func (BaseTreeObserver) SetDisplayName(s string)     {}
func (BaseTreeObserver) SetDescription(s string)     {}
func (BaseTreeObserver) SetNotes(s string)            {}
func (BaseTreeObserver) SetSourceFileName(s string)   {}
func (BaseTreeObserver) SetFCSFileName(s string)      {}
func (BaseTreeObserver) SetCreatorSoftware(s string)  {}
