// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

import "github.com/JCVenterInstitute/flowgate-gating/transform"

// GateObserver is the mutation-callback interface component E attaches to
// a gate (spec.md 4.4). Every method is called synchronously, after the
// internal field it describes has already been updated, and must not
// re-enter the mutator that invoked it or fail (spec.md 4.4, 5, 7).
//
// This interface lives in package gate, not a separate "observer"
// package, because its methods reference *Gate directly; a separate
// package would either import gate (creating a cycle, since Gate holds a
// GateObserver) or redeclare the type. BaseGateObserver below gives every
// field a no-op default so a concrete observer overrides only what it
// needs, matching spec.md 4.4's "no-op defaults" requirement via
// embedding instead of virtual-method defaults.
type GateObserver interface {
	AppendChild(child *Gate)
	ClearChildren()
	RemoveChild(child *Gate)

	AppendAdditionalClusteringParam(name string, tr *transform.Transform)
	ClearAdditionalClusteringParams()
	RemoveAdditionalClusteringParam(name string)
	SetAdditionalClusteringParamTransform(name string, tr *transform.Transform)

	SetDimensionParameterName(i int, name string)
	SetDimensionParameterTransform(i int, tr *transform.Transform)

	SetGatingMethod(m GatingMethod)
	SetName(s string)
	SetDescription(s string)
	SetNotes(s string)
	SetOriginalID(s string)
	SetReportPriority(p uint32)

	SetRectangleMinMax(dim int, min, max float64)
	AppendPolygonVertex(i int, x, y float64)
	SetPolygonVertex(i int, x, y float64)
	RemovePolygonVertex(i int)
	ClearPolygonVertices()
}

// BaseGateObserver implements GateObserver with every method a no-op.
// Embed it in a concrete observer type and override only the callbacks
// that type cares about.
type BaseGateObserver struct{}

func (BaseGateObserver) AppendChild(*Gate)    {}
func (BaseGateObserver) ClearChildren()       {}
func (BaseGateObserver) RemoveChild(*Gate)    {}

func (BaseGateObserver) AppendAdditionalClusteringParam(string, *transform.Transform) {}
func (BaseGateObserver) ClearAdditionalClusteringParams()                             {}
func (BaseGateObserver) RemoveAdditionalClusteringParam(string)                       {}
func (BaseGateObserver) SetAdditionalClusteringParamTransform(string, *transform.Transform) {}

func (BaseGateObserver) SetDimensionParameterName(int, string)                  {}
func (BaseGateObserver) SetDimensionParameterTransform(int, *transform.Transform) {}

func (BaseGateObserver) SetGatingMethod(GatingMethod) {}
func (BaseGateObserver) SetName(string)                {}
func (BaseGateObserver) SetDescription(string)         {}
func (BaseGateObserver) SetNotes(string)               {}
func (BaseGateObserver) SetOriginalID(string)          {}
func (BaseGateObserver) SetReportPriority(uint32)      {}

func (BaseGateObserver) SetRectangleMinMax(int, float64, float64) {}
func (BaseGateObserver) AppendPolygonVertex(int, float64, float64) {}
func (BaseGateObserver) SetPolygonVertex(int, float64, float64)    {}
func (BaseGateObserver) RemovePolygonVertex(int)                   {}
func (BaseGateObserver) ClearPolygonVertices()                     {}

var _ GateObserver = BaseGateObserver{}
