// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform implements the closed family of scale transforms
// (spec.md 4.1) that precondition event data before a gate classifies it:
// Linear, Log, InverseHyperbolicSine, Logicle, Hyperlog, and a Custom
// escape hatch for callers that need a transform the family does not
// cover. Every Transform is immutable once constructed (parameters are
// validated at construction and never change afterward) and clonable by
// sharing the pointer -- there is nothing mutable to copy.
package transform

import (
	"github.com/JCVenterInstitute/flowgate-gating/gerr"
	"github.com/JCVenterInstitute/flowgate-gating/ids"
)

// evaluator is the unexported dispatch surface every Kind-specific
// parameter set implements. Transform holds one and forwards to it,
// playing the role spec.md 9's "tagged sum type" suggestion would play in
// a language with real sum types.
type evaluator interface {
	apply(x float64) (float64, error)
	applyF64(xs []float64) error
	applyF32(xs []float32) error
}

// Transform is a scale transform: immutable, clonable by sharing, with a
// process-unique id (spec.md 3.2).
type Transform struct {
	id          ids.TransformID
	originalID  string
	name        string
	description string
	kind        Kind
	impl        evaluator
}

// Option customizes optional Transform metadata at construction time.
// There is no setter for any of these after construction -- transforms are
// immutable (spec.md 3.2).
type Option func(*Transform)

// WithOriginalID attaches a free-form external id tag.
func WithOriginalID(id string) Option { return func(t *Transform) { t.originalID = id } }

// WithName attaches a display name.
func WithName(name string) Option { return func(t *Transform) { t.name = name } }

// WithDescription attaches a free-form description.
func WithDescription(desc string) Option { return func(t *Transform) { t.description = desc } }

func newTransform(kind Kind, impl evaluator, opts []Option) *Transform {
	t := &Transform{id: ids.NextTransformID(), kind: kind, impl: impl}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ID returns the transform's process-unique id.
func (t *Transform) ID() ids.TransformID { return t.id }

// OriginalID returns the optional external id tag, or "" if unset.
func (t *Transform) OriginalID() string { return t.originalID }

// Name returns the optional display name, or "" if unset.
func (t *Transform) Name() string { return t.name }

// Description returns the optional free-form description, or "" if unset.
func (t *Transform) Description() string { return t.description }

// Kind returns the transform's kind tag.
func (t *Transform) Kind() Kind { return t.kind }

// Apply maps a single value through the transform.
func (t *Transform) Apply(x float64) (float64, error) {
	return t.impl.apply(x)
}

// ApplyF64 applies the transform in place to a float64 column. This is the
// bulk hot path spec.md 4.1/5 calls out as embarrassingly parallel and
// vectorizable. Linear, Log and InverseHyperbolicSine use branch-free
// loops over the slice; Logicle runs its per-element Halley iteration and
// Custom calls its function once per element.
func (t *Transform) ApplyF64(xs []float64) error {
	return t.impl.applyF64(xs)
}

// ApplyF32 applies the transform in place to a float32 column, using
// github.com/chewxy/math32 for the transcendental kinds so the loop stays
// in float32 throughout rather than round-tripping through float64.
func (t *Transform) ApplyF32(xs []float32) error {
	return t.impl.applyF32(xs)
}

func invalidArg(op, msg string) error {
	return gerr.New(gerr.InvalidArgument, op, msg)
}
