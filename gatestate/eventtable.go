// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gatestate implements the per-gate cache of event-value columns
// and inclusion flags that a gating cache (package gatingcache) attaches
// to every gate in a tree (spec.md 3.5, 4.5). A State is installed as its
// gate's observer, so shape and structural mutations reach it through the
// same callback protocol package gate defines for any other observer.
package gatestate

// EventTable is the external event-data collaborator a State reads from
// (spec.md 6). It is consumed, not defined, by this package: callers
// adapt whatever FCS/event-table representation they already have.
type EventTable interface {
	NumEvents() int
	NumParameters() int
	IsParameter(name string) bool
	ParameterIndex(name string) (int, error)
	ParameterName(i int) string

	// IsFloatsNotDoubles reports whether ParameterValuesF32 (true) or
	// ParameterValuesF64 (false) is the table's native column storage.
	// A State mirrors whichever one the table reports -- its columns are
	// uniformly f32 or uniformly f64 (spec.md 3.5).
	IsFloatsNotDoubles() bool
	ParameterValuesF32(i int) []float32
	ParameterValuesF64(i int) []float64

	ParameterLongName(i int) string
	ParameterMin(i int) float64
	ParameterMax(i int) float64
	ParameterDataMin(i int) float64
	ParameterDataMax(i int) float64
}
