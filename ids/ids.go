// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ids hands out the process-wide monotonic identifiers used to
// distinguish gates and transforms. Ids are unique within a single process
// run only -- they are never persisted and are not guaranteed unique across
// runs or after a restart.
package ids

import "sync/atomic"

// GateID uniquely identifies a gate within this process run.
type GateID uint32

// TransformID uniquely identifies a transform within this process run.
type TransformID uint32

// gateCounter and transformCounter are the two process-wide id spaces
// described in spec.md 5 "Process-wide state". They are the only global
// state in this module and must be safe for concurrent use since callers
// may construct gates and transforms from multiple goroutines even though
// mutation of any one gate tree is not itself safe for concurrent access.
var (
	gateCounter      uint32
	transformCounter uint32
)

// NextGateID returns the next unique GateID. Wrap-around after 2^32-1
// allocations is accepted but undocumented, matching spec.md 3.1.
func NextGateID() GateID {
	return GateID(atomic.AddUint32(&gateCounter, 1))
}

// NextTransformID returns the next unique TransformID.
func NextTransformID() TransformID {
	return TransformID(atomic.AddUint32(&transformCounter, 1))
}
