// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gatingcache implements the gating cache (spec.md 4.6): the
// collaborator that walks a gate tree container and installs a fresh
// gatestate.State on every gate, then keeps that installation current as
// trees and gates mutate by acting as both a gate observer (indirectly,
// through the states it installs) and a gatetree.TreeObserver.
package gatingcache

import (
	"github.com/JCVenterInstitute/flowgate-gating/gate"
	"github.com/JCVenterInstitute/flowgate-gating/gatestate"
	"github.com/JCVenterInstitute/flowgate-gating/gatetree"
	"github.com/JCVenterInstitute/flowgate-gating/gerr"
)

// Cache binds one source event table to one gate tree container, keeping
// every descendent gate's gatestate.State current (spec.md 4.6).
type Cache struct {
	gatetree.BaseTreeObserver

	source EventTable
	trees  *gatetree.GateTrees
}

// EventTable is the shared source-event-table capability a Cache installs
// into every gatestate.State it creates.
type EventTable = gatestate.EventTable

// New constructs a Cache bound to source and trees, both of which must be
// non-nil and are retained. It immediately walks every descendent gate,
// installing a fresh state (spec.md 4.6), and registers itself as trees'
// observer so future root append/remove/clear stay in sync.
func New(source EventTable, trees *gatetree.GateTrees) (*Cache, error) {
	if source == nil || trees == nil {
		return nil, gerr.New(gerr.InvalidArgument, "gatingcache.New", "source event table and gate trees must not be nil")
	}
	c := &Cache{source: source, trees: trees}
	for _, g := range trees.FindDescendentGates() {
		if err := c.installFreshState(g); err != nil {
			return nil, err
		}
	}
	trees.SetObserver(c)
	return c, nil
}

// Source returns the cache's source event table.
func (c *Cache) Source() EventTable { return c.source }

// Trees returns the gate trees this cache is bound to.
func (c *Cache) Trees() *gatetree.GateTrees { return c.trees }

func (c *Cache) installFreshState(g *gate.Gate) error {
	s, err := gatestate.New(g, c.source)
	if err != nil {
		return err
	}
	g.SetObserver(s)
	return nil
}

func stateOf(g *gate.Gate) (*gatestate.State, bool) {
	s, ok := g.Observer().(*gatestate.State)
	return s, ok
}

// TreeAppended installs a fresh state on the appended root and on each of
// its descendants that lacks one bound to this cache's source (spec.md
// 4.6). A gate that already has a state bound to this source keeps it
// unchanged: its applied status and inclusion column are not reset.
func (c *Cache) TreeAppended(root *gate.Gate) {
	for _, g := range descendantsOf(root) {
		if s, ok := stateOf(g); ok && s.Source() == c.source {
			continue
		}
		c.installFreshState(g)
	}
}

// TreeRemoved is a no-op: a removed root's states remain valid for
// whatever the caller does with the detached gate next.
func (c *Cache) TreeRemoved(root *gate.Gate) {}

// TreesCleared is a no-op for the same reason as TreeRemoved.
func (c *Cache) TreesCleared() {}

func descendantsOf(root *gate.Gate) []*gate.Gate {
	out := []*gate.Gate{root}
	for _, c := range root.Children() {
		out = append(out, descendantsOf(c)...)
	}
	return out
}
