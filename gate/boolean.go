// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

import "github.com/JCVenterInstitute/flowgate-gating/gerr"

// BooleanOp is a Boolean gate's combining operator (spec.md 4.2).
type BooleanOp int

const (
	And BooleanOp = iota
	Or
	Not
)

func (op BooleanOp) String() string {
	switch op {
	case And:
		return "And"
	case Or:
		return "Or"
	case Not:
		return "Not"
	default:
		return "Unknown"
	}
}

// booleanShape holds a Boolean gate's operator and per-child negate flags
// (spec.md 4.2). Boolean gates have zero dimensions and do not support
// additional clustering parameters.
type booleanShape struct {
	op     BooleanOp
	negate []bool // parallel to Gate.children
}

// NewBoolean constructs a Boolean gate. If op is Not, the gate accepts at
// most one child (enforced by Gate.AppendChild); And and Or are
// unbounded.
func NewBoolean(op BooleanOp) (*Gate, error) {
	return newGate(Boolean, 0, nil, &booleanShape{op: op}), nil
}

func (g *Gate) booleanShape() (*booleanShape, error) {
	if g.kind != Boolean {
		return nil, gerr.New(gerr.InvalidArgument, "Gate", "gate is not a Boolean")
	}
	return g.shape.(*booleanShape), nil
}

// BooleanOperator returns the gate's combining operator.
func (g *Gate) BooleanOperator() (BooleanOp, error) {
	bs, err := g.booleanShape()
	if err != nil {
		return 0, err
	}
	return bs.op, nil
}

// ChildNegate reports whether child i's contribution is negated.
func (g *Gate) ChildNegate(i int) (bool, error) {
	bs, err := g.booleanShape()
	if err != nil {
		return false, err
	}
	if i < 0 || i >= len(bs.negate) {
		return false, gerr.New(gerr.OutOfRange, "Gate.ChildNegate", "child index out of range")
	}
	return bs.negate[i], nil
}

// SetChildNegate sets child i's negate flag.
func (g *Gate) SetChildNegate(i int, negate bool) error {
	bs, err := g.booleanShape()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(bs.negate) {
		return gerr.New(gerr.OutOfRange, "Gate.SetChildNegate", "child index out of range")
	}
	bs.negate[i] = negate
	return nil
}
