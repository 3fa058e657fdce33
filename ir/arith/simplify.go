// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arith

import "github.com/gx-org/tir/ir"

type simplifier struct {
	memo map[ir.Expr]ir.Expr
}

// Simplify folds the literals of an expression and removes neutral operands.
// Nodes shared in the input graph remain shared in the output graph.
func Simplify(x ir.Expr) ir.Expr {
	s := &simplifier{memo: make(map[ir.Expr]ir.Expr)}
	return s.expr(x)
}

func (s *simplifier) expr(x ir.Expr) ir.Expr {
	if x == nil {
		return nil
	}
	if done, ok := s.memo[x]; ok {
		return done
	}
	res := s.simplify(x)
	s.memo[x] = res
	return res
}

func (s *simplifier) simplify(x ir.Expr) ir.Expr {
	switch xT := x.(type) {
	case *ir.CastExpr:
		arg := s.expr(xT.X())
		if folded, ok := FoldCast(xT.Type(), arg); ok {
			return folded
		}
		if arg == xT.X() {
			return x
		}
		return ir.Cast(xT.Type(), arg)
	case *ir.Binary:
		return s.binary(xT)
	case *ir.SelectExpr:
		cond := s.expr(xT.Cond())
		t, f := s.expr(xT.True()), s.expr(xT.False())
		if b, ok := ir.AsConstUint(cond); ok {
			if b != 0 {
				return t
			}
			return f
		}
		if DeepEqual(t, f) {
			return t
		}
		if cond == xT.Cond() && t == xT.True() && f == xT.False() {
			return x
		}
		return ir.Select(cond, t, f)
	case *ir.Reduce:
		src := s.expr(xT.Source())
		if src == xT.Source() {
			return x
		}
		red, err := ir.Reduction(xT.Op(), src, xT.Axis())
		if err != nil {
			return x
		}
		return red
	}
	return x
}

func isOne(x ir.Expr) bool {
	switch xT := x.(type) {
	case *ir.IntImm:
		return xT.Value() == 1
	case *ir.UIntImm:
		return xT.Value() == 1
	case *ir.FloatImm:
		return xT.Value() == 1
	}
	return false
}

func isExact(x ir.Expr) bool {
	return !x.Type().IsFloat()
}

func neutral(op ir.BinaryOp, x, y ir.Expr) (ir.Expr, bool) {
	switch op {
	case ir.AddOp:
		if ir.IsZero(y) {
			return x, true
		}
		if ir.IsZero(x) {
			return y, true
		}
	case ir.SubOp:
		if ir.IsZero(y) {
			return x, true
		}
		if isExact(x) && DeepEqual(x, y) {
			return ir.MakeZero(x.Type()), true
		}
	case ir.MulOp:
		if isOne(y) {
			return x, true
		}
		if isOne(x) {
			return y, true
		}
		if isExact(x) && (ir.IsZero(x) || ir.IsZero(y)) {
			return ir.MakeZero(x.Type()), true
		}
	case ir.DivOp:
		if isOne(y) {
			return x, true
		}
	case ir.MinOp, ir.MaxOp:
		if DeepEqual(x, y) {
			return x, true
		}
	}
	return nil, false
}

func (s *simplifier) binary(b *ir.Binary) ir.Expr {
	x, y := s.expr(b.X()), s.expr(b.Y())
	if folded, ok := Fold(b.Op(), x, y); ok {
		return folded
	}
	if res, ok := neutral(b.Op(), x, y); ok {
		return res
	}
	if x == b.X() && y == b.Y() {
		return b
	}
	return ir.NewBinary(b.Op(), x, y)
}

// DeepEqual returns true if two expressions compute the same value
// because they have the same structure.
// Variables are only equal to themselves.
func DeepEqual(a, b ir.Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ir.Same(a, b) {
		return true
	}
	if a.Type() != b.Type() {
		return false
	}
	switch aT := a.(type) {
	case *ir.IntImm:
		bT, ok := b.(*ir.IntImm)
		return ok && aT.Value() == bT.Value()
	case *ir.UIntImm:
		bT, ok := b.(*ir.UIntImm)
		return ok && aT.Value() == bT.Value()
	case *ir.FloatImm:
		bT, ok := b.(*ir.FloatImm)
		return ok && aT.Value() == bT.Value()
	case *ir.CastExpr:
		bT, ok := b.(*ir.CastExpr)
		return ok && DeepEqual(aT.X(), bT.X())
	case *ir.Binary:
		bT, ok := b.(*ir.Binary)
		return ok && aT.Op() == bT.Op() && DeepEqual(aT.X(), bT.X()) && DeepEqual(aT.Y(), bT.Y())
	case *ir.SelectExpr:
		bT, ok := b.(*ir.SelectExpr)
		return ok && DeepEqual(aT.Cond(), bT.Cond()) && DeepEqual(aT.True(), bT.True()) && DeepEqual(aT.False(), bT.False())
	case *ir.Reduce:
		bT, ok := b.(*ir.Reduce)
		if !ok || aT.Op() != bT.Op() || aT.NumAxes() != bT.NumAxes() {
			return false
		}
		aAxes, bAxes := aT.Axis(), bT.Axis()
		for i := range aAxes {
			if !ir.Same(aAxes[i], bAxes[i]) {
				return false
			}
		}
		return DeepEqual(aT.Source(), bT.Source())
	}
	return false
}

// CanProveEqual returns true if a and b can be proven to compute the same value.
// A false result does not mean that the values differ.
func CanProveEqual(a, b ir.Expr) bool {
	sa, sb := Simplify(a), Simplify(b)
	if DeepEqual(sa, sb) {
		return true
	}
	if !isExact(sa) || sa.Type() != sb.Type() {
		return false
	}
	return ir.IsZero(Simplify(ir.Sub(sa, sb)))
}
