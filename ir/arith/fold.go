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

// Package arith folds constants and simplifies IR expressions.
//
// Simplification never modifies an expression: it returns a new expression
// or, if nothing can be simplified, the expression itself.
package arith

import (
	"math"

	"github.com/gx-org/tir/ir"
	"golang.org/x/exp/constraints"
)

// FloorDiv returns x/y rounded towards negative infinity.
// y must not be zero.
func FloorDiv[T constraints.Signed](x, y T) T {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

// EuclidMod returns the Euclidean remainder of x/y, which is always non-negative.
// y must not be zero.
func EuclidMod[T constraints.Signed](x, y T) T {
	r := x % y
	if r < 0 {
		if y < 0 {
			r -= y
		} else {
			r += y
		}
	}
	return r
}

func cmpResult[T constraints.Ordered](op ir.BinaryOp, x, y T) (bool, bool) {
	switch op {
	case ir.EQOp:
		return x == y, true
	case ir.NEOp:
		return x != y, true
	case ir.LTOp:
		return x < y, true
	case ir.LEOp:
		return x <= y, true
	case ir.GTOp:
		return x > y, true
	case ir.GEOp:
		return x >= y, true
	}
	return false, false
}

func boolConst(typ ir.Type, b bool) ir.Expr {
	if b {
		return ir.ConstTrue(typ.Lanes())
	}
	return ir.ConstFalse(typ.Lanes())
}

func foldInt(op ir.BinaryOp, typ ir.Type, x, y int64) (ir.Expr, bool) {
	if op.IsComparison() {
		b, _ := cmpResult(op, x, y)
		return boolConst(typ, b), true
	}
	var v int64
	switch op {
	case ir.AddOp:
		v = x + y
	case ir.SubOp:
		v = x - y
	case ir.MulOp:
		v = x * y
	case ir.DivOp:
		if y == 0 {
			return nil, false
		}
		v = FloorDiv(x, y)
	case ir.ModOp:
		if y == 0 {
			return nil, false
		}
		v = EuclidMod(x, y)
	case ir.MinOp:
		v = min(x, y)
	case ir.MaxOp:
		v = max(x, y)
	default:
		return nil, false
	}
	return ir.NewIntImm(typ, v), true
}

func foldUint(op ir.BinaryOp, typ ir.Type, x, y uint64) (ir.Expr, bool) {
	if op.IsComparison() {
		b, _ := cmpResult(op, x, y)
		return boolConst(typ, b), true
	}
	var v uint64
	switch op {
	case ir.AddOp:
		v = x + y
	case ir.SubOp:
		v = x - y
	case ir.MulOp:
		v = x * y
	case ir.DivOp:
		if y == 0 {
			return nil, false
		}
		v = x / y
	case ir.ModOp:
		if y == 0 {
			return nil, false
		}
		v = x % y
	case ir.MinOp:
		v = min(x, y)
	case ir.MaxOp:
		v = max(x, y)
	case ir.AndOp:
		v = boolToUint(x != 0 && y != 0)
	case ir.OrOp:
		v = boolToUint(x != 0 || y != 0)
	default:
		return nil, false
	}
	return ir.NewUIntImm(typ, v), true
}

func boolToUint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func foldFloat(op ir.BinaryOp, typ ir.Type, x, y float64) (ir.Expr, bool) {
	if op.IsComparison() {
		b, _ := cmpResult(op, x, y)
		return boolConst(typ, b), true
	}
	var v float64
	switch op {
	case ir.AddOp:
		v = x + y
	case ir.SubOp:
		v = x - y
	case ir.MulOp:
		v = x * y
	case ir.DivOp:
		v = x / y
	case ir.ModOp:
		v = math.Mod(x, y)
	case ir.MinOp:
		v = math.Min(x, y)
	case ir.MaxOp:
		v = math.Max(x, y)
	default:
		return nil, false
	}
	return ir.NewFloatImm(typ, v), true
}

// Fold computes a binary operator on two literals of the same type.
// Returns false if the operands are not literals or if the operation
// cannot be computed at compile time, for example a division by zero.
func Fold(op ir.BinaryOp, x, y ir.Expr) (ir.Expr, bool) {
	if x.Type() != y.Type() {
		return nil, false
	}
	switch xT := x.(type) {
	case *ir.IntImm:
		yT, ok := y.(*ir.IntImm)
		if !ok {
			return nil, false
		}
		return foldInt(op, x.Type(), xT.Value(), yT.Value())
	case *ir.UIntImm:
		yT, ok := y.(*ir.UIntImm)
		if !ok {
			return nil, false
		}
		return foldUint(op, x.Type(), xT.Value(), yT.Value())
	case *ir.FloatImm:
		yT, ok := y.(*ir.FloatImm)
		if !ok {
			return nil, false
		}
		return foldFloat(op, x.Type(), xT.Value(), yT.Value())
	}
	return nil, false
}

// FoldCast converts a literal into another type.
func FoldCast(typ ir.Type, x ir.Expr) (ir.Expr, bool) {
	switch xT := x.(type) {
	case *ir.IntImm:
		switch {
		case typ.IsFloat():
			return ir.NewFloatImm(typ, float64(xT.Value())), true
		case typ.IsInt():
			return ir.NewIntImm(typ, xT.Value()), true
		case typ.IsUInt():
			return ir.NewUIntImm(typ, uint64(xT.Value())), true
		}
	case *ir.UIntImm:
		switch {
		case typ.IsFloat():
			return ir.NewFloatImm(typ, float64(xT.Value())), true
		case typ.IsInt():
			return ir.NewIntImm(typ, int64(xT.Value())), true
		case typ.IsUInt():
			return ir.NewUIntImm(typ, xT.Value()), true
		}
	case *ir.FloatImm:
		v := xT.Value()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if typ.IsFloat() {
				return ir.NewFloatImm(typ, v), true
			}
			return nil, false
		}
		switch {
		case typ.IsFloat():
			return ir.NewFloatImm(typ, v), true
		case typ.IsInt():
			return ir.NewIntImm(typ, int64(v)), true
		case typ.IsUInt():
			return ir.NewUIntImm(typ, uint64(v)), true
		}
	}
	return nil, false
}
