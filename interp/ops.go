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

package interp

import (
	"math"

	"github.com/gx-org/tir/ir"
	"github.com/gx-org/tir/ir/arith"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

func compare[T constraints.Ordered](op ir.BinaryOp, x, y T) (bool, error) {
	switch op {
	case ir.EQOp:
		return x == y, nil
	case ir.NEOp:
		return x != y, nil
	case ir.LTOp:
		return x < y, nil
	case ir.LEOp:
		return x <= y, nil
	case ir.GTOp:
		return x > y, nil
	case ir.GEOp:
		return x >= y, nil
	}
	return false, errors.Errorf("%s is not a comparison", op)
}

// arithmetic computes the operators shared by all number types.
func arithmetic[T number](op ir.BinaryOp, x, y T) (T, bool) {
	switch op {
	case ir.AddOp:
		return x + y, true
	case ir.SubOp:
		return x - y, true
	case ir.MulOp:
		return x * y, true
	case ir.MinOp:
		return min(x, y), true
	case ir.MaxOp:
		return max(x, y), true
	}
	var zero T
	return zero, false
}

func logical(op ir.BinaryOp, x, y bool) (bool, bool) {
	switch op {
	case ir.AndOp:
		return x && y, true
	case ir.OrOp:
		return x || y, true
	}
	return false, false
}

func applyBinary(op ir.BinaryOp, x, y Value) (Value, error) {
	if x.typ != y.typ {
		return Value{}, errors.Wrapf(ErrTypeMismatch, "operands of %s have different types: %s and %s", op, x.typ, y.typ)
	}
	typ := x.typ
	if op.IsComparison() {
		var b bool
		var err error
		switch {
		case typ.IsInt():
			b, err = compare(op, x.i, y.i)
		case typ.IsUInt():
			b, err = compare(op, x.u, y.u)
		default:
			b, err = compare(op, x.f, y.f)
		}
		return Bool(b), err
	}
	if b, ok := logical(op, x.Bool(), y.Bool()); ok {
		if !typ.IsBool() {
			return Value{}, errors.Wrapf(ErrUnsupported, "operator %s requires bool operands, got %s", op, typ)
		}
		return Bool(b), nil
	}
	switch {
	case typ.IsInt():
		return intBinary(op, typ, x.i, y.i)
	case typ.IsUInt():
		return uintBinary(op, typ, x.u, y.u)
	case typ.IsFloat():
		return floatBinary(op, typ, x.f, y.f)
	}
	return Value{}, errors.Wrapf(ErrUnsupported, "operator %s on %s", op, typ)
}

func intBinary(op ir.BinaryOp, typ ir.Type, x, y int64) (Value, error) {
	if v, ok := arithmetic(op, x, y); ok {
		return Int(typ, v), nil
	}
	switch op {
	case ir.DivOp, ir.ModOp:
		if y == 0 {
			return Value{}, errors.Wrapf(ErrDivByZero, "%d %s %d", x, op, y)
		}
		if op == ir.DivOp {
			return Int(typ, arith.FloorDiv(x, y)), nil
		}
		return Int(typ, arith.EuclidMod(x, y)), nil
	}
	return Value{}, errors.Wrapf(ErrUnsupported, "operator %s on %s", op, typ)
}

func uintBinary(op ir.BinaryOp, typ ir.Type, x, y uint64) (Value, error) {
	if v, ok := arithmetic(op, x, y); ok {
		return Uint(typ, v), nil
	}
	switch op {
	case ir.DivOp, ir.ModOp:
		if y == 0 {
			return Value{}, errors.Wrapf(ErrDivByZero, "%d %s %d", x, op, y)
		}
		if op == ir.DivOp {
			return Uint(typ, x/y), nil
		}
		return Uint(typ, x%y), nil
	}
	return Value{}, errors.Wrapf(ErrUnsupported, "operator %s on %s", op, typ)
}

func floatBinary(op ir.BinaryOp, typ ir.Type, x, y float64) (Value, error) {
	switch op {
	case ir.MinOp:
		return Float(typ, math.Min(x, y)), nil
	case ir.MaxOp:
		return Float(typ, math.Max(x, y)), nil
	case ir.DivOp:
		return Float(typ, x/y), nil
	case ir.ModOp:
		return Float(typ, math.Mod(x, y)), nil
	}
	if v, ok := arithmetic(op, x, y); ok {
		return Float(typ, v), nil
	}
	return Value{}, errors.Wrapf(ErrUnsupported, "operator %s on %s", op, typ)
}
