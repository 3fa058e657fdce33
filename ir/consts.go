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

package ir

import (
	"math"

	"github.com/gx-org/tir/ir/irkind"
)

type (
	// IntImm is a signed integer literal.
	IntImm struct {
		nodeID
		typ Type
		val int64
	}

	// UIntImm is an unsigned integer literal.
	UIntImm struct {
		nodeID
		typ Type
		val uint64
	}

	// FloatImm is a floating point literal.
	FloatImm struct {
		nodeID
		typ Type
		val float64
	}
)

// NewIntImm returns a signed integer literal.
// The value is wrapped to the number of bits of the type.
// A vector type broadcasts the value on all lanes.
func NewIntImm(typ Type, val int64) *IntImm {
	return &IntImm{nodeID: newNodeID(), typ: typ, val: irkind.WrapInt(val, typ.Bits())}
}

func (*IntImm) expr() {}

// Type of the literal.
func (x *IntImm) Type() Type { return x.typ }

// Value of the literal.
func (x *IntImm) Value() int64 { return x.val }

// NewUIntImm returns an unsigned integer literal.
// The value is wrapped to the number of bits of the type.
func NewUIntImm(typ Type, val uint64) *UIntImm {
	return &UIntImm{nodeID: newNodeID(), typ: typ, val: irkind.WrapUint(val, typ.Bits())}
}

func (*UIntImm) expr() {}

// Type of the literal.
func (x *UIntImm) Type() Type { return x.typ }

// Value of the literal.
func (x *UIntImm) Value() uint64 { return x.val }

// NewFloatImm returns a floating point literal.
// The value is rounded to float32 if the type has 32 bits or fewer.
func NewFloatImm(typ Type, val float64) *FloatImm {
	if typ.Bits() <= 32 {
		val = float64(float32(val))
	}
	return &FloatImm{nodeID: newNodeID(), typ: typ, val: val}
}

func (*FloatImm) expr() {}

// Type of the literal.
func (x *FloatImm) Type() Type { return x.typ }

// Value of the literal.
func (x *FloatImm) Value() float64 { return x.val }

// MakeConst returns a literal of a given type.
func MakeConst(typ Type, val int64) Expr {
	switch typ.Code() {
	case irkind.Int:
		return NewIntImm(typ, val)
	case irkind.Float:
		return NewFloatImm(typ, float64(val))
	default:
		return NewUIntImm(typ, uint64(val))
	}
}

// MakeZero returns the zero literal of a type.
func MakeZero(typ Type) Expr {
	return MakeConst(typ, 0)
}

// ConstTrue returns the true literal.
func ConstTrue(lanes int) Expr {
	return NewUIntImm(Bool().WithLanes(lanes), 1)
}

// ConstFalse returns the false literal.
func ConstFalse(lanes int) Expr {
	return NewUIntImm(Bool().WithLanes(lanes), 0)
}

// AsConstInt returns the value of a signed integer literal.
func AsConstInt(x Expr) (int64, bool) {
	imm, ok := x.(*IntImm)
	if !ok || imm == nil {
		return 0, false
	}
	return imm.val, true
}

// AsConstUint returns the value of an unsigned integer literal.
func AsConstUint(x Expr) (uint64, bool) {
	imm, ok := x.(*UIntImm)
	if !ok || imm == nil {
		return 0, false
	}
	return imm.val, true
}

// IsConst returns true if the expression is a literal.
func IsConst(x Expr) bool {
	switch x.(type) {
	case *IntImm, *UIntImm, *FloatImm:
		return true
	}
	return false
}

// IsZero returns true if the expression is a literal equal to zero.
func IsZero(x Expr) bool {
	switch xT := x.(type) {
	case *IntImm:
		return xT.val == 0
	case *UIntImm:
		return xT.val == 0
	case *FloatImm:
		return xT.val == 0
	}
	return false
}

// fitsInt returns true if typ can represent the signed integer v.
func fitsInt(typ Type, v int64) bool {
	switch {
	case typ.IsFloat():
		return true
	case typ.IsInt():
		return irkind.WrapInt(v, typ.Bits()) == v
	case typ.IsUInt():
		return v >= 0 && irkind.WrapUint(uint64(v), typ.Bits()) == uint64(v)
	}
	return false
}

// fitsUint returns true if typ can represent the unsigned integer v.
func fitsUint(typ Type, v uint64) bool {
	switch {
	case typ.IsFloat():
		return true
	case typ.IsInt():
		return v <= math.MaxInt64 && irkind.WrapInt(int64(v), typ.Bits()) == int64(v)
	case typ.IsUInt():
		return irkind.WrapUint(v, typ.Bits()) == v
	}
	return false
}

// retype returns a literal with the same value as x but with a different type.
// Returns false if typ cannot represent the value of x.
// A float literal is never converted to an integer type.
func retype(x Expr, typ Type) (Expr, bool) {
	switch xT := x.(type) {
	case *IntImm:
		if !fitsInt(typ, xT.val) {
			return nil, false
		}
		return MakeConst(typ, xT.val), true
	case *UIntImm:
		if !fitsUint(typ, xT.val) {
			return nil, false
		}
		switch {
		case typ.IsFloat():
			return NewFloatImm(typ, float64(xT.val)), true
		case typ.IsInt():
			return NewIntImm(typ, int64(xT.val)), true
		}
		return NewUIntImm(typ, xT.val), true
	case *FloatImm:
		if typ.IsFloat() {
			return NewFloatImm(typ, xT.val), true
		}
	}
	return nil, false
}
