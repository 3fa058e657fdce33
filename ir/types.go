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
	"fmt"
	"math"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/tir/abi"
	"github.com/gx-org/tir/ir/irkind"
	"github.com/pkg/errors"
)

// Type of a scalar or of a fixed-width vector.
// Types are values: two types are equal if their code, bits, and lanes are equal.
type Type struct {
	code  irkind.Code
	bits  uint8
	lanes uint16
}

// Int returns a signed integer type.
func Int(bits int) Type {
	return Type{code: irkind.Int, bits: uint8(bits), lanes: 1}
}

// UInt returns an unsigned integer type.
func UInt(bits int) Type {
	return Type{code: irkind.UInt, bits: uint8(bits), lanes: 1}
}

// Float returns a floating point type.
func Float(bits int) Type {
	return Type{code: irkind.Float, bits: uint8(bits), lanes: 1}
}

// Bool returns the boolean type, that is a 1-bit unsigned integer.
func Bool() Type {
	return UInt(1)
}

// Handle returns the type of an opaque pointer.
func Handle() Type {
	return Type{code: irkind.Handle, bits: 64, lanes: 1}
}

// WithLanes returns the same element type with a different number of lanes.
func (t Type) WithLanes(lanes int) Type {
	t.lanes = uint16(lanes)
	return t
}

// Element returns the scalar type of the elements of a vector.
func (t Type) Element() Type {
	return t.WithLanes(1)
}

// Code of the type.
func (t Type) Code() irkind.Code { return t.code }

// Bits returns the number of bits of an element.
func (t Type) Bits() int { return int(t.bits) }

// Lanes returns the number of lanes.
func (t Type) Lanes() int { return int(t.lanes) }

// IsInt returns true if the type is a signed integer.
func (t Type) IsInt() bool { return t.code == irkind.Int }

// IsUInt returns true if the type is an unsigned integer (including bool).
func (t Type) IsUInt() bool { return t.code == irkind.UInt }

// IsFloat returns true if the type is a floating point.
func (t Type) IsFloat() bool { return t.code == irkind.Float }

// IsHandle returns true if the type is an opaque pointer.
func (t Type) IsHandle() bool { return t.code == irkind.Handle }

// IsBool returns true if the type is a boolean.
func (t Type) IsBool() bool { return t.code == irkind.UInt && t.bits == 1 }

// IsScalar returns true if the type has a single lane.
func (t Type) IsScalar() bool { return t.lanes == 1 }

// IsVector returns true if the type has more than one lane.
func (t Type) IsVector() bool { return t.lanes > 1 }

// String representation of the type, for example int32 or float32x4.
func (t Type) String() string {
	var s string
	switch {
	case t.IsBool():
		s = "bool"
	case t.IsHandle():
		s = "handle"
	case t.code.Valid():
		s = fmt.Sprintf("%s%d", t.code, t.bits)
	default:
		s = fmt.Sprintf("invalid(code=%d,bits=%d)", t.code, t.bits)
	}
	if t.lanes != 1 {
		s += fmt.Sprintf("x%d", t.lanes)
	}
	return s
}

// DType returns the array data type of a scalar type.
// Returns dtype.Invalid for vector types and types with no array counterpart.
func (t Type) DType() dtype.DataType {
	if !t.IsScalar() {
		return dtype.Invalid
	}
	return irkind.DType(t.code, t.Bits())
}

// TypeFromDType returns the scalar type of an array data type.
func TypeFromDType(dt dtype.DataType) (Type, error) {
	code, bits, ok := irkind.FromDType(dt)
	if !ok {
		return Type{}, errors.Wrapf(ErrInvalidType, "data type %v has no IR type", dt)
	}
	return Type{code: code, bits: uint8(bits), lanes: 1}, nil
}

// TypeFromDesc converts an ABI type descriptor into a type.
// Returns ErrInvalidType if the code of the descriptor is unknown.
func TypeFromDesc(d abi.TypeDesc) (Type, error) {
	if !d.Known() {
		return Type{}, errors.Wrapf(ErrInvalidType, "unknown type code %d", d.Code)
	}
	return Type{code: irkind.Code(d.Code), bits: d.Bits, lanes: d.Lanes}, nil
}

// TypeToDesc converts a type into an ABI type descriptor.
func TypeToDesc(t Type) abi.TypeDesc {
	return abi.TypeDesc{
		Code:  uint8(t.code),
		Bits:  t.bits,
		Lanes: t.lanes,
	}
}

// MinValue returns the lowest value of a type.
// It is negative infinity for floating point types.
func MinValue(t Type) (Expr, error) {
	switch t.code {
	case irkind.Int:
		if t.bits == 0 || t.bits > 64 {
			break
		}
		return NewIntImm(t, math.MinInt64>>(64-t.Bits())), nil
	case irkind.UInt:
		return NewUIntImm(t, 0), nil
	case irkind.Float:
		return NewFloatImm(t, math.Inf(-1)), nil
	}
	return nil, errors.Wrapf(ErrInvalidType, "type %s has no lowest value", t)
}

// MaxValue returns the highest value of a type.
// It is positive infinity for floating point types.
func MaxValue(t Type) (Expr, error) {
	switch t.code {
	case irkind.Int:
		if t.bits == 0 || t.bits > 64 {
			break
		}
		return NewIntImm(t, math.MaxInt64>>(64-t.Bits())), nil
	case irkind.UInt:
		if t.bits == 0 || t.bits > 64 {
			break
		}
		return NewUIntImm(t, math.MaxUint64>>(64-t.Bits())), nil
	case irkind.Float:
		return NewFloatImm(t, math.Inf(1)), nil
	}
	return nil, errors.Wrapf(ErrInvalidType, "type %s has no highest value", t)
}
