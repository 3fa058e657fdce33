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
	"fmt"
	"math"
	"strconv"

	"github.com/gx-org/tir/fmterr"
	"github.com/gx-org/tir/ir"
	"github.com/gx-org/tir/ir/irkind"
)

// Value is a scalar value computed by the interpreter.
// Integer values are always wrapped to the width of their type.
type Value struct {
	typ ir.Type
	i   int64
	u   uint64
	f   float64
}

// Int returns a signed integer value.
func Int(typ ir.Type, v int64) Value {
	return Value{typ: typ, i: irkind.WrapInt(v, typ.Bits())}
}

// Uint returns an unsigned integer value.
func Uint(typ ir.Type, v uint64) Value {
	return Value{typ: typ, u: irkind.WrapUint(v, typ.Bits())}
}

// Float returns a floating point value.
func Float(typ ir.Type, v float64) Value {
	if typ.Bits() <= 32 {
		v = float64(float32(v))
	}
	return Value{typ: typ, f: v}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	var u uint64
	if b {
		u = 1
	}
	return Value{typ: ir.Bool(), u: u}
}

// integer returns a value of an integer type from a signed integer.
func integer(typ ir.Type, v int64) Value {
	if typ.IsUInt() {
		return Uint(typ, uint64(v))
	}
	return Int(typ, v)
}

// Type of the value.
func (v Value) Type() ir.Type { return v.typ }

// Int returns the value converted to a signed integer.
func (v Value) Int() int64 {
	switch {
	case v.typ.IsUInt():
		return int64(v.u)
	case v.typ.IsFloat():
		return int64(v.f)
	}
	return v.i
}

// Uint returns the value converted to an unsigned integer.
func (v Value) Uint() uint64 {
	switch {
	case v.typ.IsInt():
		return uint64(v.i)
	case v.typ.IsFloat():
		return uint64(v.f)
	}
	return v.u
}

// Float returns the value converted to a float.
func (v Value) Float() float64 {
	switch {
	case v.typ.IsInt():
		return float64(v.i)
	case v.typ.IsUInt():
		return float64(v.u)
	}
	return v.f
}

// Bool returns true if the value is not zero.
func (v Value) Bool() bool {
	switch {
	case v.typ.IsInt():
		return v.i != 0
	case v.typ.IsFloat():
		return v.f != 0
	}
	return v.u != 0
}

// Expr returns the value as a literal expression.
func (v Value) Expr() ir.Expr {
	switch {
	case v.typ.IsInt():
		return ir.NewIntImm(v.typ, v.i)
	case v.typ.IsFloat():
		return ir.NewFloatImm(v.typ, v.f)
	}
	return ir.NewUIntImm(v.typ, v.u)
}

// String returns the value followed by its type.
func (v Value) String() string {
	var s string
	switch {
	case v.typ.IsBool():
		return strconv.FormatBool(v.u != 0)
	case v.typ.IsInt():
		s = strconv.FormatInt(v.i, 10)
	case v.typ.IsUInt():
		s = strconv.FormatUint(v.u, 10)
	case v.typ.IsFloat():
		s = strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		s = "?"
	}
	return fmt.Sprintf("%s(%s)", v.typ, s)
}

// castTo evaluates a cast of a value.
func castTo(cast *ir.CastExpr, v Value) (Value, error) {
	typ := cast.Type()
	isFinite := !v.typ.IsFloat() || !(math.IsNaN(v.f) || math.IsInf(v.f, 0))
	switch {
	case typ.IsBool():
		return Bool(v.Bool()), nil
	case typ.IsInt():
		if !isFinite {
			return Value{}, fmterr.Errorf(cast, "cannot cast %s to %s", v, typ)
		}
		return Int(typ, v.Int()), nil
	case typ.IsUInt():
		if !isFinite {
			return Value{}, fmterr.Errorf(cast, "cannot cast %s to %s", v, typ)
		}
		return Uint(typ, v.Uint()), nil
	case typ.IsFloat():
		return Float(typ, v.Float()), nil
	}
	return Value{}, fmterr.Wrapf(cast, ErrUnsupported, "cannot cast to %s", typ)
}
