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

package ir_test

import (
	"math"
	"testing"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/tir/abi"
	"github.com/gx-org/tir/ir"
	"github.com/pkg/errors"
)

var allTypes = []ir.Type{
	ir.Int(8),
	ir.Int(16),
	ir.Int(32),
	ir.Int(64),
	ir.UInt(8),
	ir.UInt(32),
	ir.UInt(64),
	ir.Bool(),
	ir.Float(16),
	ir.Float(32),
	ir.Float(64),
	ir.Handle(),
}

func withVectors(types []ir.Type) []ir.Type {
	var all []ir.Type
	for _, typ := range types {
		all = append(all, typ, typ.WithLanes(4), typ.WithLanes(16), typ.WithLanes(65535))
	}
	return all
}

func TestTypeDescRoundTrip(t *testing.T) {
	for _, typ := range withVectors(allTypes) {
		desc := ir.TypeToDesc(typ)
		got, err := ir.TypeFromDesc(desc)
		if err != nil {
			t.Errorf("cannot convert %v back to a type: %v", desc, err)
			continue
		}
		if got != typ {
			t.Errorf("round trip of %s: got %s but want %s", typ, got, typ)
		}
		if again := ir.TypeToDesc(got); again != desc {
			t.Errorf("round trip of %v: got %v but want %v", desc, again, desc)
		}
	}
}

func TestTypeDescFields(t *testing.T) {
	tests := []struct {
		typ  ir.Type
		want abi.TypeDesc
	}{
		{typ: ir.Int(32), want: abi.TypeDesc{Code: abi.Int, Bits: 32, Lanes: 1}},
		{typ: ir.UInt(8).WithLanes(4), want: abi.TypeDesc{Code: abi.UInt, Bits: 8, Lanes: 4}},
		{typ: ir.Float(64), want: abi.TypeDesc{Code: abi.Float, Bits: 64, Lanes: 1}},
		{typ: ir.Handle(), want: abi.TypeDesc{Code: abi.Handle, Bits: 64, Lanes: 1}},
		{typ: ir.Bool(), want: abi.TypeDesc{Code: abi.UInt, Bits: 1, Lanes: 1}},
	}
	for _, test := range tests {
		if got := ir.TypeToDesc(test.typ); got != test.want {
			t.Errorf("TypeToDesc(%s) = %v but want %v", test.typ, got, test.want)
		}
	}
}

func TestTypeFromDescInvalid(t *testing.T) {
	for _, code := range []uint8{4, 5, 17, 255} {
		_, err := ir.TypeFromDesc(abi.TypeDesc{Code: code, Bits: 32, Lanes: 1})
		if !errors.Is(err, ir.ErrInvalidType) {
			t.Errorf("code %d: got error %v but want %v", code, err, ir.ErrInvalidType)
		}
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  ir.Type
		want string
	}{
		{typ: ir.Int(32), want: "int32"},
		{typ: ir.UInt(16), want: "uint16"},
		{typ: ir.Float(32).WithLanes(4), want: "float32x4"},
		{typ: ir.Bool(), want: "bool"},
		{typ: ir.Bool().WithLanes(8), want: "boolx8"},
		{typ: ir.Handle(), want: "handle"},
	}
	for _, test := range tests {
		if got := test.typ.String(); got != test.want {
			t.Errorf("incorrect string: got %q but want %q", got, test.want)
		}
	}
}

func TestTypeDType(t *testing.T) {
	tests := []struct {
		typ  ir.Type
		want dtype.DataType
	}{
		{typ: ir.Bool(), want: dtype.Bool},
		{typ: ir.Int(32), want: dtype.Int32},
		{typ: ir.Int(64), want: dtype.Int64},
		{typ: ir.UInt(32), want: dtype.Uint32},
		{typ: ir.UInt(64), want: dtype.Uint64},
		{typ: ir.Float(32), want: dtype.Float32},
		{typ: ir.Float(64), want: dtype.Float64},
		{typ: ir.Float(32).WithLanes(4), want: dtype.Invalid},
		{typ: ir.Int(8), want: dtype.Invalid},
		{typ: ir.Handle(), want: dtype.Invalid},
	}
	for _, test := range tests {
		got := test.typ.DType()
		if got != test.want {
			t.Errorf("%s.DType() = %v but want %v", test.typ, got, test.want)
		}
		if test.want == dtype.Invalid {
			continue
		}
		back, err := ir.TypeFromDType(got)
		if err != nil {
			t.Errorf("cannot convert %v back: %v", got, err)
			continue
		}
		if back != test.typ {
			t.Errorf("TypeFromDType(%v) = %s but want %s", got, back, test.typ)
		}
	}
	if _, err := ir.TypeFromDType(dtype.Bfloat16); !errors.Is(err, ir.ErrInvalidType) {
		t.Errorf("TypeFromDType(bfloat16): got error %v but want %v", err, ir.ErrInvalidType)
	}
}

func TestMinMaxValues(t *testing.T) {
	intTests := []struct {
		typ      ir.Type
		min, max int64
	}{
		{typ: ir.Int(8), min: math.MinInt8, max: math.MaxInt8},
		{typ: ir.Int(32), min: math.MinInt32, max: math.MaxInt32},
		{typ: ir.Int(64), min: math.MinInt64, max: math.MaxInt64},
	}
	for _, test := range intTests {
		minX, err := ir.MinValue(test.typ)
		if err != nil {
			t.Fatal(err)
		}
		maxX, err := ir.MaxValue(test.typ)
		if err != nil {
			t.Fatal(err)
		}
		gotMin, _ := ir.AsConstInt(minX)
		gotMax, _ := ir.AsConstInt(maxX)
		if gotMin != test.min || gotMax != test.max {
			t.Errorf("%s: got [%d, %d] but want [%d, %d]", test.typ, gotMin, gotMax, test.min, test.max)
		}
	}
	maxU8, err := ir.MaxValue(ir.UInt(8))
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := ir.AsConstUint(maxU8); got != math.MaxUint8 {
		t.Errorf("max uint8: got %d but want %d", got, math.MaxUint8)
	}
	minF, err := ir.MinValue(ir.Float(32))
	if err != nil {
		t.Fatal(err)
	}
	if got := minF.(*ir.FloatImm).Value(); !math.IsInf(got, -1) {
		t.Errorf("min float32: got %v but want -inf", got)
	}
	if _, err := ir.MaxValue(ir.Handle()); !errors.Is(err, ir.ErrInvalidType) {
		t.Errorf("max handle: got error %v but want %v", err, ir.ErrInvalidType)
	}
}
