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

package interp_test

import (
	"testing"

	"github.com/gx-org/tir/interp"
	"github.com/gx-org/tir/ir"
)

func TestValue(t *testing.T) {
	tests := []struct {
		val     interp.Value
		str     string
		expr    string
		asInt   int64
		asFloat float64
	}{
		{
			val:     interp.Int(ir.Int(8), 200),
			str:     "int8(-56)",
			expr:    "(int8)-56",
			asInt:   -56,
			asFloat: -56,
		},
		{
			val:     interp.Uint(ir.UInt(16), 1<<16+3),
			str:     "uint16(3)",
			expr:    "(uint16)3",
			asInt:   3,
			asFloat: 3,
		},
		{
			val:     interp.Float(ir.Float(32), 2.75),
			str:     "float32(2.75)",
			expr:    "2.75f",
			asInt:   2,
			asFloat: 2.75,
		},
		{
			val:     interp.Bool(true),
			str:     "true",
			expr:    "true",
			asInt:   1,
			asFloat: 1,
		},
	}
	for _, test := range tests {
		if got := test.val.String(); got != test.str {
			t.Errorf("got %s but want %s", got, test.str)
		}
		if got := test.val.Expr().String(); got != test.expr {
			t.Errorf("%s: got literal %s but want %s", test.str, got, test.expr)
		}
		if got := test.val.Int(); got != test.asInt {
			t.Errorf("%s: got int %d but want %d", test.str, got, test.asInt)
		}
		if got := test.val.Float(); got != test.asFloat {
			t.Errorf("%s: got float %f but want %f", test.str, got, test.asFloat)
		}
	}
}
