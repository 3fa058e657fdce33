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
	"context"
	"math"
	"testing"

	"github.com/gx-org/tir/fmterr"
	"github.com/gx-org/tir/interp"
	"github.com/gx-org/tir/ir"
	"github.com/gx-org/tir/ir/irhelper"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var int32Type = ir.Int(32)

func eval(t *testing.T, x ir.Expr, env interp.Env, opts ...interp.Option) interp.Value {
	t.Helper()
	val, err := interp.Eval(context.Background(), x, env, opts...)
	if err != nil {
		t.Fatalf("cannot evaluate %s: %+v", x, err)
	}
	return val
}

func TestEvalBinary(t *testing.T) {
	x := irhelper.Var("x")
	u8 := ir.NewVar("u", ir.UInt(8))
	f := ir.NewVar("f", ir.Float(32))
	env := interp.Env{
		x:  interp.Int(int32Type, -7),
		u8: interp.Uint(ir.UInt(8), 250),
		f:  interp.Float(ir.Float(32), 1.5),
	}
	tests := []struct {
		expr ir.Expr
		want string
	}{
		{expr: ir.Add(x, irhelper.Int(2)), want: "int32(-5)"},
		{expr: ir.Div(x, irhelper.Int(2)), want: "int32(-4)"},
		{expr: ir.Mod(x, irhelper.Int(2)), want: "int32(1)"},
		{expr: ir.Mod(x, irhelper.Int(-2)), want: "int32(1)"},
		{expr: ir.Mul(x, x), want: "int32(49)"},
		{expr: ir.Add(u8, ir.NewUIntImm(ir.UInt(8), 10)), want: "uint8(4)"},
		{expr: ir.Add(irhelper.Int(math.MaxInt32), irhelper.Int(1)), want: "int32(-2147483648)"},
		{expr: ir.Mul(f, irhelper.Float32(2)), want: "float32(3)"},
		{expr: ir.Cast(ir.Float(32), x), want: "float32(-7)"},
		{expr: ir.Cast(ir.Int(32), f), want: "int32(1)"},
		{expr: ir.LT(x, irhelper.Int(0)), want: "true"},
		{expr: ir.And(ir.LT(x, irhelper.Int(0)), ir.GT(x, irhelper.Int(0))), want: "false"},
		{expr: ir.MaxOf(x, irhelper.Int(3)), want: "int32(3)"},
		{expr: ir.Abs(x), want: "int32(7)"},
		{expr: ir.Select(ir.EQ(x, irhelper.Int(-7)), irhelper.Int(1), ir.Div(x, irhelper.Int(0))), want: "int32(1)"},
	}
	for _, test := range tests {
		got := eval(t, test.expr, env)
		if got.String() != test.want {
			t.Errorf("%s: got %s but want %s", test.expr, got, test.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	x := irhelper.Var("x")
	y := irhelper.Var("y")
	tests := []struct {
		expr ir.Expr
		env  interp.Env
		want []error
	}{
		{
			expr: ir.Add(x, y),
			want: []error{interp.ErrUnboundVar, interp.ErrUnboundVar},
		},
		{
			expr: ir.Add(x, y),
			env:  interp.Env{x: interp.Int(ir.Int(64), 1), y: interp.Int(int32Type, 1)},
			want: []error{interp.ErrTypeMismatch},
		},
		{
			expr: ir.Div(x, irhelper.Int(0)),
			env:  interp.Env{x: interp.Int(int32Type, 1)},
			want: []error{interp.ErrDivByZero},
		},
		{
			expr: ir.Mod(x, irhelper.Int(0)),
			env:  interp.Env{x: interp.Int(int32Type, 1)},
			want: []error{interp.ErrDivByZero},
		},
		{
			expr: ir.NewVar("h", ir.Handle()),
			env:  interp.Env{},
			want: []error{interp.ErrUnboundVar},
		},
		{
			expr: ir.NewIntImm(int32Type.WithLanes(4), 1),
			want: []error{interp.ErrUnsupported},
		},
	}
	for i, test := range tests {
		_, err := interp.Eval(context.Background(), test.expr, test.env)
		if err == nil {
			t.Errorf("test %d: expected an error evaluating %s", i, test.expr)
			continue
		}
		errs := multierr.Errors(err)
		if len(errs) != len(test.want) {
			t.Errorf("test %d: got %d errors but want %d: %v", i, len(errs), len(test.want), err)
			continue
		}
		for j, want := range test.want {
			if !errors.Is(errs[j], want) {
				t.Errorf("test %d: error %d is %v but want %v", i, j, errs[j], want)
			}
		}
	}
}

func TestEvalNil(t *testing.T) {
	_, err := interp.Eval(context.Background(), nil, nil)
	if !errors.Is(err, ir.ErrNilNode) {
		t.Errorf("got error %v but want %v", err, ir.ErrNilNode)
	}
}

func TestCastNonFinite(t *testing.T) {
	f := ir.NewVar("f", ir.Float(32))
	cast := ir.Cast(ir.Int(32), f)
	env := interp.Env{f: interp.Float(ir.Float(32), math.Inf(1))}
	_, err := interp.Eval(context.Background(), cast, env)
	var withSrc fmterr.ErrorWithSource
	if !errors.As(err, &withSrc) {
		t.Fatalf("got error %v but want an error attached to the cast", err)
	}
	if got, want := withSrc.Src().String(), "int32(f)"; got != want {
		t.Errorf("error attached to %s but want %s", got, want)
	}
}
