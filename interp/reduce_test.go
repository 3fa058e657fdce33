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

	"github.com/gx-org/tir/interp"
	"github.com/gx-org/tir/ir"
	"github.com/gx-org/tir/ir/irhelper"
	"github.com/pkg/errors"
)

func TestSum(t *testing.T) {
	k := irhelper.ReduceAxis("k", 0, 10)
	sum := irhelper.MustReduce(ir.SumReduce, k.Var(), k)
	if got := eval(t, sum, nil).Int(); got != 45 {
		t.Errorf("sum over [0, 10): got %d but want %d", got, 45)
	}
}

func TestReductionAxisOrder(t *testing.T) {
	k1 := irhelper.ReduceAxis("k1", 0, 4)
	k2 := irhelper.ReduceAxis("k2", 1, 6)
	i := irhelper.Var("i")
	// i*k1 - k2 with k1 in [0, 4) and k2 in [1, 6).
	source := ir.Sub(ir.Mul(i, k1.Var()), k2.Var())
	env := interp.Env{i: interp.Int(int32Type, 3)}
	for _, op := range []ir.ReduceOp{ir.SumReduce, ir.MaxReduce, ir.MinReduce} {
		a := eval(t, irhelper.MustReduce(op, source, k1, k2), env)
		b := eval(t, irhelper.MustReduce(op, source, k2, k1), env)
		if a != b {
			t.Errorf("%s: axes [k1, k2] give %s but axes [k2, k1] give %s", op, a, b)
		}
	}
}

func TestReductions(t *testing.T) {
	k := irhelper.ReduceAxis("k", 2, 8)
	kf := ir.Cast(ir.Float(32), k.Var())
	empty := irhelper.ReduceAxis("e", 3, 3)
	ef := ir.Cast(ir.Float(32), empty.Var())
	n := irhelper.Var("n")
	symbolic := ir.ReduceAxis(ir.NewRange(irhelper.Int(0), n), "s")
	tests := []struct {
		expr ir.Expr
		want string
	}{
		{expr: irhelper.MustReduce(ir.SumReduce, k.Var(), k), want: "int32(27)"},
		{expr: irhelper.MustReduce(ir.MaxReduce, ir.Mod(k.Var(), irhelper.Int(5)), k), want: "int32(4)"},
		{expr: irhelper.MustReduce(ir.MinReduce, ir.Sub(irhelper.Int(10), k.Var()), k), want: "int32(3)"},
		{expr: irhelper.MustReduce(ir.SumReduce, kf, k), want: "float32(27)"},
		{expr: irhelper.MustReduce(ir.MaxReduce, ef, empty), want: "float32(-Inf)"},
		{expr: irhelper.MustReduce(ir.MinReduce, ef, empty), want: "float32(+Inf)"},
		{expr: irhelper.MustReduce(ir.SumReduce, empty.Var(), empty), want: "int32(0)"},
		{expr: irhelper.MustReduce(ir.SumReduce, irhelper.Int(1), symbolic), want: "int32(5)"},
		{expr: irhelper.MustReduce(ir.SumReduce, n), want: "int32(5)"},
	}
	env := interp.Env{n: interp.Int(int32Type, 5)}
	for _, test := range tests {
		got := eval(t, test.expr, env)
		if got.String() != test.want {
			t.Errorf("%s: got %s but want %s", test.expr, got, test.want)
		}
	}
}

func TestNestedReduction(t *testing.T) {
	i := irhelper.ReduceAxis("i", 0, 4)
	// The inner domain depends on the outer axis: sum_{i<4} sum_{j<i} 1.
	j := ir.ReduceAxis(ir.NewRange(irhelper.Int(0), i.Var()), "j")
	inner := irhelper.MustReduce(ir.SumReduce, irhelper.Int(1), j)
	outer := irhelper.MustReduce(ir.SumReduce, inner, i)
	for _, opts := range [][]interp.Option{nil, {interp.WithParallelism(3)}} {
		if got := eval(t, outer, nil, opts...).Int(); got != 6 {
			t.Errorf("nested reduction with %d options: got %d but want %d", len(opts), got, 6)
		}
	}
}

func TestNegativeExtent(t *testing.T) {
	k := ir.ReduceAxis(ir.RangeFromMinExtent(irhelper.Int(0), irhelper.Int(-1)), "k")
	sum := irhelper.MustReduce(ir.SumReduce, k.Var(), k)
	_, err := interp.Eval(context.Background(), sum, nil)
	if !errors.Is(err, interp.ErrNegativeExtent) {
		t.Errorf("got error %v but want %v", err, interp.ErrNegativeExtent)
	}
}

func TestNonIntegerDomain(t *testing.T) {
	dom := ir.RangeFromMinExtent(irhelper.Float32(0), irhelper.Float32(2))
	k := ir.ReduceAxis(dom, "k")
	sum := irhelper.MustReduce(ir.SumReduce, k.Var(), k)
	_, err := interp.Eval(context.Background(), sum, nil)
	if !errors.Is(err, interp.ErrNonIntegerDomain) {
		t.Errorf("got error %v but want %v", err, interp.ErrNonIntegerDomain)
	}
}

func TestParallelSum(t *testing.T) {
	k1 := irhelper.ReduceAxis("k1", -50, 50)
	k2 := irhelper.ReduceAxis("k2", 0, 7)
	source := ir.Add(ir.Mul(k1.Var(), k1.Var()), k2.Var())
	for _, op := range []ir.ReduceOp{ir.SumReduce, ir.MaxReduce, ir.MinReduce} {
		r := irhelper.MustReduce(op, source, k1, k2)
		want := eval(t, r, nil)
		for _, n := range []int{2, 3, 8, 1000} {
			got := eval(t, r, nil, interp.WithParallelism(n))
			if got != want {
				t.Errorf("%s with parallelism %d: got %s but want %s", op, n, got, want)
			}
		}
	}
}

func TestParallelErrorCancels(t *testing.T) {
	k := irhelper.ReduceAxis("k", 0, 100)
	// Division by zero when k == 42.
	source := ir.Div(irhelper.Int(1), ir.Sub(k.Var(), irhelper.Int(42)))
	sum := irhelper.MustReduce(ir.SumReduce, source, k)
	_, err := interp.Eval(context.Background(), sum, nil, interp.WithParallelism(4))
	if !errors.Is(err, interp.ErrDivByZero) {
		t.Errorf("got error %v but want %v", err, interp.ErrDivByZero)
	}
}

func TestCancelledContext(t *testing.T) {
	k := irhelper.ReduceAxis("k", 0, math.MaxInt32)
	sum := irhelper.MustReduce(ir.SumReduce, k.Var(), k)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, opts := range [][]interp.Option{nil, {interp.WithParallelism(4)}} {
		_, err := interp.Eval(ctx, sum, nil, opts...)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("got error %v but want %v", err, context.Canceled)
		}
	}
}
