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
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/tir/ir"
	"github.com/gx-org/tir/ir/arith"
	"github.com/pkg/errors"
)

func intConst(v int64) ir.Expr {
	return ir.MakeConst(ir.Int(32), v)
}

func TestVarIdentity(t *testing.T) {
	a := ir.NewVar("i", ir.Int(32))
	b := ir.NewVar("i", ir.Int(32))
	if ir.Same(a, b) {
		t.Errorf("two variables built separately are the same")
	}
	if ir.Hash(a) == ir.Hash(b) {
		t.Errorf("two variables built separately have the same hash %d", ir.Hash(a))
	}
	alias := a
	if !ir.Same(a, alias) {
		t.Errorf("a variable is not the same as its alias")
	}
	if ir.Hash(a) != ir.Hash(alias) {
		t.Errorf("a variable and its alias have different hashes")
	}
	set := map[ir.Expr]bool{a: true}
	if set[b] {
		t.Errorf("map lookup found a variable with the same name")
	}
	if !set[alias] {
		t.Errorf("map lookup did not find the alias of a variable")
	}
}

func TestNilIdentity(t *testing.T) {
	x := ir.NewVar("x", ir.Int(32))
	var nilVar *ir.Var
	var nilRange *ir.Range
	tests := []struct {
		a, b ir.Node
		want bool
	}{
		{a: nilVar, b: x, want: false},
		{a: x, b: nilVar, want: false},
		{a: nilVar, b: nil, want: true},
		{a: nilVar, b: nilRange, want: true},
		{a: nil, b: nil, want: true},
		{a: x, b: x, want: true},
	}
	for i, test := range tests {
		if got := ir.Same(test.a, test.b); got != test.want {
			t.Errorf("test %d: Same(%T, %T) = %t but want %t", i, test.a, test.b, got, test.want)
		}
	}
	if h := ir.Hash(nilVar); h != 0 {
		t.Errorf("hash of a nil variable: got %d but want 0", h)
	}
}

func TestCopyWithSuffix(t *testing.T) {
	v := ir.NewVar("i", ir.Int(32))
	cp := v.CopyWithSuffix("_new")
	if got, want := cp.Name(), "i_new"; got != want {
		t.Errorf("incorrect name: got %q but want %q", got, want)
	}
	if cp.Type() != ir.Int(32) {
		t.Errorf("incorrect type: got %s but want %s", cp.Type(), ir.Int(32))
	}
	if ir.Same(v, cp) {
		t.Errorf("a copy is the same node as the original")
	}
	if v.Name() != "i" {
		t.Errorf("the original variable has been renamed to %q", v.Name())
	}
}

func TestDefaultVar(t *testing.T) {
	v := ir.NewDefaultVar()
	if v.Name() != "v" || v.Type() != ir.Int(32) {
		t.Errorf("incorrect default variable: got %s:%s but want v:int32", v.Name(), v.Type())
	}
	adopted, ok := ir.AsVar(v)
	if !ok || adopted != v {
		t.Errorf("AsVar(%s) = %v, %t but want the variable itself", v, adopted, ok)
	}
	if _, ok := ir.AsVar(ir.Add(v, intConst(1))); ok {
		t.Errorf("AsVar accepted a binary expression")
	}
}

func TestConcurrentConstruction(t *testing.T) {
	const numRoutines = 8
	const numVars = 1000
	var wg sync.WaitGroup
	ids := make([][]uint64, numRoutines)
	for r := range numRoutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range numVars {
				ids[r] = append(ids[r], ir.NewVar("x", ir.Int(32)).ID())
			}
		}()
	}
	wg.Wait()
	seen := make(map[uint64]bool)
	for _, rIDs := range ids {
		for _, id := range rIDs {
			if seen[id] {
				t.Fatalf("identifier %d assigned twice", id)
			}
			seen[id] = true
		}
	}
}

func TestRangeEquivalence(t *testing.T) {
	begin, end := int64(2), int64(10)
	fromEnd := ir.NewRange(intConst(begin), intConst(end))
	fromExtent := ir.RangeFromMinExtent(intConst(begin), ir.Sub(intConst(end), intConst(begin)))
	for name, r := range map[string]*ir.Range{
		"NewRange":           fromEnd,
		"RangeFromMinExtent": fromExtent,
	} {
		minV, ok := ir.AsConstInt(arith.Simplify(r.Min()))
		if !ok || minV != begin {
			t.Errorf("%s: incorrect min %s", name, r.Min())
		}
		ext, ok := ir.AsConstInt(arith.Simplify(r.Extent()))
		if !ok || ext != 8 {
			t.Errorf("%s: incorrect extent %s: got %d but want 8", name, r.Extent(), ext)
		}
	}
}

func TestRangeSymbolic(t *testing.T) {
	n := ir.NewVar("n", ir.Int(32))
	zero := intConst(0)
	r := ir.NewRange(zero, n)
	if !ir.Same(r.Extent(), n) {
		t.Errorf("range starting at zero: got extent %s but want %s", r.Extent(), n)
	}
	m := ir.NewVar("m", ir.Int(32))
	r = ir.NewRange(m, n)
	if got, want := r.Extent().String(), "(n - m)"; got != want {
		t.Errorf("incorrect symbolic extent: got %s but want %s", got, want)
	}
	if !ir.Same(r.Min(), m) {
		t.Errorf("incorrect min: got %s but want %s", r.Min(), m)
	}
	// Negative extents are not rejected.
	r = ir.NewRange(intConst(10), intConst(2))
	if ext, _ := ir.AsConstInt(r.Extent()); ext != -8 {
		t.Errorf("incorrect negative extent: got %d but want -8", ext)
	}
}

func TestDomainShape(t *testing.T) {
	dom := ir.Domain{
		ir.NewRange(intConst(0), intConst(4)),
		ir.NewRange(intConst(2), intConst(5)),
	}
	shape, err := dom.Shape(dtype.Float32)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{4, 3}, shape.AxisLengths); diff != "" {
		t.Errorf("incorrect axis lengths (-want +got):\n%s", diff)
	}
	if shape.DType != dtype.Float32 {
		t.Errorf("incorrect data type: got %v but want %v", shape.DType, dtype.Float32)
	}
	n := ir.NewVar("n", ir.Int(32))
	bad := ir.Domain{
		ir.NewRange(intConst(1), n),
		ir.NewRange(intConst(3), intConst(1)),
		nil,
	}
	_, err = bad.Shape(dtype.Float32)
	for _, want := range []error{ir.ErrNotConstant, ir.ErrNegativeExtent, ir.ErrNilNode} {
		if !errors.Is(err, want) {
			t.Errorf("error %v does not contain %v", err, want)
		}
	}
}
