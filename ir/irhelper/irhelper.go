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

// Package irhelper provides helper functions to build IR programmatically.
package irhelper

import (
	"fmt"

	"github.com/gx-org/tir/ir"
)

// Int returns an int32 literal.
func Int(v int64) *ir.IntImm {
	return ir.NewIntImm(ir.Int(32), v)
}

// Int64 returns an int64 literal.
func Int64(v int64) *ir.IntImm {
	return ir.NewIntImm(ir.Int(64), v)
}

// Float32 returns a float32 literal.
func Float32(v float64) *ir.FloatImm {
	return ir.NewFloatImm(ir.Float(32), v)
}

// Float64 returns a float64 literal.
func Float64(v float64) *ir.FloatImm {
	return ir.NewFloatImm(ir.Float(64), v)
}

// Var returns a new int32 variable.
func Var(name string) *ir.Var {
	return ir.NewVar(name, ir.Int(32))
}

// Vars returns new int32 variables, one for each name.
func Vars(names ...string) []*ir.Var {
	vars := make([]*ir.Var, len(names))
	for i, name := range names {
		vars[i] = Var(name)
	}
	return vars
}

// Range returns the int32 range [begin, end).
func Range(begin, end int64) *ir.Range {
	return ir.NewRange(Int(begin), Int(end))
}

// ReduceAxis returns a reduction axis iterating over [begin, end).
func ReduceAxis(name string, begin, end int64) *ir.IterVar {
	return ir.ReduceAxis(Range(begin, end), name)
}

// Axes returns its arguments as a slice.
func Axes(axes ...*ir.IterVar) []*ir.IterVar {
	return axes
}

// MustReduce builds a reduction and panics if the reduction is invalid.
func MustReduce(op ir.ReduceOp, source ir.Expr, axes ...*ir.IterVar) *ir.Reduce {
	r, err := ir.Reduction(op, source, axes)
	if err != nil {
		panic(fmt.Sprintf("cannot build %s reduction: %+v", op.FuncName(), err))
	}
	return r
}
