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
	"slices"

	"github.com/gx-org/tir/fmterr"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ReduceOp is the operator combining values in a reduction.
// All operators are commutative and associative.
type ReduceOp int

// Reduction operators.
const (
	SumReduce ReduceOp = iota
	MaxReduce
	MinReduce
)

// String returns the name of the combining operator.
func (op ReduceOp) String() string {
	switch op {
	case SumReduce:
		return "Add"
	case MaxReduce:
		return "Max"
	case MinReduce:
		return "Min"
	}
	return "Unknown"
}

// FuncName returns the name of the function building the reduction.
func (op ReduceOp) FuncName() string {
	switch op {
	case SumReduce:
		return "sum"
	case MaxReduce:
		return "max"
	case MinReduce:
		return "min"
	}
	return "reduce"
}

// Identity returns the identity element of the operator for a type.
func (op ReduceOp) Identity(typ Type) (Expr, error) {
	if typ.IsHandle() {
		return nil, errors.Wrapf(ErrInvalidType, "cannot reduce values of type %s", typ)
	}
	switch op {
	case SumReduce:
		return MakeZero(typ), nil
	case MaxReduce:
		return MinValue(typ)
	case MinReduce:
		return MaxValue(typ)
	}
	return nil, errors.Errorf("unknown reduction operator %d", int(op))
}

// BinaryOp returns the binary operator combining two values.
func (op ReduceOp) BinaryOp() BinaryOp {
	switch op {
	case MaxReduce:
		return MaxOp
	case MinReduce:
		return MinOp
	default:
		return AddOp
	}
}

// Combine returns the expression combining two values with the operator.
func (op ReduceOp) Combine(x, y Expr) *Binary {
	return NewBinary(op.BinaryOp(), x, y)
}

// Reduce folds the values of a source expression over the Cartesian
// product of the domains of its axes.
// The fold starts from the identity element of the operator.
// The order of the axes does not change the result.
type Reduce struct {
	nodeID
	op       ReduceOp
	source   Expr
	axis     []*IterVar
	identity Expr
}

type reduceCall struct {
	op     ReduceOp
	source Expr
}

func (c reduceCall) String() string {
	if c.source == nil {
		return c.op.FuncName() + "(nil)"
	}
	return c.op.FuncName() + "(" + c.source.String() + ")"
}

// Reduction returns a reduction of source over axis.
//
// All axes need to have the CommReduce role and a domain.
// An axis, or its variable, cannot be repeated. All the violations are reported in the returned error.
func Reduction(op ReduceOp, source Expr, axis []*IterVar) (*Reduce, error) {
	call := reduceCall{op: op, source: source}
	if source == nil {
		return nil, fmterr.Wrapf(call, ErrNilNode, "no source expression")
	}
	var errs error
	seen := make(map[*IterVar]bool, len(axis))
	seenVars := make(map[*Var]bool, len(axis))
	for i, ax := range axis {
		if ax == nil {
			errs = multierr.Append(errs, errors.Wrapf(ErrNilNode, "axis %d", i))
			continue
		}
		if ax.v == nil {
			errs = multierr.Append(errs, errors.Wrapf(ErrNilNode, "axis %d has no variable", i))
			continue
		}
		if ax.IterType() != CommReduce {
			errs = multierr.Append(errs, errors.Wrapf(ErrInvalidAxisRole, "axis %d (%s) has role %s but want %s", i, ax.v.Name(), ax.IterType(), CommReduce))
		}
		if !ax.HasDomain() {
			errs = multierr.Append(errs, errors.Wrapf(ErrUnboundDomain, "axis %d (%s)", i, ax.v.Name()))
		}
		switch {
		case seen[ax]:
			errs = multierr.Append(errs, errors.Wrapf(ErrDuplicateAxis, "axis %d (%s)", i, ax.v.Name()))
		case seenVars[ax.v]:
			errs = multierr.Append(errs, errors.Wrapf(ErrDuplicateAxis, "axis %d (%s) shares its variable with a previous axis", i, ax.v.Name()))
		}
		seen[ax] = true
		seenVars[ax.v] = true
	}
	identity, err := op.Identity(source.Type())
	errs = multierr.Append(errs, err)
	if errs != nil {
		return nil, fmterr.In(call, errs)
	}
	return &Reduce{
		nodeID:   newNodeID(),
		op:       op,
		source:   source,
		axis:     slices.Clone(axis),
		identity: identity,
	}, nil
}

// Sum returns the sum of source over axis.
func Sum(source Expr, axis []*IterVar) (*Reduce, error) {
	return Reduction(SumReduce, source, axis)
}

// Max returns the maximum of source over axis.
func Max(source Expr, axis []*IterVar) (*Reduce, error) {
	return Reduction(MaxReduce, source, axis)
}

// Min returns the minimum of source over axis.
func Min(source Expr, axis []*IterVar) (*Reduce, error) {
	return Reduction(MinReduce, source, axis)
}

func (*Reduce) expr() {}

// Op returns the combining operator.
func (r *Reduce) Op() ReduceOp { return r.op }

// Source returns the reduced expression.
func (r *Reduce) Source() Expr { return r.source }

// Axis returns the reduction axes.
// The returned slice is a copy.
func (r *Reduce) Axis() []*IterVar { return slices.Clone(r.axis) }

// NumAxes returns the number of reduction axes.
func (r *Reduce) NumAxes() int { return len(r.axis) }

// Identity returns the initial value of the fold.
func (r *Reduce) Identity() Expr { return r.identity }

// Type of the reduction, that is the type of its source.
func (r *Reduce) Type() Type { return r.source.Type() }
