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

// Package interp evaluates IR expressions.
//
// The interpreter is a reference implementation of the semantics of the IR:
// integer arithmetic wraps to the width of its type, integer division
// rounds towards negative infinity, and the integer remainder is always
// non-negative. Reductions fold their source over the Cartesian product of
// the domains of their axes.
package interp

import (
	"context"

	"github.com/gx-org/tir/fmterr"
	"github.com/gx-org/tir/ir"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var (
	// ErrUnboundVar is returned when a free variable has no value.
	ErrUnboundVar = errors.New("unbound variable")

	// ErrTypeMismatch is returned when the value of a variable does not match its type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrDivByZero is returned when an integer is divided by zero.
	ErrDivByZero = errors.New("integer division by zero")

	// ErrUnsupported is returned when an expression cannot be evaluated,
	// for example vector or handle expressions.
	ErrUnsupported = errors.New("unsupported expression")

	// ErrNonIntegerDomain is returned when the domain of a reduction axis is not an integer.
	ErrNonIntegerDomain = errors.New("domain is not an integer")

	// ErrNegativeExtent is returned when the domain of a reduction axis has a negative extent.
	ErrNegativeExtent = ir.ErrNegativeExtent
)

// Env maps variables to their values.
// Variables are identified by their node, not by their name.
type Env map[*ir.Var]Value

type evaluator struct {
	ctx         context.Context
	parallelism int
}

// Option configures the evaluation.
type Option func(*evaluator)

// WithParallelism evaluates the outermost axis of reductions
// with up to n goroutines.
func WithParallelism(n int) Option {
	return func(ev *evaluator) {
		ev.parallelism = n
	}
}

// Eval evaluates an expression given the values of its free variables.
// All the missing variables are reported in the returned error.
func Eval(ctx context.Context, x ir.Expr, env Env, opts ...Option) (Value, error) {
	if x == nil {
		return Value{}, errors.Wrapf(ir.ErrNilNode, "cannot evaluate a nil expression")
	}
	ev := &evaluator{ctx: ctx, parallelism: 1}
	for _, opt := range opts {
		opt(ev)
	}
	if err := checkEnv(x, env); err != nil {
		return Value{}, err
	}
	return ev.eval(&scope{env: env}, x)
}

func checkEnv(x ir.Expr, env Env) error {
	var errs error
	for _, v := range ir.FreeVars(x) {
		val, ok := env[v]
		if !ok {
			errs = multierr.Append(errs, fmterr.Wrapf(v, ErrUnboundVar, "no value for variable %s", v.Name()))
			continue
		}
		if val.Type() != v.Type() {
			errs = multierr.Append(errs, fmterr.Wrapf(v, ErrTypeMismatch, "variable %s of type %s has a value of type %s", v.Name(), v.Type(), val.Type()))
		}
	}
	return errs
}

// scope binds the variables of reduction axes.
// A scope is never modified once created: goroutines can share it.
type scope struct {
	env    Env
	parent *scope
	v      *ir.Var
	val    Value
}

func (s *scope) bind(v *ir.Var, val Value) *scope {
	return &scope{env: s.env, parent: s, v: v, val: val}
}

func (s *scope) lookup(v *ir.Var) (Value, bool) {
	for cur := s; cur != nil && cur.v != nil; cur = cur.parent {
		if cur.v == v {
			return cur.val, true
		}
	}
	val, ok := s.env[v]
	return val, ok
}

func (ev *evaluator) eval(s *scope, x ir.Expr) (Value, error) {
	if x.Type().IsVector() || x.Type().IsHandle() {
		return Value{}, fmterr.Wrapf(x, ErrUnsupported, "cannot evaluate expression of type %s", x.Type())
	}
	switch xT := x.(type) {
	case *ir.Var:
		val, ok := s.lookup(xT)
		if !ok {
			return Value{}, fmterr.Wrapf(xT, ErrUnboundVar, "no value for variable %s", xT.Name())
		}
		return val, nil
	case *ir.IntImm:
		return Int(xT.Type(), xT.Value()), nil
	case *ir.UIntImm:
		return Uint(xT.Type(), xT.Value()), nil
	case *ir.FloatImm:
		return Float(xT.Type(), xT.Value()), nil
	case *ir.CastExpr:
		val, err := ev.eval(s, xT.X())
		if err != nil {
			return Value{}, err
		}
		return castTo(xT, val)
	case *ir.Binary:
		return ev.binary(s, xT)
	case *ir.SelectExpr:
		cond, err := ev.eval(s, xT.Cond())
		if err != nil {
			return Value{}, err
		}
		if cond.Bool() {
			return ev.eval(s, xT.True())
		}
		return ev.eval(s, xT.False())
	case *ir.Reduce:
		return ev.reduce(s, xT)
	}
	return Value{}, fmterr.Internalf("expression %T not supported", x)
}

func (ev *evaluator) binary(s *scope, x *ir.Binary) (Value, error) {
	left, err := ev.eval(s, x.X())
	if err != nil {
		return Value{}, err
	}
	right, err := ev.eval(s, x.Y())
	if err != nil {
		return Value{}, err
	}
	val, err := applyBinary(x.Op(), left, right)
	return val, fmterr.In(x, err)
}
