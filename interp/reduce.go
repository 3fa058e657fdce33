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
	"sync"

	"github.com/gx-org/tir/fmterr"
	"github.com/gx-org/tir/ir"
	"github.com/gx-org/tir/ir/irkind"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type axisBounds struct {
	min    int64
	extent int64
}

func (ev *evaluator) bounds(s *scope, ax *ir.IterVar) (axisBounds, error) {
	if !ax.HasDomain() {
		return axisBounds{}, fmterr.Wrapf(ax, ir.ErrUnboundDomain, "axis %s has no domain", ax.Var().Name())
	}
	dom := ax.Dom()
	for _, x := range []ir.Expr{dom.Min(), dom.Extent()} {
		if t := x.Type(); !irkind.IsInteger(t.Code()) {
			return axisBounds{}, fmterr.Wrapf(ax, ErrNonIntegerDomain, "%s has type %s", x, t)
		}
	}
	minV, err := ev.eval(s, dom.Min())
	if err != nil {
		return axisBounds{}, err
	}
	extV, err := ev.eval(s, dom.Extent())
	if err != nil {
		return axisBounds{}, err
	}
	b := axisBounds{min: minV.Int(), extent: extV.Int()}
	if b.extent < 0 {
		return axisBounds{}, fmterr.Wrapf(ax, ErrNegativeExtent, "axis %s has extent %d", ax.Var().Name(), b.extent)
	}
	return b, nil
}

func (ev *evaluator) reduce(s *scope, r *ir.Reduce) (Value, error) {
	acc, err := ev.eval(s, r.Identity())
	if err != nil {
		return Value{}, err
	}
	axes := r.Axis()
	bnds := make([]axisBounds, len(axes))
	for i, ax := range axes {
		if bnds[i], err = ev.bounds(s, ax); err != nil {
			return Value{}, err
		}
	}
	if ev.parallelism > 1 && len(axes) > 0 && bnds[0].extent > 1 {
		return ev.parallelReduce(s, r, axes, bnds, acc)
	}
	return ev.accumulate(s, r, axes, bnds, acc)
}

// accumulate combines acc with the source of the reduction evaluated at
// every point of the Cartesian product of the given axes.
func (ev *evaluator) accumulate(s *scope, r *ir.Reduce, axes []*ir.IterVar, bnds []axisBounds, acc Value) (Value, error) {
	if len(axes) == 0 {
		val, err := ev.eval(s, r.Source())
		if err != nil {
			return Value{}, err
		}
		return applyBinary(r.Op().BinaryOp(), acc, val)
	}
	ax, b := axes[0], bnds[0]
	for i := range b.extent {
		if err := ev.ctx.Err(); err != nil {
			return Value{}, err
		}
		var err error
		inner := s.bind(ax.Var(), integer(ax.Var().Type(), b.min+i))
		if acc, err = ev.accumulate(inner, r, axes[1:], bnds[1:], acc); err != nil {
			return Value{}, err
		}
	}
	return acc, nil
}

// parallelReduce splits the outermost axis into contiguous chunks, one per goroutine.
// Partial results are combined in the order in which the goroutines complete.
func (ev *evaluator) parallelReduce(s *scope, r *ir.Reduce, axes []*ir.IterVar, bnds []axisBounds, identity Value) (Value, error) {
	n := bnds[0].extent
	workers := min(int64(ev.parallelism), n)
	chunkSize := (n + workers - 1) / workers
	g, ctx := errgroup.WithContext(ev.ctx)
	var mu sync.Mutex
	acc := identity
	for start := int64(0); start < n; start += chunkSize {
		chunk := axisBounds{
			min:    bnds[0].min + start,
			extent: min(chunkSize, n-start),
		}
		g.Go(func() error {
			worker := &evaluator{ctx: ctx, parallelism: 1}
			chunkBnds := append([]axisBounds{chunk}, bnds[1:]...)
			partial, err := worker.accumulate(s, r, axes, chunkBnds, identity)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			acc, err = applyBinary(r.Op().BinaryOp(), acc, partial)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Value{}, errors.WithStack(err)
	}
	return acc, nil
}
