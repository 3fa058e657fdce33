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

package main

import (
	"fmt"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/tir/interp"
	"github.com/gx-org/tir/ir"
	"github.com/gx-org/tir/ir/arith"
	"github.com/gx-org/tir/ir/irhelper"
	"github.com/gx-org/tir/ir/irstring"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type reduceFlags struct {
	op       string
	begin    int64
	end      int64
	scale    int64
	tree     bool
	simplify bool
	parallel int
}

var reduceOps = map[string]ir.ReduceOp{
	"sum": ir.SumReduce,
	"max": ir.MaxReduce,
	"min": ir.MinReduce,
}

// buildReduction returns the reduction of k*scale over k in [begin, end).
// The axis and the literals are int64 so that no flag value is truncated.
func buildReduction(flags *reduceFlags) (*ir.Reduce, error) {
	op, ok := reduceOps[flags.op]
	if !ok {
		return nil, errors.Errorf("unknown reduction %q: use sum, max, or min", flags.op)
	}
	dom := ir.NewRange(irhelper.Int64(flags.begin), irhelper.Int64(flags.end))
	k := ir.ReduceAxis(dom, "k")
	source := ir.Mul(k.Var(), irhelper.Int64(flags.scale))
	return ir.Reduction(op, source, irhelper.Axes(k))
}

func runReduce(cmd *cobra.Command, flags *reduceFlags) error {
	red, err := buildReduction(flags)
	if err != nil {
		return err
	}
	var expr ir.Expr = red
	if flags.simplify {
		expr = arith.Simplify(expr)
	}
	w := cmd.OutOrStdout()
	if flags.tree {
		fmt.Fprintln(w, irstring.Tree(expr, irstring.UniqueNames()))
	} else {
		fmt.Fprintf(w, "expr: %s\n", irstring.String(expr, irstring.UniqueNames()))
	}
	domain := make(ir.Domain, red.NumAxes())
	for i, ax := range red.Axis() {
		domain[i] = ax.Dom()
	}
	if shp, err := domain.Shape(dtype.Int32); err != nil {
		logrus.Warnf("cannot compute the shape of the domain: %v", err)
	} else {
		fmt.Fprintf(w, "domain: %v\n", shp.AxisLengths)
	}
	logrus.Debugf("evaluating with parallelism %d", flags.parallel)
	val, err := interp.Eval(cmd.Context(), expr, nil, interp.WithParallelism(flags.parallel))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "value: %s\n", val)
	return nil
}

func newReduceCmd() *cobra.Command {
	flags := &reduceFlags{}
	cmd := &cobra.Command{
		Use:   "reduce",
		Short: "Build and evaluate a reduction over a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReduce(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.op, "op", "sum", "reduction operator: sum, max, or min")
	cmd.Flags().Int64Var(&flags.begin, "begin", 0, "first value of the reduction axis")
	cmd.Flags().Int64Var(&flags.end, "end", 10, "end (excluded) of the reduction axis")
	cmd.Flags().Int64Var(&flags.scale, "scale", 1, "factor applied to the reduction axis")
	cmd.Flags().BoolVar(&flags.tree, "tree", false, "print the expression as a tree")
	cmd.Flags().BoolVar(&flags.simplify, "simplify", false, "simplify the expression before evaluating it")
	cmd.Flags().IntVar(&flags.parallel, "parallel", 1, "number of goroutines evaluating the outermost axis")
	return cmd
}
