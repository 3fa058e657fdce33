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
	"fmt"

	"github.com/gx-org/tir/base/ordered"
)

// Children returns the direct children of a node.
// Nil children, such as the domain of an iteration variable not bound yet,
// are not included.
func Children(n Node) []Node {
	var children []Node
	add := func(cs ...Node) {
		for _, c := range cs {
			if c == nil {
				continue
			}
			children = append(children, c)
		}
	}
	switch nT := n.(type) {
	case *Var, *IntImm, *UIntImm, *FloatImm:
	case *CastExpr:
		add(nT.x)
	case *Binary:
		add(nT.x, nT.y)
	case *SelectExpr:
		add(nT.cond, nT.t, nT.f)
	case *Range:
		add(nT.min, nT.extent)
	case *IterVar:
		if nT.dom != nil {
			add(nT.dom)
		}
		if nT.v != nil {
			add(nT.v)
		}
	case *Reduce:
		add(nT.source)
		for _, ax := range nT.axis {
			add(ax)
		}
	case nil:
	default:
		panic(fmt.Sprintf("node type %T not supported", nT))
	}
	return children
}

// Inspect traverses the graph rooted at n in depth-first pre-order.
// A node referenced by more than one parent is visited once.
// If f returns false, the children of the node are not visited.
func Inspect(n Node, f func(Node) bool) {
	visited := make(map[Node]bool)
	var inspect func(Node)
	inspect = func(n Node) {
		if n == nil || visited[n] {
			return
		}
		visited[n] = true
		if !f(n) {
			return
		}
		for _, child := range Children(n) {
			inspect(child)
		}
	}
	inspect(n)
}

// FreeVars returns the variables referenced by an expression and not bound
// by a reduction, in the order in which they first appear.
// The domains of reduction axes are evaluated outside of the reduction:
// their variables are free.
func FreeVars(x Expr) []*Var {
	free := ordered.NewSet[*Var]()
	bound := make(map[*Var]int)
	var walk func(Node)
	walk = func(n Node) {
		switch nT := n.(type) {
		case *Var:
			if bound[nT] == 0 {
				free.Add(nT)
			}
		case *Reduce:
			for _, ax := range nT.axis {
				if ax.dom != nil {
					walk(ax.dom)
				}
			}
			for _, ax := range nT.axis {
				bound[ax.v]++
			}
			walk(nT.source)
			for _, ax := range nT.axis {
				bound[ax.v]--
			}
		default:
			for _, child := range Children(n) {
				walk(child)
			}
		}
	}
	walk(x)
	return free.Slice()
}
