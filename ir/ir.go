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

// Package ir is the tensor intermediate representation (IR) describing
// what a computation computes before any schedule decides how it runs.
//
// All nodes are immutable once built and can be shared by many parent
// nodes: expressions form directed acyclic graphs. The identity of a node
// is its pointer. Two nodes built separately are different even if they
// print the same.
package ir

import "sync/atomic"

type (
	// Node in the graph.
	Node interface {
		// node marks a structure as a node structure.
		// It prevents external implementations of the interface.
		node()

		// ID returns the identifier of the node.
		// The identifier is unique within the process.
		ID() uint64

		// String representation of the node.
		String() string
	}

	// Expr is a node computing a value.
	Expr interface {
		Node

		// Type of the value computed by the expression.
		Type() Type

		expr()
	}
)

var (
	_ Expr = (*Var)(nil)
	_ Expr = (*IntImm)(nil)
	_ Expr = (*UIntImm)(nil)
	_ Expr = (*FloatImm)(nil)
	_ Expr = (*CastExpr)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*SelectExpr)(nil)
	_ Expr = (*Reduce)(nil)
	_ Node = (*Range)(nil)
	_ Node = (*IterVar)(nil)
)

var lastID atomic.Uint64

// nodeID is embedded in all nodes.
type nodeID struct {
	id uint64
}

func newNodeID() nodeID {
	return nodeID{id: lastID.Add(1)}
}

func (nodeID) node() {}

// ID returns the identifier of the node.
func (n nodeID) ID() uint64 { return n.id }

// isNil returns true if n is nil or a nil pointer to a node.
func isNil(n Node) bool {
	switch nT := n.(type) {
	case nil:
		return true
	case *Var:
		return nT == nil
	case *IntImm:
		return nT == nil
	case *UIntImm:
		return nT == nil
	case *FloatImm:
		return nT == nil
	case *CastExpr:
		return nT == nil
	case *Binary:
		return nT == nil
	case *SelectExpr:
		return nT == nil
	case *Range:
		return nT == nil
	case *IterVar:
		return nT == nil
	case *Reduce:
		return nT == nil
	}
	return false
}

// Hash returns a hash of a node computed from its identity.
// Nodes built separately have different hashes, regardless of their content.
// The hash of a nil node is 0.
func Hash(n Node) uint64 {
	if isNil(n) {
		return 0
	}
	// splitmix64 finalizer.
	z := n.ID() + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Same returns true if a and b are the same node.
// All nil nodes are the same, regardless of their type.
func Same(a, b Node) bool {
	aNil, bNil := isNil(a), isNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	return a.ID() == b.ID()
}
