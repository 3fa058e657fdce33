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

import "strings"

// IterVarType is the role of an iteration variable.
// The role tells a scheduler which manipulations are allowed on the variable.
// See Disallowed for the list of manipulations each role forbids.
type IterVarType int

// Roles of iteration variables.
const (
	// DataPar is a data parallel iteration.
	// It usually corresponds to an axis of a tensor.
	// All manipulations are allowed.
	// It does not mean the loop has to be executed in parallel.
	DataPar IterVarType = iota
	// ThreadIndex is the index of a thread in a fixed thread launching group.
	// The iteration is already assumed to be parallel.
	ThreadIndex
	// CommReduce is a commutative reduction.
	// It cannot be directly parallelized.
	CommReduce
	// Ordered is a serial loop with a loop carried dependency:
	// iterations must execute in order.
	Ordered
	// Opaque may not correspond to any generated loop.
	// It is used to implement composite or external operators.
	Opaque

	// Roles set during scheduling.

	// Unrolled marks an unrolled loop.
	Unrolled
	// Vectorized marks a vectorized loop.
	Vectorized
	// Parallelized marks a parallelized loop.
	Parallelized
)

// String returns the label of the role.
// The labels are read by external tools and must not change.
func (t IterVarType) String() string {
	switch t {
	case DataPar:
		return "DataPar"
	case ThreadIndex:
		return "ThreadIndex"
	case CommReduce:
		return "CommRedude"
	case Ordered:
		return "Ordered"
	case Opaque:
		return "Opaque"
	case Unrolled:
		return "Unrolled"
	case Vectorized:
		return "Vectorized"
	case Parallelized:
		return "Parallelized"
	}
	return "Unknown"
}

// IsScheduleMarker returns true if the role is set by a scheduler
// to record how a loop has been transformed.
func (t IterVarType) IsScheduleMarker() bool {
	return t == Unrolled || t == Vectorized || t == Parallelized
}

// Manipulation is a set of schedule transformations on an iteration variable.
type Manipulation uint

// Schedule transformations.
const (
	Split Manipulation = 1 << iota
	Fuse
	Reorder
	Vectorize
	Parallel
	// ComputeAt places the computation of a producer inside the variable loop.
	ComputeAt

	// AllManipulations is the set of all schedule transformations.
	AllManipulations = Split | Fuse | Reorder | Vectorize | Parallel | ComputeAt
)

var manipulationNames = []struct {
	m    Manipulation
	name string
}{
	{Split, "split"},
	{Fuse, "fuse"},
	{Reorder, "reorder"},
	{Vectorize, "vectorize"},
	{Parallel, "parallel"},
	{ComputeAt, "compute_at"},
}

// Has returns true if all the manipulations of o are in m.
func (m Manipulation) Has(o Manipulation) bool {
	return m&o == o
}

// String returns the names of the transformations in the set separated by |.
func (m Manipulation) String() string {
	if m == 0 {
		return "none"
	}
	var names []string
	for _, mn := range manipulationNames {
		if m.Has(mn.m) {
			names = append(names, mn.name)
		}
	}
	return strings.Join(names, "|")
}

// Disallowed returns the transformations a scheduler must not apply
// to an iteration variable with the role t.
// This package does not enforce them.
//
// Roles set during scheduling are terminal and return no transformation.
func (t IterVarType) Disallowed() Manipulation {
	switch t {
	case ThreadIndex:
		return Split | Fuse | Vectorize | Parallel
	case CommReduce:
		return Parallel | Vectorize
	case Ordered:
		return Reorder | Parallel | Vectorize
	case Opaque:
		return AllManipulations
	}
	return 0
}

// IterVar is an iteration variable iterating over a one dimensional interval.
type IterVar struct {
	nodeID
	dom       *Range
	v         *Var
	iterType  IterVarType
	threadTag string
}

// NewIterVar returns a new iteration variable.
//
// dom is nil when the domain is not known yet, for example before scheduling.
// A domain with a zero extent is a known but empty domain.
// threadTag is empty unless the variable is bound to a thread axis.
func NewIterVar(dom *Range, v *Var, iterType IterVarType, threadTag string) *IterVar {
	return &IterVar{
		nodeID:    newNodeID(),
		dom:       dom,
		v:         v,
		iterType:  iterType,
		threadTag: threadTag,
	}
}

// Dom returns the domain of the variable or nil if the domain has not been set.
func (iv *IterVar) Dom() *Range { return iv.dom }

// HasDomain returns true if a domain has been set.
func (iv *IterVar) HasDomain() bool { return iv.dom != nil }

// Var returns the looping variable.
func (iv *IterVar) Var() *Var { return iv.v }

// IterType returns the role of the variable.
func (iv *IterVar) IterType() IterVarType { return iv.iterType }

// ThreadTag returns the tag of the thread axis the variable is bound to.
func (iv *IterVar) ThreadTag() string { return iv.threadTag }

// Expr returns the looping variable as an expression.
func (iv *IterVar) Expr() Expr { return iv.v }

func axisVarType(dom *Range) Type {
	if dom == nil || dom.min == nil {
		return DefaultVarType
	}
	return dom.min.Type()
}

// ThreadAxis returns a new iteration variable representing an axis in a thread group.
// dom can be nil.
func ThreadAxis(dom *Range, tag string) *IterVar {
	return NewIterVar(dom, NewVar(tag, axisVarType(dom)), ThreadIndex, tag)
}

// ReduceAxis returns a new iteration variable to reduce over dom.
// The type of the variable is the type of the domain minimum.
func ReduceAxis(dom *Range, name string) *IterVar {
	return NewIterVar(dom, NewVar(name, axisVarType(dom)), CommReduce, "")
}
