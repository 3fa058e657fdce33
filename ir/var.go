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

const (
	// DefaultVarName is the name hint of a variable when none is given.
	DefaultVarName = "v"
	// DefaultReduceAxisName is the name of a reduction axis when none is given.
	DefaultReduceAxisName = "rv"
)

// DefaultVarType is the type of a variable when none is given.
var DefaultVarType = Int(32)

// Var is a named variable.
//
// The name is a hint for humans and does not need to be unique:
// two variables are the same only if they are the same node.
type Var struct {
	nodeID
	name string
	typ  Type
}

// NewVar returns a new variable.
func NewVar(name string, typ Type) *Var {
	return &Var{nodeID: newNodeID(), name: name, typ: typ}
}

// NewDefaultVar returns a new variable named DefaultVarName of type DefaultVarType.
func NewDefaultVar() *Var {
	return NewVar(DefaultVarName, DefaultVarType)
}

// AsVar returns the variable referenced by an expression,
// if the expression is a variable.
func AsVar(x Expr) (*Var, bool) {
	v, ok := x.(*Var)
	return v, ok && v != nil
}

func (*Var) expr() {}

// Name returns the name hint of the variable.
func (v *Var) Name() string { return v.name }

// Type of the variable.
func (v *Var) Type() Type { return v.typ }

// CopyWithSuffix returns a new variable with the same type and
// with suffix appended to the name hint.
// The returned variable is different from v.
func (v *Var) CopyWithSuffix(suffix string) *Var {
	return NewVar(v.name+suffix, v.typ)
}
