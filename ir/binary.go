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

import "github.com/gx-org/tir/ir/irkind"

// BinaryOp is the operator of a binary expression.
type BinaryOp int

// Binary operators.
const (
	AddOp BinaryOp = iota
	SubOp
	MulOp
	// DivOp is the division. Integer division rounds towards negative infinity.
	DivOp
	// ModOp is the Euclidean remainder of integer division.
	ModOp
	MinOp
	MaxOp
	EQOp
	NEOp
	LTOp
	LEOp
	GTOp
	GEOp
	AndOp
	OrOp
)

// String returns the symbol of the operator.
func (op BinaryOp) String() string {
	switch op {
	case AddOp:
		return "+"
	case SubOp:
		return "-"
	case MulOp:
		return "*"
	case DivOp:
		return "/"
	case ModOp:
		return "%"
	case MinOp:
		return "min"
	case MaxOp:
		return "max"
	case EQOp:
		return "=="
	case NEOp:
		return "!="
	case LTOp:
		return "<"
	case LEOp:
		return "<="
	case GTOp:
		return ">"
	case GEOp:
		return ">="
	case AndOp:
		return "&&"
	case OrOp:
		return "||"
	}
	return "?"
}

// IsComparison returns true if the operator compares its operands.
func (op BinaryOp) IsComparison() bool {
	return op >= EQOp && op <= GEOp
}

// IsFunction returns true if the operator is written as a function call.
func (op BinaryOp) IsFunction() bool {
	return op == MinOp || op == MaxOp
}

type (
	// CastExpr converts a value to another type.
	CastExpr struct {
		nodeID
		typ Type
		x   Expr
	}

	// Binary is an expression with two operands.
	Binary struct {
		nodeID
		op   BinaryOp
		x, y Expr
		typ  Type
	}

	// SelectExpr returns one of two values given a condition.
	SelectExpr struct {
		nodeID
		cond, t, f Expr
	}
)

// Cast converts x into typ.
// Returns x if x is already of type typ.
func Cast(typ Type, x Expr) Expr {
	if x.Type() == typ {
		return x
	}
	return &CastExpr{nodeID: newNodeID(), typ: typ, x: x}
}

func (*CastExpr) expr() {}

// Type of the result.
func (x *CastExpr) Type() Type { return x.typ }

// X returns the converted expression.
func (x *CastExpr) X() Expr { return x.x }

func typeRank(t Type) int {
	switch t.Code() {
	case irkind.UInt:
		return 0
	case irkind.Int:
		return 1
	case irkind.Float:
		return 2
	}
	return 3
}

func widerType(a, b Type) Type {
	lanes := max(a.Lanes(), b.Lanes())
	ra, rb := typeRank(a), typeRank(b)
	switch {
	case ra > rb:
		return a.WithLanes(lanes)
	case rb > ra:
		return b.WithLanes(lanes)
	case a.Bits() >= b.Bits():
		return a.WithLanes(lanes)
	default:
		return b.WithLanes(lanes)
	}
}

// matchTypes returns x and y converted to a common type.
// A literal takes the type of the other operand if that type can represent
// its value. Otherwise, both operands are cast to the wider of their types.
func matchTypes(x, y Expr) (Expr, Expr) {
	xt, yt := x.Type(), y.Type()
	if xt == yt {
		return x, y
	}
	if IsConst(x) && !IsConst(y) {
		if nx, ok := retype(x, yt); ok {
			return nx, y
		}
	}
	if IsConst(y) && !IsConst(x) {
		if ny, ok := retype(y, xt); ok {
			return x, ny
		}
	}
	target := widerType(xt, yt)
	return Cast(target, x), Cast(target, y)
}

// NewBinary returns a binary expression.
// The operands, which must not be nil, are converted to a common type.
func NewBinary(op BinaryOp, x, y Expr) *Binary {
	x, y = matchTypes(x, y)
	typ := x.Type()
	if op.IsComparison() {
		typ = Bool().WithLanes(typ.Lanes())
	}
	return &Binary{nodeID: newNodeID(), op: op, x: x, y: y, typ: typ}
}

func (*Binary) expr() {}

// Op returns the operator.
func (x *Binary) Op() BinaryOp { return x.op }

// X returns the left operand.
func (x *Binary) X() Expr { return x.x }

// Y returns the right operand.
func (x *Binary) Y() Expr { return x.y }

// Type of the result.
func (x *Binary) Type() Type { return x.typ }

// Add returns x+y.
func Add(x, y Expr) *Binary { return NewBinary(AddOp, x, y) }

// Sub returns x-y.
func Sub(x, y Expr) *Binary { return NewBinary(SubOp, x, y) }

// Mul returns x*y.
func Mul(x, y Expr) *Binary { return NewBinary(MulOp, x, y) }

// Div returns x/y.
func Div(x, y Expr) *Binary { return NewBinary(DivOp, x, y) }

// Mod returns x%y.
func Mod(x, y Expr) *Binary { return NewBinary(ModOp, x, y) }

// MinOf returns the minimum of x and y.
func MinOf(x, y Expr) *Binary { return NewBinary(MinOp, x, y) }

// MaxOf returns the maximum of x and y.
func MaxOf(x, y Expr) *Binary { return NewBinary(MaxOp, x, y) }

// EQ returns x==y.
func EQ(x, y Expr) *Binary { return NewBinary(EQOp, x, y) }

// NE returns x!=y.
func NE(x, y Expr) *Binary { return NewBinary(NEOp, x, y) }

// LT returns x<y.
func LT(x, y Expr) *Binary { return NewBinary(LTOp, x, y) }

// LE returns x<=y.
func LE(x, y Expr) *Binary { return NewBinary(LEOp, x, y) }

// GT returns x>y.
func GT(x, y Expr) *Binary { return NewBinary(GTOp, x, y) }

// GE returns x>=y.
func GE(x, y Expr) *Binary { return NewBinary(GEOp, x, y) }

// And returns x&&y.
func And(x, y Expr) *Binary { return NewBinary(AndOp, x, y) }

// Or returns x||y.
func Or(x, y Expr) *Binary { return NewBinary(OrOp, x, y) }

// Select returns t if cond is true, f otherwise.
func Select(cond, t, f Expr) *SelectExpr {
	t, f = matchTypes(t, f)
	return &SelectExpr{nodeID: newNodeID(), cond: cond, t: t, f: f}
}

func (*SelectExpr) expr() {}

// Cond returns the condition.
func (x *SelectExpr) Cond() Expr { return x.cond }

// True returns the value when the condition is true.
func (x *SelectExpr) True() Expr { return x.t }

// False returns the value when the condition is false.
func (x *SelectExpr) False() Expr { return x.f }

// Type of the result.
func (x *SelectExpr) Type() Type { return x.t.Type() }

// Abs returns the absolute value of x.
func Abs(x Expr) Expr {
	if x.Type().IsUInt() {
		return x
	}
	zero := MakeZero(x.Type())
	return Select(LT(x, zero), Sub(zero, x), x)
}
