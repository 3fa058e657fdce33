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
	"io"
	"math"
	"strconv"
	"strings"
)

// Printer renders nodes as text.
// The output is meant for humans and is not a stable format.
type Printer struct {
	// VarName returns the name printed for a variable.
	// The name hint of the variable is printed if VarName is nil.
	VarName func(*Var) string
}

var defaultPrinter = &Printer{}

// Fprint writes the text of a node into w.
func (p *Printer) Fprint(w io.Writer, n Node) error {
	_, err := io.WriteString(w, p.String(n))
	return err
}

// String returns the text of a node.
func (p *Printer) String(n Node) string {
	var b strings.Builder
	p.write(&b, n)
	return b.String()
}

func (p *Printer) varName(v *Var) string {
	if p.VarName == nil {
		return v.name
	}
	return p.VarName(v)
}

func (p *Printer) write(b *strings.Builder, n Node) {
	switch nT := n.(type) {
	case nil:
		b.WriteString("<nil>")
	case *Var:
		if nT == nil {
			b.WriteString("<nil>")
			return
		}
		b.WriteString(p.varName(nT))
	case *IntImm:
		b.WriteString(intImmString(nT))
	case *UIntImm:
		b.WriteString(uintImmString(nT))
	case *FloatImm:
		b.WriteString(floatImmString(nT))
	case *CastExpr:
		b.WriteString(nT.typ.String())
		b.WriteString("(")
		p.write(b, nT.x)
		b.WriteString(")")
	case *Binary:
		if nT.op.IsFunction() {
			b.WriteString(nT.op.String())
			b.WriteString("(")
			p.write(b, nT.x)
			b.WriteString(", ")
			p.write(b, nT.y)
			b.WriteString(")")
			return
		}
		b.WriteString("(")
		p.write(b, nT.x)
		b.WriteString(" " + nT.op.String() + " ")
		p.write(b, nT.y)
		b.WriteString(")")
	case *SelectExpr:
		b.WriteString("select(")
		p.write(b, nT.cond)
		b.WriteString(", ")
		p.write(b, nT.t)
		b.WriteString(", ")
		p.write(b, nT.f)
		b.WriteString(")")
	case *Range:
		if nT == nil {
			b.WriteString("none")
			return
		}
		b.WriteString("range(min=")
		p.write(b, nT.min)
		b.WriteString(", ext=")
		p.write(b, nT.extent)
		b.WriteString(")")
	case *IterVar:
		b.WriteString("iter_var(")
		if nT.v == nil {
			b.WriteString("<nil>")
		} else {
			p.write(b, nT.v)
		}
		b.WriteString(", ")
		p.write(b, nT.dom)
		b.WriteString(", ")
		b.WriteString(nT.iterType.String())
		if nT.threadTag != "" {
			b.WriteString(", " + strconv.Quote(nT.threadTag))
		}
		b.WriteString(")")
	case *Reduce:
		b.WriteString(nT.op.FuncName())
		b.WriteString("(")
		p.write(b, nT.source)
		b.WriteString(", axis=[")
		for i, ax := range nT.axis {
			if i > 0 {
				b.WriteString(", ")
			}
			p.write(b, ax)
		}
		b.WriteString("])")
	default:
		fmt.Fprintf(b, "%T", nT)
	}
}

func intImmString(x *IntImm) string {
	s := strconv.FormatInt(x.val, 10)
	if x.typ == Int(32) {
		return s
	}
	return fmt.Sprintf("(%s)%s", x.typ, s)
}

func uintImmString(x *UIntImm) string {
	if x.typ == Bool() {
		return strconv.FormatBool(x.val != 0)
	}
	return fmt.Sprintf("(%s)%d", x.typ, x.val)
}

func floatImmString(x *FloatImm) string {
	isDefault := x.typ == Float(32) || x.typ == Float(64)
	if math.IsInf(x.val, 0) {
		s := "inf"
		if x.val < 0 {
			s = "-inf"
		}
		if isDefault {
			return s
		}
		return fmt.Sprintf("(%s)%s", x.typ, s)
	}
	bits := 64
	if x.typ.Bits() <= 32 {
		bits = 32
	}
	s := strconv.FormatFloat(x.val, 'g', -1, bits)
	switch {
	case x.typ == Float(32):
		return s + "f"
	case isDefault:
		return s
	}
	return fmt.Sprintf("(%s)%s", x.typ, s)
}

func (v *Var) String() string { return defaultPrinter.String(v) }

func (x *IntImm) String() string { return intImmString(x) }

func (x *UIntImm) String() string { return uintImmString(x) }

func (x *FloatImm) String() string { return floatImmString(x) }

func (x *CastExpr) String() string { return defaultPrinter.String(x) }

func (x *Binary) String() string { return defaultPrinter.String(x) }

func (x *SelectExpr) String() string { return defaultPrinter.String(x) }

func (r *Range) String() string { return defaultPrinter.String(r) }

func (iv *IterVar) String() string { return defaultPrinter.String(iv) }

func (r *Reduce) String() string { return defaultPrinter.String(r) }
