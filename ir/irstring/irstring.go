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

// Package irstring builds string representations of an IR tree.
package irstring

import (
	"fmt"
	"io"
	"strings"

	tirfmt "github.com/gx-org/tir/base/fmt"
	"github.com/gx-org/tir/base/ordered"
	"github.com/gx-org/tir/base/stringseq"
	"github.com/gx-org/tir/base/uname"
	"github.com/gx-org/tir/ir"
)

type printer struct {
	unique  bool
	withIDs bool

	names *ordered.Map[*ir.Var, string]
}

// Option configures how a tree is printed.
type Option func(*printer)

// UniqueNames gives distinct names to distinct variables sharing the same name hint.
// The first variable to occur keeps its hint. The next ones are suffixed with _1, _2, ...
func UniqueNames() Option {
	return func(p *printer) {
		p.unique = true
	}
}

// WithIDs appends the node ID of each variable to its name.
func WithIDs() Option {
	return func(p *printer) {
		p.withIDs = true
	}
}

func newPrinter(n ir.Node, opts []Option) *printer {
	p := &printer{names: ordered.NewMap[*ir.Var, string]()}
	for _, opt := range opts {
		opt(p)
	}
	if p.unique {
		p.assignUniqueNames(n)
	}
	return p
}

func (p *printer) assignUniqueNames(n ir.Node) {
	vars := ordered.NewSet[*ir.Var]()
	ir.Inspect(n, func(n ir.Node) bool {
		if v, ok := n.(*ir.Var); ok {
			vars.Add(v)
		}
		return true
	})
	names := uname.New()
	for _, v := range vars.Slice() {
		names.Register(v.Name())
	}
	seen := make(map[string]bool)
	for _, v := range vars.Slice() {
		name := v.Name()
		if seen[name] {
			name = names.Name(name)
		}
		seen[v.Name()] = true
		p.names.Store(v, name)
	}
}

func (p *printer) varName(v *ir.Var) string {
	name, ok := p.names.Load(v)
	if !ok {
		name = v.Name()
	}
	if p.withIDs {
		name = fmt.Sprintf("%s#%d", name, v.ID())
	}
	return name
}

func (p *printer) irPrinter() *ir.Printer {
	return &ir.Printer{VarName: p.varName}
}

// Fprint writes a single line representation of a node into w.
func Fprint(w io.Writer, n ir.Node, opts ...Option) error {
	return newPrinter(n, opts).irPrinter().Fprint(w, n)
}

// String returns a single line representation of a node.
func String(n ir.Node, opts ...Option) string {
	return newPrinter(n, opts).irPrinter().String(n)
}

// Tree returns a multi-line representation of a node listing the fields of every node.
func Tree(n ir.Node, opts ...Option) string {
	p := newPrinter(n, opts)
	return p.tree(n)
}

type field struct {
	name string
	val  string
}

func block(name string, fields ...field) string {
	var s strings.Builder
	s.WriteString(name)
	s.WriteString(" {")
	for _, f := range fields {
		if f.val == "" {
			continue
		}
		s.WriteString("\n\t")
		s.WriteString(f.name)
		s.WriteString(": ")
		s.WriteString(tirfmt.IndentSkip(1, f.val))
	}
	s.WriteString("\n}")
	return s.String()
}

func (p *printer) list(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	return "[\n" + stringseq.Join(stringseq.Map(items, tirfmt.Indent), "\n") + "\n]"
}

func (p *printer) tree(n ir.Node) string {
	switch nT := n.(type) {
	case nil:
		return "nil"
	case *ir.Var:
		if nT == nil {
			return "nil"
		}
		return fmt.Sprintf("Var{%s:%s}", p.varName(nT), nT.Type())
	case *ir.IntImm, *ir.UIntImm, *ir.FloatImm:
		return nT.String()
	case *ir.CastExpr:
		return block("Cast",
			field{"Type", nT.Type().String()},
			field{"X", p.tree(nT.X())},
		)
	case *ir.Binary:
		return block("Binary",
			field{"Op", nT.Op().String()},
			field{"X", p.tree(nT.X())},
			field{"Y", p.tree(nT.Y())},
		)
	case *ir.SelectExpr:
		return block("Select",
			field{"Cond", p.tree(nT.Cond())},
			field{"True", p.tree(nT.True())},
			field{"False", p.tree(nT.False())},
		)
	case *ir.Range:
		if nT == nil {
			return "none"
		}
		return block("Range",
			field{"Min", p.tree(nT.Min())},
			field{"Extent", p.tree(nT.Extent())},
		)
	case *ir.IterVar:
		return block("IterVar",
			field{"Var", p.tree(nT.Var())},
			field{"Dom", p.tree(nT.Dom())},
			field{"IterType", nT.IterType().String()},
			field{"ThreadTag", nT.ThreadTag()},
		)
	case *ir.Reduce:
		axes := make([]string, nT.NumAxes())
		for i, ax := range nT.Axis() {
			axes[i] = p.tree(ax)
		}
		return block("Reduce",
			field{"Op", nT.Op().String()},
			field{"Source", p.tree(nT.Source())},
			field{"Axis", p.list(axes)},
			field{"Identity", p.tree(nT.Identity())},
		)
	default:
		return fmt.Sprintf("%T not supported", nT)
	}
}
