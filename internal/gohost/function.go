// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package gohost

import (
	"go/ast"
	"go/types"
	"slices"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/needlesspass/internal/astutil"
	"fillmore-labs.com/needlesspass/internal/driver"
	"fillmore-labs.com/needlesspass/internal/eligibility"
	"fillmore-labs.com/needlesspass/internal/place"
	"fillmore-labs.com/needlesspass/internal/usage"
)

// Function is a function or method declaration under analysis.
//
// A Function is not safe for concurrent use; each one is analyzed by a single goroutine.
type Function struct {
	*Package

	file   *File
	cursor inspector.Cursor
	decl   *ast.FuncDecl
	obj    *types.Func
	sig    *types.Signature

	scanned bool
	events  []place.Event

	// uses maps local variables to the cursors of their identifiers.
	uses map[*types.Var][]inspector.Cursor

	// mutable contains variables modified in place.
	mutable map[*types.Var]bool

	bounds []eligibility.Bound
	traits map[eligibility.TraitID]*types.Interface
}

var (
	_ driver.Function = (*Function)(nil)
	_ driver.Host     = (*Function)(nil)
)

// Function prepares the function declaration at c for analysis.
func (p *Package) Function(file *File, c inspector.Cursor) (*Function, bool) {
	decl, ok := c.Node().(*ast.FuncDecl)
	if !ok {
		return nil, false
	}

	obj, ok := p.info.Defs[decl.Name].(*types.Func)
	if !ok {
		return nil, false
	}

	sig, ok := obj.Type().(*types.Signature)
	if !ok {
		return nil, false
	}

	return &Function{
		Package: p,
		file:    file,
		cursor:  c,
		decl:    decl,
		obj:     obj,
		sig:     sig,
	}, true
}

// Name returns the declared name.
func (f *Function) Name() string {
	return f.obj.Name()
}

// Span implements [driver.Function].
func (f *Function) Span() place.Span {
	return place.SpanOf(f.decl)
}

// Shape implements [driver.Function].
func (f *Function) Shape() driver.Shape {
	var shape driver.Shape

	if f.decl.Body == nil || hasForeignDirective(f.decl.Doc) ||
		(f.decl.Recv == nil && f.file.linknamed[f.decl.Name.Name]) {
		shape |= driver.ForeignABI
	}

	if f.file.Remapped(f.decl.Pos()) {
		shape |= driver.MacroExpanded
	}

	if (f.file.Generated() && !f.config.IncludeGenerated) || hasGeneratedMarker(f.decl.Doc) {
		shape |= driver.Generated
	}

	if f.decl.Recv != nil && f.implementsInterface(f.obj) {
		shape |= driver.InterfaceMethod
	}

	if _, ok := f.funcValues[f.obj]; ok {
		shape |= driver.FuncValue
	}

	return shape
}

// Params implements [driver.Function].
func (f *Function) Params() []eligibility.Candidate {
	f.scan()

	var params []eligibility.Candidate

	if recv := f.sig.Recv(); recv != nil {
		for field, id := range astutil.AllFieldNames(f.decl.Recv) {
			c := f.candidate(len(params), field, id, recv)
			c.Receiver = true
			params = append(params, c)
		}
	}

	vars := slices.Collect(f.sig.Params().Variables())

	i := 0
	for field, id := range astutil.AllFieldNames(f.decl.Type.Params) {
		if i >= len(vars) {
			break
		}

		params = append(params, f.candidate(len(params), field, id, vars[i]))
		i++
	}

	return params
}

func (f *Function) candidate(index int, field *ast.Field, id *ast.Ident, v *types.Var) eligibility.Candidate {
	c := eligibility.Candidate{
		Index:      index,
		Type:       v.Type(),
		Span:       place.SpanOf(field.Type),
		TypeSpan:   place.SpanOf(field.Type),
		SharedType: len(field.Names) > 1,
	}

	if id != nil {
		c.Name = id.Name
		c.Span = place.NewSpan(id.Pos(), field.Type.End())

		if id.Name != "_" {
			c.Var = v
		}
	}

	if array, ok := field.Type.(*ast.ArrayType); ok && array.Len != nil {
		c.ElemSpan = place.SpanOf(array.Elt)
	}

	if c.Var != nil && f.mutable[c.Var] {
		c.Mode = eligibility.Mutable
	}

	return c
}

// Tree implements [driver.Function].
func (f *Function) Tree() usage.Tree {
	if f.decl.Body == nil {
		return nil
	}

	return tree{in: f.in, body: astutil.NodeIndexOf(f.body())}
}

// Walk implements [driver.Function].
func (f *Function) Walk(d usage.Delegate) {
	f.scan()

	for _, e := range f.events {
		usage.Dispatch(d, e)
	}
}

func (f *Function) body() inspector.Cursor {
	return f.cursor.ChildAt(edge.FuncDecl_Body, -1)
}

// ElaborateBounds implements [eligibility.Facts].
func (f *Function) ElaborateBounds() []eligibility.Bound {
	f.elaborate()

	return slices.Clone(f.bounds)
}

func (f *Function) elaborate() {
	if f.traits != nil {
		return
	}

	f.traits = make(map[eligibility.TraitID]*types.Interface)

	for _, list := range [...]*types.TypeParamList{f.sig.RecvTypeParams(), f.sig.TypeParams()} {
		if list == nil {
			continue
		}

		for tp := range list.TypeParams() {
			seen := make(map[eligibility.TraitID]bool)
			f.addBounds(tp, tp.Constraint(), seen)

			if _, ok := coreType(tp).(*types.Pointer); ok {
				f.bounds = append(f.bounds, eligibility.Bound{Subject: tp, Trait: traitPointer})
			}
		}
	}
}

// addBounds adds the constraint and the named interfaces it embeds.
func (f *Function) addBounds(subject *types.TypeParam, constraint types.Type, seen map[eligibility.TraitID]bool) {
	iface, ok := constraint.Underlying().(*types.Interface)
	if !ok {
		return
	}

	id := traitAny
	if !iface.Empty() {
		id = eligibility.TraitID(types.TypeString(constraint, nil))
	}

	if seen[id] {
		return
	}

	seen[id] = true

	if id != traitAny {
		f.traits[id] = iface
	}

	f.bounds = append(f.bounds, eligibility.Bound{Subject: subject, Trait: id})

	for e := range iface.EmbeddedTypes() {
		if _, ok := e.(*types.Union); ok {
			continue
		}

		if _, ok := e.Underlying().(*types.Interface); ok {
			f.addBounds(subject, e, seen)
		}
	}
}

// Implements implements [eligibility.Facts].
func (f *Function) Implements(t types.Type, trait eligibility.TraitID, _ []types.Type) bool {
	if implements, ok := implementsPseudo(t, trait); ok {
		return implements
	}

	f.elaborate()

	iface, ok := f.traits[trait]
	if !ok {
		return false
	}

	return types.Satisfies(t, iface)
}
