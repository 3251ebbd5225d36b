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
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/needlesspass/internal/eligibility"
	"fillmore-labs.com/needlesspass/internal/place"
	"fillmore-labs.com/needlesspass/internal/suggest"
)

// Snippet implements [suggest.Host].
func (f *Function) Snippet(s place.Span) (string, bool) {
	return f.file.Snippet(s)
}

// Container implements [suggest.Host].
//
// Unnamed byte arrays are text buffers with a string view, other unnamed arrays have a slice view.
func (f *Function) Container(t types.Type) suggest.Container {
	array, ok := types.Unalias(t).(*types.Array)
	if !ok {
		return suggest.NoContainer
	}

	if elem, ok := types.Unalias(array.Elem()).(*types.Basic); ok && elem.Kind() == types.Byte {
		return suggest.OwnedText
	}

	return suggest.OwnedArray
}

// DuplicableCandidate implements [suggest.Host].
func (f *Function) DuplicableCandidate(t types.Type) (place.Span, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return place.Span{}, false
	}

	obj := named.Obj()
	if obj.Pkg() != f.pkg || !obj.Pos().IsValid() {
		return place.Span{}, false
	}

	switch named.Underlying().(type) {
	case *types.Struct, *types.Array:
	default:
		return place.Span{}, false
	}

	if hasOwnership(named, nil) {
		return place.Span{}, false
	}

	return place.NewSpan(obj.Pos(), obj.Pos()+token.Pos(len(obj.Name()))), true
}

// ViewRewrites implements [suggest.Host].
//
// Full slices of the parameter become the parameter itself; for text,
// string conversions and clones of the full slice are simplified.
// Slices that are retained and uses that depend on the array type abort the rewrite.
func (f *Function) ViewRewrites(c eligibility.Candidate, k suggest.Container) ([]suggest.Rewrite, bool) {
	if c.Var == nil {
		return nil, false
	}

	f.scan()

	var rewrites []suggest.Rewrite

	for _, id := range f.uses[c.Var] {
		outer := id
		for kind, _ := outer.ParentEdge(); kind == edge.ParenExpr_X; kind, _ = outer.ParentEdge() {
			outer = outer.Parent()
		}

		kind, _ := outer.ParentEdge()
		parent := outer.Parent()

		switch kind {
		case edge.SliceExpr_X:
			rewrite, ok := f.sliceRewrite(parent, k, c.Var.Name())
			if !ok {
				return nil, false
			}

			if rewrite != nil {
				rewrites = append(rewrites, *rewrite)
			}

		case edge.SwitchStmt_Tag, edge.BinaryExpr_X, edge.BinaryExpr_Y,
			edge.AssignStmt_Rhs, edge.ValueSpec_Values:
			return nil, false

		case edge.RangeStmt_X:
			if k == suggest.OwnedText {
				return nil, false // ranging over a string yields runes
			}

		case edge.CallExpr_Args:
			if constantLength(f.info, parent) {
				return nil, false
			}
		}
	}

	return rewrites, true
}

// sliceRewrite handles a slice expression of the parameter.
func (f *Function) sliceRewrite(c inspector.Cursor, k suggest.Container, name string) (*suggest.Rewrite, bool) {
	slice := c.Node().(*ast.SliceExpr)
	full := slice.Low == nil && slice.High == nil && !slice.Slice3

	call, reader := sliceReaderOf(f.info, c)
	if reader == noReader {
		return nil, false
	}

	if k == suggest.OwnedArray {
		if !full {
			return nil, true
		}

		return &suggest.Rewrite{Span: place.SpanOf(slice), Replacement: name}, true
	}

	if slice.Slice3 {
		return nil, false
	}

	if !full {
		if reader != cloneCall {
			return nil, true // slicing a string yields a string
		}

		text, ok := f.Snippet(place.SpanOf(slice))
		if !ok {
			return nil, false
		}

		return &suggest.Rewrite{Span: place.SpanOf(slice), Replacement: "[]byte(" + text + ")"}, true
	}

	switch reader {
	case stringConversion:
		if tv := f.info.Types[call.Fun]; types.Identical(tv.Type, types.Typ[types.String]) {
			return &suggest.Rewrite{Span: place.SpanOf(call), Replacement: name}, true
		}

		return &suggest.Rewrite{Span: place.SpanOf(slice), Replacement: name}, true

	case cloneCall:
		return &suggest.Rewrite{Span: place.SpanOf(call), Replacement: "[]byte(" + name + ")"}, true

	default:
		return &suggest.Rewrite{Span: place.SpanOf(slice), Replacement: name}, true
	}
}

// constantLength reports whether the call is len or cap evaluated in a constant context.
func constantLength(info *types.Info, c inspector.Cursor) bool {
	call := c.Node().(*ast.CallExpr)

	builtin, ok := typeutil.Callee(info, call).(*types.Builtin)
	if !ok || (builtin.Name() != "len" && builtin.Name() != "cap") {
		return false
	}

	for e := range c.Enclosing((*ast.GenDecl)(nil), (*ast.ArrayType)(nil)) {
		switch n := e.Node().(type) {
		case *ast.GenDecl:
			if n.Tok == token.CONST {
				return true
			}

		case *ast.ArrayType:
			return true
		}
	}

	return false
}
