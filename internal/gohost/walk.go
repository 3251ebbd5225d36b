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

	"fillmore-labs.com/needlesspass/internal/astutil"
	"fillmore-labs.com/needlesspass/internal/place"
)

// scan traverses the body once and records the usage events of all local variables.
func (f *Function) scan() {
	if f.scanned {
		return
	}

	f.scanned = true
	f.uses = make(map[*types.Var][]inspector.Cursor)
	f.mutable = make(map[*types.Var]bool)

	if f.decl.Body == nil {
		return
	}

	for c := range f.body().Preorder((*ast.Ident)(nil)) {
		v, ok := f.info.Uses[c.Node().(*ast.Ident)].(*types.Var)
		if !ok || !isLocal(v) {
			continue
		}

		f.uses[v] = append(f.uses[v], c)
		f.classify(c, v)
	}
}

// isLocal reports whether v is a parameter or a variable declared inside a function.
func isLocal(v *types.Var) bool {
	if v.IsField() || v.Parent() == nil {
		return false
	}

	return v.Pkg() == nil || v.Parent() != v.Pkg().Scope()
}

// placeOf climbs from an identifier through selectors, index and dereference expressions
// to the outermost expression denoting a part of v.
func (f *Function) placeOf(c inspector.Cursor, v *types.Var) (place.Place, inspector.Cursor) {
	p := place.Local(v, place.SpanOf(c.Node()))

	for {
		kind, _ := c.ParentEdge()
		parent := c.Parent()
		span := place.SpanOf(parent.Node())

		switch kind {
		case edge.ParenExpr_X:

		case edge.SelectorExpr_X:
			sel := f.info.Selections[parent.Node().(*ast.SelectorExpr)]
			if sel == nil || sel.Kind() != types.FieldVal {
				return p, c
			}

			if sel.Indirect() {
				p = p.With(place.Projection{Kind: place.Deref}, nil, span)
			}

			p = p.With(place.Projection{Kind: place.Field, Name: sel.Obj().Name()}, sel.Type(), span)

		case edge.IndexExpr_X:
			index := parent.Node().(*ast.IndexExpr)
			if tv, ok := f.info.Types[index.Index]; ok && tv.IsType() {
				return p, c // instantiation
			}

			if _, ok := coreType(f.info.TypeOf(index.X)).(*types.Array); !ok {
				p = p.With(place.Projection{Kind: place.Deref}, nil, span)
			}

			p = p.With(place.Projection{Kind: place.Index}, f.info.TypeOf(index), span)

		case edge.StarExpr_X:
			p = p.With(place.Projection{Kind: place.Deref}, f.info.TypeOf(parent.Node().(ast.Expr)), span)

		case edge.TypeAssertExpr_X:
			assert := parent.Node().(*ast.TypeAssertExpr)
			if assert.Type == nil {
				return p, c // type switch guard
			}

			t := f.info.TypeOf(assert.Type)
			p = p.With(place.Projection{Kind: place.Downcast, Type: t}, t, span)

		default:
			return p, c
		}

		c = parent
	}
}

// classify reports the use of the identifier at c according to its context.
func (f *Function) classify(c inspector.Cursor, v *types.Var) {
	p, outer := f.placeOf(c, v)
	kind, index := outer.ParentEdge()
	parent := outer.Parent()

	switch kind {
	case edge.AssignStmt_Lhs, edge.IncDecStmt_X, edge.RangeStmt_Key, edge.RangeStmt_Value:
		f.mutate(p)

	case edge.UnaryExpr_X:
		if parent.Node().(*ast.UnaryExpr).Op == token.AND {
			f.mutate(p)
		} else {
			f.borrow(p)
		}

	case edge.SelectorExpr_X:
		f.methodUse(p, parent)

	case edge.CallExpr_Args:
		f.argument(p, parent.Node().(*ast.CallExpr))

	case edge.SliceExpr_X:
		if t := p.Type(); t != nil && isArray(t) {
			if _, reader := sliceReaderOf(f.info, parent); reader == noReader {
				f.mutate(p) // x[:] is (&x)[:]

				break
			}
		}

		f.borrow(p)

	case edge.CallExpr_Fun,
		edge.ExprStmt_X,
		edge.RangeStmt_X,
		edge.TypeAssertExpr_X:
		f.borrow(p)

	case edge.BinaryExpr_X, edge.BinaryExpr_Y:
		if isComparison(parent.Node().(*ast.BinaryExpr).Op) && len(p.Projections()) == 0 {
			f.value(p)
		} else {
			f.borrow(p)
		}

	case edge.SwitchStmt_Tag:
		if len(p.Projections()) > 0 || f.IsDuplicable(p.Type()) {
			f.borrow(p)

			break
		}

		for clause := range parent.ChildAt(edge.SwitchStmt_Body, -1).Children() {
			f.emit(place.NonMovingMatch, p, astutil.NodeIndexOf(clause))
		}

	case edge.AssignStmt_Rhs:
		stmt := parent.Node().(*ast.AssignStmt)
		if len(stmt.Lhs) == len(stmt.Rhs) && isBlank(stmt.Lhs[index]) {
			f.emit(place.NonMovingMatch, p, astutil.NodeIndexOf(parent.ChildAt(edge.AssignStmt_Lhs, index)))

			break
		}

		f.value(p)

	case edge.ValueSpec_Values:
		spec := parent.Node().(*ast.ValueSpec)
		if len(spec.Names) == len(spec.Values) && isBlank(spec.Names[index]) {
			f.emit(place.NonMovingMatch, p, astutil.NodeIndexOf(parent.ChildAt(edge.ValueSpec_Names, index)))

			break
		}

		f.value(p)

	default:
		f.value(p)
	}
}

// methodUse classifies the receiver of a method call or method value.
func (f *Function) methodUse(p place.Place, selCursor inspector.Cursor) {
	sel := f.info.Selections[selCursor.Node().(*ast.SelectorExpr)]
	if sel == nil || sel.Kind() != types.MethodVal {
		f.borrow(p)

		return
	}

	if pointerReceiver(sel) && !sel.Indirect() && !isPointer(p.Type()) {
		f.mutate(p) // implicit &x

		return
	}

	if isCallee(selCursor) {
		f.borrow(p)

		return
	}

	f.value(p) // method value copies the receiver
}

// argument classifies a place passed to a function, builtin or conversion.
func (f *Function) argument(p place.Place, call *ast.CallExpr) {
	if builtin, ok := typeutil.Callee(f.info, call).(*types.Builtin); ok {
		switch builtin.Name() {
		case "append", "panic":
			f.value(p)

		default:
			f.borrow(p)
		}

		return
	}

	f.value(p)
}

// sliceReader is a call that reads a slice without retaining or modifying it.
type sliceReader uint8

const (
	noReader         sliceReader = iota
	stringConversion             // string(x[:])
	cloneCall                    // bytes.Clone(x[:]), slices.Clone(x[:])
	builtinReader                // len, cap or the source of copy
)

// sliceReaderOf returns the call that only reads the slice expression at c.
func sliceReaderOf(info *types.Info, c inspector.Cursor) (*ast.CallExpr, sliceReader) {
	for kind, _ := c.ParentEdge(); kind == edge.ParenExpr_X; kind, _ = c.ParentEdge() {
		c = c.Parent()
	}

	kind, index := c.ParentEdge()
	if kind != edge.CallExpr_Args {
		return nil, noReader
	}

	call := c.Parent().Node().(*ast.CallExpr)

	if tv, ok := info.Types[call.Fun]; ok && tv.IsType() {
		if b, ok := tv.Type.Underlying().(*types.Basic); ok && b.Kind() == types.String {
			return call, stringConversion
		}

		return nil, noReader
	}

	switch callee := typeutil.Callee(info, call).(type) {
	case *types.Builtin:
		switch callee.Name() {
		case "len", "cap":
			return call, builtinReader

		case "copy":
			if index == 1 {
				return call, builtinReader
			}
		}

	case *types.Func:
		switch callee.Origin().FullName() {
		case "bytes.Clone", "slices.Clone":
			return call, cloneCall
		}
	}

	return nil, noReader
}

// value classifies a use that copies the place: a move unless its type is duplicable.
func (f *Function) value(p place.Place) {
	if t := p.Type(); t != nil && f.IsDuplicable(t) {
		f.borrow(p)

		return
	}

	f.emit(place.Move, p, astutil.InvalidNode)
}

func (f *Function) borrow(p place.Place) {
	f.emit(place.Borrow, p, astutil.InvalidNode)
}

func (f *Function) mutate(p place.Place) {
	if v, ok := place.LocalVar(p); ok {
		f.mutable[v] = true
	}

	f.emit(place.Mutate, p, astutil.InvalidNode)
}

func (f *Function) emit(kind place.EventKind, p place.Place, pattern astutil.NodeIndex) {
	f.events = append(f.events, place.Event{Kind: kind, Place: p, Pattern: pattern})
}

// isCallee reports whether the expression at c is called, looking through parentheses and instantiations.
func isCallee(c inspector.Cursor) bool {
	for {
		switch kind, _ := c.ParentEdge(); kind {
		case edge.ParenExpr_X, edge.IndexExpr_X, edge.IndexListExpr_X:
			c = c.Parent()

		case edge.CallExpr_Fun:
			return true

		default:
			return false
		}
	}
}

func pointerReceiver(sel *types.Selection) bool {
	fn, ok := sel.Obj().(*types.Func)
	if !ok {
		return false
	}

	recv := fn.Signature().Recv()

	return recv != nil && isPointer(recv.Type())
}

func isPointer(t types.Type) bool {
	_, ok := types.Unalias(t).Underlying().(*types.Pointer)

	return ok
}

func isComparison(op token.Token) bool {
	switch op {
	case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ:
		return true

	default:
		return false
	}
}

func isBlank(e ast.Expr) bool {
	id, ok := ast.Unparen(e).(*ast.Ident)

	return ok && id.Name == "_"
}

func isArray(t types.Type) bool {
	_, ok := coreType(t).(*types.Array)

	return ok
}
