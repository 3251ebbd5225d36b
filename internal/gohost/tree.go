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

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/needlesspass/internal/astutil"
	"fillmore-labs.com/needlesspass/internal/place"
)

// tree gives parent access inside a function body.
// Switch statements are match-like, assignments and value specs are declarations.
type tree struct {
	in   *inspector.Inspector
	body astutil.NodeIndex
}

// Parent implements [usage.Tree].
func (t tree) Parent(n astutil.NodeIndex) (astutil.NodeIndex, bool) {
	if n == t.body || !n.Valid() {
		return astutil.InvalidNode, false
	}

	parent := n.Cursor(t.in).Parent()
	if parent.Node() == nil {
		return astutil.InvalidNode, false
	}

	return astutil.NodeIndexOf(parent), true
}

// Scrutinee implements [usage.Tree].
func (t tree) Scrutinee(n, from astutil.NodeIndex) (place.Span, bool) {
	kind, index := from.Cursor(t.in).ParentEdge()

	switch node := n.Node(t.in).(type) {
	case *ast.SwitchStmt:
		if kind == edge.SwitchStmt_Body && node.Tag != nil {
			return place.SpanOf(node.Tag), true
		}

	case *ast.AssignStmt:
		if kind == edge.AssignStmt_Lhs {
			return initializer(node.Rhs, index, len(node.Lhs))
		}

	case *ast.ValueSpec:
		if kind == edge.ValueSpec_Names {
			return initializer(node.Values, index, len(node.Names))
		}
	}

	return place.Span{}, false
}

// initializer returns the value paired with the name at index.
func initializer(values []ast.Expr, index, names int) (place.Span, bool) {
	switch {
	case len(values) == names && index >= 0 && index < names:
		return place.SpanOf(values[index]), true

	case len(values) == 1:
		return place.SpanOf(values[0]), true

	default:
		return place.Span{}, false
	}
}
