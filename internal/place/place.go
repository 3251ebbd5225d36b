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

package place

import (
	"go/token"
	"go/types"
	"slices"
)

// Range is anything with a source extent, like an [ast.Node].
type Range interface {
	Pos() token.Pos
	End() token.Pos
}

// Span is a source extent.
type Span struct {
	pos, end token.Pos
}

// NewSpan creates a [Span] from start and end positions.
func NewSpan(pos, end token.Pos) Span {
	return Span{pos, end}
}

// SpanOf returns the [Span] covered by r.
func SpanOf(r Range) Span {
	return Span{r.Pos(), r.End()}
}

// Pos returns the start of the span.
func (s Span) Pos() token.Pos { return s.pos }

// End returns the end of the span.
func (s Span) End() token.Pos { return s.end }

// IsValid reports whether both positions are valid and ordered.
func (s Span) IsValid() bool {
	return s.pos.IsValid() && s.end.IsValid() && s.pos <= s.end
}

// Compare orders spans by start, then by end position.
func (s Span) Compare(o Span) int {
	if s.pos != o.pos {
		return int(s.pos - o.pos)
	}

	return int(s.end - o.end)
}

// ProjectionKind names a step from a place to one of its parts.
type ProjectionKind uint8

const (
	// Field selects a struct field.
	Field ProjectionKind = iota

	// Index selects an array element.
	Index

	// Downcast narrows an interface to a concrete type.
	Downcast

	// Deref follows a pointer or a reference-like value (slice, map, string).
	Deref
)

// Projection is one step of a [Place].
type Projection struct {
	Kind ProjectionKind

	// Name is the field name for [Field] projections.
	Name string

	// Type is the asserted type for [Downcast] projections.
	Type types.Type
}

// Interior reports whether the projection stays inside the memory of its base.
func (p Projection) Interior() bool {
	return p.Kind == Field || p.Kind == Index
}

// Place is a root binding plus a list of projections.
//
// Places are values; [Place.With] never modifies its receiver.
type Place struct {
	root *types.Var
	proj []Projection
	typ  types.Type
	span Span
}

// Local creates a place for the variable v used at span.
func Local(v *types.Var, span Span) Place {
	return Place{root: v, typ: v.Type(), span: span}
}

// Value creates a place without a local root, like a package variable or the result of a call.
func Value(t types.Type, span Span) Place {
	return Place{typ: t, span: span}
}

// With returns a new place extending p by one projection.
func (p Place) With(proj Projection, t types.Type, span Span) Place {
	return Place{
		root: p.root,
		proj: append(slices.Clip(p.proj), proj),
		typ:  t,
		span: span,
	}
}

// Root returns the root variable, or nil if the place has no local root.
func (p Place) Root() *types.Var { return p.root }

// Projections returns the projections from the root outward.
func (p Place) Projections() []Projection { return slices.Clip(p.proj) }

// Type returns the static type of the place.
func (p Place) Type() types.Type { return p.typ }

// Span returns the source extent of the place expression.
func (p Place) Span() Span { return p.span }
