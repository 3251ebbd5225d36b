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

package usage

import (
	"go/types"

	"fillmore-labs.com/needlesspass/internal/astutil"
	"fillmore-labs.com/needlesspass/internal/place"
)

// Tracker records moved bindings and dereference sites of a single function body.
type Tracker struct {
	tree Tree

	// moved is the set of bindings consumed somewhere in the body.
	moved map[*types.Var]struct{}

	// derefs maps bindings to the scrutinees of non-moving matches against them.
	derefs map[*types.Var][]place.Span
}

var _ Delegate = (*Tracker)(nil)

// New creates a [Tracker] for a function body.
func New(tree Tree) *Tracker {
	return &Tracker{
		tree:   tree,
		moved:  make(map[*types.Var]struct{}),
		derefs: make(map[*types.Var][]place.Span),
	}
}

// Move implements [Delegate].
func (t *Tracker) Move(p place.Place) {
	t.move(p)
}

// MatchingMove implements [Delegate].
func (t *Tracker) MatchingMove(_ astutil.NodeIndex, p place.Place) {
	t.move(p)
}

func (t *Tracker) move(p place.Place) {
	if v, ok := place.LocalVar(p); ok {
		t.moved[v] = struct{}{}
	}
}

// NonMovingMatch implements [Delegate].
func (t *Tracker) NonMovingMatch(pattern astutil.NodeIndex, p place.Place) {
	v, ok := place.LocalVar(p)
	if !ok {
		return
	}

	if span, ok := t.enclosingScrutinee(pattern); ok {
		t.derefs[v] = append(t.derefs[v], span)
	}
}

// Borrow implements [Delegate].
func (t *Tracker) Borrow(place.Place) {}

// Mutate implements [Delegate].
func (t *Tracker) Mutate(place.Place) {}

// enclosingScrutinee walks up from a pattern to the first match-like or declaration node.
func (t *Tracker) enclosingScrutinee(pattern astutil.NodeIndex) (place.Span, bool) {
	if t.tree == nil || !pattern.Valid() {
		return place.Span{}, false
	}

	for from := pattern; ; {
		parent, ok := t.tree.Parent(from)
		if !ok || parent == from || !parent.Valid() {
			return place.Span{}, false
		}

		if span, ok := t.tree.Scrutinee(parent, from); ok {
			return span, true
		}

		from = parent
	}
}

// Result returns the accumulated usage information.
func (t *Tracker) Result() Result {
	derefs := make(map[*types.Var][]place.Span, len(t.derefs))
	for v, spans := range t.derefs {
		derefs[v] = sortedSpans(spans)
	}

	moved := make(map[*types.Var]struct{}, len(t.moved))
	for v := range t.moved {
		moved[v] = struct{}{}
	}

	return Result{moved: moved, derefs: derefs}
}
