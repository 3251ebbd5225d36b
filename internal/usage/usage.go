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

// Package usage tracks which local bindings of a function body are consumed
// and where a by-reference rewrite needs explicit dereferences.
package usage

import (
	"fillmore-labs.com/needlesspass/internal/astutil"
	"fillmore-labs.com/needlesspass/internal/place"
)

// Delegate receives usage events from a traversal of a function body.
type Delegate interface {
	// Move is called when a place is consumed.
	Move(p place.Place)

	// MatchingMove is called when a pattern consumes a place.
	MatchingMove(pattern astutil.NodeIndex, p place.Place)

	// NonMovingMatch is called when a pattern inspects a place without consuming it.
	NonMovingMatch(pattern astutil.NodeIndex, p place.Place)

	// Borrow is called when a place is referenced.
	Borrow(p place.Place)

	// Mutate is called when a place is referenced for modification.
	Mutate(p place.Place)
}

// Dispatch routes an event to the matching handler of d.
func Dispatch(d Delegate, e place.Event) {
	switch e.Kind {
	case place.Move:
		d.Move(e.Place)

	case place.MatchingMove:
		d.MatchingMove(e.Pattern, e.Place)

	case place.NonMovingMatch:
		d.NonMovingMatch(e.Pattern, e.Place)

	case place.Borrow:
		d.Borrow(e.Place)

	case place.Mutate:
		d.Mutate(e.Place)
	}
}

// Tree gives access to the syntax tree of the function body.
type Tree interface {
	// Parent returns the parent of n, or false at the root of the body.
	Parent(n astutil.NodeIndex) (astutil.NodeIndex, bool)

	// Scrutinee returns the discriminee of a match-like node n or the initializer of a declaration n
	// that pairs with the child from. It returns false for all other nodes.
	Scrutinee(n, from astutil.NodeIndex) (place.Span, bool)
}
