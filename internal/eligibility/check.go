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

package eligibility

import (
	"go/types"

	"fillmore-labs.com/needlesspass/internal/place"
)

// Mode is the binding mode of a parameter.
type Mode uint8

const (
	// ByValue binds the argument as an immutable copy.
	ByValue Mode = iota

	// ByRef binds a reference to the argument.
	ByRef

	// Mutable binds the argument as a modifiable copy.
	Mutable

	// RefMut binds a mutable reference to the argument.
	RefMut
)

// Candidate is a declared parameter.
type Candidate struct {
	// Index is the position in the parameter list, counting the receiver.
	Index int

	// Name is the declared name, empty for unnamed parameters.
	Name string

	// Var is the binding, nil for unnamed and blank parameters.
	Var *types.Var

	// Type is the static type.
	Type types.Type

	// Span covers the parameter's type expression; diagnostics are reported here.
	Span place.Span

	// TypeSpan is the extent replaced by a type edit.
	TypeSpan place.Span

	// ElemSpan is the element type of an array type expression, if visible.
	ElemSpan place.Span

	Mode Mode

	// Receiver marks the method receiver.
	Receiver bool

	// SharedType marks a parameter whose type expression also declares other names.
	SharedType bool
}

// MoveSet reports consumed bindings.
type MoveSet interface {
	Moved(v *types.Var) bool
}

// Check decides whether the candidate is needlessly passed by value.
// The first failing condition names the result.
func Check(c Candidate, moved MoveSet, bounds []Bound, traits Traits, facts Facts) Status {
	switch {
	case c.Receiver && c.Index == 0:
		return Receiver

	case facts.IsMutablePointer(c.Type):
		return MutablePointer

	case facts.IsDuplicable(c.Type):
		return Duplicable

	case implementsAny(facts, c.Type, traits.Whitelist):
		return Whitelisted
	}

	applicable := ApplicableBounds(bounds, c.Type, traits.Sized)

	switch {
	case hasTrait(applicable, traits.Borrow):
		return Borrowable

	case allBorrowable(facts, c.Type, applicable):
		return AllBorrowable

	case c.Var == nil:
		return NoBinding

	case c.Mode == Mutable || c.Mode == RefMut:
		return MutableBinding

	case moved.Moved(c.Var):
		return Moved

	default:
		return Eligible
	}
}

func implementsAny(facts Facts, ty types.Type, traits []TraitID) bool {
	for _, t := range traits {
		if facts.Implements(ty, t, nil) {
			return true
		}
	}

	return false
}

func hasTrait(bounds []Bound, trait TraitID) bool {
	for _, b := range bounds {
		if b.Trait == trait {
			return true
		}
	}

	return false
}

// allBorrowable reports whether a pointer to ty satisfies every bound. Zero bounds are not borrowable.
func allBorrowable(facts Facts, ty types.Type, bounds []Bound) bool {
	if len(bounds) == 0 {
		return false
	}

	ref := types.NewPointer(ty)
	for _, b := range bounds {
		if !facts.Implements(ref, b.Trait, b.Args) {
			return false
		}
	}

	return true
}
