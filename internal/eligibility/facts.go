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
	"errors"
	"fmt"
	"go/types"
)

// TraitID names a capability of a type.
type TraitID string

// Bound is a constraint of the function signature: Subject implements Trait with Args.
type Bound struct {
	Subject types.Type
	Trait   TraitID
	Args    []types.Type
}

// Facts answers type-level queries. Implementations must be safe for concurrent use.
type Facts interface {
	// IsDuplicable reports whether values of t are cheap to copy and carry no ownership.
	IsDuplicable(t types.Type) bool

	// IsMutablePointer reports whether t is a pointer through which the callee can mutate.
	IsMutablePointer(t types.Type) bool

	// Implements reports whether t implements trait with the given arguments.
	Implements(t types.Type, trait TraitID, args []types.Type) bool

	// LookupTrait resolves a well-known trait name.
	LookupTrait(name string) (TraitID, bool)

	// ElaborateBounds returns the non-global bounds of the function, including implied ones.
	ElaborateBounds() []Bound
}

// Well-known trait names resolved with [Facts.LookupTrait].
const (
	CallOnce      = "CallOnce"
	Call          = "Call"
	CallMut       = "CallMut"
	RangeArgument = "RangeArgument"
	Borrow        = "Borrow"
	Sized         = "Sized"
)

// ErrMissingTrait is returned when a well-known trait cannot be resolved.
var ErrMissingTrait = errors.New("trait not found")

// Traits holds the resolved well-known traits.
type Traits struct {
	// Whitelist contains traits that conventionally require ownership.
	Whitelist []TraitID

	Borrow, Sized TraitID
}

// ResolveTraits looks up all well-known traits.
func ResolveTraits(f Facts) (Traits, error) {
	var (
		traits  Traits
		missing []error
	)

	lookup := func(name string) TraitID {
		id, ok := f.LookupTrait(name)
		if !ok {
			missing = append(missing, fmt.Errorf("%w: %s", ErrMissingTrait, name))
		}

		return id
	}

	for _, name := range [...]string{Call, CallOnce, CallMut, RangeArgument} {
		traits.Whitelist = append(traits.Whitelist, lookup(name))
	}

	traits.Borrow = lookup(Borrow)
	traits.Sized = lookup(Sized)

	if len(missing) > 0 {
		return Traits{}, errors.Join(missing...)
	}

	return traits, nil
}

// ApplicableBounds returns the bounds with subject ty, without the trivial sized bound.
func ApplicableBounds(bounds []Bound, ty types.Type, sized TraitID) []Bound {
	var applicable []Bound

	for _, b := range bounds {
		if b.Trait == sized || !types.Identical(b.Subject, ty) {
			continue
		}

		applicable = append(applicable, b)
	}

	return applicable
}
