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

import "go/types"

// CategoryKind classifies the root of a place.
type CategoryKind uint8

const (
	// CategoryOther is a place without a local root.
	CategoryOther CategoryKind = iota

	// CategoryLocal is a place stored inside a local binding.
	CategoryLocal

	// CategoryDeref is a place reached through a dereference.
	CategoryDeref
)

// Category is the result of [Unwrap].
type Category struct {
	Kind CategoryKind
	Var  *types.Var
}

// Unwrap skips field, index and downcast projections and reports where the place lives.
// Accesses to parts of a binding are attributed to the binding itself.
func Unwrap(p Place) Category {
	if p.root == nil {
		return Category{Kind: CategoryOther}
	}

	for i := len(p.proj) - 1; i >= 0; i-- {
		if p.proj[i].Kind == Deref {
			return Category{Kind: CategoryDeref}
		}
	}

	return Category{Kind: CategoryLocal, Var: p.root}
}

// LocalVar returns the binding p is stored in, if any.
func LocalVar(p Place) (*types.Var, bool) {
	c := Unwrap(p)

	return c.Var, c.Kind == CategoryLocal
}
