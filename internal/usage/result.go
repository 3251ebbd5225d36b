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
	"iter"
	"maps"
	"slices"

	"fillmore-labs.com/needlesspass/internal/place"
)

// Result contains the usage information of one function body.
type Result struct {
	moved  map[*types.Var]struct{}
	derefs map[*types.Var][]place.Span
}

// Moved reports whether v was consumed in the body.
func (r Result) Moved(v *types.Var) bool {
	_, ok := r.moved[v]

	return ok
}

// MovedVars returns all consumed bindings, in no particular order.
func (r Result) MovedVars() iter.Seq[*types.Var] {
	return maps.Keys(r.moved)
}

// DerefSpans returns the spans that need a dereference when v becomes a reference, sorted by position.
func (r Result) DerefSpans(v *types.Var) []place.Span {
	return slices.Clip(r.derefs[v])
}

func sortedSpans(spans []place.Span) []place.Span {
	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, place.Span.Compare)

	return slices.Compact(sorted)
}
