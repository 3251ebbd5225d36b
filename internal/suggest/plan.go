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

package suggest

import (
	"fmt"
	"go/types"
	"slices"

	"fillmore-labs.com/needlesspass/internal/eligibility"
	"fillmore-labs.com/needlesspass/internal/place"
)

// Messages of planned edits.
const (
	MessageReference  = "consider taking a pointer instead"
	MessageChangeType = "consider changing the type to"
	MessageChangeCall = "change the call to"
	MessageDuplicable = "consider making this type cheap to copy"
)

// Placeholders used when the source text is not available.
const (
	placeholderType = "_"
	placeholderExpr = "<expr>"
)

// DerefSpans provides the dereference sites of a binding.
type DerefSpans interface {
	DerefSpans(v *types.Var) []place.Span
}

// Build plans the rewrite of an eligible candidate.
func Build(c eligibility.Candidate, usage DerefSpans, h Host) Plan {
	var derefs []place.Span
	if c.Var != nil {
		derefs = usage.DerefSpans(c.Var)
	}

	var plan Plan

	switch k := h.Container(c.Type); k {
	case OwnedArray:
		if !c.ElemSpan.IsValid() {
			break
		}

		rewrites, ok := h.ViewRewrites(c, k)
		if !ok {
			break
		}

		plan = view(h, c, SliceView, "[]"+snippet(h, c.ElemSpan, placeholderType), rewrites, derefs)

	case OwnedText:
		rewrites, ok := h.ViewRewrites(c, k)
		if !ok {
			break
		}

		plan = view(h, c, TextView, "string", rewrites, derefs)
	}

	if plan.Message == "" {
		plan = reference(h, c, derefs)
	}

	if span, ok := h.DuplicableCandidate(c.Type); ok {
		plan.Notes = append(plan.Notes, Note{Span: span, Message: MessageDuplicable})
	}

	return plan
}

func view(h Host, c eligibility.Candidate, kind Kind, newType string, rewrites []Rewrite, derefs []place.Span) Plan {
	edits := make([]Edit, 0, 1+len(rewrites))
	edits = append(edits, Edit{Span: c.TypeSpan, NewText: newType, Message: MessageChangeType})

	for _, r := range rewrites {
		msg := MessageChangeCall
		if text, ok := h.Snippet(r.Span); ok {
			msg = fmt.Sprintf("change `%s` to", text)
		}

		edits = append(edits, Edit{Span: r.Span, NewText: r.Replacement, Message: msg})
	}

	sortEdits(edits)

	return Plan{
		Kind:         kind,
		Message:      MessageChangeType,
		Edits:        edits,
		Inconsistent: len(derefs) > 0,
	}
}

func reference(h Host, c eligibility.Candidate, derefs []place.Span) Plan {
	edits := make([]Edit, 0, 1+len(derefs))
	edits = append(edits, Edit{Span: c.TypeSpan, NewText: "*" + snippet(h, c.TypeSpan, placeholderType)})

	for _, span := range derefs {
		edits = append(edits, Edit{Span: span, NewText: "*" + snippet(h, span, placeholderExpr)})
	}

	sortEdits(edits)

	return Plan{Kind: Reference, Message: MessageReference, Edits: edits}
}

func snippet(h Host, s place.Span, placeholder string) string {
	if text, ok := h.Snippet(s); ok {
		return text
	}

	return placeholder
}

func sortEdits(edits []Edit) {
	slices.SortStableFunc(edits, func(a, b Edit) int { return a.Span.Compare(b.Span) })
}
