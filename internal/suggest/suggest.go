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

// Package suggest plans the rewrite of a needlessly owned parameter.
package suggest

import (
	"go/types"

	"fillmore-labs.com/needlesspass/internal/eligibility"
	"fillmore-labs.com/needlesspass/internal/place"
)

// Container classifies owned container types that have a cheaper view type.
type Container uint8

const (
	// NoContainer is any other type.
	NoContainer Container = iota

	// OwnedArray is an array with a slice view.
	OwnedArray

	// OwnedText is a byte buffer with a string view.
	OwnedText
)

// Rewrite replaces the text at Span with Replacement.
type Rewrite struct {
	Span        place.Span
	Replacement string
}

// Host supplies source text and container knowledge.
type Host interface {
	// Snippet returns the source text of a span.
	Snippet(s place.Span) (string, bool)

	// Container classifies t.
	Container(t types.Type) Container

	// ViewRewrites returns the rewrites of all uses of the candidate in the body
	// needed when its type becomes the view type of k. It returns false when
	// some use can't be rewritten.
	ViewRewrites(c eligibility.Candidate, k Container) ([]Rewrite, bool)

	// DuplicableCandidate returns the declaration of t if it is a type of this package
	// that could be made cheap to copy.
	DuplicableCandidate(t types.Type) (place.Span, bool)
}

// Kind is the shape of a [Plan].
type Kind uint8

const (
	// Reference turns the parameter into a pointer.
	Reference Kind = iota

	// SliceView turns an array parameter into a slice.
	SliceView

	// TextView turns a byte buffer parameter into a string.
	TextView
)

// Edit is a single suggested text edit.
type Edit struct {
	Span    place.Span
	NewText string

	// Message describes the edit, empty for the type edit of a reference plan.
	Message string
}

// Note is an advisory remark that doesn't change the fix.
type Note struct {
	Span    place.Span
	Message string
}

// Plan is the suggested rewrite of one parameter.
type Plan struct {
	Kind    Kind
	Message string
	Edits   []Edit
	Notes   []Note

	// Inconsistent marks a view plan for a binding with recorded dereference sites.
	Inconsistent bool
}
