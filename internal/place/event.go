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

import "fillmore-labs.com/needlesspass/internal/astutil"

//go:generate go tool stringer -type EventKind -linecomment

// EventKind distinguishes the ways a place is used.
type EventKind uint8

const (
	// Move consumes the value; the original binding cannot be used as owner afterwards.
	Move EventKind = iota // move

	// MatchingMove is a pattern match that consumes the value.
	MatchingMove // matchmove

	// NonMovingMatch is a pattern match that inspects the value without consuming it.
	NonMovingMatch // match

	// Borrow references the value.
	Borrow // borrow

	// Mutate references the value for modification.
	Mutate // mutate
)

// Event is a single use of a place.
type Event struct {
	Kind  EventKind
	Place Place

	// Pattern is the pattern node of match events, [astutil.InvalidNode] otherwise.
	Pattern astutil.NodeIndex
}
