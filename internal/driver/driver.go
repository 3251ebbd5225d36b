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

// Package driver runs the needless pass-by-value analysis for a single function.
package driver

import (
	"fillmore-labs.com/needlesspass/internal/eligibility"
	"fillmore-labs.com/needlesspass/internal/place"
	"fillmore-labs.com/needlesspass/internal/suggest"
	"fillmore-labs.com/needlesspass/internal/usage"
)

// Message is the diagnostic message for a needlessly owned parameter.
const Message = "this argument is passed by value, but not consumed in the function body"

// Shape describes properties of a function that exclude it from analysis.
type Shape uint8

const (
	// ForeignABI functions are implemented or called outside of Go.
	ForeignABI Shape = 1 << iota

	// MacroExpanded functions are produced from another source.
	MacroExpanded

	// Generated functions are written by a code generator.
	Generated

	// InterfaceMethod functions implement an interface, so their signature is fixed.
	InterfaceMethod

	// FuncValue functions are used as values, so their signature is fixed by the context.
	FuncValue
)

// Function is a function to analyze.
type Function interface {
	// Span covers the whole function declaration.
	Span() place.Span

	// Shape returns the properties of the function.
	Shape() Shape

	// Params returns the receiver and parameters in declaration order.
	Params() []eligibility.Candidate

	// Tree returns the syntax tree of the body.
	Tree() usage.Tree

	// Walk reports all uses of places in the body to d.
	Walk(d usage.Delegate)
}

// Host answers type and source queries.
type Host interface {
	eligibility.Facts
	suggest.Host
}

// Finding is a parameter that is needlessly passed by value.
type Finding struct {
	Candidate eligibility.Candidate
	Plan      suggest.Plan
}

// Result is the outcome of [Analyze].
type Result struct {
	// Skip is the reason the function was not analyzed, [NotSkipped] otherwise.
	Skip SkipReason

	// Err is the error that caused a skip, if any.
	Err error

	// Findings contains the flagged parameters in declaration order.
	Findings []Finding
}
