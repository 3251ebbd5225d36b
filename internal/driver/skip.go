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

package driver

//go:generate go tool stringer -type SkipReason -linecomment

// SkipReason tells why a function was not analyzed.
type SkipReason uint8

const (
	// NotSkipped functions were analyzed.
	NotSkipped SkipReason = iota // analyzed

	// SkipForeignABI functions have a [ForeignABI] shape.
	SkipForeignABI // abi

	// SkipMacroExpanded functions have a [MacroExpanded] shape.
	SkipMacroExpanded // expanded

	// SkipGenerated functions have a [Generated] shape.
	SkipGenerated // generated

	// SkipInterfaceMethod functions have an [InterfaceMethod] shape.
	SkipInterfaceMethod // interface

	// SkipFuncValue functions have a [FuncValue] shape.
	SkipFuncValue // funcvalue

	// SkipMissingTrait functions can't be analyzed without a well-known trait.
	SkipMissingTrait // trait

	// SkipSyntheticSpan functions have unreliable parameter positions.
	SkipSyntheticSpan // span
)

var shapeReasons = [...]struct {
	shape  Shape
	reason SkipReason
}{
	{ForeignABI, SkipForeignABI},
	{MacroExpanded, SkipMacroExpanded},
	{Generated, SkipGenerated},
	{InterfaceMethod, SkipInterfaceMethod},
	{FuncValue, SkipFuncValue},
}

// reason returns the skip reason for the first flag set in s.
func (s Shape) reason() SkipReason {
	for _, r := range shapeReasons {
		if s&r.shape != 0 {
			return r.reason
		}
	}

	return NotSkipped
}
