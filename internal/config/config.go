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

package config

// Behavior represents behavioral options for the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// SuggestFixes determines whether diagnostics carry suggested fixes.
	SuggestFixes
)

// DefaultBehavior returns the default analyzer behavior.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask(SuggestFixes)
}

const (
	// DefaultSizeThreshold is the size in bytes from which a value counts as expensive to copy.
	DefaultSizeThreshold = 80

	// DefaultConcurrency is the number of functions of a file analyzed at the same time.
	DefaultConcurrency = 1
)
