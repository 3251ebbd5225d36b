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

// Package analyzer implements the needlesspass static analysis pass.
//
// # Overview
//
// NeedlessPass detects function parameters that are passed by value although
// the function body never consumes them. Such parameters are copied on every
// call; a pointer or a cheaper view type would do.
//
// # Example
//
// Before:
//
//	func total(o Order) int64 {  // Order is large
//	    return o.Price * o.Quantity
//	}
//
// After applying needlesspass's suggested fix:
//
//	func total(o *Order) int64 {
//	    return o.Price * o.Quantity
//	}
//
// Arrays are suggested to become slices and byte arrays strings, rewriting
// full slice expressions and string conversions of the parameter. Slicing an
// array parameter counts as modifying it, unless the slice is only passed to
// len, cap, copy (as source), bytes.Clone, slices.Clone or a string conversion.
//
// # Exclusions
//
// Parameters are not reported when they are cheap to copy (smaller than the
// size threshold, default 80 bytes, without locks or other no-copy types), are
// modified or consumed in the body, or are functions, channels or iterators.
// Methods implementing an interface, functions used as values, functions with
// compiler directives and generated code are skipped.
//
// # Known problems
//
// Suggesting a pointer takes flexibility away from callers, who then need an
// addressable value. Slices of array parameters passed to other functions are
// treated as modifications, even when the callee only reads them.
package analyzer
