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

package gclplugin

import needlesspass "fillmore-labs.com/needlesspass/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// SuggestFixes attaches suggested fixes to diagnostics.
	SuggestFixes *bool `json:"suggest-fixes,omitzero"`
	// SizeThreshold sets the size in bytes from which a parameter is expensive to copy.
	SizeThreshold *int64 `json:"size-threshold,omitzero"`
	// Concurrency sets the number of functions of a file analyzed at the same time.
	Concurrency *int `json:"concurrency,omitzero"`
}

// Options converts [Settings] into a list of [needlesspass.Option] for the needlesspass analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []needlesspass.Option {
	var opts []needlesspass.Option

	opts = appendOption(opts, s.SuggestFixes, needlesspass.WithSuggestFixes)
	opts = appendOption(opts, s.SizeThreshold, needlesspass.WithSizeThreshold)
	opts = appendOption(opts, s.Concurrency, needlesspass.WithConcurrency)

	return opts
}

// appendOption appends a non-nil setting to a [needlesspass.Option] list.
func appendOption[T any](opts []needlesspass.Option, value *T, constructor func(T) needlesspass.Option) []needlesspass.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
