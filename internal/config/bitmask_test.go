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

package config_test

import (
	"testing"

	. "fillmore-labs.com/needlesspass/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := DefaultBehavior()

	if b.Enabled(IncludeGenerated) {
		t.Error("IncludeGenerated enabled by default")
	}

	if !b.Enabled(SuggestFixes) {
		t.Error("SuggestFixes disabled by default")
	}

	b.Set(IncludeGenerated, true)
	b.Set(SuggestFixes, false)

	if !b.Enabled(IncludeGenerated) || b.Enabled(SuggestFixes) {
		t.Errorf("Set did not toggle flags: %+v", b)
	}

	b.Disable(IncludeGenerated)
	b.Enable(SuggestFixes)

	if got, want := b, NewBitMask(SuggestFixes); got != want {
		t.Errorf("Got %+v, want %+v", got, want)
	}
}
