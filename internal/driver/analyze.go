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

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/needlesspass/internal/eligibility"
	"fillmore-labs.com/needlesspass/internal/suggest"
	"fillmore-labs.com/needlesspass/internal/usage"
)

// Analyze decides for each parameter of fn whether it is needlessly passed by value.
//
// Functions are either skipped as a whole or fully analyzed: the body is
// traversed once, then every parameter is checked and, when eligible, a
// rewrite is planned.
func Analyze(ctx context.Context, fn Function, h Host) Result {
	if reason := fn.Shape().reason(); reason != NotSkipped {
		return Result{Skip: reason}
	}

	params := fn.Params()

	span := fn.Span()
	for _, c := range params {
		if !c.Span.IsValid() || c.Span == span {
			return Result{Skip: SkipSyntheticSpan}
		}
	}

	traits, err := eligibility.ResolveTraits(h)
	if err != nil {
		return Result{Skip: SkipMissingTrait, Err: err}
	}

	bounds := h.ElaborateBounds()

	var used usage.Result

	trace.WithRegion(ctx, "TrackUsage", func() {
		tracker := usage.New(fn.Tree())
		fn.Walk(tracker)
		used = tracker.Result()
	})

	defer trace.StartRegion(ctx, "CheckParams").End()

	var findings []Finding

	for _, c := range params {
		status := eligibility.Check(c, used, bounds, traits, h)
		if trace.IsEnabled() {
			trace.Logf(ctx, "param", "%s: %s", c.Name, status)
		}

		if status != eligibility.Eligible {
			continue
		}

		plan := suggest.Build(c, used, h)
		findings = append(findings, Finding{Candidate: c, Plan: plan})
	}

	return Result{Findings: findings}
}
