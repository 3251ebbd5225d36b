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

// Package report turns analysis findings into diagnostics.
package report

import (
	"context"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/needlesspass/internal/astutil"
	"fillmore-labs.com/needlesspass/internal/driver"
	"fillmore-labs.com/needlesspass/internal/suggest"
)

// Findings emits a diagnostic for every finding of an analyzed function.
//
// The diagnostic covers the parameter. Planned edits are attached as a suggested fix when fixes is set,
// except for parameters sharing their type expression with other names, where the type edit would change
// them all. Every edit and note is also listed as related information, so the suggestion is visible without
// applying fixes.
func Findings(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, result driver.Result, fixes bool) {
	if len(result.Findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, f := range result.Findings {
		c, plan := f.Candidate, f.Plan

		if currentFile.NoLintComment(c.Span.Pos()) {
			continue
		}

		if plan.Inconsistent {
			astutil.InternalError(p, c.Span, "view rewrite of parameter %s with dereference sites", c.Name)
		}

		diagnostic := analysis.Diagnostic{
			Pos:     c.Span.Pos(),
			End:     c.Span.End(),
			Message: driver.Message,
			Related: related(plan),
		}

		if fixes && !c.SharedType && !plan.Inconsistent && len(plan.Edits) > 0 {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: plan.Message, TextEdits: textEdits(plan.Edits)}}
		}

		p.Report(diagnostic)
	}
}

// related lists the planned edits and notes.
func related(plan suggest.Plan) []analysis.RelatedInformation {
	info := make([]analysis.RelatedInformation, 0, len(plan.Edits)+len(plan.Notes))

	for _, e := range plan.Edits {
		msg := e.Message
		if msg == "" {
			msg = plan.Message
		}

		info = append(info, analysis.RelatedInformation{
			Pos:     e.Span.Pos(),
			End:     e.Span.End(),
			Message: fmt.Sprintf("%s: %s", msg, e.NewText),
		})
	}

	for _, n := range plan.Notes {
		info = append(info, analysis.RelatedInformation{Pos: n.Span.Pos(), End: n.Span.End(), Message: n.Message})
	}

	return info
}

func textEdits(edits []suggest.Edit) []analysis.TextEdit {
	textEdits := make([]analysis.TextEdit, 0, len(edits))
	for _, e := range edits {
		textEdits = append(textEdits, analysis.TextEdit{Pos: e.Span.Pos(), End: e.Span.End(), NewText: []byte(e.NewText)})
	}

	return textEdits
}
