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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/needlesspass/internal/astutil"
	"fillmore-labs.com/needlesspass/internal/config"
	"fillmore-labs.com/needlesspass/internal/driver"
	"fillmore-labs.com/needlesspass/internal/gohost"
	"fillmore-labs.com/needlesspass/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the needlesspass analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("needlesspass: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "NeedlessPass")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	includeGenerated := r.Behavior.Enabled(config.IncludeGenerated)

	pkg := gohost.NewPackage(p.Fset, p.Pkg, p.TypesInfo, p.TypesSizes, in, gohost.Config{
		SizeThreshold:    r.SizeThreshold,
		IncludeGenerated: includeGenerated,
	})

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !includeGenerated {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc) {
			continue
		}

		var src []byte
		if p.ReadFile != nil {
			src, _ = p.ReadFile(currentFile.Name()) // snippets fall back to placeholders
		}

		if err := r.analyzeFile(ctx, p, pkg, gohost.NewFile(currentFile, file, src), f); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// analyzeFile analyzes all function and method declarations of a file and reports the findings in source order.
func (r *Options) analyzeFile(ctx context.Context, p *analysis.Pass, pkg *gohost.Package, file *gohost.File, f inspector.Cursor) error {
	var funcs []*gohost.Function

	for c := range f.Preorder((*ast.FuncDecl)(nil)) {
		decl := c.Node().(*ast.FuncDecl)

		// Skip functions with nolint comment
		if astutil.DocHasNoLint(decl.Doc) {
			continue
		}

		fn, ok := pkg.Function(file, c)
		if !ok {
			astutil.InternalError(p, decl, "Function %s without type information", decl.Name.Name)

			continue
		}

		funcs = append(funcs, fn)
	}

	if len(funcs) == 0 {
		return nil
	}

	results := make([]driver.Result, len(funcs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Concurrency, 1))

	for i, fn := range funcs {
		g.Go(func() error {
			results[i] = driver.Analyze(gctx, fn, fn)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fixes := r.Behavior.Enabled(config.SuggestFixes)

	for i, result := range results {
		if result.Err != nil && trace.IsEnabled() {
			trace.Logf(ctx, "skip", "%s: %v", funcs[i].Name(), result.Err)
		}

		report.Findings(ctx, p, file.CurrentFile, result, fixes)
	}

	return nil
}
