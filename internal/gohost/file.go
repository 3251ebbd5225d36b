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

package gohost

import (
	"go/ast"
	"regexp"
	"strings"

	"fillmore-labs.com/needlesspass/internal/astutil"
	"fillmore-labs.com/needlesspass/internal/place"
)

// File is a source file of the package.
type File struct {
	astutil.CurrentFile

	// src is the file content, nil when not available.
	src []byte

	// linknamed contains the local names of //go:linkname directives.
	linknamed map[string]bool
}

// NewFile prepares a file for analysis. src may be nil.
func NewFile(current astutil.CurrentFile, f *ast.File, src []byte) *File {
	linknamed := make(map[string]bool)

	for _, group := range f.Comments {
		for _, c := range group.List {
			rest, ok := strings.CutPrefix(c.Text, "//go:linkname ")
			if !ok {
				continue
			}

			if fields := strings.Fields(rest); len(fields) > 0 {
				linknamed[fields[0]] = true
			}
		}
	}

	return &File{CurrentFile: current, src: src, linknamed: linknamed}
}

// Snippet returns the source text of a span in this file.
func (f *File) Snippet(s place.Span) (string, bool) {
	if f.src == nil {
		return "", false
	}

	start, stop, ok := f.Offsets(s.Pos(), s.End())
	if !ok || stop > len(f.src) {
		return "", false
	}

	return string(f.src[start:stop]), true
}

// foreignDirectives mark functions implemented, called or constrained outside of Go.
var foreignDirectives = map[string]bool{
	// keep-sorted start
	"export":            true,
	"go:linkname":       true,
	"go:noescape":       true,
	"go:nosplit":        true,
	"go:systemstack":    true,
	"go:uintptrescapes": true,
	"go:wasmexport":     true,
	"go:wasmimport":     true,
	// keep-sorted end
}

func hasForeignDirective(doc *ast.CommentGroup) bool {
	for name := range astutil.DirectiveNames(doc) {
		if foreignDirectives[name] {
			return true
		}
	}

	return false
}

var generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// hasGeneratedMarker reports whether a doc comment declares the function as generated.
func hasGeneratedMarker(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		if generatedPattern.MatchString(c.Text) {
			return true
		}
	}

	return false
}
