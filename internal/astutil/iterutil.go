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

package astutil

import (
	"go/ast"
	"iter"
)

// AllFieldNames yields every field of the list together with each of its names.
// Unnamed fields are yielded once with a nil name.
func AllFieldNames(list *ast.FieldList) iter.Seq2[*ast.Field, *ast.Ident] {
	return func(yield func(*ast.Field, *ast.Ident) bool) {
		if list == nil {
			return
		}

		for _, field := range list.List {
			if len(field.Names) == 0 {
				if !yield(field, nil) {
					return
				}

				continue
			}

			for _, id := range field.Names {
				if !yield(field, id) {
					return
				}
			}
		}
	}
}

// DirectiveNames yields the names of all //go: and //export directives in a comment group.
func DirectiveNames(doc *ast.CommentGroup) iter.Seq[string] {
	return func(yield func(string) bool) {
		if doc == nil {
			return
		}

		for _, c := range doc.List {
			name, ok := directiveName(c.Text)
			if !ok {
				continue
			}

			if !yield(name) {
				return
			}
		}
	}
}

// directiveName extracts "go:linkname" from "//go:linkname x y" and "export" from "//export x".
func directiveName(text string) (string, bool) {
	const prefix = "//"
	if len(text) <= len(prefix) || text[:len(prefix)] != prefix {
		return "", false
	}

	text = text[len(prefix):]

	end := 0
	for end < len(text) && text[end] != ' ' && text[end] != '\t' {
		end++
	}

	switch name := text[:end]; {
	case name == "export":
		return name, true

	case len(name) > 3 && name[:3] == "go:":
		return name, true

	default:
		return "", false
	}
}
