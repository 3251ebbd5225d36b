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

package gohost_test

import (
	"go/types"
	"testing"

	. "fillmore-labs.com/needlesspass/internal/gohost"
	"fillmore-labs.com/needlesspass/internal/testsource"
)

const factsSource = `package test

import (
	"strings"
	"sync"
	"unsafe"
)

type Small struct{ a, b int }

type Big [10]int64

type Guarded struct{ mu sync.Mutex }

type Builder struct{ b strings.Builder }

type noCopy struct{}

type Marked struct{ _ noCopy }

type Pair[T any] struct{ a, b T }

func params[T any, A ~[100]int, P ~*int, U ~[100]int | ~[200]int, M ~int8 | ~int64](
	small Small, big Big, guarded Guarded, builder Builder, marked Marked,
	t T, a A, p P, u U, m M, pair Pair[T], arr [8]T, union [2]M,
	ptr *int, raw unsafe.Pointer, fn func(), s []Big,
) {
}
`

func TestFacts(t *testing.T) {
	t.Parallel()

	s := testsource.Parse(t, factsSource)
	pkg := NewPackage(s.Fset, s.Pkg, s.Info, nil, s.In, Config{SizeThreshold: 80})

	fn, ok := s.Pkg.Scope().Lookup("params").(*types.Func)
	if !ok {
		t.Fatal("Can't find function params")
	}

	paramTypes := make(map[string]types.Type)
	for v := range fn.Signature().Params().Variables() {
		paramTypes[v.Name()] = v.Type()
	}

	tests := []struct {
		name           string
		duplicable     bool
		mutablePointer bool
	}{
		{"small", true, false},
		{"big", false, false},
		{"guarded", false, false},
		{"builder", false, false},
		{"marked", false, false},
		{"t", true, false},
		{"a", false, false},
		{"p", true, true},
		{"u", false, false},
		{"m", true, false},
		{"pair", true, false},
		{"arr", false, false},
		{"union", true, false},
		{"ptr", true, true},
		{"raw", true, true},
		{"fn", true, false},
		{"s", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			typ, ok := paramTypes[tt.name]
			if !ok {
				t.Fatalf("Parameter %s not found", tt.name)
			}

			if got := pkg.IsDuplicable(typ); got != tt.duplicable {
				t.Errorf("IsDuplicable(%s) = %t, want %t", typ, got, tt.duplicable)
			}

			if got := pkg.IsMutablePointer(typ); got != tt.mutablePointer {
				t.Errorf("IsMutablePointer(%s) = %t, want %t", typ, got, tt.mutablePointer)
			}
		})
	}
}
