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
	"go/ast"
	"go/types"
	"testing"

	"github.com/kr/pretty"

	"fillmore-labs.com/needlesspass/internal/astutil"
	"fillmore-labs.com/needlesspass/internal/driver"
	"fillmore-labs.com/needlesspass/internal/eligibility"
	. "fillmore-labs.com/needlesspass/internal/gohost"
	"fillmore-labs.com/needlesspass/internal/suggest"
	"fillmore-labs.com/needlesspass/internal/testsource"
	"fillmore-labs.com/needlesspass/internal/usage"
)

const source = `package test

import (
	"bytes"
	"slices"
	"sync"
)

type Big struct {
	a, b, c, d, e, f, g, h, i, j int64
}

func (b Big) Sum() int64 { return b.a + b.j }

func (b *Big) Reset() { b.a = 0 }

type Small struct{ a, b int }

type Locked struct {
	mu sync.Mutex
	n  int
}

type Holder struct{ arr [16]int64 }

type Namer interface{ Name(b Big) string }

type impl struct{}

var hook = readHook

func readOnly(b Big) int64 { return b.a + b.Sum() }

func consumed(b Big) Big { return b }

func stored(b Big, out *[]Big) { *out = append(*out, b) }

func mutated(b Big) { b.Reset() }

func assigned(b Big) int64 { b.a = 1; return b.a }

func small(s Small) int { return s.a }

func locked(l Locked) int { return l.n }

func matched(b Big) int {
	switch b {
	case Big{}:
		return 0
	}

	return 1
}

func blank(b Big) { _ = b }

func length(v [64]int) bool { return len(v) == 42 }

func sliced(v [64]int) []int { return v[:] }

func text(b [128]byte) string { return string(b[:]) }

func cloned(b [128]byte) []byte { return bytes.Clone(b[:]) }

func written(v [64]int) int {
	s := v[:]
	s[0] = 1

	return v[0]
}

func filled(v [64]int, src []int) int {
	copy(v[:], src)

	return v[0]
}

func field(h Holder) int64 {
	s := h.arr[:]
	s[0] = 7

	return h.arr[0]
}

func duplicated(v [64]int) []int { return slices.Clone(v[:]) }

func copied(dst []int, v [64]int) int { return copy(dst, v[:]) }

func compared(v, w [64]int) bool { return v == w }

func ranged(b [128]byte) int {
	n := 0
	for _, c := range b {
		n += int(c)
	}

	return n
}

func constant(v [64]int) int {
	const n = len(v)

	return n + v[0]
}

func shared(a, b Big) int64 { return a.a + b.a }

func (b Big) method(o Big) int64 { return o.a }

func unnamed(Big) {}

func generic[T any](v T) {}

func arrayParam[T ~[100]int](v T) int { return v[0] }

func keyed[K interface{ comparable; ~[100]int }](k K) bool { return k[0] > 0 }

func stringer[S interface{ ~[100]int; String() string }](s S) string { return s.String() }

func captured(b Big) func() int64 { return func() int64 { return b.a } }

func (impl) Name(b Big) string { return "" }

func (b Big) String() string { return "" }

func readHook(b Big) int64 { return b.a }

//go:nosplit
func nosplit(b Big) int64 { return b.a }

// Code generated by hand. DO NOT EDIT.
func gen(b Big) int64 { return b.a }

//line template.go:1
func expanded(b Big) int64 { return b.a }
`

type finding struct {
	Name   string
	Kind   suggest.Kind
	Edits  []string
	Notes  int
	Shared bool
}

type outcome struct {
	Skip     driver.SkipReason
	Findings []finding
}

func analyzeAll(t *testing.T, src string) map[string]outcome {
	t.Helper()

	s := testsource.Parse(t, src)

	pkg := NewPackage(s.Fset, s.Pkg, s.Info, nil, s.In, Config{SizeThreshold: 80})
	file := NewFile(astutil.NewCurrentFile(s.Fset, s.File), s.File, s.Src)

	outcomes := make(map[string]outcome)

	for c := range s.In.Root().Preorder((*ast.FuncDecl)(nil)) {
		fn, ok := pkg.Function(file, c)
		if !ok {
			t.Fatalf("Can't prepare function %s", c.Node().(*ast.FuncDecl).Name.Name)
		}

		r := driver.Analyze(t.Context(), fn, fn)

		o := outcome{Skip: r.Skip}
		for _, f := range r.Findings {
			var edits []string
			for _, e := range f.Plan.Edits {
				edits = append(edits, e.NewText)
			}

			o.Findings = append(o.Findings, finding{
				Name:   f.Candidate.Name,
				Kind:   f.Plan.Kind,
				Edits:  edits,
				Notes:  len(f.Plan.Notes),
				Shared: f.Candidate.SharedType,
			})
		}

		outcomes[c.Node().(*ast.FuncDecl).Name.Name] = o
	}

	return outcomes
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	outcomes := analyzeAll(t, source)

	ref := func(name, typ string, edits ...string) finding {
		return finding{Name: name, Kind: suggest.Reference, Edits: append([]string{"*" + typ}, edits...)}
	}

	big := func(name string, edits ...string) finding {
		f := ref(name, "Big", edits...)
		f.Notes = 1

		return f
	}

	tests := []struct {
		name string
		want outcome
	}{
		{"Sum", outcome{}},
		{"Reset", outcome{}},
		{"readOnly", outcome{Findings: []finding{big("b")}}},
		{"consumed", outcome{}},
		{"stored", outcome{}},
		{"mutated", outcome{}},
		{"assigned", outcome{}},
		{"small", outcome{}},
		{"locked", outcome{Findings: []finding{ref("l", "Locked")}}},
		{"matched", outcome{Findings: []finding{big("b", "*b")}}},
		{"blank", outcome{Findings: []finding{big("b", "*b")}}},
		{"length", outcome{Findings: []finding{{Name: "v", Kind: suggest.SliceView, Edits: []string{"[]int"}}}}},
		{"sliced", outcome{}},
		{"text", outcome{Findings: []finding{{Name: "b", Kind: suggest.TextView, Edits: []string{"string", "b"}}}}},
		{"cloned", outcome{Findings: []finding{{Name: "b", Kind: suggest.TextView, Edits: []string{"string", "[]byte(b)"}}}}},
		{"written", outcome{}},
		{"filled", outcome{}},
		{"field", outcome{}},
		{"duplicated", outcome{Findings: []finding{{Name: "v", Kind: suggest.SliceView, Edits: []string{"[]int", "v"}}}}},
		{"copied", outcome{Findings: []finding{{Name: "v", Kind: suggest.SliceView, Edits: []string{"[]int", "v"}}}}},
		{"compared", outcome{}},
		{"ranged", outcome{Findings: []finding{ref("b", "[128]byte")}}},
		{"constant", outcome{Findings: []finding{ref("v", "[64]int")}}},
		{"shared", outcome{Findings: []finding{
			{Name: "a", Kind: suggest.Reference, Edits: []string{"*Big"}, Notes: 1, Shared: true},
			{Name: "b", Kind: suggest.Reference, Edits: []string{"*Big"}, Notes: 1, Shared: true},
		}}},
		{"method", outcome{Findings: []finding{big("o")}}},
		{"unnamed", outcome{}},
		{"generic", outcome{}},
		{"arrayParam", outcome{Findings: []finding{ref("v", "T")}}},
		{"keyed", outcome{Findings: []finding{ref("k", "K")}}},
		{"stringer", outcome{Findings: []finding{ref("s", "S")}}},
		{"captured", outcome{Findings: []finding{big("b")}}},
		{"Name", outcome{Skip: driver.SkipInterfaceMethod}},
		{"String", outcome{Skip: driver.SkipInterfaceMethod}},
		{"readHook", outcome{Skip: driver.SkipFuncValue}},
		{"nosplit", outcome{Skip: driver.SkipForeignABI}},
		{"gen", outcome{Skip: driver.SkipGenerated}},
		{"expanded", outcome{Skip: driver.SkipMacroExpanded}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := outcomes[tt.name]
			if !ok {
				t.Fatalf("Function %s not analyzed", tt.name)
			}

			if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
				t.Errorf("Outcome differs: %v", diff)
			}
		})
	}
}

const statusSource = `package test

type Big [100]int

type Key interface {
	comparable
	~[100]int
}

func (b Big) sum(o Big) int { return b[0] + o[0] }

func keyed[K Key](k K) bool { return k[0] > 0 }

func stringer[S interface{ ~[100]int; String() string }](s S) string { return s.String() }

func union[U ~[100]int | ~[200]int](u U) int { return len(u) }

func call(f func() int) int { return f() }

func callGeneric[F ~func() int](f F) int { return f() }

func drain(c chan int) int {
	n := 0
	for v := range c {
		n += v
	}

	return n
}

func each(seq func(func(int) bool)) {}

func pointer[P ~*int](p P) int { return *p }

func unnamed(Big) {}

func mutated(b Big) { b[0] = 1 }

func sliced(b Big) []int { return b[:] }

func consumed(b Big) Big { return b }
`

func prepare(t *testing.T, src string, threshold int64) map[string]*Function {
	t.Helper()

	s := testsource.Parse(t, src)

	pkg := NewPackage(s.Fset, s.Pkg, s.Info, nil, s.In, Config{SizeThreshold: threshold})
	file := NewFile(astutil.NewCurrentFile(s.Fset, s.File), s.File, s.Src)

	funcs := make(map[string]*Function)

	for c := range s.In.Root().Preorder((*ast.FuncDecl)(nil)) {
		fn, ok := pkg.Function(file, c)
		if !ok {
			t.Fatalf("Can't prepare function %s", c.Node().(*ast.FuncDecl).Name.Name)
		}

		funcs[fn.Name()] = fn
	}

	return funcs
}

func TestStatus(t *testing.T) {
	t.Parallel()

	funcs := prepare(t, statusSource, 4)

	tests := []struct {
		name string
		want []eligibility.Status
	}{
		{"sum", []eligibility.Status{eligibility.Receiver, eligibility.Eligible}},
		{"keyed", []eligibility.Status{eligibility.Eligible}},
		{"stringer", []eligibility.Status{eligibility.Eligible}},
		{"union", []eligibility.Status{eligibility.Eligible}},
		{"call", []eligibility.Status{eligibility.Whitelisted}},
		{"callGeneric", []eligibility.Status{eligibility.Whitelisted}},
		{"drain", []eligibility.Status{eligibility.Whitelisted}},
		{"each", []eligibility.Status{eligibility.Whitelisted}},
		{"pointer", []eligibility.Status{eligibility.MutablePointer}},
		{"unnamed", []eligibility.Status{eligibility.NoBinding}},
		{"mutated", []eligibility.Status{eligibility.MutableBinding}},
		{"sliced", []eligibility.Status{eligibility.MutableBinding}},
		{"consumed", []eligibility.Status{eligibility.Moved}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fn, ok := funcs[tt.name]
			if !ok {
				t.Fatalf("Function %s not found", tt.name)
			}

			traits, err := eligibility.ResolveTraits(fn)
			if err != nil {
				t.Fatalf("Can't resolve traits: %v", err)
			}

			tracker := usage.New(fn.Tree())
			fn.Walk(tracker)
			used := tracker.Result()

			bounds := fn.ElaborateBounds()

			var got []eligibility.Status
			for _, c := range fn.Params() {
				got = append(got, eligibility.Check(c, used, bounds, traits, fn))
			}

			if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
				t.Errorf("Status differs: %v", diff)
			}
		})
	}
}

func TestImplements(t *testing.T) {
	t.Parallel()

	fn, ok := prepare(t, statusSource, 80)["keyed"]
	if !ok {
		t.Fatal("Function keyed not found")
	}

	param := fn.Params()[0].Type

	var traits []eligibility.TraitID
	for _, b := range fn.ElaborateBounds() {
		if !types.Identical(b.Subject, param) {
			t.Errorf("Bound %s has subject %s, want %s", b.Trait, b.Subject, param)
		}

		traits = append(traits, b.Trait)
	}

	if diff := pretty.Diff(traits, []eligibility.TraitID{"test.Key", "comparable"}); len(diff) > 0 {
		t.Errorf("Bounds differ: %v", diff)
	}

	ref := types.NewPointer(param)

	tests := []struct {
		name  string
		typ   types.Type
		trait eligibility.TraitID
		want  bool
	}{
		{"ValueKey", param, "test.Key", true},
		{"ValueComparable", param, "comparable", true},
		{"RefKey", ref, "test.Key", false},
		{"RefComparable", ref, "comparable", true},
		{"Unknown", param, "test.Other", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fn.Implements(tt.typ, tt.trait, nil); got != tt.want {
				t.Errorf("Implements(%s, %s) = %t, want %t", tt.typ, tt.trait, got, tt.want)
			}
		})
	}
}
