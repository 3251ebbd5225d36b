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
	"go/token"
	"go/types"

	"fillmore-labs.com/needlesspass/internal/eligibility"
)

// Pseudo traits for the well-known capabilities.
const (
	traitFunc    eligibility.TraitID = "func"
	traitRange   eligibility.TraitID = "range"
	traitPointer eligibility.TraitID = "pointer"
	traitAny     eligibility.TraitID = "any"
)

var wellKnownTraits = map[string]eligibility.TraitID{
	eligibility.Call:          traitFunc,
	eligibility.CallOnce:      traitFunc,
	eligibility.CallMut:       traitFunc,
	eligibility.RangeArgument: traitRange,
	eligibility.Borrow:        traitPointer,
	eligibility.Sized:         traitAny,
}

// LookupTrait implements [eligibility.Facts].
func (p *Package) LookupTrait(name string) (eligibility.TraitID, bool) {
	id, ok := wellKnownTraits[name]

	return id, ok
}

// IsDuplicable implements [eligibility.Facts].
//
// Values smaller than the size threshold without ownership semantics are cheap
// to copy. Type parameters are measured by their core type.
func (p *Package) IsDuplicable(t types.Type) bool {
	if _, ok := types.Unalias(t).(*types.TypeParam); ok {
		if core := coreType(t); core != nil {
			t = core
		}
	}

	if hasOwnership(t, nil) {
		return false
	}

	return p.sizeof(t) < p.config.SizeThreshold
}

// sizeof is [types.Sizes.Sizeof] extended to types mentioning type parameters.
// A type parameter without core type has the size of its largest type term,
// or of an interface value when its type set is not restricted by terms.
func (p *Package) sizeof(t types.Type) int64 {
	if tp, ok := types.Unalias(t).(*types.TypeParam); ok {
		if core := coreType(tp); core != nil {
			return p.sizeof(core)
		}

		iface, ok := tp.Constraint().Underlying().(*types.Interface)
		if !ok {
			return p.sizes.Sizeof(tp.Constraint().Underlying())
		}

		terms := typeTerms(iface, nil)
		if len(terms) == 0 {
			return p.sizes.Sizeof(iface)
		}

		var size int64
		for _, term := range terms {
			size = max(size, p.sizeof(term))
		}

		return size
	}

	if !hasTypeParam(t) {
		return p.sizes.Sizeof(t)
	}

	var size int64

	switch u := t.Underlying().(type) {
	case *types.Array:
		size = u.Len() * p.sizeof(u.Elem())

	case *types.Struct:
		for f := range u.Fields() {
			size += p.sizeof(f.Type())
		}
	}

	return size
}

// hasTypeParam reports whether t stores a value of type parameter type inline.
func hasTypeParam(t types.Type) bool {
	switch u := types.Unalias(t).(type) {
	case *types.TypeParam:
		return true

	case *types.Named:
		return hasTypeParam(u.Underlying())

	case *types.Array:
		return hasTypeParam(u.Elem())

	case *types.Struct:
		for f := range u.Fields() {
			if hasTypeParam(f.Type()) {
				return true
			}
		}
	}

	return false
}

// IsMutablePointer implements [eligibility.Facts].
func (p *Package) IsMutablePointer(t types.Type) bool {
	switch core := coreType(t).(type) {
	case *types.Pointer:
		return true

	case *types.Basic:
		return core.Kind() == types.UnsafePointer

	default:
		return false
	}
}

// implementsPseudo evaluates the pseudo traits.
func implementsPseudo(t types.Type, trait eligibility.TraitID) (implements, ok bool) {
	switch trait {
	case traitFunc:
		_, implements := coreType(t).(*types.Signature)

		return implements, true

	case traitRange:
		switch core := coreType(t).(type) {
		case *types.Chan:
			return true, true

		case *types.Signature:
			return isIterator(core), true

		default:
			return false, true
		}

	case traitPointer:
		_, implements := coreType(t).(*types.Pointer)

		return implements, true

	case traitAny:
		return true, true

	default:
		return false, false
	}
}

// isIterator reports whether sig has the shape of a range-over-func iterator.
func isIterator(sig *types.Signature) bool {
	if sig.Params().Len() != 1 || sig.Results().Len() != 0 {
		return false
	}

	yield, ok := coreType(sig.Params().At(0).Type()).(*types.Signature)
	if !ok || yield.Params().Len() > 2 || yield.Results().Len() != 1 {
		return false
	}

	result, ok := yield.Results().At(0).Type().Underlying().(*types.Basic)

	return ok && result.Kind() == types.Bool
}

// coreType returns the underlying type of t or, for a type parameter, the
// single underlying type of all types in its type set. It returns nil if
// there is none.
func coreType(t types.Type) types.Type {
	tp, ok := types.Unalias(t).(*types.TypeParam)
	if !ok {
		return t.Underlying()
	}

	iface, ok := tp.Constraint().Underlying().(*types.Interface)
	if !ok {
		return nil
	}

	var core types.Type

	for _, term := range typeTerms(iface, nil) {
		u := term.Underlying()
		if core == nil {
			core = u

			continue
		}

		if !types.Identical(core, u) {
			return nil
		}
	}

	return core
}

// typeTerms returns the types in the type set terms of a constraint interface.
func typeTerms(iface *types.Interface, terms []types.Type) []types.Type {
	for e := range iface.EmbeddedTypes() {
		switch e := e.(type) {
		case *types.Union:
			for i := range e.Len() {
				t := e.Term(i).Type()
				if inner, ok := t.Underlying().(*types.Interface); ok {
					terms = typeTerms(inner, terms)

					continue
				}

				terms = append(terms, t)
			}

		default:
			if inner, ok := e.Underlying().(*types.Interface); ok {
				terms = typeTerms(inner, terms)

				continue
			}

			terms = append(terms, e)
		}
	}

	return terms
}

// lockerType is sync.Locker, built here so packages not importing sync are handled.
var lockerType = func() *types.Interface {
	nullary := types.NewSignatureType(nil, nil, nil, nil, nil, false)
	methods := []*types.Func{
		types.NewFunc(token.NoPos, nil, "Lock", nullary),
		types.NewFunc(token.NoPos, nil, "Unlock", nullary),
	}

	return types.NewInterfaceType(methods, nil).Complete()
}()

// hasOwnership reports whether copying a value of t is wrong regardless of its size:
// it contains a lock, a noCopy marker, a [strings.Builder] or a [bytes.Buffer].
func hasOwnership(t types.Type, seen map[types.Type]bool) bool {
	t = types.Unalias(t)
	if seen[t] {
		return false
	}

	if seen == nil {
		seen = make(map[types.Type]bool)
	}

	seen[t] = true

	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()
		if obj.Name() == "noCopy" {
			return true
		}

		if pkg := obj.Pkg(); pkg != nil {
			switch pkg.Path() + "." + obj.Name() {
			case "strings.Builder", "bytes.Buffer":
				return true
			}
		}

		if types.Implements(types.NewPointer(t), lockerType) && !types.Implements(t, lockerType) {
			return true
		}
	}

	switch u := t.Underlying().(type) {
	case *types.Struct:
		for f := range u.Fields() {
			if hasOwnership(f.Type(), seen) {
				return true
			}
		}

	case *types.Array:
		return hasOwnership(u.Elem(), seen)
	}

	return false
}
