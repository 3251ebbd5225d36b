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
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// Config holds the host settings.
type Config struct {
	// SizeThreshold is the size in bytes from which a value counts as expensive to copy.
	SizeThreshold int64

	// IncludeGenerated enables analysis of generated files.
	IncludeGenerated bool
}

// Package holds the facts shared by all functions of a package.
//
// A Package is immutable after construction and safe for concurrent use.
type Package struct {
	fset  *token.FileSet
	pkg   *types.Package
	info  *types.Info
	sizes types.Sizes
	in    *inspector.Inspector

	config Config

	// interfaces maps method names to the interfaces declaring them.
	interfaces map[string][]*types.Interface

	// funcValues contains functions and methods used other than by calling them.
	funcValues map[*types.Func]struct{}
}

// NewPackage indexes the package for analysis.
func NewPackage(fset *token.FileSet, pkg *types.Package, info *types.Info, sizes types.Sizes, in *inspector.Inspector, config Config) *Package {
	if sizes == nil {
		sizes = types.SizesFor("gc", "amd64")
	}

	p := &Package{
		fset:   fset,
		pkg:    pkg,
		info:   info,
		sizes:  sizes,
		in:     in,
		config: config,
	}

	p.interfaces = indexInterfaces(pkg)
	p.funcValues = p.indexFuncValues()

	return p
}

// indexInterfaces collects the interfaces with methods declared in pkg and its direct imports.
func indexInterfaces(pkg *types.Package) map[string][]*types.Interface {
	interfaces := make(map[string][]*types.Interface)

	add := func(scope *types.Scope, local bool) {
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || tn.IsAlias() || (!local && !tn.Exported()) {
				continue
			}

			named, ok := tn.Type().(*types.Named)
			if !ok || named.TypeParams().Len() > 0 {
				continue
			}

			iface, ok := named.Underlying().(*types.Interface)
			if !ok || !iface.IsMethodSet() {
				continue
			}

			for m := range iface.Methods() {
				interfaces[m.Name()] = append(interfaces[m.Name()], iface)
			}
		}
	}

	add(pkg.Scope(), true)

	for _, imp := range pkg.Imports() {
		add(imp.Scope(), false)
	}

	return interfaces
}

// indexFuncValues collects the functions of this package that are referenced without being called.
func (p *Package) indexFuncValues() map[*types.Func]struct{} {
	values := make(map[*types.Func]struct{})

	for c := range p.in.Root().Preorder((*ast.Ident)(nil)) {
		fn, ok := p.info.Uses[c.Node().(*ast.Ident)].(*types.Func)
		if !ok || fn.Pkg() != p.pkg {
			continue
		}

		if !called(c) {
			values[fn.Origin()] = struct{}{}
		}
	}

	return values
}

// called reports whether the identifier names the callee of a call expression.
func called(c inspector.Cursor) bool {
	if kind, _ := c.ParentEdge(); kind == edge.SelectorExpr_Sel {
		c = c.Parent()
	}

	return isCallee(c)
}

// implementsInterface reports whether the receiver type of method implements
// an interface that contains a method of the same name.
func (p *Package) implementsInterface(method *types.Func) bool {
	sig, ok := method.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return false
	}

	if wellKnownMethods[method.Name()] {
		return true
	}

	recv := sig.Recv().Type()
	if ptr, ok := types.Unalias(recv).(*types.Pointer); ok {
		recv = ptr.Elem()
	}

	ptr := types.NewPointer(recv)

	for _, iface := range p.interfaces[method.Name()] {
		if types.Implements(recv, iface) || types.Implements(ptr, iface) {
			return true
		}
	}

	return false
}

// wellKnownMethods are method names of common interfaces that are satisfied without importing their package.
var wellKnownMethods = map[string]bool{
	// keep-sorted start
	"As":              true,
	"Close":           true,
	"Error":           true,
	"Format":          true,
	"GoString":        true,
	"Is":              true,
	"Len":             true,
	"Less":            true,
	"MarshalBinary":   true,
	"MarshalJSON":     true,
	"MarshalText":     true,
	"Read":            true,
	"Scan":            true,
	"ServeHTTP":       true,
	"String":          true,
	"Swap":            true,
	"UnmarshalBinary": true,
	"UnmarshalJSON":   true,
	"UnmarshalText":   true,
	"Unwrap":          true,
	"Value":           true,
	"Write":           true,
	// keep-sorted end
}
