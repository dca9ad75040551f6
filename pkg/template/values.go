// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"carvel.dev/sti/pkg/orderedmap"
)

// Values maps every declared identifier to its resolved string,
// in declaration order. Values are never modified once resolved.
type Values struct {
	items *orderedmap.Map[Var, string]
}

func (v *Values) Get(variable Var) (string, bool) { return v.items.Get(variable) }

func (v *Values) Len() int { return v.items.Len() }

func (v *Values) Iterate(iterFunc func(Var, string)) { v.items.Iterate(iterFunc) }

// LookupFunc reports the input value supplied for a name.
type LookupFunc func(name string) (string, bool)

// ResolveWith resolves each declaration: a supplied input wins over the
// declared default; ignore declarations are skipped; input names that
// match no declaration are not used. Resolution stops at the first
// declaration that has neither.
func ResolveWith(decls Decls, lookup LookupFunc) (*Values, error) {
	items := orderedmap.NewMap[Var, string]()

	for _, decl := range decls {
		if decl.Var.IsIgnore() {
			continue
		}
		if _, found := items.Get(decl.Var); found {
			continue
		}

		if val, found := lookup(decl.Var.Name); found {
			items.Set(decl.Var, val)
			continue
		}
		if decl.HasDefault() {
			items.Set(decl.Var, decl.Default.AsString())
			continue
		}
		return nil, MissingValueError{Name: decl.Var.Name, Position: decl.Position}
	}

	return &Values{items}, nil
}
