// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"carvel.dev/sti/pkg/orderedmap"
)

// Inputs is anything that can turn declarations into values.
type Inputs interface {
	Resolve(decls Decls) (*Values, error)
}

var _ = []Inputs{MapInputs{}, &OrderedInputs{}}

// MapInputs is the standard name to value mapping.
type MapInputs map[string]string

func (in MapInputs) Resolve(decls Decls) (*Values, error) {
	return ResolveWith(decls, func(name string) (string, bool) {
		val, found := in[name]
		return val, found
	})
}

// OrderedInputs keeps values in the order they were supplied.
// Setting a name again overrides the earlier value.
// The zero value is empty and ready to use.
type OrderedInputs struct {
	items orderedmap.Map[string, string]
}

func NewOrderedInputs() *OrderedInputs {
	return &OrderedInputs{}
}

func (in *OrderedInputs) Set(name, val string) { in.items.Set(name, val) }

func (in *OrderedInputs) Get(name string) (string, bool) { return in.items.Get(name) }

func (in *OrderedInputs) Names() []string { return in.items.Keys() }

func (in *OrderedInputs) Len() int { return in.items.Len() }

// Merge layers other on top of in.
func (in *OrderedInputs) Merge(other *OrderedInputs) { in.items.Merge(&other.items) }

func (in *OrderedInputs) Resolve(decls Decls) (*Values, error) {
	return ResolveWith(decls, in.items.Get)
}
