// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"encoding/json"
)

// Map is ready to use as a zero value.
type Map[K comparable, V any] struct {
	items []mapItem[K, V]
	index map[K]int
}

type mapItem[K comparable, V any] struct {
	Key   K
	Value V
}

func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: map[K]int{}}
}

// Set replaces the value of an existing key in place (keeping its position)
// or appends a new key at the end.
func (m *Map[K, V]) Set(key K, value V) {
	if m.index == nil {
		m.index = map[K]int{}
	}
	if i, found := m.index[key]; found {
		m.items[i].Value = value
		return
	}
	m.index[key] = len(m.items)
	m.items = append(m.items, mapItem[K, V]{key, value})
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, found := m.index[key]; found {
		return m.items[i].Value, true
	}
	var zero V
	return zero, false
}

func (m *Map[K, V]) Keys() (keys []K) {
	m.Iterate(func(k K, _ V) {
		keys = append(keys, k)
	})
	return
}

func (m *Map[K, V]) Iterate(iterFunc func(k K, v V)) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

// Merge sets every item of other onto m, in other's order.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	other.Iterate(func(k K, v V) { m.Set(k, v) })
}

func (m *Map[K, V]) Len() int { return len(m.items) }

// Below methods disallow marshaling of Map directly
var _ []json.Marshaler = []json.Marshaler{&Map[string, string]{}}

func (*Map[K, V]) MarshalYAML() (interface{}, error) { panic("Unexpected marshaling of *orderedmap.Map") }
func (*Map[K, V]) MarshalJSON() ([]byte, error)      { panic("Unexpected marshaling of *orderedmap.Map") }
