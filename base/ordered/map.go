// Copyright 2025 Google LLC
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

// Package ordered provides containers preserving the insertion order of their keys.
package ordered

import "iter"

// Map is a map iterating over its keys in the order they were first stored.
type Map[K comparable, V any] struct {
	keys []K
	m    map[K]V
}

// NewMap returns a new empty map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V)}
}

// Store a value for a key.
// Storing a value for an existing key does not change the key position.
func (m *Map[K, V]) Store(k K, v V) {
	if _, in := m.m[k]; !in {
		m.keys = append(m.keys, k)
	}
	m.m[k] = v
}

// Load the value stored for a key.
func (m *Map[K, V]) Load(k K) (V, bool) {
	v, ok := m.m[k]
	return v, ok
}

// All iterates over all the (key, value) pairs.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.m[k]) {
				return
			}
		}
	}
}

// Keys iterates over the keys.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range m.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Size returns the number of keys.
func (m *Map[K, V]) Size() int {
	return len(m.keys)
}

// Set is a set iterating over its elements in insertion order.
type Set[K comparable] struct {
	m Map[K, struct{}]
}

// NewSet returns a new empty set.
func NewSet[K comparable]() *Set[K] {
	return &Set[K]{m: Map[K, struct{}]{m: make(map[K]struct{})}}
}

// Add an element to the set.
// Returns false if the element was already in the set.
func (s *Set[K]) Add(k K) bool {
	if s.Has(k) {
		return false
	}
	s.m.Store(k, struct{}{})
	return true
}

// Has returns true if the element is in the set.
func (s *Set[K]) Has(k K) bool {
	_, ok := s.m.Load(k)
	return ok
}

// Slice returns the elements of the set in insertion order.
func (s *Set[K]) Slice() []K {
	return append([]K{}, s.m.keys...)
}

// Size returns the number of elements in the set.
func (s *Set[K]) Size() int {
	return s.m.Size()
}
