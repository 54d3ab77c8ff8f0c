// Package container implements container data structures.
package container

import (
	"cmp"
	"iter"
	"slices"
)

// FlatMap is an ordered map backed by a sorted slice of entries.
//
// Inserts cost a binary search plus a shift, lookups a binary search over
// contiguous memory. It suits maps that are filled once and queried many
// times. Not safe for concurrent mutation.
type FlatMap[K cmp.Ordered, V any] struct {
	entries []entry[K, V]
}

type entry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// NewFlatMap creates an empty FlatMap with room for capacity entries.
func NewFlatMap[K cmp.Ordered, V any](capacity int) *FlatMap[K, V] {
	return &FlatMap[K, V]{
		entries: make([]entry[K, V], 0, max(capacity, 0)),
	}
}

func (m *FlatMap[K, V]) search(key K) (int, bool) {
	return slices.BinarySearchFunc(m.entries, key, func(e entry[K, V], k K) int {
		return cmp.Compare(e.key, k)
	})
}

// Insert adds key with value. It returns false and leaves the map
// untouched if key is already present.
func (m *FlatMap[K, V]) Insert(key K, value V) bool {
	i, found := m.search(key)
	if found {
		return false
	}
	m.entries = slices.Insert(m.entries, i, entry[K, V]{key: key, value: value})
	return true
}

// Get returns the value stored for key.
func (m *FlatMap[K, V]) Get(key K) (V, bool) {
	i, found := m.search(key)
	if !found {
		var zero V
		return zero, false
	}
	return m.entries[i].value, true
}

// Contains reports whether key is present.
func (m *FlatMap[K, V]) Contains(key K) bool {
	_, found := m.search(key)
	return found
}

// Len returns the number of entries.
func (m *FlatMap[K, V]) Len() int {
	return len(m.entries)
}

// Clear removes all entries, keeping the allocated storage.
func (m *FlatMap[K, V]) Clear() {
	clear(m.entries)
	m.entries = m.entries[:0]
}

// Clone returns a deep copy of the map.
func (m *FlatMap[K, V]) Clone() *FlatMap[K, V] {
	return &FlatMap[K, V]{entries: slices.Clone(m.entries)}
}

// All iterates over the entries in ascending key order.
func (m *FlatMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
