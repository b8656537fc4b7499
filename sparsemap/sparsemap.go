// Package sparsemap implements a one-dimensional mapping from integer index
// to value with O(1) lookup, plus an independently maintained ascending list
// of occupied indices for bounded traversal. It is the Go generic
// translation of the reference project's IndexedStorage<T, Index> template.
package sparsemap

import "sort"

// Map is a sparse index -> value mapping. The zero value is not usable;
// construct with New.
type Map[T any] struct {
	data    map[int]T
	indices []int // strictly ascending, same membership as data's keys
}

// New creates an empty Map.
func New[T any]() *Map[T] {
	return &Map[T]{data: make(map[int]T)}
}

// Get returns the value at index and whether it was present.
func (m *Map[T]) Get(index int) (T, bool) {
	v, ok := m.data[index]
	return v, ok
}

// Set inserts or overwrites the value at index. On insert, index is spliced
// into the ascending index list via binary search.
func (m *Map[T]) Set(index int, value T) {
	if _, exists := m.data[index]; !exists {
		pos := sort.SearchInts(m.indices, index)
		m.indices = append(m.indices, 0)
		copy(m.indices[pos+1:], m.indices[pos:])
		m.indices[pos] = index
	}
	m.data[index] = value
}

// Erase removes the entry at index. It reports whether an entry was
// actually removed; erasing an absent index is a no-op that returns false.
func (m *Map[T]) Erase(index int) bool {
	if _, exists := m.data[index]; !exists {
		return false
	}
	delete(m.data, index)
	pos := sort.SearchInts(m.indices, index)
	m.indices = append(m.indices[:pos], m.indices[pos+1:]...)
	return true
}

// Size returns the number of occupied indices.
func (m *Map[T]) Size() int {
	return len(m.indices)
}

// Empty reports whether the map holds no entries.
func (m *Map[T]) Empty() bool {
	return len(m.indices) == 0
}

// FrontIndex returns the smallest occupied index.
func (m *Map[T]) FrontIndex() (int, bool) {
	if m.Empty() {
		return 0, false
	}
	return m.indices[0], true
}

// BackIndex returns the largest occupied index.
func (m *Map[T]) BackIndex() (int, bool) {
	if m.Empty() {
		return 0, false
	}
	return m.indices[len(m.indices)-1], true
}

// Indices returns the occupied indices in ascending order. The returned
// slice is owned by the caller; mutating it does not affect the map.
func (m *Map[T]) Indices() []int {
	out := make([]int, len(m.indices))
	copy(out, m.indices)
	return out
}

// ForEach visits (index, value) pairs in ascending index order.
func (m *Map[T]) ForEach(fn func(index int, value T)) {
	for _, idx := range m.indices {
		fn(idx, m.data[idx])
	}
}
