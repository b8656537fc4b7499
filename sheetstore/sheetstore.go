// Package sheetstore implements the two-dimensional sparse storage layer a
// spreadsheet's cells (or any other per-position payload) sit in: a
// row-major composition of two sparsemap.Map layers, translated from the
// reference project's SheetStorage<T> template.
package sheetstore

import (
	"github.com/vogtb/gridsheet/position"
	"github.com/vogtb/gridsheet/sparsemap"
)

// Store is a sparse map from position.Position to a value of T. Only
// entries explicitly Set are materialised; Get on an absent position
// returns the zero value and false.
type Store[T any] struct {
	rows *sparsemap.Map[*sparsemap.Map[T]]
}

// New creates an empty Store.
func New[T any]() *Store[T] {
	return &Store[T]{rows: sparsemap.New[*sparsemap.Map[T]]()}
}

// Get returns the value at pos and whether it was present.
func (s *Store[T]) Get(pos position.Position) (T, bool) {
	var zero T
	row, ok := s.rows.Get(pos.Row)
	if !ok {
		return zero, false
	}
	return row.Get(pos.Col)
}

// Set inserts or overwrites the value at pos.
func (s *Store[T]) Set(pos position.Position, value T) {
	row, ok := s.rows.Get(pos.Row)
	if !ok {
		row = sparsemap.New[T]()
		s.rows.Set(pos.Row, row)
	}
	row.Set(pos.Col, value)
}

// Clear removes the entry at pos, removing the row entirely once it becomes
// empty. It reports whether an entry was actually removed.
func (s *Store[T]) Clear(pos position.Position) bool {
	row, ok := s.rows.Get(pos.Row)
	if !ok {
		return false
	}
	removed := row.Erase(pos.Col)
	if row.Empty() {
		s.rows.Erase(pos.Row)
	}
	return removed
}

// PrintableSize returns the bounding box (max-occupied-row+1,
// max-occupied-column-across-all-rows+1), or (0, 0) when the store is
// empty.
func (s *Store[T]) PrintableSize() (rows int, cols int) {
	if s.rows.Empty() {
		return 0, 0
	}
	back, _ := s.rows.BackIndex()
	rows = back + 1
	s.rows.ForEach(func(_ int, row *sparsemap.Map[T]) {
		if row.Empty() {
			return
		}
		colBack, _ := row.BackIndex()
		if colBack+1 > cols {
			cols = colBack + 1
		}
	})
	return rows, cols
}

// ForEachRow visits occupied rows in ascending order, exposing the column
// map for each. Rows are never empty when visited (empty rows are removed
// by Clear).
func (s *Store[T]) ForEachRow(fn func(row int, cols *sparsemap.Map[T])) {
	s.rows.ForEach(fn)
}

// Count returns the total number of occupied positions across all rows.
func (s *Store[T]) Count() int {
	total := 0
	s.rows.ForEach(func(_ int, row *sparsemap.Map[T]) {
		total += row.Size()
	})
	return total
}
