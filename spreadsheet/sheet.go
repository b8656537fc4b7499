// Package spreadsheet implements the sparse spreadsheet core: cells,
// a reverse-adjacency dependency graph, and the mutation protocol that
// keeps memoised formula evaluation coherent as cells are written and
// cleared. It consumes the formula package as an external collaborator
// through the small formula.CellSource interface; it never inspects
// formula syntax itself.
package spreadsheet

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/vogtb/gridsheet/formula"
	"github.com/vogtb/gridsheet/position"
	"github.com/vogtb/gridsheet/sheetstore"
)

// Sheet owns the store, the dependency graph, and the formula intern cache.
// It is not safe for concurrent use: even reads populate per-cell formula
// caches.
type Sheet struct {
	store        *sheetstore.Store[*cell]
	deps         *graph
	formulaCache *formula.Cache
}

// New creates an empty Sheet.
func New() *Sheet {
	return &Sheet{
		store:        sheetstore.New[*cell](),
		deps:         newGraph(),
		formulaCache: formula.NewCache(),
	}
}

// CellHandle is a read-only view onto an occupied cell, returned by
// GetCell. It closes over the owning Sheet so GetValue can drive memoised
// evaluation without the cell itself holding a back-reference.
type CellHandle struct {
	cell  *cell
	sheet *Sheet
}

// GetValue returns the cell's value: a number, a string, or a formula
// error. Formula cells are evaluated lazily and cached on first read.
func (h *CellHandle) GetValue() formula.Value { return h.sheet.valueOf(h.cell) }

// GetText returns the cell's raw stored text.
func (h *CellHandle) GetText() string { return h.cell.GetText() }

// GetReferencedCells returns the deduplicated positions a formula cell
// reads; empty for non-formula cells.
func (h *CellHandle) GetReferencedCells() []position.Position { return h.cell.GetReferencedCells() }

// GetCell returns a handle to the occupied cell at pos, or (nil, nil) if
// pos is valid but unoccupied. An invalid position reports
// *InvalidPositionError.
func (s *Sheet) GetCell(pos position.Position) (*CellHandle, error) {
	if !pos.IsValid() {
		return nil, &InvalidPositionError{Pos: pos}
	}
	cell, ok := s.store.Get(pos)
	if !ok {
		return nil, nil
	}
	return &CellHandle{cell: cell, sheet: s}, nil
}

// GetPrintableSize returns the bounding box over occupied cells.
func (s *Sheet) GetPrintableSize() (rows, cols int) { return s.store.PrintableSize() }

// valueOf evaluates cell against this sheet, populating and reusing its
// cache slot. Empty renders as the empty string, Text as its display text
// (escape marker stripped), Formula as its memoised evaluation result.
func (s *Sheet) valueOf(cell *cell) formula.Value {
	switch cell.kind {
	case kindEmpty:
		return formula.Text("")
	case kindText:
		return formula.Text(cell.displayText())
	case kindFormula:
		if cell.cached != nil {
			return *cell.cached
		}
		v := cell.formula.Execute(sheetView{sheet: s})
		cell.cached = &v
		return v
	default:
		return formula.Text("")
	}
}

// sheetView is the read-through CellSource a formula evaluates against. It
// applies the reference-coercion rule: invalid position -> #REF!, absent or
// Empty -> 0, Text that parses as a finite number -> that number, Text that
// doesn't parse -> #VALUE!, Formula -> its own memoised value.
type sheetView struct {
	sheet *Sheet
}

func (v sheetView) ReadCell(pos position.Position) formula.Value {
	if !pos.IsValid() {
		return formula.Error(formula.ErrRef)
	}
	cell, ok := v.sheet.store.Get(pos)
	if !ok {
		return formula.Number(0)
	}
	switch cell.kind {
	case kindEmpty:
		return formula.Number(0)
	case kindText:
		s := cell.displayText()
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return formula.Error(formula.ErrValue)
		}
		return formula.Number(f)
	case kindFormula:
		return v.sheet.valueOf(cell)
	default:
		return formula.Number(0)
	}
}

// SetCell parses text and, if it is a valid write, installs it at pos. An
// invalid position, a formula parse failure, or a write that would close a
// reference cycle is rejected with no state change. Otherwise SetCell creates
// Empty placeholder cells for newly referenced positions, applies the edge
// delta to the dependency graph, stores the cell, and invalidates the caches
// of pos and every transitive dependent.
func (s *Sheet) SetCell(pos position.Position, text string) error {
	if !pos.IsValid() {
		return &InvalidPositionError{Pos: pos}
	}
	candidate, err := newCellFromText(pos, text, s.formulaCache)
	if err != nil {
		return err
	}

	var oldRefs []position.Position
	existing, wasOccupied := s.store.Get(pos)
	if wasOccupied {
		oldRefs = existing.GetReferencedCells()
	}
	newRefs := candidate.GetReferencedCells()

	oldSet := positionSet(oldRefs)
	newSet := positionSet(newRefs)

	var toAdd, toRemove []position.Position
	for q := range newSet {
		if _, ok := oldSet[q]; !ok {
			toAdd = append(toAdd, q)
		}
	}
	for q := range oldSet {
		if _, ok := newSet[q]; !ok {
			toRemove = append(toRemove, q)
		}
	}

	if cyc := s.detectCycle(pos, toAdd); cyc != nil {
		return &CircularDependencyError{Source: pos, Target: *cyc}
	}

	for q := range newSet {
		if !q.IsValid() {
			continue // reads as #REF!; there is no cell to materialise
		}
		if _, ok := s.store.Get(q); !ok {
			s.store.Set(q, &cell{kind: kindEmpty}) // placeholder: no refs, no cycle
			s.invalidate(q)
		}
	}

	for _, q := range toAdd {
		s.deps.AddEdge(pos, q)
	}
	for _, q := range toRemove {
		s.deps.RemoveEdge(pos, q)
	}

	// An empty-string write is a clear, not a store of an Empty cell. The
	// placeholder-creation loop above is the one case that stores an Empty
	// cell, and only at a position that held no cell.
	if candidate.kind == kindEmpty {
		if wasOccupied {
			s.store.Clear(pos)
		}
	} else {
		s.store.Set(pos, candidate)
	}
	s.invalidate(pos)
	return nil
}

// ClearCell removes the cell at pos, if one is present, dropping its
// outgoing edges and invalidating every dependent.
func (s *Sheet) ClearCell(pos position.Position) error {
	if !pos.IsValid() {
		return &InvalidPositionError{Pos: pos}
	}
	existing, ok := s.store.Get(pos)
	if !ok {
		return nil
	}
	for _, q := range existing.GetReferencedCells() {
		s.deps.RemoveEdge(pos, q)
	}
	s.store.Clear(pos)
	s.invalidate(pos)
	return nil
}

// detectCycle reports whether adding edges from pos to every position in
// toAdd would close a cycle. Because every prospective edge is rooted at
// pos, one reachability search over the current referrer-of graph suffices:
// pos already has a path to reachable positions via existing referrer
// edges, so a new edge pos -> q closes a cycle exactly when q (or pos
// itself, for a direct self-reference) is reachable from pos by walking
// referrer sets outward.
func (s *Sheet) detectCycle(pos position.Position, toAdd []position.Position) *position.Position {
	for _, q := range toAdd {
		if q == pos {
			target := q
			return &target
		}
	}
	targets := positionSet(toAdd)
	visited := map[position.Position]bool{pos: true}
	queue := []position.Position{pos}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, r := range s.deps.ReferrersOf(cur) {
			if visited[r] {
				continue
			}
			visited[r] = true
			if _, ok := targets[r]; ok {
				target := r
				return &target
			}
			queue = append(queue, r)
		}
	}
	return nil
}

// invalidate performs the cache-invalidation walk: starting from pos, visit
// every position reachable via referrer-of edges (i.e. every transitive
// dependent), dropping each one's cache. The dependency graph is acyclic
// (invariant 4), so a visited set is sufficient to terminate.
func (s *Sheet) invalidate(pos position.Position) {
	visited := map[position.Position]bool{pos: true}
	stack := []position.Position{pos}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cell, ok := s.store.Get(cur); ok {
			cell.InvalidateCache()
		}
		for _, r := range s.deps.ReferrersOf(cur) {
			if !visited[r] {
				visited[r] = true
				stack = append(stack, r)
			}
		}
	}
}

func positionSet(ps []position.Position) map[position.Position]struct{} {
	set := make(map[position.Position]struct{}, len(ps))
	for _, p := range ps {
		set[p] = struct{}{}
	}
	return set
}

// PrintValues writes a tab-separated, newline-terminated rendering of every
// cell's value over the printable bounding box. Missing and Empty cells
// render as empty fields.
func (s *Sheet) PrintValues(out io.Writer) error {
	return s.print(out, func(c *cell) string {
		if c == nil {
			return ""
		}
		return s.valueOf(c).String()
	})
}

// PrintTexts writes a tab-separated, newline-terminated rendering of every
// cell's raw text over the printable bounding box.
func (s *Sheet) PrintTexts(out io.Writer) error {
	return s.print(out, func(c *cell) string {
		if c == nil {
			return ""
		}
		return c.GetText()
	})
}

func (s *Sheet) print(out io.Writer, render func(*cell) string) error {
	rows, cols := s.store.PrintableSize()
	w := bufio.NewWriter(out)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				if _, err := w.WriteRune('\t'); err != nil {
					return err
				}
			}
			cell, _ := s.store.Get(position.Position{Row: r, Col: c})
			if _, err := w.WriteString(render(cell)); err != nil {
				return err
			}
		}
		if _, err := w.WriteRune('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
