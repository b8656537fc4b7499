package spreadsheet

import (
	"github.com/vogtb/gridsheet/formula"
	"github.com/vogtb/gridsheet/position"
)

// formulaMarker and escapeMarker are the two single-character constants
// that switch a cell's text between formula, escaped-text, and plain-text
// semantics.
const (
	formulaMarker = '='
	escapeMarker  = '\''
)

type cellKind int

const (
	kindEmpty cellKind = iota
	kindText
	kindFormula
)

// cell is a tagged union of empty / plain-text / parsed-formula, with a
// single-slot cache for the last computed formula result. It holds no
// reference to the sheet it lives in; Sheet drives evaluation and owns the
// cache slot's contents (see Sheet.valueOf).
type cell struct {
	kind    cellKind
	text    string // raw text for kindText, including a leading escape marker
	formula formula.Formula
	cached  *formula.Value
}

// newCellFromText constructs a candidate cell from raw input text. It is the
// only place formula text gets parsed; a parse failure returns
// *FormulaParseError and no cell.
func newCellFromText(pos position.Position, text string, cache *formula.Cache) (*cell, error) {
	if text == "" {
		return &cell{kind: kindEmpty}, nil
	}
	if len(text) >= 2 && text[0] == formulaMarker {
		f, err := cache.Parse(text[1:])
		if err != nil {
			return nil, &FormulaParseError{Pos: pos, Cause: err}
		}
		return &cell{kind: kindFormula, formula: f}, nil
	}
	return &cell{kind: kindText, text: text}, nil
}

// displayText returns the text a Text cell shows once its escape marker
// (if any) is stripped.
func (c *cell) displayText() string {
	if len(c.text) > 0 && c.text[0] == escapeMarker {
		return c.text[1:]
	}
	return c.text
}

// GetText returns the raw stored text: verbatim for Text (escape marker
// included), the formula marker plus the formula's canonical stringification
// for Formula, and the empty string for Empty.
func (c *cell) GetText() string {
	switch c.kind {
	case kindText:
		return c.text
	case kindFormula:
		return string(formulaMarker) + c.formula.CanonicalString()
	default:
		return ""
	}
}

// GetReferencedCells returns the deduplicated positions a formula cell
// reads; empty for non-formula cells. The formula's own result is sorted
// with adjacent duplicates (from overlapping ranges); this collapses those.
func (c *cell) GetReferencedCells() []position.Position {
	if c.kind != kindFormula {
		return nil
	}
	refs := c.formula.GetReferencedCells()
	if len(refs) == 0 {
		return nil
	}
	out := make([]position.Position, 0, len(refs))
	out = append(out, refs[0])
	for _, p := range refs[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// InvalidateCache drops any cached formula result. Idempotent.
func (c *cell) InvalidateCache() {
	c.cached = nil
}
