// Package formula implements the small formula language cell formulas are
// written in: literals, cell references, ranges (only valid as call
// arguments), arithmetic/comparison/concatenation operators, and a fixed
// set of aggregate functions. It knows nothing about sheets or storage; it
// reads other cells only through the CellSource interface a caller
// supplies.
package formula

import (
	"fmt"
	"strings"

	"github.com/vogtb/gridsheet/position"
)

// Formula is a parsed, immutable formula ready to be evaluated against any
// CellSource. The same Formula value can be evaluated repeatedly against
// different sources without re-parsing.
type Formula interface {
	// Execute evaluates the formula against src and returns its Value.
	Execute(src CellSource) Value
	// GetExpression returns the original, unparsed formula text (without
	// a leading "="), trimmed of surrounding whitespace.
	GetExpression() string
	// GetReferencedCells returns every cell position the formula reads,
	// in ascending Position order. Positions from overlapping ranges may
	// repeat adjacently; callers that need a set should dedup themselves.
	GetReferencedCells() []position.Position
	// CanonicalString renders the parsed AST back to formula text. Unlike
	// GetExpression, which returns the (trimmed) original source, this is
	// a normalized, always-reparseable form (fully parenthesized
	// operators) used when a formula cell round-trips through GetText.
	CanonicalString() string
}

type compiledFormula struct {
	expr string
	root node
	refs []position.Position
}

func (f *compiledFormula) Execute(src CellSource) Value            { return f.root.eval(src) }
func (f *compiledFormula) GetExpression() string                   { return f.expr }
func (f *compiledFormula) GetReferencedCells() []position.Position { return f.refs }
func (f *compiledFormula) CanonicalString() string                 { return f.root.toString() }

// Parse compiles expr (formula text without its leading "=") into a
// Formula. It performs full syntactic validation up front, including
// function-name and arity checks, so that a Formula, once returned, never
// fails at evaluation time for anything other than #REF!, #VALUE!, or
// #DIV/0! per cell.
func Parse(expr string) (Formula, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, fmt.Errorf("formula: empty expression")
	}
	root, err := parseExpression(trimmed)
	if err != nil {
		return nil, err
	}
	return &compiledFormula{
		expr: trimmed,
		root: root,
		refs: sortedRefs(root),
	}, nil
}
