package spreadsheet

import (
	"fmt"

	"github.com/vogtb/gridsheet/position"
)

// InvalidPositionError is returned by every public entrypoint when the
// caller supplies a position outside the addressable grid. No state is
// inspected before this check runs.
type InvalidPositionError struct {
	Pos position.Position
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("spreadsheet: invalid position %s", e.Pos.String())
}

// FormulaParseError is returned by SetCell when a formula-prefixed string's
// remainder fails to parse. The write is aborted; no state changes.
type FormulaParseError struct {
	Pos   position.Position
	Cause error
}

func (e *FormulaParseError) Error() string {
	return fmt.Sprintf("spreadsheet: formula at %s: %v", e.Pos.String(), e.Cause)
}

func (e *FormulaParseError) Unwrap() error { return e.Cause }

// CircularDependencyError is returned by SetCell when accepting the write
// would close a reference cycle. No state changes.
type CircularDependencyError struct {
	Source position.Position
	Target position.Position
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("spreadsheet: circular dependency: %s references %s", e.Source.String(), e.Target.String())
}
