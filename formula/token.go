package formula

// tokenType enumerates the lexical categories of the formula grammar
// SPEC_FULL.md §4.8 defines. Named and shaped after the teacher's own
// lexer.go TokenType, scaled down to the grammar this project supports.
type tokenType int

const (
	tokEOF tokenType = iota
	tokNumber
	tokString
	tokIdent // function name or bare identifier
	tokCellRef
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokAmp
	tokEQ
	tokNE
	tokLT
	tokLE
	tokGT
	tokGE
	tokLParen
	tokRParen
	tokComma
	tokColon
)

type token struct {
	typ  tokenType
	text string  // raw source text
	num  float64 // populated for tokNumber
	pos  int     // byte offset, for error messages
}
