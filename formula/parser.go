package formula

import (
	"fmt"

	"github.com/vogtb/gridsheet/position"
)

// parser is a recursive-descent, precedence-climbing parser over the
// token stream lexer produces. Grounded in shape (per-precedence-level
// methods, single-token lookahead) on the teacher's parser.go, scaled to
// the grammar SPEC_FULL.md §4.8 defines.
type parser struct {
	tokens []token
	pos    int
}

func parseExpression(src string) (node, error) {
	lx := newLexer(src)
	tokens, err := lx.tokenize()
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	n, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if p.cur().typ != tokEOF {
		return nil, fmt.Errorf("formula: unexpected trailing input at %d", p.cur().pos)
	}
	return n, nil
}

func (p *parser) cur() token  { return p.tokens[p.pos] }
func (p *parser) advance() token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) parseComparison() (node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for isComparisonOp(p.cur().typ) {
		op := p.advance().typ
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: op, l: left, r: right}
	}
	return left, nil
}

func isComparisonOp(t tokenType) bool {
	switch t {
	case tokEQ, tokNE, tokLT, tokLE, tokGT, tokGE:
		return true
	default:
		return false
	}
}

func (p *parser) parseConcat() (node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.cur().typ == tokAmp {
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: tokAmp, l: left, r: right}
	}
	return left, nil
}

func (p *parser) parseAdditive() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur().typ == tokPlus || p.cur().typ == tokMinus {
		op := p.advance().typ
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: op, l: left, r: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur().typ == tokStar || p.cur().typ == tokSlash {
		op := p.advance().typ
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: op, l: left, r: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.cur().typ == tokPlus || p.cur().typ == tokMinus {
		op := p.advance().typ
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &unaryNode{op: op, x: x}, nil
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() (node, error) {
	t := p.cur()
	switch t.typ {
	case tokNumber:
		p.advance()
		return &numberNode{value: t.num}, nil
	case tokString:
		p.advance()
		return &stringNode{value: t.text}, nil
	case tokCellRef:
		p.advance()
		pos, err := position.ParsePosition(t.text)
		if err != nil {
			return nil, fmt.Errorf("formula: invalid cell reference %q at %d", t.text, t.pos)
		}
		if p.cur().typ == tokColon {
			p.advance()
			end := p.cur()
			if end.typ != tokCellRef {
				return nil, fmt.Errorf("formula: expected cell reference after ':' at %d", end.pos)
			}
			p.advance()
			toPos, err := position.ParsePosition(end.text)
			if err != nil {
				return nil, fmt.Errorf("formula: invalid cell reference %q at %d", end.text, end.pos)
			}
			return &rangeNode{from: pos, to: toPos}, nil
		}
		return &cellRefNode{pos: pos}, nil
	case tokIdent:
		return p.parseCall()
	case tokLParen:
		p.advance()
		inner, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		if p.cur().typ != tokRParen {
			return nil, fmt.Errorf("formula: expected ')' at %d", p.cur().pos)
		}
		p.advance()
		return inner, nil
	default:
		return nil, fmt.Errorf("formula: unexpected token at %d", t.pos)
	}
}

func (p *parser) parseCall() (node, error) {
	name := p.advance().text
	upper := upperASCII(name)
	spec, ok := builtins[upper]
	if !ok {
		return nil, fmt.Errorf("formula: unknown function %q", name)
	}
	if p.cur().typ != tokLParen {
		return nil, fmt.Errorf("formula: expected '(' after function name %q", name)
	}
	p.advance()

	var args []node
	if p.cur().typ != tokRParen {
		for {
			arg, err := p.parseComparison()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur().typ == tokComma {
				p.advance()
				continue
			}
			break
		}
	}
	if p.cur().typ != tokRParen {
		return nil, fmt.Errorf("formula: expected ')' to close call to %q at %d", name, p.cur().pos)
	}
	p.advance()

	if len(args) < spec.minArgs || (spec.maxArgs >= 0 && len(args) > spec.maxArgs) {
		if spec.maxArgs < 0 {
			return nil, fmt.Errorf("formula: %q takes at least %d argument(s), got %d", name, spec.minArgs, len(args))
		}
		return nil, fmt.Errorf("formula: %q takes between %d and %d arguments, got %d", name, spec.minArgs, spec.maxArgs, len(args))
	}
	return &callNode{name: upper, args: args}, nil
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
