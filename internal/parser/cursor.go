package parser

import (
	"cppfqn/internal/token"
)

// The cursor walks the token slice from the last element toward the first.
// pos is the index of the current token; -1 means exhausted.

func (p *Parser) peek() (token.Token, bool) {
	if p.pos < 0 {
		return token.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *Parser) at(k token.Kind) bool {
	tok, ok := p.peek()
	return ok && tok.Kind == k
}

func (p *Parser) done() bool {
	return p.pos < 0
}

// advance consumes the current token. The caller must check done() first.
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	p.pos--
	p.edge = tok.Span.Start
	return tok
}

// expect consumes a token of kind k or reports what was there instead.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	tok, ok := p.peek()
	if !ok {
		return token.Token{}, &UnexpectedEndOfInputError{Expected: k, Offset: p.edge}
	}
	if tok.Kind != k {
		return token.Token{}, &UnexpectedTokenError{Found: tok, Expected: k}
	}
	return p.advance(), nil
}

// skipWhitespace consumes at most one WHITESPACE token.
func (p *Parser) skipWhitespace() {
	if p.at(token.Whitespace) {
		p.advance()
	}
}

// textsReversed joins texts collected during a backward scan in source order.
func textsReversed(parts []string) string {
	n := 0
	for _, s := range parts {
		n += len(s)
	}
	buf := make([]byte, 0, n)
	for i := len(parts) - 1; i >= 0; i-- {
		buf = append(buf, parts[i]...)
	}
	return string(buf)
}
