package lexer

import (
	"cppfqn/internal/token"
)

// scanIdent сканирует [A-Za-z_][A-Za-z0-9_]*. Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Member, start)
}

// scanWhitespace collapses a run of whitespace into one token.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for isSpaceByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start)
}
