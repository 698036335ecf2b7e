package lexer

import (
	"strings"

	"cppfqn/internal/source"
	"cppfqn/internal/token"
)

var operatorSymbols = token.OperatorSymbols()

// scanOperatorOverload handles the `operator` keyword. It returns ok=false when
// the cursor is not at the whole word `operator`, leaving the cursor untouched.
//
// operator[]     -> OPERATOR "operator[]"
// operator []    -> OPERATOR "operator[]" (whitespace is folded into the span)
// operator bool  -> MEMBER "operator", cursor right after the keyword
func (lx *Lexer) scanOperatorOverload() (token.Token, bool) {
	rest := lx.cursor.Rest()
	kw := token.OperatorKeyword
	if !strings.HasPrefix(rest, kw) {
		return token.Token{}, false
	}
	if len(rest) > len(kw) && isIdentContinueByte(rest[len(kw)]) {
		// operatorX — обычный идентификатор
		return token.Token{}, false
	}

	start := lx.cursor.Mark()
	lx.cursor.Advance(source.Offset(len(kw)))
	afterKw := lx.cursor.Mark()

	for isSpaceByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if sym, ok := matchOperatorSymbol(lx.cursor.Rest()); ok {
		lx.cursor.Advance(source.Offset(len(sym)))
		return token.Token{
			Kind: token.Operator,
			Span: lx.cursor.SpanFrom(start),
			Text: kw + sym,
		}, true
	}

	lx.cursor.Reset(afterKw)
	return lx.emit(token.Member, start), true
}

// matchOperatorSymbol tries the catalog longest-first.
func matchOperatorSymbol(s string) (string, bool) {
	for _, sym := range operatorSymbols {
		if strings.HasPrefix(s, sym) {
			return sym, true
		}
	}
	return "", false
}
