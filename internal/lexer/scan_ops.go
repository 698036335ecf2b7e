package lexer

import (
	"cppfqn/internal/token"
)

// scanPunct matches the fixed single- and double-byte token classes.
// ok=false means nothing matched and the cursor did not move.
func (lx *Lexer) scanPunct() (token.Token, bool) {
	start := lx.cursor.Mark()

	if lx.try2(':', ':') {
		return lx.emit(token.Scope, start), true
	}

	var k token.Kind
	switch lx.cursor.Peek() {
	case '<':
		k = token.TemplateStart
	case '>':
		k = token.TemplateEnd
	case '(':
		k = token.ParenStart
	case ')':
		k = token.ParenEnd
	case '*':
		k = token.Pointer
	case '&':
		k = token.Reference
	case ',':
		k = token.Separator
	default:
		return token.Token{}, false
	}
	lx.cursor.Bump()
	return lx.emit(k, start), true
}
