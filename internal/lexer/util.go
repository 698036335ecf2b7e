package lexer

// ===== Классификаторы =====

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// ===== Матчеры последовательностей =====

// try2 пробует "съесть" 2 байта, если совпадает; иначе курсор не двигается.
func (lx *Lexer) try2(a, b byte) bool {
	m := lx.cursor.Mark()
	if lx.cursor.Eat(a) && lx.cursor.Eat(b) {
		return true
	}
	lx.cursor.Reset(m)
	return false
}
