package lexer

import (
	"cppfqn/internal/source"
)

// Cursor представляет собой позицию во входной строке
type Cursor struct {
	Input string
	Off   uint32
	// Limit is the exclusive upper bound for Off; defaults to len(Input).
	Limit uint32
}

// NewCursor creates a new cursor for the provided input.
func NewCursor(input string) Cursor {
	return Cursor{
		Input: input,
		Off:   0,
		Limit: source.Offset(len(input)),
	}
}

// EOF проверяет, достигнут ли конец ввода
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Input[c.Off]
}

// PeekAt reads the byte n positions ahead of the cursor.
func (c *Cursor) PeekAt(n uint32) (byte, bool) {
	if c.Off+n >= c.Limit {
		return 0, false
	}
	return c.Input[c.Off+n], true
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Input[c.Off]
	c.Off++
	return b
}

// Rest returns the unread part of the input.
func (c *Cursor) Rest() string {
	return c.Input[c.Off:c.Limit]
}

// Advance moves the cursor n bytes forward, clamped to the limit.
func (c *Cursor) Advance(n uint32) {
	c.Off += n
	if c.Off > c.Limit {
		c.Off = c.Limit
	}
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		Start: uint32(m),
		End:   c.Off,
	}
}

// TextFrom returns the input consumed since the mark.
func (c *Cursor) TextFrom(m Mark) string {
	return c.Input[uint32(m):c.Off]
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Input[c.Off] == b {
		c.Off++
		return true
	}
	return false
}
