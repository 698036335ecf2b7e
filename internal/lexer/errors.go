package lexer

import (
	"fmt"

	"cppfqn/internal/diag"
	"cppfqn/internal/source"
)

// UnrecognizedCharacterError is returned when no token pattern matches at Offset.
type UnrecognizedCharacterError struct {
	Char   rune
	Offset uint32
	Width  uint32
}

func (e *UnrecognizedCharacterError) Error() string {
	return fmt.Sprintf("unrecognized character %q at offset %d", e.Char, e.Offset)
}

// Code returns the diagnostic code for this error.
func (e *UnrecognizedCharacterError) Code() diag.Code { return diag.LexUnknownChar }

// Span returns the bytes of the offending character.
func (e *UnrecognizedCharacterError) Span() source.Span {
	return source.Span{Start: e.Offset, End: e.Offset + e.Width}
}
