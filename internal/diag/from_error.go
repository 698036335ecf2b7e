package diag

import (
	"errors"

	"cppfqn/internal/source"
)

// Coded is implemented by lexer and parser errors.
type Coded interface {
	error
	Code() Code
	Span() source.Span
}

// Noted errors contribute secondary spans.
type Noted interface {
	Notes() []Note
}

// FromError converts err into an error diagnostic. Errors that carry a Code
// keep it together with their span; anything else becomes UnknownCode at
// offset zero.
func FromError(err error) Diagnostic {
	var coded Coded
	if !errors.As(err, &coded) {
		return NewError(UnknownCode, source.Span{}, err.Error())
	}
	d := NewError(coded.Code(), coded.Span(), err.Error())
	if noted, ok := coded.(Noted); ok {
		d.Notes = append(d.Notes, noted.Notes()...)
	}
	return d
}
