package diag

import (
	"cppfqn/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic describes one finding about a single declarator.
// Path and Line locate the declarator inside a signature list; both are
// zero for ad-hoc inputs given on the command line.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Path     string
	Line     uint32
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// At attaches a listing location.
func (d Diagnostic) At(path string, line uint32) Diagnostic {
	d.Path = path
	d.Line = line
	return d
}

// Column returns the 1-based byte column of the primary span.
func (d Diagnostic) Column() uint32 {
	return d.Primary.Start + 1
}
