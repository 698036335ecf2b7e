package parser

import (
	"fmt"

	"cppfqn/internal/diag"
	"cppfqn/internal/source"
	"cppfqn/internal/token"
)

// Error is implemented by every parse failure. Callers branch on the
// concrete type with errors.As.
type Error interface {
	error
	Code() diag.Code
	Span() source.Span
}

var (
	_ Error = (*UnexpectedEndOfInputError)(nil)
	_ Error = (*UnexpectedTokenError)(nil)
	_ Error = (*InvalidQualifierError)(nil)
	_ Error = (*MissingSeparatorWhitespaceError)(nil)
	_ Error = (*UnbalancedTemplateError)(nil)
	_ Error = (*MissingMemberNameError)(nil)
)

// UnexpectedEndOfInputError: tokens ran out while Expected was still required.
// Opened, when set, is the parenthesis whose partner is missing.
type UnexpectedEndOfInputError struct {
	Expected token.Kind
	Offset   uint32
	Opened   *token.Token
}

func (e *UnexpectedEndOfInputError) Error() string {
	return fmt.Sprintf("unexpected end of input, expected %s", e.Expected)
}

func (e *UnexpectedEndOfInputError) Code() diag.Code   { return diag.SynUnexpectedEOF }
func (e *UnexpectedEndOfInputError) Span() source.Span { return source.Point(e.Offset) }

func (e *UnexpectedEndOfInputError) Notes() []diag.Note {
	if e.Opened == nil {
		return nil
	}
	return []diag.Note{{Span: e.Opened.Span, Msg: fmt.Sprintf("unmatched %q here", e.Opened.Text)}}
}

// UnexpectedTokenError: Found sits where a token of kind Expected must be.
type UnexpectedTokenError struct {
	Found    token.Token
	Expected token.Kind
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected %s %q, expected %s", e.Found.Kind, e.Found.Text, e.Expected)
}

func (e *UnexpectedTokenError) Code() diag.Code   { return diag.SynUnexpectedToken }
func (e *UnexpectedTokenError) Span() source.Span { return e.Found.Span }

// InvalidQualifierError: a trailing identifier other than const/volatile.
type InvalidQualifierError struct {
	Found token.Token
}

func (e *InvalidQualifierError) Error() string {
	return fmt.Sprintf("expected const, volatile or ')' at the end, found %q", e.Found.Text)
}

func (e *InvalidQualifierError) Code() diag.Code   { return diag.SynBadQualifier }
func (e *InvalidQualifierError) Span() source.Span { return e.Found.Span }

// MissingSeparatorWhitespaceError: a qualifier is not preceded by whitespace.
// Found has kind token.Invalid when the qualifier starts the input.
type MissingSeparatorWhitespaceError struct {
	Qualifier token.Token
	Found     token.Token
}

func (e *MissingSeparatorWhitespaceError) Error() string {
	if e.Found.Kind == token.Invalid {
		return fmt.Sprintf("expected whitespace before %q, found start of input", e.Qualifier.Text)
	}
	return fmt.Sprintf("expected whitespace before %q, found %s %q", e.Qualifier.Text, e.Found.Kind, e.Found.Text)
}

func (e *MissingSeparatorWhitespaceError) Code() diag.Code { return diag.SynMissingWhitespace }

func (e *MissingSeparatorWhitespaceError) Span() source.Span {
	return source.Point(e.Qualifier.Span.Start)
}

// UnbalancedTemplateError: Close is the bracket left without a partner, a '>'
// whose backward scan ran out of tokens or a '<' left open in the return
// type. Depth is the number of brackets still unmatched.
type UnbalancedTemplateError struct {
	Close token.Token
	Depth int
}

func (e *UnbalancedTemplateError) Error() string {
	return fmt.Sprintf("unbalanced template: %q at offset %d has %d unmatched bracket(s)", e.Close.Text, e.Close.Span.Start, e.Depth)
}

func (e *UnbalancedTemplateError) Code() diag.Code   { return diag.SynUnbalancedTemplate }
func (e *UnbalancedTemplateError) Span() source.Span { return e.Close.Span }

// MissingMemberNameError: no identifier where a name or scope segment must be.
// Found has kind token.Invalid when the input was exhausted.
type MissingMemberNameError struct {
	Found  token.Token
	Offset uint32
}

func (e *MissingMemberNameError) Error() string {
	if e.Found.Kind == token.Invalid {
		return "expected member name, found start of input"
	}
	return fmt.Sprintf("expected member name, found %s %q", e.Found.Kind, e.Found.Text)
}

func (e *MissingMemberNameError) Code() diag.Code { return diag.SynMissingName }

func (e *MissingMemberNameError) Span() source.Span {
	if e.Found.Kind == token.Invalid {
		return source.Point(e.Offset)
	}
	return e.Found.Span
}
