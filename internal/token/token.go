package token

import (
	"cppfqn/internal/record"
	"cppfqn/internal/source"
)

// Token represents a single declarator token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Same reports whether two tokens have the same kind and text, ignoring spans.
func (t Token) Same(other Token) bool {
	return t.Kind == other.Kind && t.Text == other.Text
}

// Is reports whether the token has kind k.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// ToMap serialises the token as {"kind", "text"}.
func (t Token) ToMap() record.Map {
	return record.Map{
		"kind": t.Kind.String(),
		"text": t.Text,
	}
}

// FromMap reconstructs a token from ToMap output. Spans are not serialised.
func FromMap(m record.Map) (Token, error) {
	if err := record.Require(m, "token", "kind", "text"); err != nil {
		return Token{}, err
	}
	name, err := record.String(m, "token", "kind")
	if err != nil {
		return Token{}, err
	}
	kind, ok := LookupKind(name)
	if !ok {
		return Token{}, &record.FieldTypeError{Entity: "token", Field: "kind", Want: "token kind name", Got: name}
	}
	text, err := record.String(m, "token", "text")
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: kind, Text: text}, nil
}

// Concat joins token texts in order.
func Concat(toks []Token) string {
	n := 0
	for _, t := range toks {
		n += len(t.Text)
	}
	buf := make([]byte, 0, n)
	for _, t := range toks {
		buf = append(buf, t.Text...)
	}
	return string(buf)
}
