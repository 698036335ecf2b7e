// Package testkit holds structural checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"cppfqn/internal/decl"
	"cppfqn/internal/token"
)

// CheckTokenInvariants verifies the lexer output for input:
// 1) spans are non-empty, contiguous and cover the whole input
// 2) every token text equals its source bytes, except OPERATOR tokens whose
// text drops the whitespace between the keyword and the symbol
func CheckTokenInvariants(input string, toks []token.Token) error {
	inputLen, err := safecast.Conv[uint32](len(input))
	if err != nil {
		return fmt.Errorf("len input overflow: %w", err)
	}
	var pos uint32
	for i, tok := range toks {
		sp := tok.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d (%s) has empty span %v", i, tok.Kind, sp)
		}
		if sp.Start != pos {
			return fmt.Errorf("token %d (%s) starts at %d, previous ended at %d", i, tok.Kind, sp.Start, pos)
		}
		if sp.End > inputLen {
			return fmt.Errorf("token %d span %v beyond input length %d", i, sp, inputLen)
		}
		raw := input[sp.Start:sp.End]
		if tok.Kind == token.Operator {
			if squeezed := squeeze(raw); tok.Text != squeezed {
				return fmt.Errorf("operator token %d text %q does not match %q", i, tok.Text, raw)
			}
		} else if tok.Text != raw {
			return fmt.Errorf("token %d (%s) text %q, source %q", i, tok.Kind, tok.Text, raw)
		}
		pos = sp.End
	}
	if pos != inputLen {
		return fmt.Errorf("tokens cover %d of %d bytes", pos, inputLen)
	}
	return nil
}

// CheckDeclaratorInvariants verifies a successful parse of input.
func CheckDeclaratorInvariants(input string, d *decl.Declarator) error {
	if d == nil {
		return fmt.Errorf("nil declarator")
	}
	if d.FullText != input {
		return fmt.Errorf("full text %q differs from input %q", d.FullText, input)
	}
	if d.Name == "" {
		return fmt.Errorf("empty name")
	}
	switch d.Call {
	case decl.NoCall, decl.EmptyCall:
		if d.Parameters != nil {
			return fmt.Errorf("call form %s with parameters %q", d.Call, d.Parameters)
		}
	case decl.ArgsCall:
		if len(d.Parameters) == 0 {
			return fmt.Errorf("call form args without parameters")
		}
	default:
		return fmt.Errorf("unknown call form %d", d.Call)
	}
	if err := checkTemplate(input, d.Template); err != nil {
		return fmt.Errorf("name template: %w", err)
	}
	for i, s := range d.Scopes {
		if s.Name == "" {
			return fmt.Errorf("scope %d has empty name", i)
		}
		if err := checkTemplate(input, s.Template); err != nil {
			return fmt.Errorf("scope %d template: %w", i, err)
		}
	}
	if d.ReturnType != nil && strings.TrimSpace(*d.ReturnType) == "" {
		return fmt.Errorf("blank return type")
	}
	return nil
}

// checkTemplate: шаблон хранится вместе с угловыми скобками; пробелы внутри
// operator-токенов схлопываются, поэтому сравнение идёт без пробелов.
func checkTemplate(input string, tmpl *string) error {
	if tmpl == nil {
		return nil
	}
	t := *tmpl
	if !strings.HasPrefix(t, "<") || !strings.HasSuffix(t, ">") {
		return fmt.Errorf("%q is not bracketed", t)
	}
	if !strings.Contains(squeeze(input), squeeze(t)) {
		return fmt.Errorf("%q is not verbatim input text", t)
	}
	return nil
}

func squeeze(s string) string {
	return strings.Join(strings.Fields(s), "")
}
