package fixture

import (
	"fmt"
	"strings"

	"cppfqn/internal/decl"
	"cppfqn/internal/diag"
	"cppfqn/internal/lexer"
	"cppfqn/internal/parser"
	"cppfqn/internal/source"
	"cppfqn/internal/token"
)

// Generate builds records from live parses of sources. Inputs that fail
// become negative records.
func Generate(sources []string) []Record {
	recs := make([]Record, len(sources))
	for i, src := range sources {
		recs[i] = run(src)
	}
	return recs
}

func run(src string) Record {
	rec := Record{Source: src}
	toks, err := lexer.Tokenize(src)
	if err != nil {
		rec.Error = diag.FromError(err).Code.ID()
		return rec
	}
	rec.Tokens = toks
	d, err := parser.ParseTokens(src, toks)
	if err != nil {
		rec.Error = diag.FromError(err).Code.ID()
		return rec
	}
	rec.Declarator = d
	return rec
}

// Mismatch is one difference between a fixture record and a live run.
type Mismatch struct {
	Index  int // 0-based record index
	Source string
	Field  string // tokens | parser | error
	Want   string
	Got    string
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("record %d %q: %s: want %s, got %s", m.Index, m.Source, m.Field, m.Want, m.Got)
}

// Diagnostic reports the mismatch against the fixture file; Line is the
// 1-based record number.
func (m Mismatch) Diagnostic(path string) diag.Diagnostic {
	return diag.NewError(diag.FixMismatch, source.Span{}, m.Error()).At(path, source.Offset(m.Index+1))
}

// Check re-runs the lexer and parser over every record.
func Check(recs []Record) []Mismatch {
	var out []Mismatch
	for i, want := range recs {
		got := run(want.Source)
		miss := func(field, w, g string) {
			out = append(out, Mismatch{Index: i, Source: want.Source, Field: field, Want: w, Got: g})
		}
		if want.Tokens != nil && !sameTokens(want.Tokens, got.Tokens) {
			miss("tokens", formatTokens(want.Tokens), formatTokens(got.Tokens))
		}
		switch {
		case want.Error != "":
			if got.Error != want.Error {
				miss("error", want.Error, orNone(got.Error))
			}
		case got.Error != "":
			miss("error", "none", got.Error)
		case !want.Declarator.Equal(got.Declarator):
			miss("parser", formatDeclarator(want.Declarator), formatDeclarator(got.Declarator))
		}
	}
	return out
}

func sameTokens(a, b []token.Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Same(b[i]) {
			return false
		}
	}
	return true
}

func formatTokens(toks []token.Token) string {
	if toks == nil {
		return "none"
	}
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatDeclarator(d *decl.Declarator) string {
	if d == nil {
		return "none"
	}
	return fmt.Sprintf("%v", d.ToMap())
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
