package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cppfqn/internal/decl"
	"cppfqn/internal/diag"
	"cppfqn/internal/source"
	"cppfqn/internal/token"
)

func TestPrettyCaret(t *testing.T) {
	d := diag.NewError(diag.SynUnexpectedEOF, source.Point(6), "unexpected end of input, expected PARENTHESIS_END").
		At("sigs.txt", 3).
		WithNote(source.Span{Start: 5, End: 6}, `unmatched "(" here`)

	var buf bytes.Buffer
	if err := Pretty(&buf, []diag.Diagnostic{d}, SingleSource("three("), PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"ERROR[SYN2002]: unexpected end of input",
		"--> sigs.txt:3:7",
		" 3 | three(\n",
		"|       ^\n",
		"|      - unmatched \"(\" here",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("colour codes emitted with Color=false:\n%q", out)
	}
}

func TestPrettyWithoutSource(t *testing.T) {
	d := diag.NewError(diag.LexUnknownChar, source.Span{Start: 2, End: 3}, "unrecognized character")
	var buf bytes.Buffer
	if err := Pretty(&buf, []diag.Diagnostic{d}, nil, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "--> <input>:3") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	d := diag.NewError(diag.SynBadQualifier, source.Span{Start: 0, End: 3}, "bad")
	var buf bytes.Buffer
	if err := Pretty(&buf, []diag.Diagnostic{d}, SingleSource("foo"), PrettyOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected ANSI colour codes:\n%q", buf.String())
	}
}

func TestUnderlineWideCharacters(t *testing.T) {
	tests := []struct {
		text string
		span source.Span
		want string
	}{
		{"abc", source.Span{Start: 1, End: 2}, " ^"},
		{"名x", source.Span{Start: 3, End: 4}, "  ^"},
		{"ab", source.Point(2), "  ^"},
		{"ab", source.Span{Start: 9, End: 12}, "  ^"},
	}
	for _, tt := range tests {
		if got := underline(tt.text, tt.span, '^'); got != tt.want {
			t.Errorf("underline(%q, %v) = %q, want %q", tt.text, tt.span, got, tt.want)
		}
	}
}

func TestJSONDiagnostics(t *testing.T) {
	diags := []diag.Diagnostic{
		diag.NewError(diag.SynMissingName, source.Point(0), "expected member name").At("a.txt", 2).
			WithNote(source.Point(1), "n"),
		diag.NewError(diag.SynBadQualifier, source.Span{Start: 0, End: 3}, "bad"),
	}
	var buf bytes.Buffer
	if err := JSON(&buf, diags, JSONOpts{Max: 1, IncludeNotes: true}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 2 || len(out.Diagnostics) != 1 {
		t.Fatalf("count=%d len=%d", out.Count, len(out.Diagnostics))
	}
	got := out.Diagnostics[0]
	if got.Code != "SYN2006" || got.Location.File != "a.txt" || got.Location.Line != 2 || got.Location.Column != 1 {
		t.Errorf("unexpected diagnostic %+v", got)
	}
	if len(got.Notes) != 1 || got.Notes[0].Location.Column != 2 {
		t.Errorf("notes = %+v", got.Notes)
	}
}

func TestFormatTokens(t *testing.T) {
	toks := []token.Token{
		{Kind: token.Member, Text: "one", Span: source.Span{Start: 0, End: 3}},
		{Kind: token.Scope, Text: "::", Span: source.Span{Start: 3, End: 5}},
	}
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "MEMBER") || !strings.Contains(lines[0], `"one"`) || !strings.HasSuffix(lines[1], "at 3-5") {
		t.Errorf("unexpected pretty tokens:\n%s", buf.String())
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[1].Kind != "SCOPE" || out[1].Span.End != 5 {
		t.Errorf("unexpected json tokens %+v", out)
	}
}

func scenarioDeclarator() *decl.Declarator {
	return &decl.Declarator{
		FullText: "one::two::three()",
		Name:     "three",
		Call:     decl.EmptyCall,
		Scopes:   []decl.Scope{{Name: "one"}, {Name: "two"}},
	}
}

func TestFormatDeclaratorPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatDeclaratorPretty(&buf, scenarioDeclarator()); err != nil {
		t.Fatal(err)
	}
	want := `Declarator "one::two::three()"
├─ Name: three
├─ Scopes
│  ├─ one
│  └─ two
└─ Call: ()
`
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFormatDeclaratorTree(t *testing.T) {
	d := scenarioDeclarator()
	d.ReturnType = decl.Str("int")
	d.Const = true
	var buf bytes.Buffer
	if err := FormatDeclaratorTree(&buf, d); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.Contains(lines[0], `Declarator "one::two::three()"`) {
		t.Errorf("root line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "/") || !strings.Contains(lines[1], "\\") {
		t.Errorf("connector line = %q", lines[1])
	}
	for _, want := range []string{"Name: three", "Return: int", "Qualifiers: const", "one", "two"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree lacks %q:\n%s", want, out)
		}
	}
}

func TestFormatDeclaratorsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatDeclaratorsJSON(&buf, []*decl.Declarator{scenarioDeclarator()}); err != nil {
		t.Fatal(err)
	}
	var out []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	got, err := decl.FromMap(out[0])
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(scenarioDeclarator()) {
		t.Errorf("round trip mismatch %+v", got)
	}
}
