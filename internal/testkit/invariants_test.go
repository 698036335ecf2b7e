package testkit

import (
	"strings"
	"testing"

	"cppfqn/internal/decl"
	"cppfqn/internal/lexer"
	"cppfqn/internal/parser"
	"cppfqn/internal/source"
	"cppfqn/internal/token"
)

func TestInvariantsHoldForParses(t *testing.T) {
	inputs := []string{
		"one::two::three()",
		"int one_3hello0::tconstwo<mytemplate>::three(const four &) volatile",
		"one::two::operator  []()",
		"std::vector<std::pair<int, char*>>& f(int **, const char&)  const volatile",
		"test1::test2< T *> one_3hello0::tconstwo< mytemplate>::three<Test::type<T * >::Hello>(const four &, int a) volatile",
		"ns::var<T>",
	}
	for _, in := range inputs {
		toks, err := lexer.Tokenize(in)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", in, err)
		}
		if err := CheckTokenInvariants(in, toks); err != nil {
			t.Errorf("tokens of %q: %v", in, err)
		}
		d, err := parser.ParseTokens(in, toks)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if err := CheckDeclaratorInvariants(in, d); err != nil {
			t.Errorf("declarator of %q: %v", in, err)
		}
	}
}

func TestTokenInvariantViolations(t *testing.T) {
	in := "a::b"
	tests := []struct {
		name string
		toks []token.Token
		want string
	}{
		{"gap", []token.Token{
			{Kind: token.Member, Text: "a", Span: source.Span{Start: 0, End: 1}},
			{Kind: token.Member, Text: "b", Span: source.Span{Start: 3, End: 4}},
		}, "starts at 3"},
		{"short", []token.Token{
			{Kind: token.Member, Text: "a", Span: source.Span{Start: 0, End: 1}},
		}, "cover 1 of 4"},
		{"text", []token.Token{
			{Kind: token.Member, Text: "x", Span: source.Span{Start: 0, End: 1}},
		}, `text "x"`},
		{"empty", []token.Token{
			{Kind: token.Member, Text: "", Span: source.Span{Start: 0, End: 0}},
		}, "empty span"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTokenInvariants(in, tt.toks)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestDeclaratorInvariantViolations(t *testing.T) {
	bad := map[string]*decl.Declarator{
		"full text":  {FullText: "g()", Name: "f", Call: decl.EmptyCall},
		"empty name": {FullText: "f()", Call: decl.EmptyCall},
		"parameters": {FullText: "f()", Name: "f", Call: decl.EmptyCall, Parameters: []string{}},
		"args":       {FullText: "f()", Name: "f", Call: decl.ArgsCall},
		"bracketed":  {FullText: "f()", Name: "f", Call: decl.EmptyCall, Template: decl.Str("T")},
	}
	for want, d := range bad {
		err := CheckDeclaratorInvariants("f()", d)
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("%s: err = %v", want, err)
		}
	}
}
