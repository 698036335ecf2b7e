package parser

import (
	"errors"
	"strings"
	"testing"

	"cppfqn/internal/decl"
	"cppfqn/internal/lexer"
	"cppfqn/internal/token"
	"cppfqn/internal/trace"
)

var str = decl.Str

func scopes(names ...string) []decl.Scope {
	out := make([]decl.Scope, len(names))
	for i, n := range names {
		out[i] = decl.Scope{Name: n}
	}
	return out
}

func mustParse(t *testing.T, input string) *decl.Declarator {
	t.Helper()
	d, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	return d
}

func TestParseDeclarators(t *testing.T) {
	tests := []struct {
		name string
		want decl.Declarator
	}{
		{
			name: "scoped empty call",
			want: decl.Declarator{
				FullText: "one::two::three()",
				Name:     "three",
				Call:     decl.EmptyCall,
				Scopes:   scopes("one", "two"),
			},
		},
		{
			name: "return type, templated scope, volatile",
			want: decl.Declarator{
				FullText:   "int one_3hello0::tconstwo<mytemplate>::three(const four &) volatile",
				Name:       "three",
				ReturnType: str("int"),
				Call:       decl.ArgsCall,
				Parameters: []string{"const four &"},
				Scopes: []decl.Scope{
					{Name: "one_3hello0"},
					{Name: "tconstwo", Template: str("<mytemplate>")},
				},
				Volatile: true,
			},
		},
		{
			name: "operator star",
			want: decl.Declarator{
				FullText: "one::two::operator*()",
				Name:     "operator*",
				Call:     decl.EmptyCall,
				Scopes:   scopes("one", "two"),
			},
		},
		{
			name: "operator with inner whitespace",
			want: decl.Declarator{
				FullText: "one::two::operator []()",
				Name:     "operator[]",
				Call:     decl.EmptyCall,
				Scopes:   scopes("one", "two"),
			},
		},
		{
			name: "three arguments",
			want: decl.Declarator{
				FullText:   "f(X, Y, Z)",
				Name:       "f",
				Call:       decl.ArgsCall,
				Parameters: []string{"X", "Y", "Z"},
			},
		},
		{
			name: "arguments keep inner spelling",
			want: decl.Declarator{
				FullText:   "f(int a, char*  b, const T &)",
				Name:       "f",
				Call:       decl.ArgsCall,
				Parameters: []string{"int a", "char*  b", "const T &"},
			},
		},
		{
			name: "blank parentheses",
			want: decl.Declarator{
				FullText: "f( )",
				Name:     "f",
				Call:     decl.EmptyCall,
			},
		},
		{
			name: "const volatile with complex return type",
			want: decl.Declarator{
				FullText:   "std::vector<std::pair<int, char*>>& f(int **, const char&)  const volatile",
				Name:       "f",
				ReturnType: str("std::vector<std::pair<int, char*>>&"),
				Call:       decl.ArgsCall,
				Parameters: []string{"int **", "const char&"},
				Const:      true,
				Volatile:   true,
			},
		},
		{
			name: "qualifier order does not matter",
			want: decl.Declarator{
				FullText:   "void C::m() volatile const",
				Name:       "m",
				ReturnType: str("void"),
				Call:       decl.EmptyCall,
				Scopes:     scopes("C"),
				Const:      true,
				Volatile:   true,
			},
		},
		{
			name: "template on the name",
			want: decl.Declarator{
				FullText:   "T ns::max<T>(T, T)",
				Name:       "max",
				ReturnType: str("T"),
				Call:       decl.ArgsCall,
				Parameters: []string{"T", "T"},
				Scopes:     scopes("ns"),
				Template:   str("<T>"),
			},
		},
		{
			name: "nested scope templates",
			want: decl.Declarator{
				FullText: "a<b<c>>::d<e>::f()",
				Name:     "f",
				Call:     decl.EmptyCall,
				Scopes: []decl.Scope{
					{Name: "a", Template: str("<b<c>>")},
					{Name: "d", Template: str("<e>")},
				},
			},
		},
		{
			name: "no call",
			want: decl.Declarator{
				FullText: "ns::var<T>",
				Name:     "var",
				Call:     decl.NoCall,
				Scopes:   scopes("ns"),
				Template: str("<T>"),
			},
		},
		{
			name: "whitespace around name",
			want: decl.Declarator{
				FullText:   "int  f ()",
				Name:       "f",
				ReturnType: str("int"),
				Call:       decl.EmptyCall,
			},
		},
		{
			name: "pointer return type",
			want: decl.Declarator{
				FullText:   "const char * ns::Cls::name() const",
				Name:       "name",
				ReturnType: str("const char *"),
				Call:       decl.EmptyCall,
				Scopes:     scopes("ns", "Cls"),
				Const:      true,
			},
		},
		{
			name: "full scenario with nested template arguments",
			want: decl.Declarator{
				FullText:   "test1::test2< T *> one_3hello0::tconstwo< mytemplate>::three<Test::type<T * >::Hello>(const four &, int a) volatile",
				Name:       "three",
				ReturnType: str("test1::test2< T *>"),
				Call:       decl.ArgsCall,
				Parameters: []string{"const four &", "int a"},
				Scopes: []decl.Scope{
					{Name: "one_3hello0"},
					{Name: "tconstwo", Template: str("< mytemplate>")},
				},
				Template: str("<Test::type<T * >::Hello>"),
				Volatile: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParse(t, tt.want.FullText)
			if !got.Equal(&tt.want) {
				t.Errorf("Parse(%q)\n got %+v\nwant %+v", tt.want.FullText, *got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		check func(t *testing.T, err error)
	}{
		{"three(", func(t *testing.T, err error) {
			var e *UnexpectedEndOfInputError
			if !errors.As(err, &e) || e.Expected != token.ParenEnd || e.Offset != 6 {
				t.Fatalf("got %v", err)
			}
			if notes := e.Notes(); len(notes) != 1 || notes[0].Span.Start != 5 {
				t.Errorf("notes = %+v", notes)
			}
		}},
		{"three)", func(t *testing.T, err error) {
			var e *UnexpectedEndOfInputError
			if !errors.As(err, &e) || e.Expected != token.ParenStart || e.Offset != 0 {
				t.Fatalf("got %v", err)
			}
		}},
		{"foo", func(t *testing.T, err error) {
			var e *InvalidQualifierError
			if !errors.As(err, &e) || e.Found.Text != "foo" {
				t.Fatalf("got %v", err)
			}
		}},
		{"f() bar const", func(t *testing.T, err error) {
			var e *InvalidQualifierError
			if !errors.As(err, &e) || e.Found.Text != "bar" {
				t.Fatalf("got %v", err)
			}
		}},
		{"f()const", func(t *testing.T, err error) {
			var e *MissingSeparatorWhitespaceError
			if !errors.As(err, &e) || e.Qualifier.Text != "const" || e.Found.Kind != token.ParenEnd {
				t.Fatalf("got %v", err)
			}
		}},
		{"volatile", func(t *testing.T, err error) {
			var e *MissingSeparatorWhitespaceError
			if !errors.As(err, &e) || e.Found.Kind != token.Invalid {
				t.Fatalf("got %v", err)
			}
		}},
		{"Bar>::f()", func(t *testing.T, err error) {
			var e *UnbalancedTemplateError
			if !errors.As(err, &e) || e.Depth != 1 || e.Close.Span.Start != 3 {
				t.Fatalf("got %v", err)
			}
		}},
		{"Foo<Bar()", func(t *testing.T, err error) {
			var e *UnbalancedTemplateError
			if !errors.As(err, &e) || e.Depth != 1 || e.Close.Kind != token.TemplateStart || e.Close.Span.Start != 3 {
				t.Fatalf("got %v", err)
			}
		}},
		{"std::map<int, Foo<T> f()", func(t *testing.T, err error) {
			var e *UnbalancedTemplateError
			if !errors.As(err, &e) || e.Depth != 1 || e.Close.Span.Start != 8 {
				t.Fatalf("got %v", err)
			}
		}},
		{"a> f()", func(t *testing.T, err error) {
			var e *UnbalancedTemplateError
			if !errors.As(err, &e) || e.Close.Kind != token.TemplateEnd || e.Close.Span.Start != 1 {
				t.Fatalf("got %v", err)
			}
		}},
		{"Foo<Bar", func(t *testing.T, err error) {
			var e *InvalidQualifierError
			if !errors.As(err, &e) || e.Found.Text != "Bar" {
				t.Fatalf("got %v", err)
			}
		}},
		{"()", func(t *testing.T, err error) {
			var e *MissingMemberNameError
			if !errors.As(err, &e) || e.Found.Kind != token.Invalid {
				t.Fatalf("got %v", err)
			}
		}},
		{"*()", func(t *testing.T, err error) {
			var e *MissingMemberNameError
			if !errors.As(err, &e) || e.Found.Kind != token.Pointer {
				t.Fatalf("got %v", err)
			}
		}},
		{"ns::<T>::f()", func(t *testing.T, err error) {
			var e *MissingMemberNameError
			if !errors.As(err, &e) || e.Found.Kind != token.Scope {
				t.Fatalf("got %v", err)
			}
		}},
		{"a<b>c::f()", func(t *testing.T, err error) {
			var e *UnexpectedTokenError
			if !errors.As(err, &e) || e.Expected != token.Scope || e.Found.Kind != token.TemplateEnd {
				t.Fatalf("got %v", err)
			}
		}},
		{"f(int[3])", func(t *testing.T, err error) {
			var e *lexer.UnrecognizedCharacterError
			if !errors.As(err, &e) || e.Char != '[' {
				t.Fatalf("got %v", err)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("expected error, got %+v", *d)
			}
			if d != nil {
				t.Errorf("partial result returned alongside error")
			}
			tt.check(t, err)
		})
	}
}

func TestParseErrorsCarryCodes(t *testing.T) {
	inputs := []string{"three(", "foo", "f()const", "Bar>::f()", "()", "a<b>c::f()"}
	seen := map[string]bool{}
	for _, in := range inputs {
		_, err := Parse(in)
		var pe Error
		if !errors.As(err, &pe) {
			t.Fatalf("Parse(%q): %v does not implement parser.Error", in, err)
		}
		id := pe.Code().ID()
		if !strings.HasPrefix(id, "SYN") {
			t.Errorf("Parse(%q) code %s", in, id)
		}
		if int(pe.Span().End) > len(in) {
			t.Errorf("Parse(%q) span %v out of range", in, pe.Span())
		}
		seen[id] = true
	}
	if len(seen) != len(inputs) {
		t.Errorf("expected distinct codes per error kind, got %v", seen)
	}
}

// TestTemplateSpansVerbatim checks that every recovered template string is
// the exact bracketed substring of the input.
func TestTemplateSpansVerbatim(t *testing.T) {
	inputs := []string{
		"a< b <c , d > >::f< x<y> >()",
		"ns::vec<std::pair<int, char*>>::at<  N >(size_t) const",
		"X<Y<Z<W>>>::g()",
	}
	for _, in := range inputs {
		d := mustParse(t, in)
		check := func(s *string) {
			if s == nil {
				return
			}
			if !strings.HasPrefix(*s, "<") || !strings.HasSuffix(*s, ">") || !strings.Contains(in, *s) {
				t.Errorf("template %q is not a bracketed substring of %q", *s, in)
			}
			if strings.Count(*s, "<") != strings.Count(*s, ">") {
				t.Errorf("template %q is unbalanced", *s)
			}
		}
		check(d.Template)
		for _, s := range d.Scopes {
			check(s.Template)
		}
	}
}

func TestParseTokensAndRepeat(t *testing.T) {
	in := "int ns::f(int) const"
	toks, err := lexer.Tokenize(in)
	if err != nil {
		t.Fatal(err)
	}
	p := New(in, toks, Options{})
	first, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if !first.Equal(second) {
		t.Errorf("repeated Parse differs: %+v vs %+v", first, second)
	}
	viaTokens, err := ParseTokens(in, toks)
	if err != nil || !viaTokens.Equal(first) {
		t.Errorf("ParseTokens = %+v, %v", viaTokens, err)
	}
	if first.FullText != in {
		t.Errorf("FullText = %q", first.FullText)
	}
}

func TestParseTracesPhases(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	if _, err := ParseWith("int f()", Options{Tracer: ring, Parent: 7}); err != nil {
		t.Fatal(err)
	}
	events := ring.Snapshot()
	var names []string
	for _, ev := range events {
		names = append(names, ev.Name)
	}
	want := []string{"parse", "qualifiers", "args", "template", "name", "scopes", "return", "parse"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("events = %v, want %v", names, want)
	}
	if events[0].ParentID != 7 || events[1].ParentID != events[0].SpanID {
		t.Errorf("unexpected parent links: %+v", events[:2])
	}
	if events[len(events)-1].Extra["name"] != "f" {
		t.Errorf("end event extra = %v", events[len(events)-1].Extra)
	}
}

func TestParseTracesFailure(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDetail)
	if _, err := ParseWith("foo", Options{Tracer: ring}); err == nil {
		t.Fatal("expected error")
	}
	events := ring.Snapshot()
	if len(events) != 2 || events[1].Detail != "failed" {
		t.Fatalf("events = %+v", events)
	}
}
