package decl

import (
	"encoding/json"
	"errors"
	"testing"

	"cppfqn/internal/record"
)

func sampleDeclarator() *Declarator {
	return &Declarator{
		Name:       "three",
		FullText:   "int one_3hello0::tconstwo<mytemplate>::three(const four &) volatile",
		ReturnType: Str("int"),
		Parameters: []string{"const four &"},
		Call:       ArgsCall,
		Scopes: []Scope{
			{Name: "one_3hello0"},
			{Name: "tconstwo", Template: Str("<mytemplate>")},
		},
		Volatile: true,
	}
}

func TestQualifiedName(t *testing.T) {
	d := sampleDeclarator()
	if got := d.QualifiedName(); got != "one_3hello0::tconstwo<mytemplate>::three" {
		t.Errorf("QualifiedName = %q", got)
	}
	d.Template = Str("<T>")
	d.Scopes = nil
	if got := d.QualifiedName(); got != "three<T>" {
		t.Errorf("QualifiedName = %q", got)
	}
}

func TestToMapKeys(t *testing.T) {
	m := sampleDeclarator().ToMap()
	for _, k := range append(declaratorKeys, "call") {
		if _, ok := m[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}
	if m["template"] != nil {
		t.Errorf("absent template must serialise as nil, got %#v", m["template"])
	}
	if m["call"] != "args" {
		t.Errorf("call = %#v", m["call"])
	}
}

// TestJSONRoundTrip goes through encoding/json so the decoder sees the
// same []any / map[string]any shapes a fixture file produces.
func TestJSONRoundTrip(t *testing.T) {
	tests := []*Declarator{
		sampleDeclarator(),
		{Name: "three", FullText: "one::two::three()", Call: EmptyCall,
			Scopes: []Scope{{Name: "one"}, {Name: "two"}}},
		{Name: "var", FullText: "var<T>", Call: NoCall, Template: Str("<T>")},
	}
	for _, want := range tests {
		t.Run(want.FullText, func(t *testing.T) {
			raw, err := json.Marshal(want.ToMap())
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var m record.Map
			if err := json.Unmarshal(raw, &m); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			got, err := FromMap(m)
			if err != nil {
				t.Fatalf("FromMap: %v", err)
			}
			if !got.Equal(want) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestFromMapMissingKey(t *testing.T) {
	for _, key := range declaratorKeys {
		t.Run(key, func(t *testing.T) {
			m := sampleDeclarator().ToMap()
			delete(m, key)
			_, err := FromMap(m)
			var mf *record.MissingFieldError
			if !errors.As(err, &mf) {
				t.Fatalf("expected MissingFieldError, got %v", err)
			}
			if mf.Field != key {
				t.Errorf("Field = %q, want %q", mf.Field, key)
			}
		})
	}
}

func TestFromMapScopeMissingKey(t *testing.T) {
	m := sampleDeclarator().ToMap()
	m["scopes"] = []any{map[string]any{"name": "one"}}
	_, err := FromMap(m)
	var mf *record.MissingFieldError
	if !errors.As(err, &mf) || mf.Entity != "scope" || mf.Field != "template" {
		t.Fatalf("expected scope template MissingFieldError, got %v", err)
	}
}

func TestFromMapInfersCall(t *testing.T) {
	m := sampleDeclarator().ToMap()
	delete(m, "call")
	d, err := FromMap(m)
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if d.Call != ArgsCall {
		t.Errorf("Call = %v, want args", d.Call)
	}

	m["args"] = nil
	d, err = FromMap(m)
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if d.Call != EmptyCall {
		t.Errorf("Call = %v, want empty", d.Call)
	}
}

func TestFromMapRejectsInconsistentCall(t *testing.T) {
	m := sampleDeclarator().ToMap()
	m["call"] = "empty"
	var ft *record.FieldTypeError
	if _, err := FromMap(m); !errors.As(err, &ft) || ft.Field != "call" {
		t.Fatalf("expected call FieldTypeError, got %v", err)
	}
	m["call"] = "sometimes"
	if _, err := FromMap(m); !errors.As(err, &ft) {
		t.Fatalf("expected FieldTypeError for unknown call form, got %v", err)
	}
}

func TestEqual(t *testing.T) {
	a, b := sampleDeclarator(), sampleDeclarator()
	if !a.Equal(b) {
		t.Fatal("identical declarators must be equal")
	}
	b.Scopes[1].Template = Str("<other>")
	if a.Equal(b) {
		t.Error("scope template difference not detected")
	}
	b = sampleDeclarator()
	b.Scopes = nil
	if a.Equal(b) {
		t.Error("scope presence difference not detected")
	}
	b = sampleDeclarator()
	b.Const = true
	if a.Equal(b) {
		t.Error("const difference not detected")
	}
	var nilDecl *Declarator
	if !nilDecl.Equal(nil) || nilDecl.Equal(a) {
		t.Error("nil handling")
	}
}

func TestCallFormNames(t *testing.T) {
	for _, c := range []CallForm{NoCall, EmptyCall, ArgsCall} {
		got, ok := LookupCallForm(c.String())
		if !ok || got != c {
			t.Errorf("LookupCallForm(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := LookupCallForm("bogus"); ok {
		t.Error("unknown name accepted")
	}
}

func TestFromMapEmptyArgsList(t *testing.T) {
	for _, call := range []any{nil, "empty"} {
		m := sampleDeclarator().ToMap()
		m["args"] = []any{}
		m["call"] = call
		d, err := FromMap(m)
		if err != nil {
			t.Fatalf("call=%v: FromMap: %v", call, err)
		}
		if d.Call != EmptyCall || d.Parameters != nil {
			t.Errorf("call=%v: Call = %v, Parameters = %#v, want empty call with nil parameters", call, d.Call, d.Parameters)
		}
	}
}
