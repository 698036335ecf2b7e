package decl

import (
	"slices"
	"strings"

	"cppfqn/internal/record"
)

// Declarator is the structured form of a C++ signature such as
// `int ns::Cls<T>::method(const A&) volatile`.
type Declarator struct {
	Name       string
	FullText   string
	ReturnType *string
	// Parameters is nil unless Call == ArgsCall.
	Parameters []string
	Call       CallForm
	// Scopes is ordered outermost first; nil when there is no leading chain.
	Scopes   []Scope
	Template *string
	Const    bool
	Volatile bool
}

// Str returns a pointer to s; handy for building expected values.
func Str(s string) *string { return &s }

// QualifiedName joins the scope chain and the name with "::".
func (d *Declarator) QualifiedName() string {
	var b strings.Builder
	for _, s := range d.Scopes {
		b.WriteString(s.String())
		b.WriteString("::")
	}
	b.WriteString(d.Name)
	if d.Template != nil {
		b.WriteString(*d.Template)
	}
	return b.String()
}

func (d *Declarator) Equal(other *Declarator) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Name == other.Name &&
		d.FullText == other.FullText &&
		optEqual(d.ReturnType, other.ReturnType) &&
		d.Call == other.Call &&
		slices.Equal(d.Parameters, other.Parameters) &&
		slices.EqualFunc(d.Scopes, other.Scopes, Scope.Equal) &&
		(d.Scopes == nil) == (other.Scopes == nil) &&
		optEqual(d.Template, other.Template) &&
		d.Const == other.Const &&
		d.Volatile == other.Volatile
}

// ToMap serialises the declarator. Absent optionals become nil values so
// every key is always present.
func (d *Declarator) ToMap() record.Map {
	var args any
	if d.Parameters != nil {
		list := make([]any, len(d.Parameters))
		for i, p := range d.Parameters {
			list[i] = p
		}
		args = list
	}
	var scopes any
	if d.Scopes != nil {
		list := make([]any, len(d.Scopes))
		for i, s := range d.Scopes {
			list[i] = s.ToMap()
		}
		scopes = list
	}
	return record.Map{
		"name":        d.Name,
		"full_name":   d.FullText,
		"return_type": optValue(d.ReturnType),
		"args":        args,
		"scopes":      scopes,
		"template":    optValue(d.Template),
		"constant":    d.Const,
		"volatile":    d.Volatile,
		"call":        d.Call.String(),
	}
}

var declaratorKeys = []string{
	"name", "full_name", "return_type", "args", "scopes", "template", "constant", "volatile",
}

// FromMap is the inverse of ToMap. The "call" key is optional: records
// without it get EmptyCall when args is null and ArgsCall otherwise, since
// such records cannot tell a missing parenthesis group from "()".
func FromMap(m record.Map) (*Declarator, error) {
	const entity = "declarator"
	if err := record.Require(m, entity, declaratorKeys...); err != nil {
		return nil, err
	}
	d := &Declarator{}
	var err error
	if d.Name, err = record.String(m, entity, "name"); err != nil {
		return nil, err
	}
	if d.FullText, err = record.String(m, entity, "full_name"); err != nil {
		return nil, err
	}
	if d.ReturnType, err = record.OptString(m, entity, "return_type"); err != nil {
		return nil, err
	}
	if d.Template, err = record.OptString(m, entity, "template"); err != nil {
		return nil, err
	}
	if d.Const, err = record.Bool(m, entity, "constant"); err != nil {
		return nil, err
	}
	if d.Volatile, err = record.Bool(m, entity, "volatile"); err != nil {
		return nil, err
	}

	args, ok, err := record.List(m, entity, "args")
	if err != nil {
		return nil, err
	}
	// [] и null одинаково означают "аргументов нет": Parameters остаётся nil
	if ok && len(args) > 0 {
		d.Parameters = make([]string, 0, len(args))
		for _, a := range args {
			s, isStr := a.(string)
			if !isStr {
				return nil, &record.FieldTypeError{Entity: entity, Field: "args", Want: "list of strings", Got: a}
			}
			d.Parameters = append(d.Parameters, s)
		}
	}

	scopes, ok, err := record.List(m, entity, "scopes")
	if err != nil {
		return nil, err
	}
	if ok {
		d.Scopes = make([]Scope, 0, len(scopes))
		for _, item := range scopes {
			sm, err := record.AsMap(item, "scope")
			if err != nil {
				return nil, err
			}
			s, err := ScopeFromMap(sm)
			if err != nil {
				return nil, err
			}
			d.Scopes = append(d.Scopes, s)
		}
	}

	if err := d.decodeCall(m); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Declarator) decodeCall(m record.Map) error {
	v, present := m["call"]
	if !present || v == nil {
		d.Call = EmptyCall
		if len(d.Parameters) > 0 {
			d.Call = ArgsCall
		}
		return nil
	}
	name, err := record.String(m, "declarator", "call")
	if err != nil {
		return err
	}
	c, ok := LookupCallForm(name)
	if !ok {
		return &record.FieldTypeError{Entity: "declarator", Field: "call", Want: "none, empty or args", Got: name}
	}
	if (c == ArgsCall) != (len(d.Parameters) > 0) {
		return &record.FieldTypeError{Entity: "declarator", Field: "call", Want: "call form matching args", Got: name}
	}
	d.Call = c
	return nil
}
