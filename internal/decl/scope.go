package decl

import (
	"cppfqn/internal/record"
)

// Scope is one `::`-separated link of a qualification chain.
type Scope struct {
	Name     string
	Template *string // "<...>" verbatim, nil when the segment is not templated
}

// String renders the segment the way it was spelled.
func (s Scope) String() string {
	if s.Template == nil {
		return s.Name
	}
	return s.Name + *s.Template
}

func (s Scope) Equal(other Scope) bool {
	return s.Name == other.Name && optEqual(s.Template, other.Template)
}

func (s Scope) ToMap() record.Map {
	return record.Map{
		"name":     s.Name,
		"template": optValue(s.Template),
	}
}

// ScopeFromMap is the inverse of Scope.ToMap.
func ScopeFromMap(m record.Map) (Scope, error) {
	if err := record.Require(m, "scope", "name", "template"); err != nil {
		return Scope{}, err
	}
	name, err := record.String(m, "scope", "name")
	if err != nil {
		return Scope{}, err
	}
	tmpl, err := record.OptString(m, "scope", "template")
	if err != nil {
		return Scope{}, err
	}
	return Scope{Name: name, Template: tmpl}, nil
}

func optEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func optValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
