// Package record holds the helpers shared by the map codecs of token and decl.
//
// A record is a map[string]any whose values are strings, bools, nil, nested
// records or []any. JSON and msgpack decoders both produce this shape, so the
// fixture loader can hand their output straight to FromMap functions.
package record

import (
	"fmt"
)

// Map is a serialised entity.
type Map = map[string]any

// MissingFieldError reports a required key that is absent from a record.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing key %q", e.Entity, e.Field)
}

// FieldTypeError reports a key whose value has the wrong shape.
type FieldTypeError struct {
	Entity string
	Field  string
	Want   string
	Got    any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("%s: key %q: expected %s, got %T", e.Entity, e.Field, e.Want, e.Got)
}

// Require checks that every key is present in m.
func Require(m Map, entity string, keys ...string) error {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return &MissingFieldError{Entity: entity, Field: k}
		}
	}
	return nil
}

// String returns m[key] as a string.
func String(m Map, entity, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", &MissingFieldError{Entity: entity, Field: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldTypeError{Entity: entity, Field: key, Want: "string", Got: v}
	}
	return s, nil
}

// OptString returns m[key] as a *string; nil values map to nil.
func OptString(m Map, entity, key string) (*string, error) {
	v, ok := m[key]
	if !ok {
		return nil, &MissingFieldError{Entity: entity, Field: key}
	}
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, &FieldTypeError{Entity: entity, Field: key, Want: "string or null", Got: v}
	}
	return &s, nil
}

// Bool returns m[key] as a bool.
func Bool(m Map, entity, key string) (bool, error) {
	v, ok := m[key]
	if !ok {
		return false, &MissingFieldError{Entity: entity, Field: key}
	}
	b, ok := v.(bool)
	if !ok {
		return false, &FieldTypeError{Entity: entity, Field: key, Want: "bool", Got: v}
	}
	return b, nil
}

// List returns m[key] as a list; nil values map to a nil slice and ok=false.
func List(m Map, entity, key string) (items []any, ok bool, err error) {
	v, present := m[key]
	if !present {
		return nil, false, &MissingFieldError{Entity: entity, Field: key}
	}
	if v == nil {
		return nil, false, nil
	}
	switch vv := v.(type) {
	case []any:
		return vv, true, nil
	case []string:
		out := make([]any, len(vv))
		for i, s := range vv {
			out[i] = s
		}
		return out, true, nil
	case []Map:
		out := make([]any, len(vv))
		for i, s := range vv {
			out[i] = s
		}
		return out, true, nil
	}
	return nil, false, &FieldTypeError{Entity: entity, Field: key, Want: "list or null", Got: v}
}

// AsMap converts a decoded list element to a record.
func AsMap(v any, entity string) (Map, error) {
	switch vv := v.(type) {
	case map[string]any:
		return vv, nil
	case map[any]any:
		out := make(Map, len(vv))
		for k, val := range vv {
			ks, ok := k.(string)
			if !ok {
				return nil, &FieldTypeError{Entity: entity, Field: fmt.Sprint(k), Want: "string key", Got: k}
			}
			out[ks] = val
		}
		return out, nil
	}
	return nil, &FieldTypeError{Entity: entity, Field: "", Want: "record", Got: v}
}
