// Package fixture reads, writes and verifies golden declarator fixtures.
//
// A fixture file is a list of records:
//
//	[{"fqn": "...", "tokens": [{"kind": "MEMBER", "text": "f"}, ...], "parser": {...}}, ...]
//
// Negative records carry "error" (a diagnostic code ID such as "SYN2002")
// and a null "parser".
package fixture

import (
	"fmt"

	"cppfqn/internal/decl"
	"cppfqn/internal/record"
	"cppfqn/internal/token"
)

const entity = "fixture"

// Record is one golden entry.
type Record struct {
	Source     string
	Tokens     []token.Token    // nil when the input does not tokenize or was not recorded
	Declarator *decl.Declarator // nil for negative records
	Error      string           // diagnostic code ID, empty for positive records
}

// ToMap serialises the record with the keys fqn, tokens, parser and,
// for negative records, error.
func (r Record) ToMap() record.Map {
	m := record.Map{"fqn": r.Source, "tokens": nil, "parser": nil}
	if r.Tokens != nil {
		list := make([]any, len(r.Tokens))
		for i, t := range r.Tokens {
			list[i] = t.ToMap()
		}
		m["tokens"] = list
	}
	if r.Declarator != nil {
		m["parser"] = r.Declarator.ToMap()
	}
	if r.Error != "" {
		m["error"] = r.Error
	}
	return m
}

// FromMap is the inverse of ToMap. Only "fqn" is required.
func FromMap(m record.Map) (Record, error) {
	src, err := record.String(m, entity, "fqn")
	if err != nil {
		return Record{}, err
	}
	rec := Record{Source: src}

	if _, present := m["tokens"]; present {
		items, ok, err := record.List(m, entity, "tokens")
		if err != nil {
			return Record{}, err
		}
		if ok {
			rec.Tokens = make([]token.Token, 0, len(items))
			for i, item := range items {
				tm, err := record.AsMap(item, "token")
				if err != nil {
					return Record{}, fmt.Errorf("tokens[%d]: %w", i, err)
				}
				tok, err := token.FromMap(tm)
				if err != nil {
					return Record{}, fmt.Errorf("tokens[%d]: %w", i, err)
				}
				rec.Tokens = append(rec.Tokens, tok)
			}
		}
	}

	if v, present := m["parser"]; present && v != nil {
		dm, err := record.AsMap(v, "declarator")
		if err != nil {
			return Record{}, fmt.Errorf("parser: %w", err)
		}
		if rec.Declarator, err = decl.FromMap(dm); err != nil {
			return Record{}, fmt.Errorf("parser: %w", err)
		}
	}

	if _, present := m["error"]; present {
		code, err := record.OptString(m, entity, "error")
		if err != nil {
			return Record{}, err
		}
		if code != nil {
			rec.Error = *code
		}
	}

	if rec.Declarator == nil && rec.Error == "" {
		return Record{}, &record.MissingFieldError{Entity: entity, Field: "parser"}
	}
	return rec, nil
}
