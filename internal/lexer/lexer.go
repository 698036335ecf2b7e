// Package lexer splits a C++ declarator string into tokens.
//
// A Lexer owns its cursor; create one per input. Tokenize builds a fresh
// Lexer on every call.
package lexer

import (
	"errors"
	"io"
	"iter"
	"unicode/utf8"

	"cppfqn/internal/source"
	"cppfqn/internal/token"
)

type Lexer struct {
	input  string
	cursor Cursor
	err    error // первая ошибка; после неё Next всегда возвращает её же
}

func New(input string) *Lexer {
	return &Lexer{
		input:  input,
		cursor: NewCursor(input),
	}
}

// Input returns the string being tokenized.
func (lx *Lexer) Input() string { return lx.input }

// Next возвращает следующий токен.
// At end of input it returns io.EOF; after a lexical error it keeps
// returning that error.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.err != nil {
		return token.Token{}, lx.err
	}
	if lx.cursor.EOF() {
		return token.Token{}, io.EOF
	}

	// 1) operator overload lookahead
	if tok, ok := lx.scanOperatorOverload(); ok {
		return tok, nil
	}

	// 2) fixed classes in priority order
	ch := lx.cursor.Peek()
	switch {
	case isSpaceByte(ch):
		return lx.scanWhitespace(), nil
	case isIdentStartByte(ch):
		return lx.scanIdent(), nil
	}
	if tok, ok := lx.scanPunct(); ok {
		return tok, nil
	}

	// 3) nothing matched
	r, sz := utf8.DecodeRuneInString(lx.cursor.Rest())
	lx.err = &UnrecognizedCharacterError{
		Char:   r,
		Offset: lx.cursor.Off,
		Width:  source.Offset(sz),
	}
	return token.Token{}, lx.err
}

// All returns the remaining tokens as a lazy sequence. Iteration stops after
// the first error, which is yielded with a zero token.
func (lx *Lexer) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := lx.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

// Tokenize lexes input with a fresh Lexer and returns every token.
func Tokenize(input string) ([]token.Token, error) {
	lx := New(input)
	var tokens []token.Token
	for tok, err := range lx.All() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	return token.Token{
		Kind: k,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.cursor.TextFrom(start),
	}
}
