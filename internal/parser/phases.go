package parser

import (
	"slices"

	"cppfqn/internal/decl"
	"cppfqn/internal/token"
)

// parseQualifiers reads up to two trailing const/volatile keywords, each of
// which must be preceded by whitespace.
func (p *Parser) parseQualifiers() (isConst, isVolatile bool, err error) {
	for range 2 {
		if !p.at(token.Member) {
			break
		}
		kw := p.advance()
		q, ok := token.LookupQualifier(kw.Text)
		if !ok {
			return false, false, &InvalidQualifierError{Found: kw}
		}
		switch q {
		case token.QualConst:
			isConst = true
		case token.QualVolatile:
			isVolatile = true
		}
		if !p.at(token.Whitespace) {
			found, _ := p.peek()
			return false, false, &MissingSeparatorWhitespaceError{Qualifier: kw, Found: found}
		}
		p.advance()
	}
	return isConst, isVolatile, nil
}

// parseArgs reads the trailing parenthesis group. Arguments are split on
// every separator; whitespace tokens next to a separator or parenthesis are
// dropped, everything else is kept byte for byte.
func (p *Parser) parseArgs() (decl.CallForm, []string, error) {
	if tok, ok := p.peek(); ok && tok.Kind == token.ParenStart {
		// "f(": the argument list is never closed
		return decl.NoCall, nil, &UnexpectedEndOfInputError{
			Expected: token.ParenEnd,
			Offset:   tok.Span.End,
			Opened:   &tok,
		}
	}
	if !p.at(token.ParenEnd) {
		return decl.NoCall, nil, nil
	}
	closing := p.advance()

	var (
		args    []string
		current []string
	)
	for {
		tok, ok := p.peek()
		if !ok {
			return decl.NoCall, nil, &UnexpectedEndOfInputError{
				Expected: token.ParenStart,
				Offset:   p.edge,
				Opened:   &closing,
			}
		}
		p.advance()
		if tok.Kind == token.ParenStart {
			break
		}
		if tok.Kind == token.Separator {
			args = append(args, joinArgument(current))
			current = current[:0]
			continue
		}
		current = append(current, tok.Text)
	}
	args = append(args, joinArgument(current))

	if len(args) == 1 && args[0] == "" {
		return decl.EmptyCall, nil, nil
	}
	// arguments were collected last first
	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}
	return decl.ArgsCall, args, nil
}

// joinArgument restores one argument from texts collected backward,
// trimming a whitespace token at either end.
func joinArgument(parts []string) string {
	if len(parts) > 0 && isBlank(parts[0]) {
		parts = parts[1:]
	}
	if len(parts) > 0 && isBlank(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}
	return textsReversed(parts)
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
		default:
			return false
		}
	}
	return s != ""
}

// parseTemplate reads template arguments attached directly to the name.
func (p *Parser) parseTemplate() (*string, error) {
	p.skipWhitespace()
	if !p.at(token.TemplateEnd) {
		return nil, nil
	}
	tmpl, err := p.parseNestedTemplate()
	if err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func (p *Parser) parseName() (string, error) {
	p.skipWhitespace()
	tok, ok := p.peek()
	if !ok {
		return "", &MissingMemberNameError{Offset: p.edge}
	}
	switch tok.Kind {
	case token.Operator, token.Member:
		return p.advance().Text, nil
	}
	return "", &MissingMemberNameError{Found: tok, Offset: tok.Span.Start}
}

// parseNestedTemplate consumes a balanced "<...>" span ending at the
// current '>' and returns it verbatim, brackets included.
func (p *Parser) parseNestedTemplate() (string, error) {
	closeTok, err := p.expect(token.TemplateEnd)
	if err != nil {
		return "", err
	}
	parts := []string{closeTok.Text}
	depth := 1
	for depth > 0 {
		if p.done() {
			return "", &UnbalancedTemplateError{Close: closeTok, Depth: depth}
		}
		tok := p.advance()
		parts = append(parts, tok.Text)
		switch tok.Kind {
		case token.TemplateEnd:
			depth++
		case token.TemplateStart:
			depth--
		}
	}
	return textsReversed(parts), nil
}

// parseScopes reads the `a::b<T>::` chain in front of the name and returns
// it outermost first.
func (p *Parser) parseScopes() ([]decl.Scope, error) {
	if !p.at(token.Scope) {
		return nil, nil
	}
	var scopes []decl.Scope
	for !p.done() && !p.at(token.Whitespace) {
		if _, err := p.expect(token.Scope); err != nil {
			return nil, err
		}
		var seg decl.Scope
		if p.at(token.TemplateEnd) {
			tmpl, err := p.parseNestedTemplate()
			if err != nil {
				return nil, err
			}
			seg.Template = &tmpl
		}
		name, ok := p.peek()
		if !ok || name.Kind != token.Member {
			return nil, &MissingMemberNameError{Found: name, Offset: p.edge}
		}
		seg.Name = p.advance().Text
		scopes = append(scopes, seg)
	}
	for i, j := 0, len(scopes)-1; i < j; i, j = i+1, j-1 {
		scopes[i], scopes[j] = scopes[j], scopes[i]
	}
	return scopes, nil
}

// parseReturnType takes every remaining token as one opaque string. The
// angle brackets inside it must still balance.
func (p *Parser) parseReturnType() (*string, error) {
	p.skipWhitespace()
	if p.done() {
		return nil, nil
	}
	toks := make([]token.Token, 0, p.pos+1)
	for !p.done() {
		toks = append(toks, p.advance())
	}
	slices.Reverse(toks)
	if err := checkBrackets(toks); err != nil {
		return nil, err
	}
	rt := token.Concat(toks)
	return &rt, nil
}

// checkBrackets проверяет баланс < > слева направо.
// Лишняя '>' или незакрытая '<' дают UnbalancedTemplateError.
func checkBrackets(toks []token.Token) error {
	var open []token.Token
	for _, tok := range toks {
		switch tok.Kind {
		case token.TemplateStart:
			open = append(open, tok)
		case token.TemplateEnd:
			if len(open) == 0 {
				return &UnbalancedTemplateError{Close: tok, Depth: 1}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return &UnbalancedTemplateError{Close: open[len(open)-1], Depth: len(open)}
	}
	return nil
}
