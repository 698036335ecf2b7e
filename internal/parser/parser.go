package parser

import (
	"fmt"

	"cppfqn/internal/decl"
	"cppfqn/internal/lexer"
	"cppfqn/internal/source"
	"cppfqn/internal/token"
	"cppfqn/internal/trace"
)

type Options struct {
	// Tracer receives one ScopeDecl span per parse and one ScopePhase point
	// per phase. Nil disables tracing.
	Tracer trace.Tracer
	// Parent is the span id the parse span hangs under.
	Parent uint64
}

// Parser — состояние разбора одного декларатора.
// Токены читаются с конца к началу.
type Parser struct {
	input string
	toks  []token.Token
	pos   int    // индекс текущего токена, -1 когда токены кончились
	edge  uint32 // начало последнего съеденного токена
	opts  Options
	span  *trace.Span
}

// Parse tokenizes and parses input. Lexer errors are returned unchanged.
func Parse(input string) (*decl.Declarator, error) {
	return ParseWith(input, Options{})
}

// ParseWith is Parse with tracing options.
func ParseWith(input string, opts Options) (*decl.Declarator, error) {
	toks, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return New(input, toks, opts).Parse()
}

// ParseTokens parses an already tokenized input.
func ParseTokens(input string, toks []token.Token) (*decl.Declarator, error) {
	return New(input, toks, Options{}).Parse()
}

// New prepares a parser over toks, which must be the lexer output for input.
func New(input string, toks []token.Token, opts Options) *Parser {
	return &Parser{input: input, toks: toks, opts: opts}
}

// Parse runs the six phases. Every call starts from the last token again,
// so repeated calls yield equal results.
func (p *Parser) Parse() (d *decl.Declarator, err error) {
	p.pos = len(p.toks) - 1
	p.edge = source.Offset(len(p.input))
	p.span = trace.Begin(p.opts.Tracer, trace.ScopeDecl, "parse", p.opts.Parent)
	defer func() {
		if err != nil {
			p.span.WithExtra("error", err.Error()).End("failed")
			return
		}
		p.span.WithExtra("name", d.Name).End("ok")
	}()

	d = &decl.Declarator{FullText: p.input}

	if d.Const, d.Volatile, err = p.parseQualifiers(); err != nil {
		return nil, err
	}
	p.phase("qualifiers", func() string { return fmt.Sprintf("const=%t volatile=%t", d.Const, d.Volatile) })

	if d.Call, d.Parameters, err = p.parseArgs(); err != nil {
		return nil, err
	}
	p.phase("args", func() string { return fmt.Sprintf("%s %q", d.Call, d.Parameters) })

	if d.Template, err = p.parseTemplate(); err != nil {
		return nil, err
	}
	p.phase("template", func() string { return optDetail(d.Template) })

	if d.Name, err = p.parseName(); err != nil {
		return nil, err
	}
	p.phase("name", func() string { return d.Name })

	if d.Scopes, err = p.parseScopes(); err != nil {
		return nil, err
	}
	p.phase("scopes", func() string { return fmt.Sprintf("%d", len(d.Scopes)) })

	if d.ReturnType, err = p.parseReturnType(); err != nil {
		return nil, err
	}
	p.phase("return", func() string { return optDetail(d.ReturnType) })

	return d, nil
}

func (p *Parser) phase(name string, detail func() string) {
	t := p.opts.Tracer
	if t == nil || !t.Level().ShouldEmit(trace.ScopePhase) {
		return
	}
	trace.Point(t, trace.ScopePhase, name, p.span.ID(), detail())
}

func optDetail(s *string) string {
	if s == nil {
		return "<none>"
	}
	return *s
}
