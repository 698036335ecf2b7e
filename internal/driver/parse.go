// Package driver runs the lexer and parser over ad-hoc inputs and
// signature lists, in parallel when given several files.
package driver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cppfqn/internal/decl"
	"cppfqn/internal/diag"
	"cppfqn/internal/lexer"
	"cppfqn/internal/parser"
	"cppfqn/internal/source"
	"cppfqn/internal/token"
	"cppfqn/internal/trace"
)

// LineResult is the outcome for one declarator.
type LineResult struct {
	Line       uint32 // 1-based line in the listing, 0 for ad-hoc input
	Input      string
	Tokens     []token.Token // nil when lexing failed
	Declarator *decl.Declarator
	Diagnostic *diag.Diagnostic // nil on success
}

// OK reports whether the declarator parsed.
func (r *LineResult) OK() bool { return r.Diagnostic == nil }

// FileResult collects the results of one signature list.
type FileResult struct {
	Path    string
	Listing *source.Listing
	Lines   []LineResult
	Bag     *diag.Bag
	Elapsed time.Duration
}

// Failed counts lines with a diagnostic.
func (r *FileResult) Failed() int {
	n := 0
	for i := range r.Lines {
		if !r.Lines[i].OK() {
			n++
		}
	}
	return n
}

// Source returns the text of a listing line for diagnostic rendering.
func (r *FileResult) Source(line uint32) (string, bool) {
	for i := range r.Lines {
		if r.Lines[i].Line == line {
			return r.Lines[i].Input, true
		}
	}
	return "", false
}

// ParseLine tokenizes and parses one declarator with fresh state. The
// tracer and parent span are taken from ctx.
func ParseLine(ctx context.Context, input string) LineResult {
	res := LineResult{Input: input}
	toks, err := lexer.Tokenize(input)
	if err != nil {
		res.fail(err)
		return res
	}
	res.Tokens = toks
	opts := parser.Options{
		Tracer: trace.FromContext(ctx),
		Parent: trace.CurrentSpan(ctx).SpanID,
	}
	d, err := parser.New(input, toks, opts).Parse()
	if err != nil {
		res.fail(err)
		return res
	}
	res.Declarator = d
	return res
}

func (r *LineResult) fail(err error) {
	d := diag.FromError(err)
	r.Diagnostic = &d
}

// ParseListing parses every line of an already loaded listing.
// Diagnostics are located at the listing path and line.
func ParseListing(ctx context.Context, l *source.Listing, maxDiagnostics int) (*FileResult, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "parse_file", trace.CurrentSpan(ctx).SpanID)
	span.WithExtra("path", l.Path)
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: span.ID()})

	started := time.Now()
	res := &FileResult{
		Path:    l.Path,
		Listing: l,
		Lines:   make([]LineResult, 0, len(l.Lines)),
		Bag:     diag.NewBag(maxDiagnostics),
	}
	for _, line := range l.Lines {
		if err := ctx.Err(); err != nil {
			span.End("cancelled")
			return res, err
		}
		lr := ParseLine(ctx, line.Text)
		lr.Line = line.Number
		if lr.Diagnostic != nil {
			located := lr.Diagnostic.At(l.Path, line.Number)
			lr.Diagnostic = &located
			res.Bag.Add(located)
		}
		res.Lines = append(res.Lines, lr)
	}
	res.Elapsed = time.Since(started)
	span.WithExtra("lines", strconv.Itoa(len(res.Lines))).
		WithExtra("failed", strconv.Itoa(res.Failed()))
	span.End("ok")
	return res, nil
}

// ParseFile loads a signature list from disk and parses it.
func ParseFile(ctx context.Context, path string, maxDiagnostics int) (*FileResult, error) {
	l, err := source.LoadListing(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ParseListing(ctx, l, maxDiagnostics)
}
