// Package diag defines the diagnostic model shared by the lexer, the parser
// and the fixture checker.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with a stable string
//     form such as LEX1001 or SYN2004.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary – byte span inside the declarator.
//   - Path/Line – location of the declarator inside a signature list.
//   - Notes – optional secondary spans, e.g. the unmatched '>' of a template.
//
// Lexer and parser errors implement Coded; FromError turns any such error
// into a Diagnostic without importing those packages.
//
// # Emitting diagnostics
//
// Producers report through a Reporter. BagReporter aggregates into a Bag,
// which is bounded, safe for concurrent use, and supports sorting and
// deduplication.
//
// Rendering lives in internal/diagfmt; FormatShort here only provides the
// one-line form used in golden files.
package diag
