// Package token defines the lexical token kinds of C++ declarator strings.
// Invariants:
//   - Token.Text is the exact matched substring, except for OPERATOR tokens,
//     whose text is "operator" followed directly by the symbol.
//   - Token.Span covers the consumed input bytes, including any whitespace
//     the lexer folded into an OPERATOR token.
//   - const/volatile are ordinary MEMBER tokens; qualifiers are recognised by
//     the parser via LookupQualifier.
package token
