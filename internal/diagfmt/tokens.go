package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"cppfqn/internal/token"
)

type SpanJSON struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

type TokenOutput struct {
	Kind string   `json:"kind"`
	Text string   `json:"text"`
	Span SpanJSON `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-17s %-14q at %s\n", i+1, tok.Kind.String(), tok.Text, tok.Span); err != nil {
			return err
		}
	}
	return nil
}

// TokensOutput converts tokens to their JSON shape.
func TokensOutput(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: SpanJSON{Start: tok.Span.Start, End: tok.Span.End},
		})
	}
	return output
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := TokensOutput(tokens)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
