package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"cppfqn/internal/diag"
	"cppfqn/internal/diagfmt"
	"cppfqn/internal/lexer"
	"cppfqn/internal/source"
	"cppfqn/internal/token"
)

type tokenizedLine struct {
	Line   uint32                  `json:"line"`
	Input  string                  `json:"input"`
	Tokens []diagfmt.TokenOutput   `json:"tokens"`
	Error  *diagfmt.DiagnosticJSON `json:"error,omitempty"`

	toks []token.Token
}

func newTokenizeCmd(a *app) *cobra.Command {
	var format, file string
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <signature>",
		Short: "Split a declarator into tokens",
		Long:  `Tokenize prints the token stream of one declarator, or of every line of a signature list with --file`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokenize(cmd, args, format, file)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format (pretty|json)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "tokenize every line of a signature list")
	return cmd
}

func (a *app) runTokenize(cmd *cobra.Command, args []string, formatFlag, file string) error {
	format, err := a.resolveFormat(formatFlag, "pretty", "json")
	if err != nil {
		return err
	}

	var listing *source.Listing
	switch {
	case file != "" && len(args) > 0:
		return fmt.Errorf("give either a signature or --file, not both")
	case file != "":
		if listing, err = source.LoadListing(file); err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	case len(args) == 1:
		listing = source.VirtualListing("", args[0])
	default:
		return fmt.Errorf("nothing to tokenize: pass a signature or --file")
	}

	bag := diag.NewBag(a.cfg.Run.MaxDiagnostics)
	out := cmd.OutOrStdout()
	lines := make([]tokenizedLine, 0, len(listing.Lines))

	idx := a.timer.Begin("tokenize")
	for _, line := range listing.Lines {
		toks, lexErr := lexer.Tokenize(line.Text)
		entry := tokenizedLine{
			Line:   line.Number,
			Input:  line.Text,
			Tokens: diagfmt.TokensOutput(toks),
			toks:   toks,
		}
		if lexErr != nil {
			d := diag.FromError(lexErr)
			if file != "" {
				d = d.At(listing.Path, line.Number)
			}
			bag.Add(d)
			dj := diagfmt.BuildDiagnosticsOutput([]diag.Diagnostic{d}, diagfmt.JSONOpts{}).Diagnostics[0]
			entry.Error = &dj
		}
		lines = append(lines, entry)
	}
	a.timer.End(idx, fmt.Sprintf("%d lines", len(lines)))

	// Выводим токены в выбранном формате
	switch {
	case format == "json" && file == "":
		if err := diagfmt.FormatTokensJSON(out, lines[0].toks); err != nil {
			return err
		}
	case format == "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(lines); err != nil {
			return err
		}
	default:
		for i, l := range lines {
			if file != "" {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s:%d: %s\n", listing.Path, l.Line, l.Input)
			}
			if err := diagfmt.FormatTokensPretty(out, l.toks); err != nil {
				return err
			}
		}
	}

	diagFormat := "pretty"
	if format == "json" {
		diagFormat = "json"
	}
	return a.reportDiagnostics(cmd, bag, listingSource(listing), diagFormat)
}

// listingSource serves diagnostic source lines from a listing. Ad-hoc
// inputs have an empty path and line 0.
func listingSource(l *source.Listing) diagfmt.SourceFunc {
	return func(path string, line uint32) (string, bool) {
		if path == "" && len(l.Lines) == 1 {
			return l.Lines[0].Text, true
		}
		if path != l.Path {
			return "", false
		}
		for _, ln := range l.Lines {
			if ln.Number == line {
				return ln.Text, true
			}
		}
		return "", false
	}
}
