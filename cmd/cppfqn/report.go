package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cppfqn/internal/diag"
	"cppfqn/internal/diagfmt"
)

// reportDiagnostics prints bag to stderr in the requested format and
// returns errFailed when it holds errors.
func (a *app) reportDiagnostics(cmd *cobra.Command, bag *diag.Bag, src diagfmt.SourceFunc, format string) error {
	if bag.Len() == 0 && bag.Dropped() == 0 {
		return nil
	}
	bag.Sort()
	items := bag.Items()
	w := cmd.ErrOrStderr()

	var err error
	switch format {
	case "json":
		err = diagfmt.JSON(w, items, diagfmt.JSONOpts{IncludeNotes: true})
	case "short":
		if out := diag.FormatShort(items, true); out != "" {
			_, err = io.WriteString(w, out+"\n")
		}
	default:
		err = diagfmt.Pretty(w, items, src, diagfmt.PrettyOpts{Color: a.colorFor(w), ShowNotes: true})
	}
	if err != nil {
		return err
	}
	if dropped := bag.Dropped(); dropped > 0 && !a.quiet {
		fmt.Fprintf(w, "... %d more diagnostics not shown (--max-diagnostics %d)\n", dropped, bag.Cap())
	}
	if bag.HasErrors() {
		return errFailed
	}
	return nil
}
