package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cppfqn/internal/diag"
	"cppfqn/internal/fixture"
	"cppfqn/internal/source"
)

func newCheckCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "check [flags] <fixture>...",
		Short: "Verify golden fixture files",
		Long:  `Check re-runs the lexer and parser over every record of .json or .msgpack fixtures and reports differences`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "diagnostics format (pretty|json|short)")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, paths []string, formatFlag string) error {
	format, err := a.resolveFormat(formatFlag, "pretty", "json", "short")
	if err != nil {
		return err
	}
	bag := diag.NewBag(a.cfg.Run.MaxDiagnostics)
	out := cmd.OutOrStdout()

	for _, path := range paths {
		idx := a.timer.Begin("check " + path)
		recs, err := fixture.Load(path)
		if err != nil {
			a.timer.End(idx, "failed")
			bag.Add(diag.NewError(diag.FixDecode, source.Span{}, err.Error()).At(path, 0))
			continue
		}
		mismatches := fixture.Check(recs)
		a.timer.End(idx, fmt.Sprintf("%d records", len(recs)))
		for _, m := range mismatches {
			bag.Add(m.Diagnostic(path))
		}
		if !a.quiet {
			status := "ok"
			if len(mismatches) > 0 {
				status = "FAIL"
			}
			fmt.Fprintf(out, "%-4s %s: %d records, %d mismatches\n", status, path, len(recs), len(mismatches))
		}
	}
	return a.reportDiagnostics(cmd, bag, nil, format)
}
