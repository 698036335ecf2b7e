package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"cppfqn/internal/decl"
	"cppfqn/internal/diagfmt"
	"cppfqn/internal/driver"
	"cppfqn/internal/source"
)

// argsPath names the virtual listing built from command-line signatures.
const argsPath = "<args>"

func newParseCmd(a *app) *cobra.Command {
	var (
		format string
		uiFlag string
		files  []string
	)
	cmd := &cobra.Command{
		Use:   "parse [flags] [signature...]",
		Short: "Parse declarators",
		Long: `Parse splits declarators given as arguments, or every line of the
signature lists given with --file (files or directories of *.sig files).
Diagnostics go to stderr; the exit code is 1 if any declarator failed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd, args, files, format, uiFlag)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format (pretty|json|tree|short)")
	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "signature list file or directory (repeatable)")
	cmd.Flags().StringVar(&uiFlag, "ui", "", "progress UI for signature lists (auto|on|off)")
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, args, paths []string, formatFlag, uiFlag string) error {
	format, err := a.resolveFormat(formatFlag, "pretty", "json", "tree", "short")
	if err != nil {
		return err
	}
	if uiFlag == "" {
		uiFlag = a.cfg.Run.UI
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	if len(args) == 0 && len(paths) == 0 {
		return fmt.Errorf("nothing to parse: pass signatures or --file")
	}

	ctx := cmd.Context()
	var results []*driver.FileResult

	if len(args) > 0 {
		idx := a.timer.Begin("parse args")
		res, err := driver.ParseListing(ctx, source.VirtualListing(argsPath, args...), a.cfg.Run.MaxDiagnostics)
		a.timer.End(idx, fmt.Sprintf("%d declarators", len(args)))
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	if len(paths) > 0 {
		files, err := driver.ListFiles(paths)
		if err != nil {
			return err
		}
		opts := driver.Options{Jobs: a.cfg.Run.Jobs, MaxDiagnostics: a.cfg.Run.MaxDiagnostics}
		idx := a.timer.Begin("parse files")
		started := time.Now()
		var batch []*driver.FileResult
		if shouldUseTUI(mode, a.quiet, cmd.OutOrStdout()) {
			batch, err = runParseWithUI(ctx, files, opts, cmd.OutOrStdout())
		} else {
			batch, err = driver.ParseFiles(ctx, files, opts)
		}
		a.timer.End(idx, fmt.Sprintf("%d files", len(files)))
		if err != nil {
			return err
		}
		results = append(results, batch...)
		if !a.quiet {
			printBatchSummary(cmd.ErrOrStderr(), batch, time.Since(started))
		}
	}

	idx := a.timer.Begin("render")
	err = writeDeclarators(cmd.OutOrStdout(), results, format)
	a.timer.End(idx, format)
	if err != nil {
		return err
	}

	bag := driver.MergeDiagnostics(results, a.cfg.Run.MaxDiagnostics)
	return a.reportDiagnostics(cmd, bag, resultsSource(results), format)
}

type located struct {
	path string
	line uint32
	d    *decl.Declarator
}

func parsed(results []*driver.FileResult) []located {
	var out []located
	for _, r := range results {
		if r == nil {
			continue
		}
		for i := range r.Lines {
			if l := &r.Lines[i]; l.OK() {
				out = append(out, located{path: r.Path, line: l.Line, d: l.Declarator})
			}
		}
	}
	return out
}

func writeDeclarators(w io.Writer, results []*driver.FileResult, format string) error {
	items := parsed(results)
	switch format {
	case "json":
		ds := make([]*decl.Declarator, len(items))
		for i, it := range items {
			ds[i] = it.d
		}
		return diagfmt.FormatDeclaratorsJSON(w, ds)
	case "short":
		for _, it := range items {
			if _, err := fmt.Fprintf(w, "%s:%d: %s\n", it.path, it.line, it.d.QualifiedName()); err != nil {
				return err
			}
		}
		return nil
	}
	render := diagfmt.FormatDeclaratorPretty
	if format == "tree" {
		render = diagfmt.FormatDeclaratorTree
	}
	for i, it := range items {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := render(w, it.d); err != nil {
			return err
		}
	}
	return nil
}

func printBatchSummary(w io.Writer, batch []*driver.FileResult, elapsed time.Duration) {
	var lines, failed int
	for _, r := range batch {
		if r != nil {
			lines += len(r.Lines)
			failed += r.Failed()
		}
	}
	fmt.Fprintf(w, "parsed %d declarators from %d files, %d failed (%s)\n", lines, len(batch), failed, durationMS(elapsed))
}

func resultsSource(results []*driver.FileResult) diagfmt.SourceFunc {
	return func(path string, line uint32) (string, bool) {
		for _, r := range results {
			if r != nil && r.Path == path {
				return r.Source(line)
			}
		}
		return "", false
	}
}
