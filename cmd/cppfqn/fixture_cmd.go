package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cppfqn/internal/fixture"
	"cppfqn/internal/source"
)

func newFixtureCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "fixture [flags] <signatures-file>",
		Short: "Generate a golden fixture from a signature list",
		Long: `Fixture parses every line of a signature list and writes the results as
a golden fixture (.json or .msgpack, chosen by the -o extension; JSON to
stdout without -o). Lines that fail become negative records.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFixture(cmd, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json or .msgpack)")
	return cmd
}

func (a *app) runFixture(cmd *cobra.Command, path, output string) error {
	listing, err := source.LoadListing(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	sources := make([]string, len(listing.Lines))
	for i, l := range listing.Lines {
		sources[i] = l.Text
	}

	idx := a.timer.Begin("generate")
	recs := fixture.Generate(sources)
	a.timer.End(idx, fmt.Sprintf("%d records", len(recs)))

	if output == "" {
		return fixture.Encode(cmd.OutOrStdout(), fixture.FormatJSON, recs)
	}
	if err := a.timer.Measure("save", func() error { return fixture.Save(output, recs) }); err != nil {
		return err
	}
	if !a.quiet {
		negative := 0
		for _, r := range recs {
			if r.Error != "" {
				negative++
			}
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d records (%d negative) to %s\n", len(recs), negative, output)
	}
	return nil
}
