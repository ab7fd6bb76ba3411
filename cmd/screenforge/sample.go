package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/mrsinham/screenforge/internal/sample"
	"github.com/mrsinham/screenforge/internal/sample/edgecases"
	"github.com/mrsinham/screenforge/internal/screening"
	"github.com/mrsinham/screenforge/internal/util"
	"github.com/spf13/cobra"
)

func newSampleCmd(a *app) *cobra.Command {
	var (
		count      int
		seed       uint64
		edgePct    int
		edgeTypes  string
		latinShare float64
		output     string
		variant    string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write synthetic screening records as YAML",
		Example: `  screenforge sample --count 20 --seed 42 -o records.yaml
  screenforge sample --count 50 --edge-cases 30 --edge-case-types special-chars,varied-ids`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			types, err := edgecases.ParseTypes(edgeTypes)
			if err != nil {
				return err
			}
			if variant != "" {
				if _, ok := screening.DefaultMetadata(variant); !ok {
					return fmt.Errorf("%w %q, valid variants: %v", screening.ErrUnknownVariant, variant, screening.Variants())
				}
			}

			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}
			a.log.Infof("Using seed %d", seed)

			opts := sample.DefaultOptions(count, seed)
			opts.LatinShare = latinShare
			opts.EdgeCases = edgecases.Config{Percentage: edgePct, Types: types}

			records, err := sample.Generate(opts)
			if err != nil {
				return err
			}
			f := &screening.RecordFile{Variant: variant, Records: records}

			if output == "" {
				return f.Encode(cmd.OutOrStdout())
			}
			if err := f.SaveToYAML(output); err != nil {
				return err
			}
			a.log.Infof("Wrote %d records to %s", len(records), output)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&count, "count", 10, "Number of records")
	flags.Uint64Var(&seed, "seed", 0, "Seed for reproducibility (auto-generated if not specified)")
	flags.IntVar(&edgePct, "edge-cases", 0, "Percentage of records (0-100) carrying edge-case values")
	flags.StringVar(&edgeTypes, "edge-case-types", "special-chars,long-names,missing-fields,partial-dates,varied-ids",
		"Comma-separated edge case types")
	flags.Float64Var(&latinShare, "latin-share", util.LatinNameProbability, "Share of Latin-script names (0-1)")
	flags.StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	flags.StringVar(&variant, "variant", "", "Template variant recorded in the file")

	return cmd
}
