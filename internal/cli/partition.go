// internal/cli/partition.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dompart-core/reference"
	"dompart/internal/cmdutil"
	"dompart/internal/output"
	"dompart/internal/refdata"
	"dompart/internal/runner"
)

var (
	partBoundaries string
	partFamilies   string
	partFormat     string
	partRejections bool
	partQuiet      bool
)

var partitionCmd = &cobra.Command{
	Use:   "partition <evidence.json>",
	Short: "Partition one protein from its evidence document",
	Long: `Partition reads one evidence document (protein plus similarity hits),
resolves conflicts among overlapping candidates, decomposes whole-chain hits
against the reference boundary map, and prints the resulting domains,
coverage, and unassigned ranges.`,
	Args: cobra.ExactArgs(1),
	RunE: runPartition,
}

func init() {
	partitionCmd.Flags().StringVar(&partBoundaries, "boundaries", "", "reference boundary-map TSV (enables chain-hit decomposition)")
	partitionCmd.Flags().StringVar(&partFamilies, "families", "", "domain-id to family-name TSV")
	partitionCmd.Flags().StringVarP(&partFormat, "format", "f", "", "output format: json | text (default from config)")
	partitionCmd.Flags().BoolVar(&partRejections, "rejections", false, "include rejected candidates in the output")
	partitionCmd.Flags().BoolVarP(&partQuiet, "quiet", "q", false, "suppress per-hit warnings")
	rootCmd.AddCommand(partitionCmd)
}

func runPartition(cmd *cobra.Command, args []string) error {
	opts, err := runnerOptions(partBoundaries, partFamilies)
	if err != nil {
		return err
	}

	res, err := runner.PartitionFile(args[0], opts)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	for _, ve := range res.ValidationErrors {
		cmdutil.Warnf(stderr, partQuiet, "skipped %v", ve)
	}
	for _, id := range res.SkippedDecompositions {
		cmdutil.Warnf(stderr, partQuiet, "no boundary map for %s; kept monolithic", id)
	}

	doc := res.Doc
	if !partRejections && !cfg.Output.Rejections {
		doc.Rejections = nil
	}

	format := partFormat
	if format == "" {
		format = cfg.Output.Format
	}
	switch format {
	case "json":
		return output.WriteJSON(cmd.OutOrStdout(), doc)
	case "text":
		return output.WriteText(cmd.OutOrStdout(), doc, true)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// runnerOptions assembles the per-invocation collaborator set from flags
// and config.
func runnerOptions(boundaries, families string) (runner.Options, error) {
	opts := runner.Options{
		Core:    cfg.CoreConfig(),
		Quality: cfg.QualityThresholds(),
	}
	if boundaries != "" {
		lookup, err := refdata.LoadBoundaries(boundaries)
		if err != nil {
			return opts, fmt.Errorf("load boundary map: %w", err)
		}
		opts.Lookup = lookup
	} else {
		opts.Lookup = reference.MapLookup(nil)
	}
	if families != "" {
		fams, err := refdata.LoadFamilies(families)
		if err != nil {
			return opts, fmt.Errorf("load family lookup: %w", err)
		}
		opts.Families = fams
	}
	return opts, nil
}
