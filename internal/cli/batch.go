// internal/cli/batch.go
package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"dompart/internal/batch"
	"dompart/internal/cmdutil"
	"dompart/internal/output"
	"dompart/internal/quality"
	"dompart/internal/store"
)

var (
	batchHits       []string
	batchOut        string
	batchBoundaries string
	batchFamilies   string
	batchWorkers    int
	batchStorePath  string
	batchResume     bool
	batchNoProgress bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Partition many proteins with a worker pool",
	Long: `Batch partitions every matched evidence document independently, one
invocation per protein, fanned out over a worker pool. A summary TSV is
printed when done; per-protein JSON goes to --out.

Examples:
  dompart batch --hits 'week32/**/*.json' --out partitions/ --boundaries ref/boundaries.tsv
  dompart batch --hits 'week32/**/*.json' --store outcomes.db --resume`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringSliceVar(&batchHits, "hits", nil, "evidence-document glob(s), '**' supported (repeatable)")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "directory for per-protein partition JSON")
	batchCmd.Flags().StringVar(&batchBoundaries, "boundaries", "", "reference boundary-map TSV")
	batchCmd.Flags().StringVar(&batchFamilies, "families", "", "domain-id to family-name TSV")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "worker goroutines (0 = all CPUs)")
	batchCmd.Flags().StringVar(&batchStorePath, "store", "", "bolt database for outcomes (enables --resume)")
	batchCmd.Flags().BoolVar(&batchResume, "resume", false, "skip proteins already in the store")
	batchCmd.Flags().BoolVar(&batchNoProgress, "no-progress", false, "disable the progress bar")
	_ = batchCmd.MarkFlagRequired("hits")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ropts, err := runnerOptions(batchBoundaries, batchFamilies)
	if err != nil {
		return err
	}

	opts := batch.Options{
		Patterns: batchHits,
		Workers:  batchWorkers,
		Runner:   ropts,
		OutDir:   batchOut,
		Resume:   batchResume || cfg.Batch.Resume,
		Warn: func(format string, a ...any) {
			cmdutil.Warnf(cmd.ErrOrStderr(), false, format, a...)
		},
	}
	if opts.Workers == 0 {
		opts.Workers = cfg.Batch.Workers
	}

	storePath := batchStorePath
	if storePath == "" {
		storePath = cfg.Batch.Store
	}
	if storePath != "" {
		st, err := store.Open(storePath)
		if err != nil {
			return err
		}
		defer st.Close()
		opts.Store = st
	}
	if opts.Resume && opts.Store == nil {
		return fmt.Errorf("--resume needs --store")
	}

	var bar *progressbar.ProgressBar
	if !batchNoProgress {
		opts.Progress = func(done, total int) {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionSetWidth(40),
					progressbar.OptionShowCount(),
					progressbar.OptionSetDescription("Partitioning"),
					progressbar.OptionOnCompletion(func() {
						fmt.Fprintln(cmd.ErrOrStderr())
					}),
				)
			}
			_ = bar.Set(done)
		}
	}

	sum, err := batch.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(w, output.SummaryHeader); err != nil {
		return err
	}
	for _, doc := range sum.Outcomes {
		if _, err := fmt.Fprintln(w, output.FormatSummaryRow(doc)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "# total=%d processed=%d skipped=%d failed=%d good=%d low_coverage=%d fragmentary=%d no_domains=%d\n",
		sum.Total, sum.Processed, sum.Skipped, sum.Failed,
		sum.Labels[quality.Good], sum.Labels[quality.LowCoverage],
		sum.Labels[quality.Fragmentary], sum.Labels[quality.NoDomains])
	return err
}
