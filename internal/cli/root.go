// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dompart/internal/cmdutil"
	"dompart/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dompart",
	Short: "Assign structural domain regions to protein sequences from similarity evidence",
	Long: `dompart fuses heterogeneous similarity-search evidence (sequence- and
profile-level hits against a reference domain classification) into a
non-overlapping domain partition of a protein sequence.

Example usage:
  dompart partition 1abc_A.json --boundaries ref/boundaries.tsv
  dompart batch --hits 'batch/**/*.json' --out partitions/`,
	SilenceUsage:  true,
	SilenceErrors: true, // Execute reports them once, prefixed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			wd, werr := os.Getwd()
			if werr != nil {
				return fmt.Errorf("determine working directory: %w", werr)
			}
			cfg, err = config.LoadFromDir(wd)
		}
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

// Execute runs the CLI and returns a process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		cmdutil.Errorf(rootCmd.ErrOrStderr(), "%v", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.FileName+")")
}
