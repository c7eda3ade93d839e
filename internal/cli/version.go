// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dompart/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dompart version",
	// No config needed; keep version working even with a broken dompart.yaml.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dompart version %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
