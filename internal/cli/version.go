package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gar/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		bi := version.Info()
		fmt.Fprintf(os.Stdout, "%s %s (commit %s, built %s)\n", bi.Name, bi.Version, bi.Commit, bi.Date)
	},
}
