// Package cli is the command surface of gar: fetch, query, data and version
// subcommands over the archive pipeline.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"gar/internal/home"
	"gar/internal/platform/config"
	perr "gar/internal/platform/errors"
	"gar/internal/platform/logger"
)

var (
	fromDate string
	toDate   string
	selects  string
	wheres   string
)

var rootCmd = &cobra.Command{
	Use:   "gar",
	Short: "GitHub Archive fetch and query tool",
	Long: `gar downloads hourly GitHub Archive dumps, caches them locally and
lets you filter and project the events they contain.

Dates take the form YYYY-M-D-H with no zero padding, matching the
archive host's own file naming.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	fetchCmd.Flags().StringVar(&fromDate, "from", "", "start of the hour range (YYYY-M-D-H, inclusive)")
	fetchCmd.Flags().StringVar(&toDate, "to", "", "end of the hour range (YYYY-M-D-H, exclusive)")

	queryCmd.Flags().StringVar(&fromDate, "from", "", "start of the hour range (YYYY-M-D-H, inclusive)")
	queryCmd.Flags().StringVar(&toDate, "to", "", "end of the hour range (YYYY-M-D-H, exclusive)")
	queryCmd.Flags().StringVar(&selects, "select", "", "comma-separated fields to output (default: all)")
	queryCmd.Flags().StringVar(&wheres, "where", "", "comma-separated label:value constraints, ANDed")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(dataCmd)
	dataCmd.AddCommand(dataLsCmd)
	dataCmd.AddCommand(dataPathsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI and returns the process exit code. User errors exit 2,
// everything else that fails exits 1
func Execute() int {
	runID := uuid.NewString()
	ctx := logger.WithRun(context.Background(), runID)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return perr.ExitStatus(err)
	}
	return 0
}

// bootstrap resolves GAR_* settings and makes sure the data directory exists
// before any fetch begins
func bootstrap(ctx context.Context) (home.Options, error) {
	opts, err := home.FromEnv(config.New())
	if err != nil {
		return home.Options{}, err
	}
	if err := home.Bootstrap(opts); err != nil {
		return home.Options{}, err
	}
	logger.C(ctx).Debug().
		Str("data_dir", opts.Paths.Data).
		Bool("caching", opts.Caching).
		Msg("bootstrapped")
	return opts, nil
}
