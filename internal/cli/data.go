package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	perr "gar/internal/platform/errors"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Inspect the local archive cache",
}

var dataLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List cached archives",
	Args:  cobra.NoArgs,
	RunE:  runDataLs,
}

var dataPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the config and data directories",
	Args:  cobra.NoArgs,
	RunE:  runDataPaths,
}

func runDataLs(cmd *cobra.Command, args []string) error {
	opts, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(opts.Paths.Data)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "read data directory %s", opts.Paths.Data)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"archive", "size"})
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json.gz") {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		table.Append([]string{e.Name(), strconv.FormatInt(fi.Size(), 10)})
	}
	table.Render()
	return nil
}

func runDataPaths(cmd *cobra.Command, args []string) error {
	opts, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "base: %s\n", filepath.Clean(opts.Paths.Base))
	fmt.Fprintf(os.Stdout, "data: %s\n", filepath.Clean(opts.Paths.Data))
	return nil
}
