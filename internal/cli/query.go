package cli

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gar/internal/archive"
	"gar/internal/event"
	perr "gar/internal/platform/errors"
	"gar/internal/platform/logger"
	"gar/internal/query"
	"gar/internal/reader"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter and project events from a range of archives",
	Long: `Fetch every hour of [from, to), decode the events they contain,
keep those matching every --where constraint and print the --select
fields as a table.

A where clause is a comma-separated list of label:value constraints,
e.g. --where "language:Rust,+watchers:10". An empty --select prints
every known field.`,
	Args: cobra.NoArgs,
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if fromDate == "" || toDate == "" {
		return perr.InvalidArgf("query needs both --from and --to")
	}
	hours, err := parseRange(fromDate, toDate)
	if err != nil {
		return err
	}
	fields, err := query.ParseSelect(selects)
	if err != nil {
		return err
	}
	cons, err := query.ParseConstraints(wheres)
	if err != nil {
		return err
	}

	opts, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	fetcher := newFetcher(opts)
	log := logger.C(ctx)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(fields)

	for _, h := range hours {
		a := archive.New(h.Year, h.Month, h.Day, h.Hour)
		if _, err := fetcher.Fetch(ctx, a); err != nil {
			log.Warn().Err(err).Str("archive", a.Name()).Msg("skipping hour")
			continue
		}
		for _, e := range hourEvents(fetcher, a) {
			ok, err := e.Satisfies(cons)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			row := make([]string, 0, len(fields))
			for _, f := range e.Project(fields) {
				row = append(row, f.Value)
			}
			table.Append(row)
		}
	}

	table.Render()
	return nil
}

// hourEvents decodes one fetched hour. A cached hour reads back from disk;
// with caching off the bytes only exist in memory
func hourEvents(f *archive.Fetcher, a *archive.Archive) []*event.Event {
	if data := a.Data(); data != nil {
		text, err := reader.DecompressBytes(data)
		if err != nil {
			logger.Named("query").Warn().Err(err).Str("archive", a.Name()).Msg("bad archive bytes")
			return nil
		}
		return event.ParseLines(reader.SplitLines(text))
	}
	return event.ParseArchiveFile(f.CachePath(a))
}
