package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gar/internal/archive"
	"gar/internal/home"
	perr "gar/internal/platform/errors"
	"gar/internal/platform/logger"
)

var (
	statusOK   = color.New(color.FgGreen).SprintFunc()
	statusWarn = color.New(color.FgYellow).SprintFunc()
	statusBad  = color.New(color.FgRed).SprintFunc()
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [date]",
	Short: "Download hourly archives into the local cache",
	Long: `Download one hourly archive, or every hour of a range, into the
local data directory. Hours already cached are skipped without a
network call.

Give either a single date argument or both --from and --to; the range
is half-open, [from, to).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	hours, err := resolveHours(args)
	if err != nil {
		return err
	}

	opts, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	fetcher := newFetcher(opts)

	for _, h := range hours {
		a := archive.New(h.Year, h.Month, h.Day, h.Hour)
		status, err := fetcher.Fetch(ctx, a)
		printStatus(a.Name(), status)
		if err != nil {
			// some hours are legitimately absent upstream; log and move on
			logger.C(ctx).Warn().Err(err).Str("archive", a.Name()).Msg("fetch failed")
		}
	}
	return nil
}

// resolveHours turns the positional date or the --from/--to pair into the
// list of hours to fetch
func resolveHours(args []string) ([]archive.HourRef, error) {
	switch {
	case len(args) == 1:
		if fromDate != "" || toDate != "" {
			return nil, perr.InvalidArgf("give either a date argument or --from/--to, not both")
		}
		h, err := archive.ParseHourRef(args[0])
		if err != nil {
			return nil, err
		}
		return []archive.HourRef{h}, nil
	case fromDate != "" && toDate != "":
		return parseRange(fromDate, toDate)
	default:
		return nil, perr.InvalidArgf("need a date argument or both --from and --to")
	}
}

func parseRange(from, to string) ([]archive.HourRef, error) {
	f, err := archive.ParseHourRef(from)
	if err != nil {
		return nil, err
	}
	t, err := archive.ParseHourRef(to)
	if err != nil {
		return nil, err
	}
	return archive.Hours(f, t)
}

func newFetcher(opts home.Options) *archive.Fetcher {
	return archive.NewFetcher(
		opts.Paths.Data,
		opts.Caching,
		archive.WithHTTPClient(&http.Client{Timeout: opts.HTTPTimeout}),
	)
}

func printStatus(name string, status archive.FetchStatus) {
	paint := statusBad
	switch status {
	case archive.Success:
		paint = statusOK
	case archive.Cached:
		paint = statusOK
	case archive.CantCreateCacheFile, archive.CantWriteCacheFile:
		// the bytes were fetched, only the cache store failed
		paint = statusWarn
	}
	fmt.Fprintf(os.Stdout, "%s: %s\n", name, paint(status.String()))
}
