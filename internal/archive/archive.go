// Package archive models hourly GitHub Archive dumps: canonical naming,
// fetch-or-reuse retrieval against the local cache, and hour-range expansion.
package archive

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	perr "gar/internal/platform/errors"
)

// HourRef identifies one archive hour (UTC)
type HourRef struct {
	Year  int
	Month int
	Day   int
	Hour  int
}

// NewHourRef creates an HourRef from a time.Time, converting to UTC
func NewHourRef(t time.Time) HourRef {
	ut := t.UTC()
	return HourRef{Year: ut.Year(), Month: int(ut.Month()), Day: ut.Day(), Hour: ut.Hour()}
}

// ParseHourRef parses a YYYY-M-D-H date string: exactly four dash-separated
// integer components, no other format accepted
func ParseHourRef(s string) (HourRef, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 4 {
		return HourRef{}, perr.InvalidArgf("bad date %q: want YYYY-M-D-H", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return HourRef{}, perr.InvalidArgf("bad date %q: %q is not a number", s, p)
		}
		vals[i] = v
	}
	return HourRef{Year: vals[0], Month: vals[1], Day: vals[2], Hour: vals[3]}, nil
}

// UTC returns the time at the start of the referenced hour
func (h HourRef) UTC() time.Time {
	return time.Date(h.Year, time.Month(h.Month), h.Day, h.Hour, 0, 0, 0, time.UTC)
}

// String renders the hour in the upstream archive host's exact format.
// No component is zero padded; a single digit hour stays one digit
func (h HourRef) String() string {
	return fmt.Sprintf("%d-%d-%d-%d", h.Year, h.Month, h.Day, h.Hour)
}

// CanonicalName returns the upstream/cache filename for the given hour
func CanonicalName(h HourRef) string {
	return h.String() + ".json.gz"
}

// Archive is one hourly dump. Data is populated by a successful Fetch and
// not mutated afterwards within a run
type Archive struct {
	Hour HourRef
	data []byte
}

// New constructs an Archive for the given hour
func New(year, month, day, hour int) *Archive {
	return &Archive{Hour: HourRef{Year: year, Month: month, Day: day, Hour: hour}}
}

// Name returns the archive's canonical filename, a pure function of its hour
func (a *Archive) Name() string { return CanonicalName(a.Hour) }

// Data returns the fetched gzip bytes, nil before a successful Fetch or
// after a Cached short-circuit
func (a *Archive) Data() []byte { return a.data }

// Hours expands [from, to) into one HourRef per hour, stepping by exactly
// one hour. from > to is a user error; from == to yields no hours
func Hours(from, to HourRef) ([]HourRef, error) {
	f, t := from.UTC(), to.UTC()
	if f.After(t) {
		return nil, perr.InvalidArgf("bad range: from %s is after to %s", from, to)
	}
	var out []HourRef
	for cur := f; cur.Before(t); cur = cur.Add(time.Hour) {
		out = append(out, NewHourRef(cur))
	}
	return out, nil
}
