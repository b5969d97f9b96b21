package archive

import (
	"testing"

	perr "gar/internal/platform/errors"
)

func TestCanonicalNameNeverZeroPads(t *testing.T) {
	t.Parallel()

	cases := []struct {
		y, m, d, h int
		want       string
	}{
		{1000, 1, 1, 1, "1000-1-1-1.json.gz"},
		{2013, 11, 11, 11, "2013-11-11-11.json.gz"},
		{2013, 1, 2, 0, "2013-1-2-0.json.gz"},
		{2014, 10, 9, 23, "2014-10-9-23.json.gz"},
	}
	for _, c := range cases {
		h := HourRef{Year: c.y, Month: c.m, Day: c.d, Hour: c.h}
		if got := CanonicalName(h); got != c.want {
			t.Errorf("CanonicalName(%v) = %q, want %q", h, got, c.want)
		}
		if got := New(c.y, c.m, c.d, c.h).Name(); got != c.want {
			t.Errorf("Archive.Name(%v) = %q, want %q", h, got, c.want)
		}
	}
}

func TestParseHourRef(t *testing.T) {
	t.Parallel()

	got, err := ParseHourRef("2013-1-2-3")
	if err != nil {
		t.Fatalf("ParseHourRef: %v", err)
	}
	want := HourRef{Year: 2013, Month: 1, Day: 2, Hour: 3}
	if got != want {
		t.Fatalf("ParseHourRef = %v, want %v", got, want)
	}
}

func TestParseHourRefRejectsGarbage(t *testing.T) {
	t.Parallel()

	bad := []string{"", "2013", "2013-1-2", "2013-1-2-3-4", "2013-1-x-3", "yesterday"}
	for _, s := range bad {
		_, err := ParseHourRef(s)
		if err == nil {
			t.Errorf("ParseHourRef(%q) should fail", s)
			continue
		}
		if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			t.Errorf("ParseHourRef(%q) code = %d, want InvalidArgument", s, perr.CodeOf(err))
		}
	}
}

func TestHoursHalfOpenRange(t *testing.T) {
	t.Parallel()

	from := HourRef{Year: 2013, Month: 1, Day: 1, Hour: 1}
	to := HourRef{Year: 2013, Month: 1, Day: 1, Hour: 3}

	hrs, err := Hours(from, to)
	if err != nil {
		t.Fatalf("Hours: %v", err)
	}
	if len(hrs) != 2 {
		t.Fatalf("Hours = %d refs, want 2", len(hrs))
	}
	if hrs[0].Hour != 1 || hrs[1].Hour != 2 {
		t.Fatalf("Hours = %v, want hours 1 and 2", hrs)
	}
}

func TestHoursCrossesDayBoundary(t *testing.T) {
	t.Parallel()

	from := HourRef{Year: 2013, Month: 1, Day: 1, Hour: 23}
	to := HourRef{Year: 2013, Month: 1, Day: 2, Hour: 1}

	hrs, err := Hours(from, to)
	if err != nil {
		t.Fatalf("Hours: %v", err)
	}
	if len(hrs) != 2 {
		t.Fatalf("Hours = %d refs, want 2", len(hrs))
	}
	if hrs[1].Day != 2 || hrs[1].Hour != 0 {
		t.Fatalf("second ref = %v, want day 2 hour 0", hrs[1])
	}
}

func TestHoursEmptyAndInverted(t *testing.T) {
	t.Parallel()

	h := HourRef{Year: 2013, Month: 1, Day: 1, Hour: 1}

	// from == to yields no fetches
	hrs, err := Hours(h, h)
	if err != nil {
		t.Fatalf("Hours equal: %v", err)
	}
	if len(hrs) != 0 {
		t.Fatalf("Hours equal = %d refs, want 0", len(hrs))
	}

	// from > to is a user error, not an empty result
	later := HourRef{Year: 2013, Month: 1, Day: 1, Hour: 2}
	_, err = Hours(later, h)
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("inverted range error = %v, want InvalidArgument", err)
	}
}

func TestFetchStatusStrings(t *testing.T) {
	t.Parallel()

	cases := map[FetchStatus]string{
		Success:             "success",
		Cached:              "cached",
		FailFetch:           "failed to fetch",
		NotFound:            "not found",
		ResourceUnavailable: "resource unavailable",
		CantCreateCacheFile: "cant create cache file",
		CantWriteCacheFile:  "cant write cache file",
	}
	for s, want := range cases {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
