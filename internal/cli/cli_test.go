package cli

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gar/internal/archive"
	perr "gar/internal/platform/errors"
	kit "gar/internal/platform/testkit"
)

func resetFlags(t *testing.T) {
	t.Helper()
	kit.Serial(t)
	fromDate, toDate, selects, wheres = "", "", "", ""
	t.Cleanup(func() { fromDate, toDate, selects, wheres = "", "", "", "" })
}

func TestResolveHoursSingleDate(t *testing.T) {
	resetFlags(t)

	hours, err := resolveHours([]string{"2013-1-1-5"})
	if err != nil {
		t.Fatalf("resolveHours: %v", err)
	}
	if len(hours) != 1 || hours[0].Hour != 5 {
		t.Fatalf("resolveHours = %+v", hours)
	}
}

func TestResolveHoursRange(t *testing.T) {
	resetFlags(t)
	fromDate, toDate = "2013-1-1-1", "2013-1-1-3"

	hours, err := resolveHours(nil)
	if err != nil {
		t.Fatalf("resolveHours: %v", err)
	}
	// half-open: hours 1 and 2, never 3
	if len(hours) != 2 || hours[0].Hour != 1 || hours[1].Hour != 2 {
		t.Fatalf("resolveHours = %+v", hours)
	}
}

func TestResolveHoursUserErrors(t *testing.T) {
	resetFlags(t)

	// neither form given
	if _, err := resolveHours(nil); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v, want InvalidArgument", err)
	}

	// both forms given
	fromDate = "2013-1-1-1"
	if _, err := resolveHours([]string{"2013-1-1-5"}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v, want InvalidArgument", err)
	}

	// inverted range
	fromDate, toDate = "2013-1-2-0", "2013-1-1-0"
	if _, err := resolveHours(nil); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v, want InvalidArgument", err)
	}

	// malformed date
	fromDate, toDate = "2013-01", "2013-1-1-3"
	if _, err := resolveHours(nil); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v, want InvalidArgument", err)
	}
}

func TestHourEventsInMemory(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte(`{"repo": {"name": "one"}}` + "\n" + `{"repo": {"name": "two"}}` + "\n"))
	gz.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	// caching disabled: bytes stay in memory and never touch disk
	f := archive.NewFetcher(t.TempDir(), false, archive.WithBaseURL(srv.URL))
	a := archive.New(2013, 1, 1, 1)
	if _, err := f.Fetch(context.Background(), a); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	events := hourEvents(f, a)
	if len(events) != 2 {
		t.Fatalf("hourEvents = %d events, want 2", len(events))
	}
	if events[0].Name != "one" || events[1].Name != "two" {
		t.Fatalf("events = %+v, %+v", events[0], events[1])
	}
}

func TestHourEventsFromCache(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte(`{"repo": {"name": "cached"}}` + "\n"))
	gz.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	dir := t.TempDir()
	f := archive.NewFetcher(dir, true, archive.WithBaseURL(srv.URL))
	a := archive.New(2013, 1, 1, 1)
	if _, err := f.Fetch(context.Background(), a); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	// a second invocation short-circuits to the cache file on disk
	b := archive.New(2013, 1, 1, 1)
	status, err := f.Fetch(context.Background(), b)
	if err != nil || status != archive.Cached {
		t.Fatalf("Fetch = %v, %v, want Cached", status, err)
	}
	events := hourEvents(f, b)
	if len(events) != 1 || events[0].Name != "cached" {
		t.Fatalf("hourEvents = %+v", events)
	}
}
