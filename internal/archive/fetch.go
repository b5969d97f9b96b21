package archive

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	perr "gar/internal/platform/errors"
)

const baseURL = "https://data.githubarchive.org"

// FetchStatus classifies the outcome of one archive retrieval
type FetchStatus int

// Fetch outcomes. Cached means the file was already in the data directory
// and no network call was made
const (
	Success FetchStatus = iota
	Cached
	FailFetch
	NotFound
	ResourceUnavailable
	CantCreateCacheFile
	CantWriteCacheFile
)

// String returns the human readable form of the status
func (s FetchStatus) String() string {
	switch s {
	case Success:
		return "success"
	case Cached:
		return "cached"
	case FailFetch:
		return "failed to fetch"
	case NotFound:
		return "not found"
	case ResourceUnavailable:
		return "resource unavailable"
	case CantCreateCacheFile:
		return "cant create cache file"
	case CantWriteCacheFile:
		return "cant write cache file"
	default:
		return "unknown"
	}
}

// Fetcher retrieves hourly dumps over HTTP, reusing the flat data directory
// as a byte-identical cache. Archives never change once published, so a
// cache hit skips the network entirely
type Fetcher struct {
	dir     string
	caching bool
	client  *http.Client
	base    string
}

// Option configures the fetcher
type Option func(*Fetcher)

// WithHTTPClient swaps the HTTP client, e.g. to set a bounded timeout
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithBaseURL overrides the archive host, used by tests
func WithBaseURL(u string) Option {
	return func(f *Fetcher) { f.base = u }
}

// NewFetcher builds a fetcher over the given data directory. When caching is
// false fetched bytes are kept in memory only
func NewFetcher(dir string, caching bool, opts ...Option) *Fetcher {
	f := &Fetcher{
		dir:     dir,
		caching: caching,
		client:  &http.Client{Timeout: 2 * time.Minute},
		base:    baseURL,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// CachePath returns where the archive's bytes live (or would live) on disk
func (f *Fetcher) CachePath(a *Archive) string {
	return filepath.Join(f.dir, a.Name())
}

// Fetch retrieves the archive, short-circuiting to Cached when the canonical
// file already exists locally. On a cache-store failure the returned status
// names the store error but a.Data() still holds the fetched bytes; the
// download itself succeeded and must not be discarded
func (f *Fetcher) Fetch(ctx context.Context, a *Archive) (FetchStatus, error) {
	if fi, err := os.Stat(f.CachePath(a)); err == nil && fi.Mode().IsRegular() {
		return Cached, nil
	}

	status, err := f.download(ctx, a)
	if err != nil {
		return status, err
	}

	if f.caching {
		return f.store(a)
	}
	return Success, nil
}

func (f *Fetcher) download(ctx context.Context, a *Archive) (FetchStatus, error) {
	url := f.base + "/" + a.Name()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return FailFetch, perr.Wrapf(err, perr.ErrorCodeUnavailable, "bad request for %s", url)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return FailFetch, perr.Wrapf(err, perr.ErrorCodeUnavailable, "fetch %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return NotFound, perr.NotFoundf("archive %s: unexpected status %d", a.Name(), resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ResourceUnavailable, perr.Wrapf(err, perr.ErrorCodeUnavailable, "read body of %s", url)
	}

	a.data = body
	return Success, nil
}

// store persists the fetched bytes under the canonical name. Creation is
// create-if-absent so two overlapping invocations cannot clobber each other
func (f *Fetcher) store(a *Archive) (FetchStatus, error) {
	path := f.CachePath(a)

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			// a concurrent invocation won the race; its bytes are identical
			return Success, nil
		}
		return CantCreateCacheFile, perr.Wrapf(err, perr.ErrorCodeIO, "create cache file %s", path)
	}
	if _, err := out.Write(a.data); err != nil {
		_ = out.Close()
		return CantWriteCacheFile, perr.Wrapf(err, perr.ErrorCodeIO, "write cache file %s", path)
	}
	if err := out.Close(); err != nil {
		return CantWriteCacheFile, perr.Wrapf(err, perr.ErrorCodeIO, "close cache file %s", path)
	}
	return Success, nil
}
