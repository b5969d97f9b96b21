// Package home resolves the directory layout the tool works in: a base
// config directory under the user's home and a flat data directory holding
// one cached .json.gz file per archive hour.
package home

import (
	"os"
	"path/filepath"
	"time"

	"gar/internal/platform/config"
	perr "gar/internal/platform/errors"
)

const (
	appName = "gar"
	prefix  = ".config"
	dataDir = "data"
)

// Paths is the resolved directory layout for one invocation
type Paths struct {
	Base string
	Data string
}

// Options are the GAR_* settings the pipeline needs
type Options struct {
	Paths       Paths
	Caching     bool
	HTTPTimeout time.Duration
}

// FromEnv resolves paths and cache policy from the GAR_ env namespace.
// GAR_DATA_DIR overrides the default ~/.config/gar/data location
func FromEnv(cfg config.Conf) (Options, error) {
	g := cfg.Prefix("GAR_")

	p, err := defaultPaths()
	if err != nil {
		return Options{}, err
	}
	if dir := g.MayString("DATA_DIR", ""); dir != "" {
		p.Data = dir
	}

	return Options{
		Paths:       p,
		Caching:     g.MayBool("CACHING", true),
		HTTPTimeout: g.MayDuration("HTTP_TIMEOUT", 2*time.Minute),
	}, nil
}

func defaultPaths() (Paths, error) {
	h, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, perr.Wrap(err, perr.ErrorCodeIO, "cannot resolve home directory")
	}
	base := filepath.Join(h, prefix, appName)
	return Paths{Base: base, Data: filepath.Join(base, dataDir)}, nil
}

// Bootstrap creates the data directory. A missing or unwritable data
// directory is a setup-time fatal error surfaced before any fetch begins
func Bootstrap(o Options) error {
	if err := os.MkdirAll(o.Paths.Data, 0o755); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "cannot create data directory %s", o.Paths.Data)
	}
	return nil
}

// ArchiveExists reports whether a file with the given canonical name is
// already present in the data directory
func ArchiveExists(o Options, name string) bool {
	fi, err := os.Stat(filepath.Join(o.Paths.Data, name))
	return err == nil && fi.Mode().IsRegular()
}
