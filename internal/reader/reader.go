// Package reader turns cached gzip archive files into lines of JSON text.
package reader

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	perr "gar/internal/platform/errors"
	"gar/internal/platform/logger"
)

// Decompress reads the file at path fully and gzip-inflates it to UTF-8 text
func Decompress(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeIO, "read %s", path)
	}
	return DecompressBytes(raw)
}

// DecompressBytes gzip-inflates an in-memory archive body to UTF-8 text.
// Used when caching is disabled and the bytes never touched disk
func DecompressBytes(raw []byte) (string, error) {
	gz, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeIO, "not a gzip stream")
	}
	defer func() { _ = gz.Close() }()

	text, err := io.ReadAll(gz)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeIO, "inflate gzip stream")
	}
	if !utf8.Valid(text) {
		return "", perr.New(perr.ErrorCodeIO, "inflated text is not valid UTF-8")
	}
	return string(text), nil
}

// LinesOf decompresses path and splits it on newlines, dropping blank lines.
// Decompression failure yields no lines: one corrupt archive must not abort
// a batch query, so the error is logged and swallowed here
func LinesOf(path string) []string {
	text, err := Decompress(path)
	if err != nil {
		logger.Named("reader").Warn().Err(err).Str("path", path).Msg("skipping unreadable archive")
		return nil
	}
	return SplitLines(text)
}

// SplitLines splits archive text on newlines, dropping blank lines
func SplitLines(text string) []string {
	var out []string
	for _, ln := range strings.Split(text, "\n") {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		out = append(out, ln)
	}
	return out
}
