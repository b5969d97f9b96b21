// Package query parses the flat where/select syntax: comma-separated
// label:value constraint tokens ANDed together, and comma-separated field
// selections from the fixed known set.
package query

import (
	"strconv"
	"strings"

	perr "gar/internal/platform/errors"
	pstrings "gar/internal/platform/strings"
)

// Constraint is one label/value predicate, e.g. {language, Rust}
type Constraint struct {
	Label string
	Value string
}

// KnownFields is the fixed set of projectable event fields, in render order
var KnownFields = []string{
	"id", "name", "description", "language", "has_issues", "owner",
	"url", "watchers", "stargazers", "forks", "event_type", "created_at",
}

// numericLabels are the threshold constraints whose value must parse as an
// unsigned integer; a malformed value is a user error, not archive noise
var numericLabels = map[string]bool{
	"+watchers":   true,
	"-watchers":   true,
	"+stargazers": true,
	"-stargazers": true,
}

// ParseConstraint splits one label:value token on the first colon
func ParseConstraint(tok string) (Constraint, error) {
	label, value, found := strings.Cut(tok, ":")
	if !found || strings.TrimSpace(label) == "" {
		return Constraint{}, perr.InvalidArgf("bad constraint %q: want label:value", tok)
	}
	c := Constraint{Label: strings.TrimSpace(label), Value: value}
	if numericLabels[c.Label] {
		if _, err := strconv.ParseUint(c.Value, 10, 64); err != nil {
			return Constraint{}, perr.WithField(
				perr.InvalidArgf("constraint %s: %q is not an unsigned number", c.Label, c.Value),
				c.Label,
			)
		}
	}
	return c, nil
}

// ParseConstraints parses a comma-separated where clause; empty input means
// no constraints (everything matches)
func ParseConstraints(s string) ([]Constraint, error) {
	toks := pstrings.SplitCSV(s)
	out := make([]Constraint, 0, len(toks))
	for _, tok := range toks {
		c, err := ParseConstraint(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ParseSelect parses a comma-separated select clause against KnownFields.
// Empty input selects every known field
func ParseSelect(s string) ([]string, error) {
	fields := pstrings.IfEmpty(pstrings.SplitCSV(s), KnownFields)
	for _, f := range fields {
		if !IsKnownField(f) {
			return nil, perr.WithField(perr.InvalidArgf("unknown select field %q", f), f)
		}
	}
	return fields, nil
}

// IsKnownField reports whether f is a projectable field name
func IsKnownField(f string) bool {
	for _, k := range KnownFields {
		if k == f {
			return true
		}
	}
	return false
}
