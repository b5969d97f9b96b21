// Package event holds the flattened per-line archive record, its event-type
// union and payloads, and the lenient JSON decode that builds them.
package event

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	perr "gar/internal/platform/errors"
	"gar/internal/platform/logger"
	ptime "gar/internal/platform/time"
	"gar/internal/query"
	"gar/internal/reader"
)

// Owner identifies the repository owner embedded in an Event
type Owner struct {
	GHID  uint64
	Nick  string
	Email string
}

// Event is one parsed archive line: the repository snapshot plus the event
// kind and timestamp. Built once per line and immutable afterwards
type Event struct {
	GHID        uint64
	Name        string
	Description string
	Language    string
	HasIssues   bool
	Owner       Owner
	URL         string
	Watchers    uint64
	Stargazers  uint64
	Forks       uint64
	OpenIssues  uint64
	Type        *EventType
	CreatedAt   *time.Time
}

// Field is one projected name/value pair, rendered for output
type Field struct {
	Name  string
	Value string
}

// ParseLine decodes one raw archive line into an Event. Only two things fail
// the record: the line not being a JSON object, and a missing repo section.
// Every individual repo field degrades to its zero value on mismatch
func ParseLine(line string) (*Event, error) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, perr.JSONErrf("parse event line: %v", err)
	}
	obj, ok := asObject(root)
	if !ok {
		return nil, perr.JSONErrf("event line is not a JSON object")
	}

	repo, ok := asObject(obj["repo"])
	if !ok {
		return nil, perr.MissingFieldf("event line has no repo section")
	}

	e := &Event{
		GHID:        NumberOrZero(repo["id"]),
		Name:        StringOrEmpty(repo["name"]),
		Description: StringOrEmpty(repo["description"]),
		Language:    StringOrEmpty(repo["language"]),
		HasIssues:   BoolOrFalse(repo["has_issues"]),
		URL:         StringOrEmpty(repo["url"]),
		Watchers:    NumberOrZero(repo["watchers"]),
		Stargazers:  NumberOrZero(repo["stargazers"]),
		Forks:       NumberOrZero(repo["forks"]),
		OpenIssues:  NumberOrZero(repo["open_issues"]),
		Owner:       Owner{Nick: StringOrEmpty(repo["owner"])},
	}

	if s := StringOrEmpty(obj["created_at"]); s != "" {
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			e.CreatedAt = ptime.Ptr(ts)
		}
	}

	if name := StringOrEmpty(obj["type"]); name != "" {
		t := TypeFromName(name)
		t.AttachPayload(obj["payload"])
		e.Type = &t
	}

	return e, nil
}

// ParseLines decodes a batch of lines, skipping and logging the ones that
// fail. One bad line never aborts the batch
func ParseLines(lines []string) []*Event {
	log := logger.Named("event")
	out := make([]*Event, 0, len(lines))
	for _, line := range lines {
		e, err := ParseLine(line)
		if err != nil {
			log.Warn().Err(err).Msg("skipping unparseable event line")
			continue
		}
		out = append(out, e)
	}
	return out
}

// ParseArchiveFile reads a cached archive and decodes every usable line
func ParseArchiveFile(path string) []*Event {
	return ParseLines(reader.LinesOf(path))
}

// Satisfies reports whether the event matches every constraint (an empty
// list matches everything). Unrecognized labels are ignored so old queries
// keep working against newer schemas. A malformed numeric threshold is a
// user error and fails the whole evaluation
func (e *Event) Satisfies(cons []query.Constraint) (bool, error) {
	for _, c := range cons {
		switch c.Label {
		case "language":
			if e.Language != c.Value {
				return false, nil
			}
		case "owner":
			if e.Owner.Nick != c.Value {
				return false, nil
			}
		case "name":
			ok, err := matchInsensitive(c.Value, e.Name)
			if err != nil || !ok {
				return false, err
			}
		case "description":
			ok, err := matchInsensitive(c.Value, e.Description)
			if err != nil || !ok {
				return false, err
			}
		case "+watchers":
			n, err := threshold(c)
			if err != nil || e.Watchers < n {
				return false, err
			}
		case "-watchers":
			n, err := threshold(c)
			if err != nil || e.Watchers >= n {
				return false, err
			}
		case "+stargazers":
			n, err := threshold(c)
			if err != nil || e.Stargazers < n {
				return false, err
			}
		case "-stargazers":
			n, err := threshold(c)
			if err != nil || e.Stargazers >= n {
				return false, err
			}
		case "type":
			if e.Type == nil {
				continue
			}
			want, known := KindForQueryName(c.Value)
			if !known {
				continue
			}
			if e.Type.Kind != want {
				return false, nil
			}
		case "commit_comment":
			// only meaningful on a push with a decoded payload; anything
			// else skips the constraint like type does on an absent kind
			if e.Type == nil {
				continue
			}
			p, ok := e.Type.Push()
			if !ok {
				continue
			}
			if !p.ContainsCommitText(c.Value) {
				return false, nil
			}
		}
	}
	return true, nil
}

func matchInsensitive(pattern, s string) (bool, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return false, perr.InvalidArgf("bad constraint pattern %q: %v", pattern, err)
	}
	return re.MatchString(s), nil
}

func threshold(c query.Constraint) (uint64, error) {
	n, err := strconv.ParseUint(c.Value, 10, 64)
	if err != nil {
		return 0, perr.WithField(
			perr.InvalidArgf("constraint %s: %q is not an unsigned number", c.Label, c.Value),
			c.Label,
		)
	}
	return n, nil
}

// Project renders the requested fields in the given order. Unknown field
// names are silently dropped; absent event_type and created_at render as
// the literal "null"
func (e *Event) Project(fields []string) []Field {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		v, ok := e.fieldValue(f)
		if !ok {
			continue
		}
		out = append(out, Field{Name: f, Value: v})
	}
	return out
}

func (e *Event) fieldValue(name string) (string, bool) {
	switch name {
	case "id":
		return strconv.FormatUint(e.GHID, 10), true
	case "name":
		return e.Name, true
	case "description":
		return e.Description, true
	case "language":
		return e.Language, true
	case "has_issues":
		return strconv.FormatBool(e.HasIssues), true
	case "owner":
		return e.Owner.Nick, true
	case "url":
		return e.URL, true
	case "watchers":
		return strconv.FormatUint(e.Watchers, 10), true
	case "stargazers":
		return strconv.FormatUint(e.Stargazers, 10), true
	case "forks":
		return strconv.FormatUint(e.Forks, 10), true
	case "event_type":
		if e.Type == nil {
			return "null", true
		}
		return e.Type.CanonicalName(), true
	case "created_at":
		if e.CreatedAt == nil {
			return "null", true
		}
		return e.CreatedAt.Format(time.RFC3339), true
	}
	return "", false
}
