package event

import (
	"strings"

	"golang.org/x/text/cases"
)

// Per-event-type payload structures decoded from the raw payload sub-object.
// Every FromJSON returns nil when the input is absent or not a JSON object;
// individually missing or malformed fields degrade to their zero value and
// never fail the payload, let alone the surrounding Event.

// DeletePayload carries the deleted ref and its kind (branch/tag)
type DeletePayload struct {
	RefTag     string
	RefTagType string
}

// DeletePayloadFromJSON decodes a DeleteEvent payload
func DeletePayloadFromJSON(v any) *DeletePayload {
	obj, ok := asObject(v)
	if !ok {
		return nil
	}
	return &DeletePayload{
		RefTag:     StringOrEmpty(obj["ref"]),
		RefTagType: StringOrEmpty(obj["ref_type"]),
	}
}

// PageElement is one wiki page entry within a GollumEvent payload
type PageElement struct {
	Action   string
	HTMLURL  string
	PageName string
	SHA      string
	Summary  *string
}

func pageElementFromJSON(v any) *PageElement {
	obj, ok := asObject(v)
	if !ok {
		return nil
	}
	el := &PageElement{
		Action:   StringOrEmpty(obj["action"]),
		HTMLURL:  StringOrEmpty(obj["html_url"]),
		PageName: StringOrEmpty(obj["page_name"]),
		SHA:      StringOrEmpty(obj["sha"]),
	}
	if s, ok := obj["summary"].(string); ok {
		el.Summary = &s
	}
	return el
}

// GollumPayload lists the wiki pages touched by the event, in order
type GollumPayload struct {
	Pages []PageElement
}

// GollumPayloadFromJSON decodes a GollumEvent payload; non-object page
// entries are skipped
func GollumPayloadFromJSON(v any) *GollumPayload {
	obj, ok := asObject(v)
	if !ok {
		return nil
	}
	p := &GollumPayload{}
	if arr, ok := obj["pages"].([]any); ok {
		for _, el := range arr {
			if pe := pageElementFromJSON(el); pe != nil {
				p.Pages = append(p.Pages, *pe)
			}
		}
	}
	return p
}

// IssueCommentPayload links a comment to its issue
type IssueCommentPayload struct {
	CommentID uint64
	IssueID   uint64
}

// IssueCommentPayloadFromJSON decodes an IssueCommentEvent payload
func IssueCommentPayloadFromJSON(v any) *IssueCommentPayload {
	obj, ok := asObject(v)
	if !ok {
		return nil
	}
	return &IssueCommentPayload{
		CommentID: NumberOrZero(obj["comment_id"]),
		IssueID:   NumberOrZero(obj["issue_id"]),
	}
}

// IssuePayload carries the issue action and identifiers
type IssuePayload struct {
	Action string
	Issue  uint64
	Number uint64
}

// IssuePayloadFromJSON decodes an IssuesEvent payload
func IssuePayloadFromJSON(v any) *IssuePayload {
	obj, ok := asObject(v)
	if !ok {
		return nil
	}
	return &IssuePayload{
		Action: StringOrEmpty(obj["action"]),
		Issue:  NumberOrZero(obj["issue"]),
		Number: NumberOrZero(obj["number"]),
	}
}

// ShaElement is one commit entry of a push. The archive encodes it as a
// heterogeneous array: positions 0-3 are sha, email, commit message and
// author, and a boolean anywhere in the tuple sets Distinct
type ShaElement struct {
	SHA      string
	Email    string
	Comment  string
	Author   string
	Distinct bool
}

func shaElementFromJSON(v any) *ShaElement {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var el ShaElement
	slots := []*string{&el.SHA, &el.Email, &el.Comment, &el.Author}
	idx := 0
	for _, item := range arr {
		switch x := item.(type) {
		case string:
			if idx < len(slots) {
				*slots[idx] = x
				idx++
			}
		case bool:
			el.Distinct = x
		}
	}
	return &el
}

// PushPayload carries the push head, ref and commit tuples
type PushPayload struct {
	Head string
	Refs string
	Size uint64
	SHAs []ShaElement
}

// PushPayloadFromJSON decodes a PushEvent payload; shas entries that are not
// arrays are ignored rather than failing the payload
func PushPayloadFromJSON(v any) *PushPayload {
	obj, ok := asObject(v)
	if !ok {
		return nil
	}
	p := &PushPayload{
		Head: StringOrEmpty(obj["head"]),
		Refs: StringOrEmpty(obj["ref"]),
		Size: NumberOrZero(obj["size"]),
	}
	if arr, ok := obj["shas"].([]any); ok {
		for _, el := range arr {
			if se := shaElementFromJSON(el); se != nil {
				p.SHAs = append(p.SHAs, *se)
			}
		}
	}
	return p
}

// ContainsCommitText reports whether any commit message of the push contains
// text, compared case-insensitively via Unicode case folding
func (p *PushPayload) ContainsCommitText(text string) bool {
	fold := cases.Fold()
	needle := fold.String(text)
	for _, sha := range p.SHAs {
		if strings.Contains(fold.String(sha.Comment), needle) {
			return true
		}
	}
	return false
}

// WatchPayload carries the watch action (started/stopped)
type WatchPayload struct {
	Action string
}

// WatchPayloadFromJSON decodes a WatchEvent payload
func WatchPayloadFromJSON(v any) *WatchPayload {
	obj, ok := asObject(v)
	if !ok {
		return nil
	}
	return &WatchPayload{Action: StringOrEmpty(obj["action"])}
}
