package event

// Kind enumerates the closed set of GitHub event kinds
type Kind int

// Event kinds, one per canonical GitHub event name plus Unknown
const (
	KindUnknown Kind = iota
	KindCommitComment
	KindCreate
	KindDelete
	KindDeployment
	KindDeploymentStatus
	KindDownload
	KindFollow
	KindFork
	KindForkApply
	KindGist
	KindGollum
	KindIssueComment
	KindIssues
	KindMember
	KindMembership
	KindPageBuild
	KindPublic
	KindPullRequest
	KindPullRequestReviewComment
	KindPush
	KindRelease
	KindRepository
	KindStatus
	KindTeamAdd
	KindWatch
)

// kindName pairs a kind's canonical GitHub event name with its snake_case
// query name, the spelling type constraints use
type kindName struct {
	canonical string
	query     string
}

// kindNames is the single authoritative mapping between Kind and its name
// strings. Everything that needs name matching, rendering or the query name
// goes through this table; nothing else in the codebase may match event-name
// strings ad hoc
var kindNames = map[Kind]kindName{
	KindCommitComment:            {"CommitCommentEvent", "commit_comment"},
	KindCreate:                   {"CreateEvent", "create"},
	KindDelete:                   {"DeleteEvent", "delete"},
	KindDeployment:               {"DeploymentEvent", "deployment"},
	KindDeploymentStatus:         {"DeploymentStatusEvent", "deployment_status"},
	KindDownload:                 {"DownloadEvent", "download"},
	KindFollow:                   {"FollowEvent", "follow"},
	KindFork:                     {"ForkEvent", "fork"},
	KindForkApply:                {"ForkApplyEvent", "fork_apply"},
	KindGist:                     {"GistEvent", "gist"},
	KindGollum:                   {"GollumEvent", "gollum"},
	KindIssueComment:             {"IssueCommentEvent", "issue_comment"},
	KindIssues:                   {"IssuesEvent", "issues"},
	KindMember:                   {"MemberEvent", "member"},
	KindMembership:               {"MembershipEvent", "membership"},
	KindPageBuild:                {"PageBuildEvent", "page_build"},
	KindPublic:                   {"PublicEvent", "public"},
	KindPullRequest:              {"PullRequestEvent", "pull_request"},
	KindPullRequestReviewComment: {"PullRequestReviewCommentEvent", "pull_request_review_comment"},
	KindPush:                     {"PushEvent", "push"},
	KindRelease:                  {"ReleaseEvent", "release"},
	KindRepository:               {"RepositoryEvent", "repository"},
	KindStatus:                   {"StatusEvent", "status"},
	KindTeamAdd:                  {"TeamAddEvent", "team_add"},
	KindWatch:                    {"WatchEvent", "watch"},
}

var (
	kindsByName      = make(map[string]Kind, len(kindNames))
	kindsByQueryName = make(map[string]Kind, len(kindNames))
)

func init() {
	for k, n := range kindNames {
		kindsByName[n.canonical] = k
		kindsByQueryName[n.query] = k
	}
}

// EventType is one GitHub event kind with, for the kinds that carry one, its
// decoded payload. Unknown kinds preserve the unrecognized original string
type EventType struct {
	Kind    Kind
	raw     string
	payload any
}

// TypeFromName maps a canonical GitHub event-name string to its EventType.
// Total: unrecognized names yield an Unknown carrying the original string.
// Payload-carrying kinds start without a payload; see AttachPayload
func TypeFromName(name string) EventType {
	if k, ok := kindsByName[name]; ok {
		return EventType{Kind: k}
	}
	return EventType{Kind: KindUnknown, raw: name}
}

// CanonicalName is the inverse of TypeFromName for known kinds. Unknown
// renders as "Unknown(s)" with the preserved original string, which
// deliberately does not round-trip back through TypeFromName
func (t EventType) CanonicalName() string {
	if t.Kind == KindUnknown {
		return "Unknown(" + t.raw + ")"
	}
	return kindNames[t.Kind].canonical
}

// QueryName is the snake_case event name without its "Event" suffix
// (issue_comment, team_add), the spelling type constraints use. Unknown has
// no query name
func (t EventType) QueryName() (string, bool) {
	n, ok := kindNames[t.Kind]
	if !ok {
		return "", false
	}
	return n.query, true
}

// KindForQueryName resolves a type-constraint value to its kind, reporting
// whether the value names a known kind at all
func KindForQueryName(s string) (Kind, bool) {
	k, ok := kindsByQueryName[s]
	return k, ok
}

// AttachPayload decodes the raw payload sub-object for the kinds that carry
// one. Variant-preserving: the kind never changes, and kinds without a
// payload ignore the input
func (t *EventType) AttachPayload(raw any) {
	switch t.Kind {
	case KindDelete:
		t.payload = DeletePayloadFromJSON(raw)
	case KindGollum:
		t.payload = GollumPayloadFromJSON(raw)
	case KindIssueComment:
		t.payload = IssueCommentPayloadFromJSON(raw)
	case KindIssues:
		t.payload = IssuePayloadFromJSON(raw)
	case KindPush:
		t.payload = PushPayloadFromJSON(raw)
	case KindWatch:
		t.payload = WatchPayloadFromJSON(raw)
	}
}

// Push returns the push payload when this is a PushEvent with one attached
func (t EventType) Push() (*PushPayload, bool) {
	p, ok := t.payload.(*PushPayload)
	return p, ok && p != nil
}

// Delete returns the delete payload when present
func (t EventType) Delete() (*DeletePayload, bool) {
	p, ok := t.payload.(*DeletePayload)
	return p, ok && p != nil
}

// Gollum returns the gollum payload when present
func (t EventType) Gollum() (*GollumPayload, bool) {
	p, ok := t.payload.(*GollumPayload)
	return p, ok && p != nil
}

// IssueComment returns the issue-comment payload when present
func (t EventType) IssueComment() (*IssueCommentPayload, bool) {
	p, ok := t.payload.(*IssueCommentPayload)
	return p, ok && p != nil
}

// Issues returns the issues payload when present
func (t EventType) Issues() (*IssuePayload, bool) {
	p, ok := t.payload.(*IssuePayload)
	return p, ok && p != nil
}

// Watch returns the watch payload when present
func (t EventType) Watch() (*WatchPayload, bool) {
	p, ok := t.payload.(*WatchPayload)
	return p, ok && p != nil
}
