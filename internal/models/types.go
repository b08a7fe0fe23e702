package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// UserProfile is the account snapshot fetched once per analysis run.
type UserProfile struct {
	Login           string
	Name            string
	Bio             string
	Company         string
	Location        string
	Blog            string
	Email           string
	TwitterUsername string
	AvatarURL       string
	HTMLURL         string
	CreatedAt       time.Time
	Followers       int
	Following       int
	PublicRepos     int
	PublicGists     int
}

type Repository struct {
	Name          string
	FullName      string
	Owner         string
	Description   string
	Language      string
	HTMLURL       string
	Stars         int
	Forks         int
	Watchers      int
	OpenIssues    int
	Topics        []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Private       bool
	Fork          bool
	Size          int
	DefaultBranch string
}

// LanguageEntry is one row of the ranked language profile.
type LanguageEntry struct {
	Name       string
	Bytes      int
	Color      string
	Repos      int
	Percentage float64
}

func (l LanguageEntry) PercentageString() string {
	return fmt.Sprintf("%.1f", l.Percentage)
}

type EventKind string

const (
	EventPush        EventKind = "PushEvent"
	EventCreate      EventKind = "CreateEvent"
	EventPullRequest EventKind = "PullRequestEvent"
	EventIssues      EventKind = "IssuesEvent"
	EventWatch       EventKind = "WatchEvent"
	EventFork        EventKind = "ForkEvent"
	EventRelease     EventKind = "ReleaseEvent"
)

var eventLabels = map[EventKind]struct{ icon, label string }{
	EventPush:        {"push", "Pushed to"},
	EventCreate:      {"create", "Created"},
	EventPullRequest: {"pr", "Pull request"},
	EventIssues:      {"issue", "Issue"},
	EventWatch:       {"star", "Starred"},
	EventFork:        {"fork", "Forked"},
	EventRelease:     {"release", "Released"},
}

// ParseEventKind reports whether raw names one of the event kinds we track.
func ParseEventKind(raw string) (EventKind, bool) {
	kind := EventKind(raw)
	_, ok := eventLabels[kind]
	return kind, ok
}

func (k EventKind) Icon() string  { return eventLabels[k].icon }
func (k EventKind) Label() string { return eventLabels[k].label }

type PublicEvent struct {
	Kind      EventKind
	Repo      string
	CreatedAt time.Time
	Payload   json.RawMessage
}

// RepoRef is the slim repository reference used for extremes in Stats.
type RepoRef struct {
	Name    string
	HTMLURL string
	Stars   int
	Forks   int
}

type Stats struct {
	TotalStars      int
	TotalForks      int
	TotalWatchers   int
	Languages       map[string]int
	Topics          []string
	MostStarred     *RepoRef
	MostForked      *RepoRef
	AvgStars        int
	RecentlyUpdated []Repository
}
