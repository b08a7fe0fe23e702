package models

import "time"

// Analysis bundles everything derived from one run. It is built fresh for
// every handle and never merged with an earlier run.
type Analysis struct {
	ID        string
	Now       time.Time
	User      UserProfile
	Repos     []Repository
	Events    []PublicEvent
	Stats     Stats
	Languages []LanguageEntry
	Score     Score
	Patterns  Patterns
	Insights  Insights
}

// RecentEvents returns at most the 10 newest events for display.
func (a *Analysis) RecentEvents() []PublicEvent {
	if len(a.Events) > 10 {
		return a.Events[:10]
	}
	return a.Events
}
