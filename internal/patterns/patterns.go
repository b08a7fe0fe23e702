// Package patterns derives temporal and behavioural contribution patterns
// from repository metadata and recent public events.
package patterns

import (
	"math"
	"time"

	"github.com/gnomegl/gitscore/internal/models"
)

const (
	day  = 24 * time.Hour
	year = 365 * day
)

// Input is one analysis snapshot. Location controls time-of-day
// bucketing; a nil Location means time.Local.
type Input struct {
	Repos          []models.Repository
	Events         []models.PublicEvent
	AccountCreated time.Time
	Now            time.Time
	Location       *time.Location
}

// Analyze runs every sub-analysis and attaches the derived insight strings.
func Analyze(in Input) models.Patterns {
	loc := in.Location
	if loc == nil {
		loc = time.Local
	}

	p := models.Patterns{
		TimePatterns:       TimePatterns(in.Repos, in.Events, loc),
		CommitPatterns:     CommitPatterns(in.Repos, in.Now),
		ProjectLifecycle:   ProjectLifecycle(in.Repos, in.Now),
		CollaborationStyle: CollaborationStyle(in.Repos),
		LanguageEvolution:  LanguageEvolution(in.Repos, loc),
		ActivityTrends:     ActivityTrends(in.Repos, in.AccountCreated, in.Now),
	}
	p.Insights = GenerateInsights(p)
	return p
}

func ageYears(from, now time.Time) float64 {
	if from.IsZero() || from.After(now) {
		return 0
	}
	return now.Sub(from).Hours() / year.Hours()
}

func days(d time.Duration) float64 {
	return d.Hours() / 24
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
