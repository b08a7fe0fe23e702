package patterns

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/gnomegl/gitscore/internal/models"
)

// Update frequency labels, keyed on the share of active repositories.
const (
	FrequencyUnknown    = "unknown"
	FrequencyVeryActive = "Very Active"
	FrequencyActive     = "Active"
	FrequencyModerate   = "Moderate"
	FrequencyLow        = "Low"
)

// CommitPatterns classifies repositories as active (updated in the last six
// months) or abandoned (untouched for a year). Both cutoffs derive from now.
func CommitPatterns(repos []models.Repository, now time.Time) models.CommitPatterns {
	cp := models.CommitPatterns{UpdateFrequency: FrequencyUnknown}
	if len(repos) == 0 {
		return cp
	}

	sixMonthsAgo := now.AddDate(0, -6, 0)
	oneYearAgo := now.AddDate(-1, 0, 0)

	totalAge := 0.0
	maintained := 0
	for _, r := range repos {
		age := ageYears(r.CreatedAt, now)
		totalAge += age

		switch {
		case r.UpdatedAt.After(sixMonthsAgo):
			cp.ActiveRepos++
			if age > 1 {
				maintained++
			}
		case r.UpdatedAt.Before(oneYearAgo):
			cp.AbandonedRepos++
		}
	}

	cp.AverageRepoAge = math.Round(totalAge/float64(len(repos))*10) / 10
	cp.MaintenanceScore = int(math.Round(float64(maintained) / math.Max(1, float64(cp.ActiveRepos)) * 100))

	activePercent := float64(cp.ActiveRepos) / float64(len(repos)) * 100
	switch {
	case activePercent > 70:
		cp.UpdateFrequency = FrequencyVeryActive
	case activePercent > 50:
		cp.UpdateFrequency = FrequencyActive
	case activePercent > 30:
		cp.UpdateFrequency = FrequencyModerate
	default:
		cp.UpdateFrequency = FrequencyLow
	}
	return cp
}

func ProjectLifecycle(repos []models.Repository, now time.Time) models.ProjectLifecycle {
	var lc models.ProjectLifecycle
	if len(repos) == 0 {
		return lc
	}

	totalDuration := 0.0
	live := 0
	for _, r := range repos {
		ageDays := days(now.Sub(r.CreatedAt))
		sinceUpdate := days(now.Sub(r.UpdatedAt))

		switch {
		case sinceUpdate > 365:
			lc.Phases.Archived++
		case ageDays > 365 && sinceUpdate < 90:
			lc.Phases.Mature++
		case ageDays > 30:
			lc.Phases.Development++
		default:
			lc.Phases.Exploration++
		}

		switch {
		case r.Stars < 5 && r.Description == "":
			lc.ProjectTypes.Experimental++
		case strings.Contains(strings.ToLower(r.Description), "learn"):
			lc.ProjectTypes.Educational++
		case r.Stars > 10 || r.Forks > 2:
			lc.ProjectTypes.Professional++
		default:
			lc.ProjectTypes.Personal++
		}

		if sinceUpdate < 365 {
			totalDuration += days(r.UpdatedAt.Sub(r.CreatedAt))
			live++
		}
	}

	if live > 0 {
		lc.AverageProjectDuration = int(math.Round(totalDuration / float64(live)))
	}
	return lc
}

// Collaboration styles in order of precedence.
const (
	StyleUnknown            = "Unknown"
	StyleActiveContributor  = "Active Contributor"
	StyleTeamPlayer         = "Team Player"
	StyleIndependentCreator = "Independent Creator"
	StyleBalanced           = "Balanced Developer"
)

func CollaborationStyle(repos []models.Repository) models.CollaborationStyle {
	cs := models.CollaborationStyle{Style: StyleUnknown}
	if len(repos) == 0 {
		return cs
	}

	for _, r := range repos {
		if r.Fork {
			cs.ForkContributions++
		} else {
			cs.OriginalProjects++
		}
		if r.Forks > 2 || r.Stars > 20 {
			cs.TeamProjects++
		} else {
			cs.SoloProjects++
		}
	}
	cs.ContributionRatio = percent(cs.ForkContributions, len(repos))

	switch {
	case cs.ContributionRatio > 30:
		cs.Style = StyleActiveContributor
	case cs.TeamProjects > cs.SoloProjects:
		cs.Style = StyleTeamPlayer
	case float64(cs.OriginalProjects) > float64(len(repos))*0.8:
		cs.Style = StyleIndependentCreator
	default:
		cs.Style = StyleBalanced
	}
	return cs
}

// Momentum and growth labels.
const (
	MomentumAccelerating = "accelerating"
	MomentumMaintaining  = "maintaining"
	MomentumSlowing      = "slowing"

	GrowthIncreasing = "increasing"
	GrowthDecreasing = "decreasing"
	GrowthStable     = "stable"
)

// ActivityTrends measures recent update velocity and compares the creation
// rate of the older half of the repositories with the newer half.
func ActivityTrends(repos []models.Repository, accountCreated, now time.Time) models.ActivityTrends {
	tr := models.ActivityTrends{
		GrowthRate: GrowthStable,
		Momentum:   MomentumMaintaining,
	}
	if len(repos) == 0 {
		return tr
	}

	for _, r := range repos {
		since := days(now.Sub(r.UpdatedAt))
		if since <= 7 {
			tr.RecentActivity.LastWeek++
		}
		if since <= 30 {
			tr.RecentActivity.LastMonth++
		}
		if since <= 90 {
			tr.RecentActivity.Last3Months++
		}
		if since <= 180 {
			tr.RecentActivity.Last6Months++
		}
	}

	tr.AverageReposPerYear = math.Round(float64(len(repos))/math.Max(1, ageYears(accountCreated, now))*10) / 10

	recentPercent := float64(tr.RecentActivity.Last3Months) / float64(len(repos)) * 100
	switch {
	case recentPercent > 50:
		tr.Momentum = MomentumAccelerating
	case recentPercent > 30:
		tr.Momentum = MomentumMaintaining
	default:
		tr.Momentum = MomentumSlowing
	}

	sorted := make([]models.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	mid := len(sorted) / 2
	first, second := sorted[:mid], sorted[mid:]
	if len(first) == 0 || len(second) == 0 {
		return tr
	}

	firstRate := float64(len(first)) / math.Max(0.1, spanYears(first))
	secondRate := float64(len(second)) / math.Max(0.1, spanYears(second))
	switch {
	case secondRate > firstRate*1.2:
		tr.GrowthRate = GrowthIncreasing
	case secondRate < firstRate*0.8:
		tr.GrowthRate = GrowthDecreasing
	}
	return tr
}

// spanYears is the creation-date span of an already sorted slice.
func spanYears(sorted []models.Repository) float64 {
	return sorted[len(sorted)-1].CreatedAt.Sub(sorted[0].CreatedAt).Hours() / year.Hours()
}
