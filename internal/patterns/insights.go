package patterns

import (
	"fmt"

	"github.com/gnomegl/gitscore/internal/models"
)

// GenerateInsights maps pattern thresholds to short narrative lines.
func GenerateInsights(p models.Patterns) []models.PatternInsight {
	insights := []models.PatternInsight{}
	add := func(kind, format string, args ...any) {
		insights = append(insights, models.PatternInsight{Type: kind, Insight: fmt.Sprintf(format, args...)})
	}

	if p.TimePatterns.WeekendActivity > 40 {
		add("time", "You code %d%% on weekends - true passion for coding!", p.TimePatterns.WeekendActivity)
	}
	if p.TimePatterns.MostActivePeriod == PeriodNight {
		add("time", "Night owl developer - most active after midnight")
	}
	if p.CollaborationStyle.Style == StyleActiveContributor {
		add("collaboration", "Contributing to %d projects - great community involvement!", p.CollaborationStyle.ForkContributions)
	}

	evo := p.LanguageEvolution
	if evo.DiversificationTrend == TrendExpanding {
		add("growth", "Expanding skill set - learning new languages actively")
	} else if evo.SpecializationLevel > 70 {
		add("specialization", "%s specialist - %d%% focus", evo.CurrentFocus, evo.SpecializationLevel)
	}

	if p.ActivityTrends.Momentum == MomentumAccelerating {
		add("momentum", "Activity is accelerating - great momentum!")
	}
	if p.CommitPatterns.MaintenanceScore > 70 {
		add("maintenance", "%d%% of projects actively maintained - excellent follow-through", p.CommitPatterns.MaintenanceScore)
	}
	return insights
}
