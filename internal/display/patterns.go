package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gnomegl/gitscore/internal/models"
)

func patternsSection(w io.Writer, t *terminalInfo, p models.Patterns) {
	section(w, t, "CONTRIBUTION PATTERNS")

	tp := p.TimePatterns
	printField(w, "Most active day", orDash(tp.MostActiveDay))
	printField(w, "Most active time", orDash(tp.MostActivePeriod))
	printField(w, "Weekend activity", fmt.Sprintf("%d%%", tp.WeekendActivity))
	printField(w, "Consistency", fmt.Sprintf("%d%%", tp.Consistency))

	peak := 0
	for _, d := range tp.DayDistribution {
		peak = max(peak, d.Count)
	}
	if peak > 0 {
		for _, d := range tp.DayDistribution {
			fmt.Fprintf(w, "  %-10s [%s] %d\n", d.Day, progressBar(float64(d.Count)/float64(peak)*100, t.graphWidth), d.Count)
		}
	}

	fmt.Fprintln(w)
	cp := p.CommitPatterns
	printField(w, "Update frequency", cp.UpdateFrequency)
	printField(w, "Maintenance", fmt.Sprintf("%d%% (%d active, %d abandoned)", cp.MaintenanceScore, cp.ActiveRepos, cp.AbandonedRepos))
	printField(w, "Average repo age", fmt.Sprintf("%.1f years", cp.AverageRepoAge))

	cs := p.CollaborationStyle
	printField(w, "Collaboration", fmt.Sprintf("%s (%d original, %d forks)", cs.Style, cs.OriginalProjects, cs.ForkContributions))

	le := p.LanguageEvolution
	printField(w, "Current focus", orDash(le.CurrentFocus))
	printField(w, "Diversification", fmt.Sprintf("%s, %d%% specialised", le.DiversificationTrend, le.SpecializationLevel))

	at := p.ActivityTrends
	printField(w, "Momentum", fmt.Sprintf("%s, %s growth, %.1f repos/year", at.Momentum, at.GrowthRate, at.AverageReposPerYear))
	ra := at.RecentActivity
	printField(w, "Recent updates", fmt.Sprintf("%d this week, %d this month, %d in 3 months, %d in 6 months",
		ra.LastWeek, ra.LastMonth, ra.Last3Months, ra.Last6Months))

	if len(p.Insights) > 0 {
		fmt.Fprintln(w)
		for _, in := range p.Insights {
			fmt.Fprintf(w, "  %s %s\n", color.CyanString("›"), in.Insight)
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
