package patterns

import (
	"testing"
	"time"

	"github.com/gnomegl/gitscore/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Saturday, 1 June 2024.
var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func at(year int, month time.Month, d, hour int) time.Time {
	return time.Date(year, month, d, hour, 0, 0, 0, time.UTC)
}

func TestAnalyzeZeroRepos(t *testing.T) {
	p := Analyze(Input{Now: now, AccountCreated: now.AddDate(-3, 0, 0), Location: time.UTC})

	assert.Empty(t, p.TimePatterns.MostActiveDay)
	assert.Empty(t, p.TimePatterns.MostActivePeriod)
	assert.Zero(t, p.TimePatterns.WeekendActivity)
	assert.Zero(t, p.TimePatterns.Consistency)
	assert.Len(t, p.TimePatterns.DayDistribution, 7)
	assert.Len(t, p.TimePatterns.Periods, 4)

	assert.Equal(t, FrequencyUnknown, p.CommitPatterns.UpdateFrequency)
	assert.Equal(t, models.ProjectLifecycle{}, p.ProjectLifecycle)
	assert.Equal(t, StyleUnknown, p.CollaborationStyle.Style)
	assert.Empty(t, p.LanguageEvolution.Timeline)
	assert.Equal(t, TrendStable, p.LanguageEvolution.DiversificationTrend)
	assert.Equal(t, MomentumMaintaining, p.ActivityTrends.Momentum)
	assert.Equal(t, GrowthStable, p.ActivityTrends.GrowthRate)
	assert.Empty(t, p.Insights)
}

func TestTimePatternsBucketTotals(t *testing.T) {
	repos := []models.Repository{
		{CreatedAt: at(2023, 1, 2, 9), UpdatedAt: at(2024, 5, 4, 23)},
		{CreatedAt: at(2022, 7, 9, 2), UpdatedAt: at(2024, 5, 25, 14)},
		{CreatedAt: at(2021, 3, 3, 19), UpdatedAt: at(2024, 5, 30, 8)},
	}
	events := []models.PublicEvent{
		{Kind: models.EventPush, CreatedAt: at(2024, 5, 31, 1)},
		{Kind: models.EventCreate, CreatedAt: at(2024, 6, 1, 10)},
	}

	tp := TimePatterns(repos, events, time.UTC)

	days, periodTotal := 0, 0
	for _, d := range tp.DayDistribution {
		days += d.Count
	}
	for _, p := range tp.Periods {
		periodTotal += p.Count
	}
	assert.Equal(t, 2*len(repos)+len(events), days)
	assert.Equal(t, days, periodTotal)
	assert.Equal(t, "Monday", tp.DayDistribution[0].Day)
	assert.Equal(t, "Sunday", tp.DayDistribution[6].Day)
}

func TestTimePatternsArgmaxFirstWins(t *testing.T) {
	// Monday morning and Tuesday afternoon, one hit each.
	repos := []models.Repository{
		{CreatedAt: at(2024, 5, 27, 9), UpdatedAt: at(2024, 5, 28, 15)},
	}

	tp := TimePatterns(repos, nil, time.UTC)

	assert.Equal(t, "Monday", tp.MostActiveDay)
	assert.Equal(t, PeriodMorning, tp.MostActivePeriod)
	assert.Zero(t, tp.WeekendActivity)
}

func TestTimePatternsWeekendAndNight(t *testing.T) {
	repos := []models.Repository{
		{CreatedAt: at(2024, 5, 25, 1), UpdatedAt: at(2024, 5, 26, 3)},
	}

	tp := TimePatterns(repos, nil, time.UTC)

	assert.Equal(t, "Saturday", tp.MostActiveDay)
	assert.Equal(t, PeriodNight, tp.MostActivePeriod)
	assert.Equal(t, 100, tp.WeekendActivity)
}

func TestTimePatternsLocation(t *testing.T) {
	// 23:00 UTC Sunday is 08:00 Monday in Tokyo.
	repos := []models.Repository{
		{CreatedAt: at(2024, 5, 26, 23), UpdatedAt: at(2024, 5, 26, 23)},
	}
	tokyo := time.FixedZone("JST", 9*60*60)

	tp := TimePatterns(repos, nil, tokyo)

	assert.Equal(t, "Monday", tp.MostActiveDay)
	assert.Equal(t, PeriodMorning, tp.MostActivePeriod)
}

func TestConsistencyEvenSpread(t *testing.T) {
	assert.Equal(t, 100, consistency([]int{2, 2, 2, 2, 2, 2, 2}))
	assert.Equal(t, 0, consistency([]int{0, 0, 0, 0, 0, 0, 0}))
	// all activity on one day: cv = sqrt(6), far above 1.
	assert.Equal(t, 0, consistency([]int{7, 0, 0, 0, 0, 0, 0}))
}

func TestCommitPatternsCutoffs(t *testing.T) {
	repos := []models.Repository{
		// active and maintained
		{CreatedAt: now.AddDate(-3, 0, 0), UpdatedAt: now.AddDate(0, -1, 0)},
		// active, young
		{CreatedAt: now.AddDate(0, -2, 0), UpdatedAt: now.AddDate(0, 0, -3)},
		// between six months and a year: neither active nor abandoned
		{CreatedAt: now.AddDate(-2, 0, 0), UpdatedAt: now.AddDate(0, -9, 0)},
		// abandoned
		{CreatedAt: now.AddDate(-4, 0, 0), UpdatedAt: now.AddDate(-2, 0, 0)},
	}

	cp := CommitPatterns(repos, now)

	assert.Equal(t, 2, cp.ActiveRepos)
	assert.Equal(t, 1, cp.AbandonedRepos)
	assert.Equal(t, 50, cp.MaintenanceScore)
	assert.Equal(t, FrequencyModerate, cp.UpdateFrequency)
	assert.InDelta(t, 2.3, cp.AverageRepoAge, 0.05)
}

func TestProjectLifecycle(t *testing.T) {
	repos := []models.Repository{
		{Name: "old", CreatedAt: now.AddDate(-5, 0, 0), UpdatedAt: now.AddDate(-2, 0, 0), Stars: 50},
		{Name: "mature", CreatedAt: now.AddDate(-2, 0, 0), UpdatedAt: now.AddDate(0, 0, -10), Description: "Learning Rust the hard way"},
		{Name: "dev", CreatedAt: now.AddDate(0, -3, 0), UpdatedAt: now.AddDate(0, 0, -1), Description: "A small utility", Stars: 2},
		{Name: "new", CreatedAt: now.AddDate(0, 0, -10), UpdatedAt: now.AddDate(0, 0, -2)},
	}

	lc := ProjectLifecycle(repos, now)

	assert.Equal(t, models.LifecyclePhases{Exploration: 1, Development: 1, Mature: 1, Archived: 1}, lc.Phases)
	assert.Equal(t, models.ProjectTypes{Experimental: 1, Personal: 1, Professional: 1, Educational: 1}, lc.ProjectTypes)

	want := (days(repos[1].UpdatedAt.Sub(repos[1].CreatedAt)) +
		days(repos[2].UpdatedAt.Sub(repos[2].CreatedAt)) +
		days(repos[3].UpdatedAt.Sub(repos[3].CreatedAt))) / 3
	assert.InDelta(t, want, float64(lc.AverageProjectDuration), 0.5)
}

func TestCollaborationStyle(t *testing.T) {
	tests := []struct {
		name  string
		repos []models.Repository
		want  string
	}{
		{"forks dominate", []models.Repository{{Fork: true}, {Fork: true}, {}}, StyleActiveContributor},
		{"popular originals", []models.Repository{{Stars: 30}, {Forks: 5}, {}}, StyleTeamPlayer},
		{"solo originals", []models.Repository{{}, {}, {}, {}, {}, {}}, StyleIndependentCreator},
		{"mixed", []models.Repository{{}, {}, {}, {Fork: true}, {Stars: 50}}, StyleBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollaborationStyle(tt.repos).Style)
		})
	}
}

func TestLanguageEvolution(t *testing.T) {
	repos := []models.Repository{
		{Language: "Go", CreatedAt: at(2019, 3, 1, 12)},
		{Language: "Python", CreatedAt: at(2019, 4, 1, 12)},
		{Language: "Go", CreatedAt: at(2020, 1, 1, 12)},
		{Language: "Python", CreatedAt: at(2020, 2, 1, 12)},
		{Language: "Go", CreatedAt: at(2022, 1, 1, 12)},
		{Language: "Go", CreatedAt: at(2023, 1, 1, 12)},
		{Language: "", CreatedAt: at(2023, 2, 1, 12)},
	}

	ev := LanguageEvolution(repos, time.UTC)

	require.Len(t, ev.Timeline, 4)
	assert.Equal(t, 2019, ev.Timeline[0].Year)
	assert.Equal(t, "Go", ev.Timeline[0].PrimaryLanguage, "tie keeps first seen")
	assert.Equal(t, 2, ev.Timeline[0].LanguageCount)
	assert.Equal(t, "Go", ev.CurrentFocus)
	assert.Equal(t, TrendSpecializing, ev.DiversificationTrend)
	// 4 of 7 repositories, including the one without a language.
	assert.Equal(t, 57, ev.SpecializationLevel)
}

func TestLanguageEvolutionExpanding(t *testing.T) {
	repos := []models.Repository{
		{Language: "Go", CreatedAt: at(2018, 1, 1, 12)},
		{Language: "Go", CreatedAt: at(2019, 1, 1, 12)},
		{Language: "Go", CreatedAt: at(2020, 1, 1, 12)},
		{Language: "Rust", CreatedAt: at(2020, 2, 1, 12)},
		{Language: "Zig", CreatedAt: at(2021, 1, 1, 12)},
		{Language: "Go", CreatedAt: at(2021, 2, 1, 12)},
	}

	ev := LanguageEvolution(repos, time.UTC)

	assert.Equal(t, TrendExpanding, ev.DiversificationTrend)
}

func TestActivityTrends(t *testing.T) {
	repos := []models.Repository{
		{CreatedAt: now.AddDate(-4, 0, 0), UpdatedAt: now.AddDate(0, 0, -2)},
		{CreatedAt: now.AddDate(-3, 0, 0), UpdatedAt: now.AddDate(0, 0, -20)},
		{CreatedAt: now.AddDate(0, -2, 0), UpdatedAt: now.AddDate(0, 0, -60)},
		{CreatedAt: now.AddDate(0, -1, 0), UpdatedAt: now.AddDate(0, -7, 0)},
	}

	tr := ActivityTrends(repos, now.AddDate(-4, 0, 0), now)

	assert.Equal(t, models.RecentActivity{LastWeek: 1, LastMonth: 2, Last3Months: 3, Last6Months: 3}, tr.RecentActivity)
	assert.Equal(t, MomentumAccelerating, tr.Momentum)
	assert.Equal(t, 1.0, tr.AverageReposPerYear)
	// two repos a year apart, then two a month apart
	assert.Equal(t, GrowthIncreasing, tr.GrowthRate)
}

func TestActivityTrendsSingleRepo(t *testing.T) {
	repos := []models.Repository{{CreatedAt: now.AddDate(-1, 0, 0), UpdatedAt: now.AddDate(-1, 0, 0)}}

	tr := ActivityTrends(repos, time.Time{}, now)

	assert.Equal(t, GrowthStable, tr.GrowthRate)
	assert.Equal(t, MomentumSlowing, tr.Momentum)
	assert.Equal(t, 1.0, tr.AverageReposPerYear)
}

func TestGenerateInsights(t *testing.T) {
	p := models.Patterns{
		TimePatterns:       models.TimePatterns{WeekendActivity: 45, MostActivePeriod: PeriodNight},
		CollaborationStyle: models.CollaborationStyle{Style: StyleActiveContributor, ForkContributions: 12},
		LanguageEvolution:  models.LanguageEvolution{DiversificationTrend: TrendStable, SpecializationLevel: 80, CurrentFocus: "Go"},
		ActivityTrends:     models.ActivityTrends{Momentum: MomentumAccelerating},
		CommitPatterns:     models.CommitPatterns{MaintenanceScore: 75},
	}

	got := GenerateInsights(p)

	want := []models.PatternInsight{
		{Type: "time", Insight: "You code 45% on weekends - true passion for coding!"},
		{Type: "time", Insight: "Night owl developer - most active after midnight"},
		{Type: "collaboration", Insight: "Contributing to 12 projects - great community involvement!"},
		{Type: "specialization", Insight: "Go specialist - 80% focus"},
		{Type: "momentum", Insight: "Activity is accelerating - great momentum!"},
		{Type: "maintenance", Insight: "75% of projects actively maintained - excellent follow-through"},
	}
	assert.Equal(t, want, got)
}
