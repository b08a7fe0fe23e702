package models

// DayCount and PeriodCount keep distributions in a fixed order so that
// argmax selection and rendering never depend on map iteration.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type PeriodCount struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

type TimePatterns struct {
	MostActiveDay    string        `json:"most_active_day"`
	MostActivePeriod string        `json:"most_active_period"`
	WeekendActivity  int           `json:"weekend_activity"`
	Consistency      int           `json:"consistency"`
	Periods          []PeriodCount `json:"periods"`
	DayDistribution  []DayCount    `json:"day_distribution"`
}

type CommitPatterns struct {
	AverageRepoAge   float64 `json:"average_repo_age"`
	UpdateFrequency  string  `json:"update_frequency"`
	MaintenanceScore int     `json:"maintenance_score"`
	AbandonedRepos   int     `json:"abandoned_repos"`
	ActiveRepos      int     `json:"active_repos"`
}

type LifecyclePhases struct {
	Exploration int `json:"exploration"`
	Development int `json:"development"`
	Mature      int `json:"mature"`
	Archived    int `json:"archived"`
}

type ProjectTypes struct {
	Experimental int `json:"experimental"`
	Personal     int `json:"personal"`
	Professional int `json:"professional"`
	Educational  int `json:"educational"`
}

type ProjectLifecycle struct {
	AverageProjectDuration int             `json:"average_project_duration"`
	Phases                 LifecyclePhases `json:"phases"`
	ProjectTypes           ProjectTypes    `json:"project_types"`
}

type CollaborationStyle struct {
	Style             string `json:"style"`
	ForkContributions int    `json:"fork_contributions"`
	OriginalProjects  int    `json:"original_projects"`
	TeamProjects      int    `json:"team_projects"`
	SoloProjects      int    `json:"solo_projects"`
	ContributionRatio int    `json:"contribution_ratio"`
}

type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

type YearLanguages struct {
	Year            int             `json:"year"`
	PrimaryLanguage string          `json:"primary_language"`
	LanguageCount   int             `json:"language_count"`
	Languages       []LanguageCount `json:"languages"`
}

type LanguageEvolution struct {
	Timeline             []YearLanguages `json:"timeline"`
	CurrentFocus         string          `json:"current_focus"`
	DiversificationTrend string          `json:"diversification_trend"`
	SpecializationLevel  int             `json:"specialization_level"`
}

type RecentActivity struct {
	LastWeek    int `json:"last_week"`
	LastMonth   int `json:"last_month"`
	Last3Months int `json:"last_3_months"`
	Last6Months int `json:"last_6_months"`
}

type ActivityTrends struct {
	AverageReposPerYear float64        `json:"average_repos_per_year"`
	GrowthRate          string         `json:"growth_rate"`
	Momentum            string         `json:"momentum"`
	RecentActivity      RecentActivity `json:"recent_activity"`
}

type PatternInsight struct {
	Type    string `json:"type"`
	Insight string `json:"insight"`
}

type Patterns struct {
	TimePatterns       TimePatterns       `json:"time_patterns"`
	CommitPatterns     CommitPatterns     `json:"commit_patterns"`
	ProjectLifecycle   ProjectLifecycle   `json:"project_lifecycle"`
	CollaborationStyle CollaborationStyle `json:"collaboration_style"`
	LanguageEvolution  LanguageEvolution  `json:"language_evolution"`
	ActivityTrends     ActivityTrends     `json:"activity_trends"`
	Insights           []PatternInsight   `json:"insights"`
}
