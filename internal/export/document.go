// Package export turns an analysis into the portable JSON document and the
// printable HTML report.
package export

import (
	"time"

	"github.com/gnomegl/gitscore/internal/models"
)

const Source = "gitscore"

type Metadata struct {
	ExportedAt time.Time `json:"exported_at"`
	Version    string    `json:"version"`
	Source     string    `json:"source"`
	RunID      string    `json:"run_id"`
}

type Profile struct {
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	ProfileURL  string    `json:"profile_url"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Website     string    `json:"website"`
	CreatedAt   time.Time `json:"created_at"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
}

type DeveloperScore struct {
	Overall    int              `json:"overall"`
	Level      models.Level     `json:"level"`
	Percentile int              `json:"percentile"`
	Breakdown  models.Breakdown `json:"breakdown"`
	Badges     []models.Badge   `json:"badges"`
	Frameworks []string         `json:"frameworks"`
}

type CareerInsights struct {
	Strengths       []models.Strength       `json:"strengths"`
	Recommendations []models.Recommendation `json:"recommendations"`
	SkillGaps       []models.SkillGap       `json:"skill_gaps"`
	CareerPath      models.CareerPath       `json:"career_path"`
	LearningPlan    models.LearningPlan     `json:"learning_plan"`
	MarketAlignment models.MarketAlignment  `json:"market_alignment"`
}

type ContributionPatterns struct {
	TimePatterns       models.TimePatterns       `json:"time_patterns"`
	CommitPatterns     models.CommitPatterns     `json:"commit_patterns"`
	ProjectLifecycle   models.ProjectLifecycle   `json:"project_lifecycle"`
	CollaborationStyle models.CollaborationStyle `json:"collaboration_style"`
	LanguageEvolution  models.LanguageEvolution  `json:"language_evolution"`
	ActivityTrends     models.ActivityTrends     `json:"activity_trends"`
	Insights           []models.PatternInsight   `json:"insights"`
}

type RepoExtreme struct {
	Name  string `json:"name"`
	Stars int    `json:"stars,omitempty"`
	Forks int    `json:"forks,omitempty"`
	URL   string `json:"url"`
}

type Statistics struct {
	TotalStars      int          `json:"total_stars"`
	TotalForks      int          `json:"total_forks"`
	TotalWatchers   int          `json:"total_watchers"`
	AverageStars    int          `json:"average_stars"`
	MostStarredRepo *RepoExtreme `json:"most_starred_repo"`
	MostForkedRepo  *RepoExtreme `json:"most_forked_repo"`
}

type Language struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Bytes      int     `json:"bytes"`
	ReposCount int     `json:"repos_count"`
}

type Repository struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	URL           string    `json:"url"`
	Language      string    `json:"language"`
	Stars         int       `json:"stars"`
	Forks         int       `json:"forks"`
	Watchers      int       `json:"watchers"`
	OpenIssues    int       `json:"open_issues"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Topics        []string  `json:"topics"`
	IsPrivate     bool      `json:"is_private"`
	IsFork        bool      `json:"is_fork"`
	DefaultBranch string    `json:"default_branch"`
	Size          int       `json:"size"`
}

// Document is the structured export of one analysis.
type Document struct {
	Metadata             Metadata             `json:"metadata"`
	Profile              Profile              `json:"profile"`
	DeveloperScore       DeveloperScore       `json:"developer_score"`
	CareerInsights       CareerInsights       `json:"career_insights"`
	ContributionPatterns ContributionPatterns `json:"contribution_patterns"`
	Statistics           Statistics           `json:"statistics"`
	Languages            []Language           `json:"languages"`
	Repositories         []Repository         `json:"repositories"`
}

// BuildDocument flattens a into the export layout. exportedAt is the
// export time, which may differ from the analysis snapshot.
func BuildDocument(a *models.Analysis, version string, exportedAt time.Time) Document {
	u := a.User
	doc := Document{
		Metadata: Metadata{
			ExportedAt: exportedAt.UTC(),
			Version:    version,
			Source:     Source,
			RunID:      a.ID,
		},
		Profile: Profile{
			Username:    u.Login,
			Name:        u.Name,
			Bio:         u.Bio,
			AvatarURL:   u.AvatarURL,
			ProfileURL:  u.HTMLURL,
			Company:     u.Company,
			Location:    u.Location,
			Website:     u.Blog,
			CreatedAt:   u.CreatedAt,
			Followers:   u.Followers,
			Following:   u.Following,
			PublicRepos: u.PublicRepos,
			PublicGists: u.PublicGists,
		},
		DeveloperScore: DeveloperScore{
			Overall:    a.Score.Overall,
			Level:      a.Score.Level,
			Percentile: a.Score.Percentile,
			Breakdown:  a.Score.Breakdown,
			Badges:     nonNil(a.Score.Badges),
			Frameworks: nonNil(a.Score.Frameworks),
		},
		CareerInsights: CareerInsights{
			Strengths:       nonNil(a.Insights.Strengths),
			Recommendations: nonNil(a.Insights.Recommendations),
			SkillGaps:       nonNil(a.Insights.SkillGaps),
			CareerPath:      a.Insights.CareerPath,
			LearningPlan:    a.Insights.LearningPlan,
			MarketAlignment: a.Insights.MarketAlignment,
		},
		ContributionPatterns: ContributionPatterns{
			TimePatterns:       a.Patterns.TimePatterns,
			CommitPatterns:     a.Patterns.CommitPatterns,
			ProjectLifecycle:   a.Patterns.ProjectLifecycle,
			CollaborationStyle: a.Patterns.CollaborationStyle,
			LanguageEvolution:  a.Patterns.LanguageEvolution,
			ActivityTrends:     a.Patterns.ActivityTrends,
			Insights:           nonNil(a.Patterns.Insights),
		},
		Statistics: Statistics{
			TotalStars:    a.Stats.TotalStars,
			TotalForks:    a.Stats.TotalForks,
			TotalWatchers: a.Stats.TotalWatchers,
			AverageStars:  a.Stats.AvgStars,
		},
		Languages:    make([]Language, 0, len(a.Languages)),
		Repositories: make([]Repository, 0, len(a.Repos)),
	}

	if r := a.Stats.MostStarred; r != nil {
		doc.Statistics.MostStarredRepo = &RepoExtreme{Name: r.Name, Stars: r.Stars, URL: r.HTMLURL}
	}
	if r := a.Stats.MostForked; r != nil {
		doc.Statistics.MostForkedRepo = &RepoExtreme{Name: r.Name, Forks: r.Forks, URL: r.HTMLURL}
	}

	for _, l := range a.Languages {
		doc.Languages = append(doc.Languages, Language{
			Name:       l.Name,
			Percentage: l.Percentage,
			Bytes:      l.Bytes,
			ReposCount: l.Repos,
		})
	}

	for _, r := range a.Repos {
		doc.Repositories = append(doc.Repositories, Repository{
			Name:          r.Name,
			Description:   r.Description,
			URL:           r.HTMLURL,
			Language:      r.Language,
			Stars:         r.Stars,
			Forks:         r.Forks,
			Watchers:      r.Watchers,
			OpenIssues:    r.OpenIssues,
			CreatedAt:     r.CreatedAt,
			UpdatedAt:     r.UpdatedAt,
			Topics:        nonNil(r.Topics),
			IsPrivate:     r.Private,
			IsFork:        r.Fork,
			DefaultBranch: r.DefaultBranch,
			Size:          r.Size,
		})
	}

	return doc
}

// nonNil keeps empty lists as [] rather than null in the JSON output.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
