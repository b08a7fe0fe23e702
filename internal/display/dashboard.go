package display

import (
	"io"

	"github.com/gnomegl/gitscore/internal/models"
	"github.com/gnomegl/gitscore/internal/stats"
)

// DefaultRepoLimit caps the repository list in the dashboard.
const DefaultRepoLimit = 20

type Options struct {
	Sort      string
	Language  string
	RepoLimit int
}

// Dashboard prints every section of an analysis to w.
func Dashboard(w io.Writer, a *models.Analysis, opts Options) {
	t := getTerminalInfo(w)

	UserInfo(w, a.User, a.Now)
	scoreSection(w, t, a.Score)
	statsSection(w, t, a.Stats)
	languagesSection(w, t, a.Languages)
	patternsSection(w, t, a.Patterns)
	insightsSection(w, t, a.Insights)

	repos := FilterByLanguage(SortRepositories(a.Repos, opts.Sort), opts.Language)
	limit := opts.RepoLimit
	if limit == 0 {
		limit = DefaultRepoLimit
	}
	reposSection(w, t, repos, stats.DistinctLanguages(a.Repos), limit, a.Now)

	eventsSection(w, t, a.RecentEvents(), a.Now)
}
