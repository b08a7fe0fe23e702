package stats

import (
	"math"
	"sort"

	"github.com/gnomegl/gitscore/internal/models"
)

const recentlyUpdatedLimit = 5

// Calculate reduces repos into summary statistics in a single pass. Ties on
// most-starred and most-forked keep the first repository seen. The input
// slice is not reordered.
func Calculate(repos []models.Repository) models.Stats {
	stats := models.Stats{
		Languages: make(map[string]int),
		Topics:    []string{},
	}

	topics := make(map[string]struct{})
	var mostStarred, mostForked *models.Repository

	for i := range repos {
		repo := &repos[i]
		stats.TotalStars += repo.Stars
		stats.TotalForks += repo.Forks
		stats.TotalWatchers += repo.Watchers

		if repo.Language != "" {
			stats.Languages[repo.Language]++
		}

		for _, topic := range repo.Topics {
			topics[topic] = struct{}{}
		}

		if mostStarred == nil || repo.Stars > mostStarred.Stars {
			mostStarred = repo
		}
		if mostForked == nil || repo.Forks > mostForked.Forks {
			mostForked = repo
		}
	}

	for topic := range topics {
		stats.Topics = append(stats.Topics, topic)
	}
	sort.Strings(stats.Topics)

	stats.MostStarred = toRef(mostStarred)
	stats.MostForked = toRef(mostForked)

	if len(repos) > 0 {
		stats.AvgStars = int(math.Round(float64(stats.TotalStars) / float64(len(repos))))
	}

	stats.RecentlyUpdated = RecentlyUpdated(repos, recentlyUpdatedLimit)
	return stats
}

// RecentlyUpdated returns up to n repositories ordered by update time,
// newest first.
func RecentlyUpdated(repos []models.Repository, n int) []models.Repository {
	sorted := make([]models.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// DistinctLanguages lists primary languages in first-seen order.
func DistinctLanguages(repos []models.Repository) []string {
	seen := make(map[string]struct{})
	var langs []string
	for _, repo := range repos {
		if repo.Language == "" {
			continue
		}
		if _, ok := seen[repo.Language]; ok {
			continue
		}
		seen[repo.Language] = struct{}{}
		langs = append(langs, repo.Language)
	}
	return langs
}

func toRef(repo *models.Repository) *models.RepoRef {
	if repo == nil {
		return nil
	}
	return &models.RepoRef{
		Name:    repo.Name,
		HTMLURL: repo.HTMLURL,
		Stars:   repo.Stars,
		Forks:   repo.Forks,
	}
}
