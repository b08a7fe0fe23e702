package stats

import (
	"math"
	"sort"

	"github.com/gnomegl/gitscore/internal/models"
)

const (
	// MaxLanguageEntries caps the ranked language profile.
	MaxLanguageEntries = 10
	DefaultColor       = "#6b7280"
)

var languageColors = map[string]string{
	"JavaScript": "#f1e05a",
	"TypeScript": "#3178c6",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"C++":        "#f34b7d",
	"C":          "#555555",
	"C#":         "#178600",
	"PHP":        "#4F5D95",
	"Ruby":       "#701516",
	"Go":         "#00ADD8",
	"Swift":      "#FA7343",
	"Kotlin":     "#A97BFF",
	"Rust":       "#dea584",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Shell":      "#89e051",
	"Vue":        "#41b883",
	"React":      "#61dafb",
}

func ColorFor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return DefaultColor
}

// RankByStars returns the repositories that report a primary language,
// ordered by stars descending and truncated to limit.
func RankByStars(repos []models.Repository, limit int) []models.Repository {
	var ranked []models.Repository
	for _, repo := range repos {
		if repo.Language != "" {
			ranked = append(ranked, repo)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stars > ranked[j].Stars
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// LanguageAccumulator merges per-repository byte maps. Add it in star-rank
// order; equal byte counts keep first-seen order in the final ranking.
type LanguageAccumulator struct {
	entries map[string]*models.LanguageEntry
	order   []string
}

func NewLanguageAccumulator() *LanguageAccumulator {
	return &LanguageAccumulator{entries: make(map[string]*models.LanguageEntry)}
}

func (a *LanguageAccumulator) Add(breakdown map[string]int) {
	// map order is random; sort names so first-seen order is reproducible
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry, ok := a.entries[name]
		if !ok {
			entry = &models.LanguageEntry{Name: name, Color: ColorFor(name)}
			a.entries[name] = entry
			a.order = append(a.order, name)
		}
		entry.Bytes += breakdown[name]
		entry.Repos++
	}
}

// Result computes percentages and returns the top entries by bytes.
func (a *LanguageAccumulator) Result() []models.LanguageEntry {
	total := 0
	for _, entry := range a.entries {
		total += entry.Bytes
	}

	result := make([]models.LanguageEntry, 0, len(a.order))
	for _, name := range a.order {
		entry := *a.entries[name]
		if total > 0 {
			entry.Percentage = math.Round(float64(entry.Bytes)/float64(total)*1000) / 10
		}
		result = append(result, entry)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Bytes > result[j].Bytes
	})
	if len(result) > MaxLanguageEntries {
		result = result[:MaxLanguageEntries]
	}
	return result
}
