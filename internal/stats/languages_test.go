package stats

import (
	"fmt"
	"testing"

	"github.com/gnomegl/gitscore/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mergeLanguages(breakdowns []map[string]int) []models.LanguageEntry {
	acc := NewLanguageAccumulator()
	for _, b := range breakdowns {
		acc.Add(b)
	}
	return acc.Result()
}

func TestLanguageAccumulatorSingleLanguage(t *testing.T) {
	var breakdowns []map[string]int
	for i := 0; i < 50; i++ {
		breakdowns = append(breakdowns, map[string]int{"Python": 1200})
	}

	langs := mergeLanguages(breakdowns)

	require.Len(t, langs, 1)
	assert.Equal(t, "Python", langs[0].Name)
	assert.Equal(t, "100.0", langs[0].PercentageString())
	assert.Equal(t, 50, langs[0].Repos)
	assert.Equal(t, "#3572A5", langs[0].Color)
}

func TestLanguageAccumulatorPercentagesSumTo100(t *testing.T) {
	langs := mergeLanguages([]map[string]int{
		{"Go": 7000, "Shell": 333},
		{"Go": 1000, "Makefile": 91, "Dockerfile": 120},
		{"TypeScript": 4500, "CSS": 800},
	})

	sum := 0.0
	for _, l := range langs {
		sum += l.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.1*float64(len(langs)))
	assert.Equal(t, "Go", langs[0].Name)
	assert.Equal(t, 2, langs[0].Repos)
	assert.Equal(t, DefaultColor, findLang(langs, "Makefile").Color)
}

func TestLanguageAccumulatorZeroBytes(t *testing.T) {
	langs := mergeLanguages([]map[string]int{{"Go": 0}, {"Rust": 0}})

	require.Len(t, langs, 2)
	for _, l := range langs {
		assert.Zero(t, l.Percentage)
		assert.Equal(t, "0.0", l.PercentageString())
	}
}

func TestLanguageAccumulatorTruncatesToTen(t *testing.T) {
	breakdown := make(map[string]int)
	for i := 0; i < 15; i++ {
		breakdown[fmt.Sprintf("Lang%02d", i)] = (i + 1) * 100
	}

	langs := mergeLanguages([]map[string]int{breakdown})

	require.Len(t, langs, MaxLanguageEntries)
	assert.Equal(t, "Lang14", langs[0].Name)
	for i := 1; i < len(langs); i++ {
		assert.GreaterOrEqual(t, langs[i-1].Bytes, langs[i].Bytes)
	}
}

func TestLanguageAccumulatorEmpty(t *testing.T) {
	assert.Empty(t, mergeLanguages(nil))
}

func TestRankByStars(t *testing.T) {
	repos := []models.Repository{
		{Name: "none", Stars: 100},
		{Name: "low", Stars: 1, Language: "Go"},
		{Name: "high", Stars: 50, Language: "Go"},
		{Name: "mid", Stars: 10, Language: "C"},
	}

	ranked := RankByStars(repos, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, "high", ranked[0].Name)
	assert.Equal(t, "mid", ranked[1].Name)
}

func findLang(langs []models.LanguageEntry, name string) models.LanguageEntry {
	for _, l := range langs {
		if l.Name == name {
			return l
		}
	}
	return models.LanguageEntry{}
}
