package github

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gnomegl/gitscore/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLanguages struct {
	calls   []string
	failFor string
	data    map[string]map[string]int
}

func (f *fakeLanguages) FetchLanguages(_ context.Context, owner, repo string) (map[string]int, error) {
	f.calls = append(f.calls, owner+"/"+repo)
	if repo == f.failFor {
		return nil, errors.New("boom")
	}
	return f.data[repo], nil
}

func TestAggregateLanguagesSkipsFailures(t *testing.T) {
	src := &fakeLanguages{failFor: "repo-07", data: map[string]map[string]int{}}
	var repos []models.Repository
	for i := 0; i < 30; i++ {
		name := fmt.Sprintf("repo-%02d", i)
		repos = append(repos, models.Repository{Name: name, Language: "Go", Stars: 100 - i})
		lang := "Go"
		if i%2 == 1 {
			lang = "Rust"
		}
		src.data[name] = map[string]int{lang: 100}
	}

	langs, err := AggregateLanguages(context.Background(), src, "octocat", repos, 30, nil)

	require.NoError(t, err)
	assert.Len(t, src.calls, 30)
	assert.Equal(t, "octocat/repo-00", src.calls[0], "lookups follow star rank")
	require.Len(t, langs, 2)
	assert.Equal(t, "Go", langs[0].Name)
	assert.Equal(t, 15, langs[0].Repos)
	assert.Equal(t, "Rust", langs[1].Name)
	assert.Equal(t, 14, langs[1].Repos)
	assert.Equal(t, 1500, langs[0].Bytes)
}

func TestAggregateLanguagesCountsOnlyRankedRepos(t *testing.T) {
	src := &fakeLanguages{data: map[string]map[string]int{}}
	var repos []models.Repository
	for i := 0; i < 50; i++ {
		name := fmt.Sprintf("py-%02d", i)
		repos = append(repos, models.Repository{Name: name, Language: "Python", Stars: i})
		src.data[name] = map[string]int{"Python": 1200}
	}

	langs, err := AggregateLanguages(context.Background(), src, "octocat", repos, 30, nil)

	require.NoError(t, err)
	assert.Len(t, src.calls, 30)
	require.Len(t, langs, 1)
	assert.Equal(t, "Python", langs[0].Name)
	assert.Equal(t, 30, langs[0].Repos)
	assert.Equal(t, 30*1200, langs[0].Bytes)
	assert.Equal(t, 100.0, langs[0].Percentage)
}

func TestAggregateLanguagesRanksAndLimits(t *testing.T) {
	src := &fakeLanguages{data: map[string]map[string]int{
		"big":   {"Go": 10},
		"small": {"C": 10},
		"mid":   {"Rust": 10},
	}}
	repos := []models.Repository{
		{Name: "small", Language: "C", Stars: 1, Owner: "org"},
		{Name: "nolang", Stars: 500},
		{Name: "big", Language: "Go", Stars: 50},
		{Name: "mid", Language: "Rust", Stars: 10},
	}

	_, err := AggregateLanguages(context.Background(), src, "octocat", repos, 2, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"octocat/big", "octocat/mid"}, src.calls)
}

func TestAggregateLanguagesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &fakeLanguages{}

	_, err := AggregateLanguages(ctx, src, "octocat", []models.Repository{{Name: "a", Language: "Go"}}, 30, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, src.calls)
}

func TestAggregateLanguagesEmpty(t *testing.T) {
	langs, err := AggregateLanguages(context.Background(), &fakeLanguages{}, "octocat", nil, 30, nil)

	require.NoError(t, err)
	assert.Empty(t, langs)
}
