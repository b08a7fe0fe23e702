package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gnomegl/gitscore/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var snapshot = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func sampleAnalysis() *models.Analysis {
	return &models.Analysis{
		ID:  "3f1c9a4e-0000-4000-8000-000000000001",
		Now: snapshot,
		User: models.UserProfile{
			Login:     "octocat",
			Name:      "The Octocat",
			Blog:      "https://github.blog",
			HTMLURL:   "https://github.com/octocat",
			Followers: 10,
			CreatedAt: snapshot.AddDate(-4, 0, 0),
		},
		Repos: []models.Repository{
			{
				Name:        "hello",
				Description: "says <script>alert(1)</script> | hi",
				HTMLURL:     "https://github.com/octocat/hello",
				Language:    "Go",
				Stars:       12,
				Forks:       3,
				UpdatedAt:   snapshot.AddDate(0, -1, 0),
			},
		},
		Stats: models.Stats{
			TotalStars:  12,
			TotalForks:  3,
			AvgStars:    12,
			MostStarred: &models.RepoRef{Name: "hello", HTMLURL: "https://github.com/octocat/hello", Stars: 12, Forks: 3},
		},
		Languages: []models.LanguageEntry{{Name: "Go", Bytes: 2048, Repos: 1, Percentage: 100}},
		Score: models.Score{
			Overall:    48,
			Percentile: 50,
			Level:      models.Level{Name: "Junior Developer", Color: "#f59e0b", Icon: "+"},
			Breakdown:  models.Breakdown{Impact: 10, Expertise: 60, Consistency: 70, Quality: 65, Growth: 40},
		},
	}
}

func TestBuildDocument(t *testing.T) {
	exportedAt := snapshot.Add(time.Minute)

	doc := BuildDocument(sampleAnalysis(), "1.2.0", exportedAt)

	assert.Equal(t, Metadata{ExportedAt: exportedAt, Version: "1.2.0", Source: "gitscore", RunID: "3f1c9a4e-0000-4000-8000-000000000001"}, doc.Metadata)
	assert.Equal(t, "octocat", doc.Profile.Username)
	assert.Equal(t, "https://github.blog", doc.Profile.Website)
	assert.Equal(t, "https://github.com/octocat", doc.Profile.ProfileURL)
	assert.Equal(t, 48, doc.DeveloperScore.Overall)
	require.NotNil(t, doc.Statistics.MostStarredRepo)
	assert.Equal(t, 12, doc.Statistics.MostStarredRepo.Stars)
	assert.Nil(t, doc.Statistics.MostForkedRepo)
	assert.Equal(t, []Language{{Name: "Go", Percentage: 100, Bytes: 2048, ReposCount: 1}}, doc.Languages)
	require.Len(t, doc.Repositories, 1)
	assert.Equal(t, "https://github.com/octocat/hello", doc.Repositories[0].URL)
	assert.Equal(t, []string{}, doc.Repositories[0].Topics)
}

func TestWriteJSONLayout(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSON(&buf, BuildDocument(sampleAnalysis(), "1.2.0", snapshot)))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	for _, key := range []string{"metadata", "profile", "developer_score", "career_insights", "contribution_patterns", "statistics", "languages", "repositories"} {
		assert.Contains(t, raw, key)
	}
	assert.JSONEq(t, `[]`, string(mustField(t, raw["developer_score"], "badges")))
	assert.JSONEq(t, `null`, string(mustField(t, raw["statistics"], "most_forked_repo")))
	assert.Contains(t, buf.String(), "\n  \"metadata\"")
}

func mustField(t *testing.T, obj json.RawMessage, key string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(obj, &m))
	v, ok := m[key]
	require.True(t, ok, key)
	return v
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "gitscore-octocat-1718452800000.json", FileName("octocat", "json", snapshot))
}

func TestMarkdownEscapesUserText(t *testing.T) {
	md := Markdown(BuildDocument(sampleAnalysis(), "1.2.0", snapshot))

	assert.Contains(t, md, "# The Octocat (octocat)")
	assert.Contains(t, md, "**48/100**")
	assert.Contains(t, md, "| Impact | 10 |")
	assert.Contains(t, md, `says &lt;script&gt;alert(1)&lt;/script&gt; \| hi`)
	assert.NotContains(t, md, "<script>")
}

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML(BuildDocument(sampleAnalysis(), "1.2.0", snapshot))

	require.NoError(t, err)
	page := string(out)
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>gitscore report - octocat</title>")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, `target="_blank"`)
	assert.Contains(t, page, "#f59e0b")
	assert.NotContains(t, page, "<script>")
}
