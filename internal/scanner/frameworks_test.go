package scanner

import (
	"testing"

	"github.com/gnomegl/gitscore/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDetectFrameworks(t *testing.T) {
	tests := []struct {
		name  string
		repos []models.Repository
		want  []string
	}{
		{
			name:  "no repos",
			repos: nil,
			want:  []string{},
		},
		{
			name: "name and description",
			repos: []models.Repository{
				{Name: "my-django-site", Description: "Blog backed by Postgres"},
			},
			want: []string{"Django", "Database"},
		},
		{
			name: "topics are matched case-insensitively",
			repos: []models.Repository{
				{Name: "tool", Topics: []string{"Kubernetes", "DOCKER"}},
			},
			want: []string{"Docker", "Kubernetes"},
		},
		{
			name: "duplicates across repos collapse",
			repos: []models.Repository{
				{Name: "vue-app"},
				{Name: "nuxt-site"},
			},
			want: []string{"Vue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFrameworks(tt.repos))
		})
	}
}

func TestMatchFollowsTableOrder(t *testing.T) {
	got := Match(FrameworkPatterns, "flask api deployed with docker to aws lambda")
	assert.Equal(t, []string{"Flask", "Docker", "AWS"}, got)
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("Awesome-SQL-Notes", "sql"))
	assert.False(t, ContainsAny("notes", "sql", "database"))
	assert.False(t, ContainsAny("", "x"))
}
