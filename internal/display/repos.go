package display

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gnomegl/gitscore/internal/models"
)

const (
	SortStars   = "stars"
	SortForks   = "forks"
	SortUpdated = "updated"
	SortCreated = "created"
)

// SortRepositories returns a sorted copy of repos, largest or newest first.
// An unknown key keeps the fetched order.
func SortRepositories(repos []models.Repository, by string) []models.Repository {
	sorted := make([]models.Repository, len(repos))
	copy(sorted, repos)

	var less func(a, b models.Repository) bool
	switch by {
	case SortStars:
		less = func(a, b models.Repository) bool { return a.Stars > b.Stars }
	case SortForks:
		less = func(a, b models.Repository) bool { return a.Forks > b.Forks }
	case SortUpdated:
		less = func(a, b models.Repository) bool { return a.UpdatedAt.After(b.UpdatedAt) }
	case SortCreated:
		less = func(a, b models.Repository) bool { return a.CreatedAt.After(b.CreatedAt) }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}

// FilterByLanguage keeps repositories whose primary language matches,
// ignoring case. An empty language or "all" keeps everything.
func FilterByLanguage(repos []models.Repository, language string) []models.Repository {
	if language == "" || strings.EqualFold(language, "all") {
		return repos
	}
	var out []models.Repository
	for _, r := range repos {
		if strings.EqualFold(r.Language, language) {
			out = append(out, r)
		}
	}
	return out
}

func reposSection(w io.Writer, t *terminalInfo, repos []models.Repository, available []string, limit int, now time.Time) {
	section(w, t, fmt.Sprintf("REPOSITORIES (%d)", len(repos)))
	if len(repos) == 0 {
		dimColor.Fprintln(w, "No repositories match")
		if len(available) > 0 {
			dimColor.Fprintf(w, "Languages: %s\n", strings.Join(available, ", "))
		}
		return
	}

	shown := repos
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	for _, r := range shown {
		name := r.Name
		if r.Fork {
			name += " (fork)"
		}
		lang := r.Language
		if lang == "" {
			lang = "-"
		}
		fmt.Fprintf(w, "  %s  %s %d  %s %d  %s  %s\n",
			color.HiGreenString(truncateString(name, 30)),
			color.YellowString("★"), r.Stars,
			color.BlueString("⑂"), r.Forks,
			color.MagentaString(lang),
			dimColor.Sprintf("updated %s", TimeAgo(r.UpdatedAt, now)))
		if r.Description != "" {
			fmt.Fprintf(w, "    %s\n", truncateString(r.Description, t.maxDisplay-4))
		}
	}

	if len(repos) > len(shown) {
		dimColor.Fprintf(w, "  ... and %d more\n", len(repos)-len(shown))
	}
}
