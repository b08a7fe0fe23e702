package scoring

import (
	"fmt"
	"sort"
	"time"

	"github.com/gnomegl/gitscore/internal/models"
)

const maxBadges = 6

type percentileTier struct {
	stars, followers, percentile int
}

var percentileTiers = []percentileTier{
	{1000, 500, 95},
	{500, 200, 90},
	{200, 100, 80},
	{100, 50, 70},
	{50, 25, 60},
	{20, 10, 50},
	{10, 5, 40},
}

const percentileFloor = 30

// Percentile maps total stars and followers onto a fixed step function.
// Either metric crossing a tier is enough to reach it.
func Percentile(totalStars, followers int) int {
	for _, t := range percentileTiers {
		if totalStars > t.stars || followers > t.followers {
			return t.percentile
		}
	}
	return percentileFloor
}

type levelTier struct {
	min   int
	level models.Level
}

var levelTiers = []levelTier{
	{90, models.Level{Name: "Expert", Color: "#10b981", Icon: "🏆"}},
	{75, models.Level{Name: "Senior", Color: "#3b82f6", Icon: "⭐"}},
	{60, models.Level{Name: "Intermediate", Color: "#8b5cf6", Icon: "📈"}},
	{40, models.Level{Name: "Junior", Color: "#f59e0b", Icon: "🎯"}},
}

var beginner = models.Level{Name: "Beginner", Color: "#6b7280", Icon: "🌱"}

func LevelFor(overall int) models.Level {
	for _, t := range levelTiers {
		if overall >= t.min {
			return t.level
		}
	}
	return beginner
}

// Badges evaluates one rule chain per category in priority order. Each
// chain yields at most one badge and the result is capped at six.
func Badges(user models.UserProfile, repos []models.Repository, stats models.Stats, languages []models.LanguageEntry, now time.Time) []models.Badge {
	badges := []models.Badge{}

	switch {
	case stats.TotalStars > 1000:
		badges = append(badges, models.Badge{Name: "Superstar", Icon: "🌟", Description: "1000+ total stars"})
	case stats.TotalStars > 500:
		badges = append(badges, models.Badge{Name: "Rising Star", Icon: "⭐", Description: "500+ total stars"})
	case stats.TotalStars > 100:
		badges = append(badges, models.Badge{Name: "Popular", Icon: "✨", Description: "100+ total stars"})
	}

	switch {
	case len(repos) > 100:
		badges = append(badges, models.Badge{Name: "Prolific", Icon: "🏗️", Description: "100+ repositories"})
	case len(repos) > 50:
		badges = append(badges, models.Badge{Name: "Active Builder", Icon: "🔨", Description: "50+ repositories"})
	}

	switch {
	case len(languages) >= 8:
		badges = append(badges, models.Badge{Name: "Polyglot", Icon: "🌍", Description: "8+ languages"})
	case len(languages) >= 5:
		badges = append(badges, models.Badge{Name: "Multilingual", Icon: "🗣️", Description: "5+ languages"})
	}

	if len(languages) > 0 && languages[0].Percentage > 60 {
		top := languages[0].Name
		badges = append(badges, models.Badge{
			Name:        fmt.Sprintf("%s Expert", top),
			Icon:        "🎯",
			Description: fmt.Sprintf("60%%+ %s", top),
		})
	}

	switch {
	case user.Followers > 1000:
		badges = append(badges, models.Badge{Name: "Influencer", Icon: "👥", Description: "1000+ followers"})
	case user.Followers > 100:
		badges = append(badges, models.Badge{Name: "Community Leader", Icon: "🎭", Description: "100+ followers"})
	}

	if AccountAgeYears(user, now) > 5 {
		badges = append(badges, models.Badge{Name: "Veteran", Icon: "🎖️", Description: "5+ years on GitHub"})
	}

	if stats.TotalForks > 500 {
		badges = append(badges, models.Badge{Name: "Fork Master", Icon: "🔀", Description: "500+ total forks"})
	}

	if len(badges) > maxBadges {
		badges = badges[:maxBadges]
	}
	return badges
}

func sortedByCreation(repos []models.Repository) []models.Repository {
	sorted := make([]models.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}
