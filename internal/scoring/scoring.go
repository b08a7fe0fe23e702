package scoring

import (
	"math"
	"time"

	"github.com/gnomegl/gitscore/internal/models"
	"github.com/gnomegl/gitscore/internal/scanner"
)

const year = 365 * 24 * time.Hour

// Benchmarks used to normalise raw counts into 0-100 sub-scores.
const (
	topPercentileStars   = 1000.0
	topPercentileForks   = 500.0
	topWatchers          = 500.0
	avgStarsPerRepo      = 5.0
	maxAccountAgeYears   = 10.0
	maxLanguages         = 8.0
	maxFrameworks        = 10.0
	eventWindow          = 30.0
	followersPerYearGoal = 20.0
	viralStars           = 100
)

var weights = struct {
	impact, expertise, consistency, quality, growth float64
}{0.3, 0.25, 0.15, 0.2, 0.1}

// Input is the full snapshot needed to score one profile.
type Input struct {
	User      models.UserProfile
	Repos     []models.Repository
	Stats     models.Stats
	Languages []models.LanguageEntry
	Events    []models.PublicEvent
	Now       time.Time
}

func Calculate(in Input) models.Score {
	frameworks := scanner.DetectFrameworks(in.Repos)

	breakdown := models.Breakdown{
		Impact:      ImpactScore(in.Stats, in.Repos),
		Expertise:   ExpertiseScore(in.User, in.Languages, len(frameworks), in.Now),
		Consistency: ConsistencyScore(in.Repos, in.Events, in.Now),
		Quality:     QualityScore(in.Repos, in.Stats),
		Growth:      GrowthScore(in.Repos, in.User, in.Now),
	}

	overall := clampRound(
		float64(breakdown.Impact)*weights.impact +
			float64(breakdown.Expertise)*weights.expertise +
			float64(breakdown.Consistency)*weights.consistency +
			float64(breakdown.Quality)*weights.quality +
			float64(breakdown.Growth)*weights.growth)

	return models.Score{
		Overall:    overall,
		Breakdown:  breakdown,
		Percentile: Percentile(in.Stats.TotalStars, in.User.Followers),
		Level:      LevelFor(overall),
		Badges:     Badges(in.User, in.Repos, in.Stats, in.Languages, in.Now),
		Frameworks: frameworks,
	}
}

func ImpactScore(stats models.Stats, repos []models.Repository) int {
	starScore := capped(float64(stats.TotalStars) / topPercentileStars * 100)
	forkScore := capped(float64(stats.TotalForks) / topPercentileForks * 100)
	watcherScore := capped(float64(stats.TotalWatchers) / topWatchers * 100)

	bonus := 0.0
	for _, r := range repos {
		if r.Stars > viralStars {
			bonus = 10
			break
		}
	}

	return clampRound(starScore*0.5 + forkScore*0.3 + watcherScore*0.2 + bonus)
}

func ExpertiseScore(user models.UserProfile, languages []models.LanguageEntry, frameworkCount int, now time.Time) int {
	ageScore := capped(AccountAgeYears(user, now) / maxAccountAgeYears * 100)
	diversity := capped(float64(len(languages)) / maxLanguages * 100)
	frameworkScore := capped(float64(frameworkCount) / maxFrameworks * 100)

	bonus := 0.0
	if len(languages) > 0 && languages[0].Percentage > 50 {
		bonus = 15
	}

	return clampRound(ageScore*0.3 + diversity*0.35 + frameworkScore*0.35 + bonus)
}

// ConsistencyScore falls back to the repository activity ratio for its
// event component when no events are available.
func ConsistencyScore(repos []models.Repository, events []models.PublicEvent, now time.Time) int {
	if len(repos) == 0 && len(events) == 0 {
		return 0
	}
	sixMonthsAgo := now.AddDate(0, -6, 0)

	active, maintained := 0, 0
	for _, r := range repos {
		if !r.UpdatedAt.After(sixMonthsAgo) {
			continue
		}
		active++
		if now.Sub(r.CreatedAt) > year {
			maintained++
		}
	}

	activityScore := 0.0
	if len(repos) > 0 {
		activityScore = capped(float64(active) / float64(len(repos)) * 150)
	}

	eventScore := activityScore
	if len(events) > 0 {
		eventScore = capped(float64(len(events)) / eventWindow * 100)
	}

	maintenanceScore := capped(float64(maintained) / math.Max(5, float64(len(repos))*0.3) * 100)

	return clampRound(activityScore*0.4 + eventScore*0.3 + maintenanceScore*0.3)
}

func QualityScore(repos []models.Repository, stats models.Stats) int {
	if len(repos) == 0 {
		return 0
	}

	documented, withIssues := 0, 0
	for _, r := range repos {
		if len([]rune(r.Description)) > 20 {
			documented++
		}
		if r.OpenIssues > 0 {
			withIssues++
		}
	}
	n := float64(len(repos))

	docScore := float64(documented) / n * 100
	qualityRatio := capped(float64(stats.AvgStars) / avgStarsPerRepo * 50)

	usefulness := 0.0
	if stats.TotalStars > 0 {
		usefulness = capped(float64(stats.TotalForks) / float64(stats.TotalStars) * 200)
	}

	engagement := capped(float64(withIssues) / math.Max(1, n*0.3) * 100)

	return clampRound(docScore*0.35 + qualityRatio*0.35 + usefulness*0.2 + engagement*0.1)
}

// GrowthScore compares average stars of the oldest and newest 30% of
// repositories by creation date, blended with follower accrual per year.
func GrowthScore(repos []models.Repository, user models.UserProfile, now time.Time) int {
	followerRate := float64(user.Followers) / math.Max(1, AccountAgeYears(user, now))
	followerScore := capped(followerRate / followersPerYearGoal * 100)

	if len(repos) == 0 {
		return clampRound(followerScore * 0.4)
	}

	sorted := sortedByCreation(repos)
	slice := int(math.Ceil(float64(len(sorted)) * 0.3))
	early := averageStars(sorted[:slice])
	recent := averageStars(sorted[len(sorted)-slice:])

	growthRate := 50.0
	if recent > early {
		growthRate = capped((recent - early) / math.Max(1, early) * 100)
	}

	return clampRound(growthRate*0.6 + followerScore*0.4)
}

// AccountAgeYears is zero for a missing or future creation date.
func AccountAgeYears(user models.UserProfile, now time.Time) float64 {
	if user.CreatedAt.IsZero() || user.CreatedAt.After(now) {
		return 0
	}
	return now.Sub(user.CreatedAt).Hours() / year.Hours()
}

func averageStars(repos []models.Repository) float64 {
	if len(repos) == 0 {
		return 0
	}
	total := 0
	for _, r := range repos {
		total += r.Stars
	}
	return float64(total) / float64(len(repos))
}

func capped(v float64) float64 {
	return math.Min(100, v)
}

func clampRound(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Max(0, math.Min(100, math.Round(v))))
}
