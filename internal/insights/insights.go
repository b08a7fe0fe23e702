// Package insights turns a scored profile into strengths, recommendations,
// skill gaps, a career path, a learning plan and a market alignment score.
package insights

import (
	"fmt"
	"slices"

	"github.com/gnomegl/gitscore/internal/models"
	"github.com/gnomegl/gitscore/internal/scanner"
)

const maxRecommendations = 5

type Input struct {
	User      models.UserProfile
	Repos     []models.Repository
	Languages []models.LanguageEntry
	Score     models.Score
	Stats     models.Stats
}

func Generate(in Input) models.Insights {
	return models.Insights{
		Strengths:       Strengths(in.Languages, in.Score),
		Recommendations: Recommendations(in.Languages, in.Repos),
		SkillGaps:       SkillGaps(in.Languages, in.Repos),
		CareerPath:      CareerPath(in.Languages, in.Score),
		LearningPlan:    LearningPlan(in.Languages),
		MarketAlignment: MarketAlignment(in.Languages, in.Repos),
	}
}

func primaryLanguage(languages []models.LanguageEntry) string {
	if len(languages) == 0 {
		return ""
	}
	return languages[0].Name
}

func hasLanguage(languages []models.LanguageEntry, names ...string) bool {
	for _, l := range languages {
		if slices.Contains(names, l.Name) {
			return true
		}
	}
	return false
}

// knowsTech matches tech as a case-insensitive substring of any language
// name.
func knowsTech(languages []models.LanguageEntry, tech string) bool {
	for _, l := range languages {
		if scanner.ContainsAny(l.Name, tech) {
			return true
		}
	}
	return false
}

func Strengths(languages []models.LanguageEntry, score models.Score) []models.Strength {
	strengths := []models.Strength{}

	if len(languages) > 0 && languages[0].Percentage > 40 {
		top := languages[0]
		strengths = append(strengths, models.Strength{
			Type:        "expertise",
			Title:       fmt.Sprintf("%s Specialist", top.Name),
			Description: fmt.Sprintf("Strong expertise in %s (%s%% of codebase)", top.Name, top.PercentageString()),
			Icon:        "🎯",
		})
	}

	if len(languages) >= 5 {
		strengths = append(strengths, models.Strength{
			Type:        "versatility",
			Title:       "Polyglot Developer",
			Description: fmt.Sprintf("Proficient in %d programming languages", len(languages)),
			Icon:        "🌍",
		})
	}

	if score.Breakdown.Impact > 70 {
		strengths = append(strengths, models.Strength{
			Type:        "impact",
			Title:       "High Impact Contributor",
			Description: "Your projects have significant community impact",
			Icon:        "⚡",
		})
	}
	if score.Breakdown.Quality > 70 {
		strengths = append(strengths, models.Strength{
			Type:        "quality",
			Title:       "Quality-Focused Developer",
			Description: "Strong emphasis on code quality and documentation",
			Icon:        "✨",
		})
	}
	if score.Breakdown.Consistency > 70 {
		strengths = append(strengths, models.Strength{
			Type:        "consistency",
			Title:       "Consistent Contributor",
			Description: "Regular activity and project maintenance",
			Icon:        "🔄",
		})
	}
	return strengths
}

// Recommendations returns at most five suggestions in rule order.
func Recommendations(languages []models.LanguageEntry, repos []models.Repository) []models.Recommendation {
	recs := []models.Recommendation{}
	primary := primaryLanguage(languages)

	if tech, ok := TechStack[primary]; ok {
		for _, adv := range tech.Advanced {
			if knowsTech(languages, adv) {
				continue
			}
			recs = append(recs, models.Recommendation{
				Type:        "skill",
				Priority:    models.PriorityHigh,
				Title:       fmt.Sprintf("Learn %s", adv),
				Description: fmt.Sprintf("Based on your %s expertise, %s would be a natural progression", primary, adv),
				Action:      fmt.Sprintf("Start with %s tutorials and build a practice project", adv),
				Icon:        "📚",
			})
			break
		}

		if len(languages) < 3 {
			for _, comp := range tech.Complementary {
				if hasLanguage(languages, comp) {
					continue
				}
				recs = append(recs, models.Recommendation{
					Type:        "diversification",
					Priority:    models.PriorityMedium,
					Title:       fmt.Sprintf("Add %s to your skillset", comp),
					Description: fmt.Sprintf("%s complements %s well for full-stack development", comp, primary),
					Action:      fmt.Sprintf("Create a project combining %s and %s", primary, comp),
					Icon:        "🔧",
				})
				break
			}
		}
	}

	totalStars, forks, described := 0, 0, 0
	for _, r := range repos {
		totalStars += r.Stars
		if r.Fork {
			forks++
		}
		if r.Description != "" {
			described++
		}
	}
	n := float64(len(repos))

	if len(repos) > 10 && float64(totalStars)/n < 5 {
		recs = append(recs, models.Recommendation{
			Type:        "visibility",
			Priority:    models.PriorityMedium,
			Title:       "Increase project visibility",
			Description: "Your projects could benefit from better documentation and promotion",
			Action:      "Add comprehensive READMEs, demos, and share on social media",
			Icon:        "📢",
		})
	}

	if float64(forks) < n*0.1 {
		action := "Find projects on GitHub with \"good first issue\" labels"
		if primary != "" {
			action = fmt.Sprintf("Find %s projects on GitHub with \"good first issue\" labels", primary)
		}
		recs = append(recs, models.Recommendation{
			Type:        "contribution",
			Priority:    models.PriorityMedium,
			Title:       "Contribute to open source",
			Description: "Increase your visibility by contributing to popular projects",
			Action:      action,
			Icon:        "🤝",
		})
	}

	if float64(described) < n*0.7 {
		recs = append(recs, models.Recommendation{
			Type:        "portfolio",
			Priority:    models.PriorityHigh,
			Title:       "Improve repository descriptions",
			Description: "Add descriptions to make your portfolio more professional",
			Action:      "Write clear, concise descriptions for all repositories",
			Icon:        "📝",
		})
	}

	if hot := firstAbsentHotTech(languages, repos); hot != "" {
		recs = append(recs, models.Recommendation{
			Type:        "market",
			Priority:    models.PriorityHigh,
			Title:       fmt.Sprintf("Explore %s", hot),
			Description: fmt.Sprintf("%s is in high demand in the job market", hot),
			Action:      fmt.Sprintf("Build a project using %s to stay competitive", hot),
			Icon:        "🔥",
		})
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func firstAbsentHotTech(languages []models.LanguageEntry, repos []models.Repository) string {
	for _, tech := range HotTech {
		if knowsTech(languages, tech) {
			continue
		}
		used := false
		for _, r := range repos {
			if scanner.ContainsAny(r.Name+" "+r.Description, tech) {
				used = true
				break
			}
		}
		if !used {
			return tech
		}
	}
	return ""
}

func SkillGaps(languages []models.LanguageEntry, repos []models.Repository) []models.SkillGap {
	gaps := []models.SkillGap{}
	hasBackend := hasLanguage(languages, backendLanguages...)
	hasFrontend := hasLanguage(languages, frontendLanguages...)

	var hasDatabase, hasDevOps, hasTests bool
	for _, r := range repos {
		text := r.Name + " " + r.Description
		hasDatabase = hasDatabase || scanner.ContainsAny(text, "sql", "database")
		hasDevOps = hasDevOps || scanner.ContainsAny(text, "docker", "kubernetes", "ci/cd")
		hasTests = hasTests || scanner.ContainsAny(text, "test")
	}

	if !hasBackend && hasFrontend {
		gaps = append(gaps, models.SkillGap{
			Area:       "Backend Development",
			Suggestion: "Learn a backend language like Python or Node.js",
			Importance: models.PriorityHigh,
		})
	}
	if !hasFrontend && hasBackend {
		gaps = append(gaps, models.SkillGap{
			Area:       "Frontend Development",
			Suggestion: "Learn modern JavaScript and a framework like React",
			Importance: models.PriorityHigh,
		})
	}
	if !hasDatabase {
		gaps = append(gaps, models.SkillGap{
			Area:       "Database Skills",
			Suggestion: "Learn SQL and NoSQL databases",
			Importance: models.PriorityMedium,
		})
	}
	if !hasDevOps {
		gaps = append(gaps, models.SkillGap{
			Area:       "DevOps & Cloud",
			Suggestion: "Learn Docker, CI/CD, and cloud platforms",
			Importance: models.PriorityMedium,
		})
	}
	if !hasTests {
		gaps = append(gaps, models.SkillGap{
			Area:       "Testing",
			Suggestion: "Add unit tests and integration tests to your projects",
			Importance: models.PriorityHigh,
		})
	}
	return gaps
}

// CareerPath projects three milestones from the roles associated with the
// primary language. Languages outside the knowledge base get no milestones.
func CareerPath(languages []models.LanguageEntry, score models.Score) models.CareerPath {
	primary := primaryLanguage(languages)
	path := models.CareerPath{
		Current: models.CurrentPosition{Level: score.Level.Name},
		Paths:   []models.CareerMilestone{},
	}

	tech, ok := TechStack[primary]
	if !ok {
		return path
	}

	path.Current.Specialization = primary
	path.Current.EstimatedRole = tech.Roles[0]

	mid := "Tech Lead"
	if len(tech.Roles) > 1 {
		mid = tech.Roles[1]
	}

	path.Paths = []models.CareerMilestone{
		{
			Timeframe: "Short-term (6 months)",
			Goal:      "Senior " + tech.Roles[0],
			Steps: []string{
				"Master advanced " + primary + " concepts",
				"Contribute to 2-3 open source projects",
				"Build a complex portfolio project",
			},
		},
		{
			Timeframe: "Medium-term (1-2 years)",
			Goal:      mid,
			Steps: []string{
				"Learn system design and architecture",
				"Gain experience with cloud platforms",
				"Mentor junior developers",
			},
		},
		{
			Timeframe: "Long-term (3-5 years)",
			Goal:      "Architecture/Management",
			Steps: []string{
				"Lead major technical initiatives",
				"Develop business acumen",
				"Build industry network",
			},
		},
	}
	return path
}

func LearningPlan(languages []models.LanguageEntry) models.LearningPlan {
	plan := models.LearningPlan{
		Immediate: []models.LearningTask{
			{Task: "Improve documentation", Description: "Add comprehensive READMEs to top 3 repositories", Effort: "2-3 hours"},
			{Task: "Code review", Description: "Review and refactor your most starred repository", Effort: "4-5 hours"},
		},
		LongTerm: []models.LearningTask{
			{Task: "Contribute to major OSS", Description: "Make significant contributions to popular open source projects", Effort: "100+ hours"},
			{Task: "Technical writing", Description: "Write technical blog posts or tutorials", Effort: "50+ hours"},
		},
	}

	if tech, ok := TechStack[primaryLanguage(languages)]; ok {
		related := tech.Related[0]
		plan.ShortTerm = append(plan.ShortTerm, models.LearningTask{
			Task:        "Learn " + related,
			Description: fmt.Sprintf("Complete a course or tutorial on %s", related),
			Effort:      "20-30 hours",
		})
	}
	plan.ShortTerm = append(plan.ShortTerm, models.LearningTask{
		Task:        "Build showcase project",
		Description: "Create a complex project demonstrating your skills",
		Effort:      "40-50 hours",
	})
	return plan
}

// MarketAlignment scores languages by demand tier, with a flat bonus when
// any repository name mentions an emerging technology.
func MarketAlignment(languages []models.LanguageEntry, repos []models.Repository) models.MarketAlignment {
	score := 0
	notes := []string{}

	for _, l := range languages {
		switch {
		case slices.Contains(HotTech, l.Name):
			score += hotPoints
			notes = append(notes, fmt.Sprintf("✅ %s is in high demand", l.Name))
		case slices.Contains(GrowingTech, l.Name):
			score += growingPoints
			notes = append(notes, fmt.Sprintf("📈 %s is growing in popularity", l.Name))
		case slices.Contains(StableTech, l.Name):
			score += stablePoints
			notes = append(notes, fmt.Sprintf("💪 %s has stable demand", l.Name))
		}
	}

	for _, r := range repos {
		if scanner.ContainsAny(r.Name, EmergingTech...) {
			score += emergingPoints
			notes = append(notes, "🚀 You're exploring emerging technologies")
			break
		}
	}

	ma := models.MarketAlignment{
		Score:          min(100, score),
		Insights:       notes,
		Recommendation: "Your skills align well with market demands",
	}
	if score < 50 {
		ma.Recommendation = "Consider adding more in-demand technologies to your skillset"
	}
	return ma
}
