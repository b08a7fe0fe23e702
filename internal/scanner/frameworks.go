package scanner

import (
	"regexp"
	"strings"

	"github.com/gnomegl/gitscore/internal/models"
)

// Pattern pairs a technology label with the expression that detects it.
type Pattern struct {
	Label string
	Regex *regexp.Regexp
}

// FrameworkPatterns is evaluated in order; detection output follows it.
var FrameworkPatterns = []Pattern{
	{"React", regexp.MustCompile(`(?i)react|jsx|next\.js|nextjs|gatsby`)},
	{"Vue", regexp.MustCompile(`(?i)vue|nuxt`)},
	{"Angular", regexp.MustCompile(`(?i)angular`)},
	{"Node.js", regexp.MustCompile(`(?i)node|express|fastify|koa`)},
	{"Django", regexp.MustCompile(`(?i)django`)},
	{"Flask", regexp.MustCompile(`(?i)flask`)},
	{"Rails", regexp.MustCompile(`(?i)rails|ruby on rails`)},
	{"Spring", regexp.MustCompile(`(?i)spring`)},
	{"Laravel", regexp.MustCompile(`(?i)laravel`)},
	{"Docker", regexp.MustCompile(`(?i)docker|container`)},
	{"Kubernetes", regexp.MustCompile(`(?i)kubernetes|k8s`)},
	{"AWS", regexp.MustCompile(`(?i)aws|amazon|lambda`)},
	{"Machine Learning", regexp.MustCompile(`(?i)tensorflow|pytorch|scikit|ml|machine learning|ai`)},
	{"Mobile", regexp.MustCompile(`(?i)android|ios|flutter|react native|swift`)},
	{"Database", regexp.MustCompile(`(?i)sql|postgres|mysql|mongodb|redis`)},
}

// Match returns the labels whose pattern matches text, in table order.
func Match(patterns []Pattern, text string) []string {
	var labels []string
	for _, p := range patterns {
		if p.Regex.MatchString(text) {
			labels = append(labels, p.Label)
		}
	}
	return labels
}

// DetectFrameworks scans name, description and topics of every repository
// and returns the set of matched labels in table order.
func DetectFrameworks(repos []models.Repository) []string {
	found := make(map[string]bool)
	for _, repo := range repos {
		texts := append([]string{repo.Name + " " + repo.Description}, repo.Topics...)
		for _, text := range texts {
			for _, label := range Match(FrameworkPatterns, text) {
				found[label] = true
			}
		}
	}

	detected := []string{}
	for _, p := range FrameworkPatterns {
		if found[p.Label] {
			detected = append(detected, p.Label)
		}
	}
	return detected
}

// ContainsAny reports whether any keyword occurs in text, ignoring case.
func ContainsAny(text string, keywords ...string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
