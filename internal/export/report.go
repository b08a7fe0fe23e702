package export

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Markdown renders doc as the printable report source.
func Markdown(doc Document) string {
	var b strings.Builder
	p := doc.Profile
	s := doc.DeveloperScore

	title := p.Username
	if p.Name != "" {
		title = fmt.Sprintf("%s (%s)", p.Name, p.Username)
	}
	fmt.Fprintf(&b, "# %s\n\n", escape(title))
	if p.Bio != "" {
		fmt.Fprintf(&b, "%s\n\n", escape(p.Bio))
	}
	for _, f := range [][2]string{
		{"Company", p.Company},
		{"Location", p.Location},
		{"Website", p.Website},
		{"Profile", p.ProfileURL},
	} {
		if f[1] != "" {
			fmt.Fprintf(&b, "- **%s:** %s\n", f[0], escape(f[1]))
		}
	}
	fmt.Fprintf(&b, "- **Followers:** %d, **Following:** %d, **Public repos:** %d\n", p.Followers, p.Following, p.PublicRepos)
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "- **Joined:** %s\n", p.CreatedAt.Format("January 2, 2006"))
	}

	fmt.Fprintf(&b, "\n## Developer Score\n\n")
	fmt.Fprintf(&b, "**%d/100** %s %s (top %d%%)\n\n", s.Overall, s.Level.Icon, s.Level.Name, 100-s.Percentile)
	b.WriteString("| Factor | Score |\n|---|---|\n")
	fmt.Fprintf(&b, "| Impact | %d |\n| Expertise | %d |\n| Consistency | %d |\n| Quality | %d |\n| Growth | %d |\n\n",
		s.Breakdown.Impact, s.Breakdown.Expertise, s.Breakdown.Consistency, s.Breakdown.Quality, s.Breakdown.Growth)
	if len(s.Badges) > 0 {
		b.WriteString("### Badges\n\n")
		for _, badge := range s.Badges {
			fmt.Fprintf(&b, "- %s **%s**: %s\n", badge.Icon, escape(badge.Name), escape(badge.Description))
		}
		b.WriteString("\n")
	}
	if len(s.Frameworks) > 0 {
		fmt.Fprintf(&b, "Frameworks detected: %s\n\n", escape(strings.Join(s.Frameworks, ", ")))
	}

	writeInsights(&b, doc.CareerInsights)
	writePatterns(&b, doc.ContributionPatterns)

	st := doc.Statistics
	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(&b, "- **Total stars:** %d\n- **Total forks:** %d\n- **Total watchers:** %d\n- **Average stars:** %d\n",
		st.TotalStars, st.TotalForks, st.TotalWatchers, st.AverageStars)
	if st.MostStarredRepo != nil {
		fmt.Fprintf(&b, "- **Most starred:** [%s](%s) (%d)\n", escape(st.MostStarredRepo.Name), st.MostStarredRepo.URL, st.MostStarredRepo.Stars)
	}
	if st.MostForkedRepo != nil {
		fmt.Fprintf(&b, "- **Most forked:** [%s](%s) (%d)\n", escape(st.MostForkedRepo.Name), st.MostForkedRepo.URL, st.MostForkedRepo.Forks)
	}
	b.WriteString("\n")

	if len(doc.Languages) > 0 {
		b.WriteString("## Languages\n\n| Language | Share | Bytes | Repos |\n|---|---|---|---|\n")
		for _, l := range doc.Languages {
			fmt.Fprintf(&b, "| %s | %.1f%% | %d | %d |\n", cell(l.Name), l.Percentage, l.Bytes, l.ReposCount)
		}
		b.WriteString("\n")
	}

	if len(doc.Repositories) > 0 {
		b.WriteString("## Repositories\n\n| Name | Language | Stars | Forks | Updated | Description |\n|---|---|---|---|---|---|\n")
		for _, r := range doc.Repositories {
			name := cell(r.Name)
			if r.URL != "" {
				name = fmt.Sprintf("[%s](%s)", name, r.URL)
			}
			fmt.Fprintf(&b, "| %s | %s | %d | %d | %s | %s |\n",
				name, cell(r.Language), r.Stars, r.Forks, r.UpdatedAt.Format("2006-01-02"), cell(r.Description))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeInsights(b *strings.Builder, in CareerInsights) {
	b.WriteString("## Career Insights\n\n")
	if len(in.Strengths) > 0 {
		b.WriteString("### Strengths\n\n")
		for _, s := range in.Strengths {
			fmt.Fprintf(b, "- %s **%s**: %s\n", s.Icon, escape(s.Title), escape(s.Description))
		}
		b.WriteString("\n")
	}
	if len(in.Recommendations) > 0 {
		b.WriteString("### Recommendations\n\n")
		for _, r := range in.Recommendations {
			fmt.Fprintf(b, "- %s **%s** (%s priority): %s *%s*\n", r.Icon, escape(r.Title), r.Priority, escape(r.Description), escape(r.Action))
		}
		b.WriteString("\n")
	}
	if len(in.SkillGaps) > 0 {
		b.WriteString("### Skill Gaps\n\n")
		for _, g := range in.SkillGaps {
			fmt.Fprintf(b, "- **%s** (%s): %s\n", escape(g.Area), g.Importance, escape(g.Suggestion))
		}
		b.WriteString("\n")
	}

	cur := in.CareerPath.Current
	b.WriteString("### Career Path\n\n")
	fmt.Fprintf(b, "Current level: **%s**", escape(cur.Level))
	if cur.EstimatedRole != "" {
		fmt.Fprintf(b, ", estimated role: **%s**", escape(cur.EstimatedRole))
	}
	b.WriteString("\n\n")
	for _, m := range in.CareerPath.Paths {
		fmt.Fprintf(b, "- **%s:** %s", escape(m.Timeframe), escape(m.Goal))
		if len(m.Steps) > 0 {
			fmt.Fprintf(b, " (%s)", escape(strings.Join(m.Steps, ", ")))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	ma := in.MarketAlignment
	fmt.Fprintf(b, "### Market Alignment: %d/100\n\n", ma.Score)
	for _, s := range ma.Insights {
		fmt.Fprintf(b, "- %s\n", escape(s))
	}
	if ma.Recommendation != "" {
		fmt.Fprintf(b, "\n%s\n", escape(ma.Recommendation))
	}
	b.WriteString("\n")
}

func writePatterns(b *strings.Builder, p ContributionPatterns) {
	b.WriteString("## Contribution Patterns\n\n")
	tp := p.TimePatterns
	fmt.Fprintf(b, "- **Most active:** %s, %s\n", orNone(tp.MostActiveDay), orNone(tp.MostActivePeriod))
	fmt.Fprintf(b, "- **Weekend activity:** %d%%, **consistency:** %d%%\n", tp.WeekendActivity, tp.Consistency)
	cp := p.CommitPatterns
	fmt.Fprintf(b, "- **Update frequency:** %s, **maintenance:** %d%%\n", cp.UpdateFrequency, cp.MaintenanceScore)
	fmt.Fprintf(b, "- **Collaboration style:** %s\n", p.CollaborationStyle.Style)
	fmt.Fprintf(b, "- **Current focus:** %s (%s)\n", orNone(p.LanguageEvolution.CurrentFocus), p.LanguageEvolution.DiversificationTrend)
	fmt.Fprintf(b, "- **Momentum:** %s, %s growth\n", p.ActivityTrends.Momentum, p.ActivityTrends.GrowthRate)
	for _, in := range p.Insights {
		fmt.Fprintf(b, "- %s\n", escape(in.Insight))
	}
	b.WriteString("\n")
}

func orNone(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "[", `\[`, "]", `\]`, "`", "\\`", "<", "&lt;", ">", "&gt;",
)

// escape neutralises Markdown and HTML syntax in user-supplied text.
func escape(s string) string {
	return mdEscaper.Replace(s)
}

func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(escape(s), "|", `\|`)
}

func markdownToHTML(md string) []byte {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(md))

	opts := html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank | html.SkipHTML}
	return markdown.Render(doc, html.NewRenderer(opts))
}

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>gitscore report - {{.Login}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            max-width: 960px;
            margin: 0 auto;
            padding: 20px;
            color: #1f2937;
        }
        .meta {
            color: #6b7280;
            font-size: 13px;
            border-bottom: 1px solid #e5e7eb;
            padding-bottom: 10px;
        }
        table {
            width: 100%;
            border-collapse: collapse;
            margin: 16px 0;
        }
        th, td {
            padding: 8px;
            text-align: left;
            border-bottom: 1px solid #e5e7eb;
        }
        th {
            background-color: #f9fafb;
        }
        h2 {
            border-bottom: 2px solid {{.LevelColor}};
            padding-bottom: 6px;
            margin-top: 28px;
        }
        @media print {
            a { color: inherit; text-decoration: none; }
        }
    </style>
</head>
<body>
    <div class="meta">
        Generated {{.GeneratedAt}} by {{.Source}} v{{.Version}} &middot; run {{.RunID}}
    </div>
    {{.Body}}
</body>
</html>
`))

type page struct {
	Login       string
	LevelColor  string
	GeneratedAt string
	Source      string
	Version     string
	RunID       string
	Body        template.HTML
}

// RenderHTML renders doc as a standalone printable HTML page.
func RenderHTML(doc Document) ([]byte, error) {
	levelColor := doc.DeveloperScore.Level.Color
	if levelColor == "" {
		levelColor = "#6b7280"
	}

	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, page{
		Login:       doc.Profile.Username,
		LevelColor:  levelColor,
		GeneratedAt: doc.Metadata.ExportedAt.Format("2006-01-02 15:04 MST"),
		Source:      doc.Metadata.Source,
		Version:     doc.Metadata.Version,
		RunID:       doc.Metadata.RunID,
		Body:        template.HTML(markdownToHTML(Markdown(doc))),
	})
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
