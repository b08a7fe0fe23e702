package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gnomegl/gitscore/internal/github"
	"github.com/gnomegl/gitscore/internal/models"
)

func statsSection(w io.Writer, t *terminalInfo, st models.Stats) {
	section(w, t, "REPOSITORY STATISTICS")
	fmt.Fprintf(w, "%s %d  %s %d  %s %d  %s %d\n",
		labelColor.Sprint("Stars:"), st.TotalStars,
		labelColor.Sprint("Forks:"), st.TotalForks,
		labelColor.Sprint("Watchers:"), st.TotalWatchers,
		labelColor.Sprint("Avg stars:"), st.AvgStars)

	if st.MostStarred != nil {
		fmt.Fprintf(w, "%s %s (%d stars)\n", labelColor.Sprint("Most starred:"), st.MostStarred.Name, st.MostStarred.Stars)
	}
	if st.MostForked != nil {
		fmt.Fprintf(w, "%s %s (%d forks)\n", labelColor.Sprint("Most forked:"), st.MostForked.Name, st.MostForked.Forks)
	}
	if len(st.Topics) > 0 {
		fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("Topics:"), truncateString(fmt.Sprint(st.Topics), t.maxDisplay-8))
	}
}

func languagesSection(w io.Writer, t *terminalInfo, languages []models.LanguageEntry) {
	section(w, t, "LANGUAGES")
	if len(languages) == 0 {
		dimColor.Fprintln(w, "No language data available")
		return
	}

	for _, l := range languages {
		fmt.Fprintf(w, "  %-14s [%s] %5s%%  %s\n",
			truncateString(l.Name, 14),
			color.CyanString(progressBar(l.Percentage, t.graphWidth)),
			l.PercentageString(),
			dimColor.Sprintf("%d repos", l.Repos))
	}
}

// RateLimitFooter prints the last observed API quota, coloured by how close
// it is to exhaustion.
func RateLimitFooter(w io.Writer, info github.RateInfo, seen bool) {
	if !seen {
		return
	}

	c := color.New(color.FgGreen)
	switch {
	case info.Remaining < 10:
		c = color.New(color.FgRed)
	case info.Remaining < 30:
		c = color.New(color.FgYellow)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("API rate limit:"), c.Sprintf("%d/%d remaining", info.Remaining, info.Limit))
	if info.Remaining == 0 && !info.Reset.IsZero() {
		fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("Resets at:"), info.Reset.Format("15:04:05"))
	}
}
