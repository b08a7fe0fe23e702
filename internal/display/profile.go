package display

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gnomegl/gitscore/internal/models"
)

func UserInfo(w io.Writer, user models.UserProfile, now time.Time) {
	fmt.Fprintln(w)
	headerColor.Fprintf(w, "USER: %s\n", user.Login)

	printField(w, "Name", user.Name)
	printField(w, "Email", user.Email)
	printField(w, "Company", user.Company)
	printField(w, "Location", user.Location)
	printField(w, "Bio", user.Bio)
	printField(w, "Website", user.Blog)
	if user.TwitterUsername != "" {
		fmt.Fprintf(w, "%s @%s\n", labelColor.Sprint("Twitter:"), user.TwitterUsername)
	}
	printField(w, "Profile", user.HTMLURL)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %d  %s %d  %s %d  %s %d\n",
		labelColor.Sprint("Repos:"), user.PublicRepos,
		labelColor.Sprint("Gists:"), user.PublicGists,
		labelColor.Sprint("Followers:"), user.Followers,
		labelColor.Sprint("Following:"), user.Following)

	if !user.CreatedAt.IsZero() {
		fmt.Fprintf(w, "%s %s (%s)\n", labelColor.Sprint("Joined:"), formatDate(user.CreatedAt), TimeAgo(user.CreatedAt, now))
	}
}

func scoreSection(w io.Writer, t *terminalInfo, score models.Score) {
	section(w, t, "DEVELOPER SCORE")

	levelColor := color.New(color.Bold, color.FgGreen)
	fmt.Fprintf(w, "%s  %s %s  %s\n",
		levelColor.Sprintf("%d/100", score.Overall),
		score.Level.Icon, score.Level.Name,
		dimColor.Sprintf("(Top %d%%)", 100-score.Percentile))
	fmt.Fprintln(w)

	rows := []struct {
		label string
		value int
	}{
		{"Impact", score.Breakdown.Impact},
		{"Expertise", score.Breakdown.Expertise},
		{"Consistency", score.Breakdown.Consistency},
		{"Quality", score.Breakdown.Quality},
		{"Growth", score.Breakdown.Growth},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %-12s [%s] %3d\n", r.label, progressBar(float64(r.value), t.graphWidth), r.value)
	}

	if len(score.Badges) > 0 {
		fmt.Fprintln(w)
		labelColor.Fprintln(w, "Badges:")
		for _, b := range score.Badges {
			fmt.Fprintf(w, "  %s %s %s\n", b.Icon, color.YellowString(b.Name), dimColor.Sprintf("- %s", b.Description))
		}
	}

	if len(score.Frameworks) > 0 {
		fmt.Fprintf(w, "%s %v\n", labelColor.Sprint("Frameworks:"), score.Frameworks)
	}
}
