package display

import (
	"fmt"
	"io"
	"time"

	"github.com/gnomegl/gitscore/internal/models"
)

var eventIcons = map[string]string{
	"push":    "⬆",
	"create":  "✚",
	"pr":      "⇄",
	"issue":   "●",
	"star":    "★",
	"fork":    "⑂",
	"release": "⚑",
}

func eventsSection(w io.Writer, t *terminalInfo, events []models.PublicEvent, now time.Time) {
	section(w, t, "RECENT ACTIVITY")
	if len(events) == 0 {
		dimColor.Fprintln(w, "No recent public activity")
		return
	}

	for _, e := range events {
		fmt.Fprintf(w, "  %s %s %s %s\n",
			eventIcons[e.Kind.Icon()],
			e.Kind.Label(),
			truncateString(e.Repo, t.maxDisplay-40),
			dimColor.Sprint(TimeAgo(e.CreatedAt, now)))
	}
}
