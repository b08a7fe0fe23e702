package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	headerColor = color.New(color.Bold, color.FgCyan)
	labelColor  = color.New(color.FgWhite)
	dimColor    = color.New(color.Faint)
)

type terminalInfo struct {
	width      int
	maxDisplay int
	graphWidth int
}

// getTerminalInfo sizes output for w. Anything that is not a terminal gets
// 80 columns.
func getTerminalInfo(w io.Writer) *terminalInfo {
	width := 80
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			width = tw
		}
	}

	return &terminalInfo{
		width:      width,
		maxDisplay: max(min(width-4, 120), 40),
		graphWidth: max(min(width-40, 30), 10),
	}
}

func (t *terminalInfo) separator() string {
	return strings.Repeat("-", min(t.maxDisplay, 60))
}

func truncateString(s string, maxLen int) string {
	if maxLen < 10 {
		maxLen = 10
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// progressBar renders pct (0-100) as a fixed-width bar.
func progressBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	filled = max(0, min(filled, width))
	return strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format("Jan 2, 2006")
}

var agoIntervals = []struct {
	name    string
	seconds int64
}{
	{"year", 31536000},
	{"month", 2592000},
	{"week", 604800},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
}

// TimeAgo renders the largest whole unit between t and now.
func TimeAgo(t, now time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)
	for _, iv := range agoIntervals {
		n := seconds / iv.seconds
		if n >= 1 {
			suffix := ""
			if n > 1 {
				suffix = "s"
			}
			return fmt.Sprintf("%d %s%s ago", n, iv.name, suffix)
		}
	}
	return "just now"
}

func printField(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "%s %s\n", labelColor.Sprint(label+":"), value)
}

func section(w io.Writer, t *terminalInfo, title string) {
	fmt.Fprintln(w)
	headerColor.Fprintln(w, title)
	fmt.Fprintln(w, t.separator())
}
