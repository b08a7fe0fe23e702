package patterns

import (
	"sort"
	"time"

	"github.com/gnomegl/gitscore/internal/models"
)

const (
	TrendExpanding    = "expanding"
	TrendSpecializing = "specializing"
	TrendStable       = "stable"
)

// tally counts occurrences while remembering first-seen order, so the
// leader on a tie is always the language that appeared first.
type tally struct {
	order  []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(name string, n int) {
	if _, ok := t.counts[name]; !ok {
		t.order = append(t.order, name)
	}
	t.counts[name] += n
}

func (t *tally) leader() (string, int) {
	best, bestCount := "", 0
	for _, name := range t.order {
		if c := t.counts[name]; c > bestCount {
			best, bestCount = name, c
		}
	}
	return best, bestCount
}

func (t *tally) entries() []models.LanguageCount {
	out := make([]models.LanguageCount, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, models.LanguageCount{Language: name, Count: t.counts[name]})
	}
	return out
}

// LanguageEvolution groups repositories by creation year and tracks the
// primary language per year, the recent focus and the diversity trend.
func LanguageEvolution(repos []models.Repository, loc *time.Location) models.LanguageEvolution {
	ev := models.LanguageEvolution{
		Timeline:             []models.YearLanguages{},
		DiversificationTrend: TrendStable,
	}
	if len(repos) == 0 {
		return ev
	}

	sorted := make([]models.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	yearly := make(map[int]*tally)
	var years []int
	overall := newTally()
	for _, r := range sorted {
		if r.Language == "" {
			continue
		}
		y := r.CreatedAt.In(loc).Year()
		t, ok := yearly[y]
		if !ok {
			t = newTally()
			yearly[y] = t
			years = append(years, y)
		}
		t.add(r.Language, 1)
		overall.add(r.Language, 1)
	}
	sort.Ints(years)

	for _, y := range years {
		t := yearly[y]
		primary, _ := t.leader()
		ev.Timeline = append(ev.Timeline, models.YearLanguages{
			Year:            y,
			PrimaryLanguage: primary,
			LanguageCount:   len(t.order),
			Languages:       t.entries(),
		})
	}

	recent := ev.Timeline
	if len(recent) > 2 {
		recent = recent[len(recent)-2:]
	}
	focus := newTally()
	for _, y := range recent {
		for _, lc := range y.Languages {
			focus.add(lc.Language, lc.Count)
		}
	}
	ev.CurrentFocus, _ = focus.leader()

	if n := len(ev.Timeline); n >= 3 {
		early := float64(ev.Timeline[0].LanguageCount+ev.Timeline[1].LanguageCount) / 2
		late := float64(ev.Timeline[n-2].LanguageCount+ev.Timeline[n-1].LanguageCount) / 2
		switch {
		case late > early*1.3:
			ev.DiversificationTrend = TrendExpanding
		case late < early*0.7:
			ev.DiversificationTrend = TrendSpecializing
		}
	}

	// The denominator counts every repository, including those without a
	// detected language.
	if _, top := overall.leader(); top > 0 {
		ev.SpecializationLevel = percent(top, len(sorted))
	}
	return ev
}
