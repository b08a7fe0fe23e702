package patterns

import (
	"math"
	"time"

	"github.com/gnomegl/gitscore/internal/models"
)

var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

const (
	PeriodMorning   = "morning"
	PeriodAfternoon = "afternoon"
	PeriodEvening   = "evening"
	PeriodNight     = "night"
)

var periods = []string{PeriodMorning, PeriodAfternoon, PeriodEvening, PeriodNight}

func periodIndex(hour int) int {
	switch {
	case hour >= 6 && hour < 12:
		return 0
	case hour >= 12 && hour < 18:
		return 1
	case hour >= 18:
		return 2
	default:
		return 3
	}
}

func dayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// TimePatterns buckets the creation and update time of every repository
// and the time of every event by weekday and by period of the day.
func TimePatterns(repos []models.Repository, events []models.PublicEvent, loc *time.Location) models.TimePatterns {
	var dayCounts [7]int
	var periodCounts [4]int

	hit := func(ts time.Time) {
		local := ts.In(loc)
		dayCounts[dayIndex(local.Weekday())]++
		periodCounts[periodIndex(local.Hour())]++
	}
	for _, r := range repos {
		hit(r.UpdatedAt)
		hit(r.CreatedAt)
	}
	for _, e := range events {
		hit(e.CreatedAt)
	}

	tp := models.TimePatterns{
		Periods:         make([]models.PeriodCount, len(periods)),
		DayDistribution: make([]models.DayCount, len(weekdays)),
	}
	total := 0
	for i, wd := range weekdays {
		tp.DayDistribution[i] = models.DayCount{Day: wd.String(), Count: dayCounts[i]}
		total += dayCounts[i]
	}
	for i, name := range periods {
		tp.Periods[i] = models.PeriodCount{Period: name, Count: periodCounts[i]}
	}
	if total == 0 {
		return tp
	}

	if i := argmax(dayCounts[:]); i >= 0 {
		tp.MostActiveDay = weekdays[i].String()
	}
	if i := argmax(periodCounts[:]); i >= 0 {
		tp.MostActivePeriod = periods[i]
	}
	tp.WeekendActivity = percent(dayCounts[5]+dayCounts[6], total)
	tp.Consistency = consistency(dayCounts[:])
	return tp
}

// argmax returns the first index holding the maximum, or -1 for an empty
// slice.
func argmax(counts []int) int {
	best := -1
	for i, c := range counts {
		if best < 0 || c > counts[best] {
			best = i
		}
	}
	return best
}

// consistency is 100 minus the coefficient of variation in percent,
// floored at zero.
func consistency(counts []int) int {
	if len(counts) == 0 {
		return 0
	}
	sum := 0
	for _, c := range counts {
		sum += c
	}
	mean := float64(sum) / float64(len(counts))
	if mean == 0 {
		return 0
	}
	variance := 0.0
	for _, c := range counts {
		variance += math.Pow(float64(c)-mean, 2)
	}
	stdDev := math.Sqrt(variance / float64(len(counts)))
	return int(math.Max(0, math.Round(100-stdDev/mean*100)))
}
