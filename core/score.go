package core

import "time"

// scoreSlot rates a candidate start time on typical human scheduling
// preferences. The result is a deterministic integer in [0,100] derived
// only from the slot's local clock time, weekday, and distance from now.
// It is a heuristic ranking signal, not a probability.
func scoreSlot(start, now time.Time) int {
	score := 100

	// Mid-morning is the sweet spot, early afternoon close behind.
	// Anything outside working hours is penalized. The bands are
	// mutually exclusive; the first match applies.
	switch hour := start.Hour(); {
	case hour >= 10 && hour <= 11:
		score += 20
	case hour >= 14 && hour <= 15:
		score += 15
	case hour >= 9 && hour <= 16:
		score += 10
	default:
		score -= 20
	}

	// Tuesday through Thursday beat the edges of the week. Weekends get
	// no bonus; the generator filters them out anyway.
	switch wd := start.Weekday(); {
	case wd >= time.Tuesday && wd <= time.Thursday:
		score += 15
	case wd == time.Monday || wd == time.Friday:
		score += 5
	}

	// Day offset is a bare subtraction truncated to whole days, not a
	// calendar-day difference. The two diverge near midnight boundaries
	// and truncation is the defined behavior.
	switch daysFromNow := int(start.Sub(now) / (24 * time.Hour)); {
	case daysFromNow >= 2 && daysFromNow <= 5:
		score += 10
	case daysFromNow == 1:
		score += 5
	}

	return clampScore(score)
}

// clampScore bounds a score to [0,100].
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
