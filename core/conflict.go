package core

import (
	"time"

	"github.com/syncflow/syncflow/schema"
)

// Overlaps reports whether the candidate window [start, end] shares at
// least one instant with the busy interval. Intervals are closed on both
// ends, so touching endpoints count as a conflict. The three containment
// checks together cover every intersection case, including one interval
// fully containing the other.
func Overlaps(start, end time.Time, busy schema.BusyInterval) bool {
	return within(start, busy.Start, busy.End) ||
		within(end, busy.Start, busy.End) ||
		within(busy.Start, start, end)
}

// within reports whether t falls inside the closed interval [lo, hi].
func within(t, lo, hi time.Time) bool {
	return !t.Before(lo) && !t.After(hi)
}
