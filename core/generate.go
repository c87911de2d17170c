package core

import (
	"runtime"
	"time"

	"github.com/syncflow/syncflow/schema"
)

// Default search parameters, matching common office scheduling habits.
var (
	DefaultPreferredTimes = []schema.Clock{
		schema.MustClock("09:00"),
		schema.MustClock("10:00"),
		schema.MustClock("11:00"),
		schema.MustClock("14:00"),
		schema.MustClock("15:00"),
		schema.MustClock("16:00"),
	}
	DefaultWorkingHours = schema.ClockRange{
		Start: schema.MustClock("09:00"),
		End:   schema.MustClock("17:00"),
	}
)

// DefaultDaysAhead is the default generation horizon in days.
const DefaultDaysAhead = 7

// DefaultResultLimit is the default number of ranked slots to return.
const DefaultResultLimit = 5

// SearchOptions configures candidate generation and ranking. The zero
// value selects the documented defaults for every field.
type SearchOptions struct {
	PreferredTimes []schema.Clock    // Day anchors, in emission order
	DaysAhead      int               // Generation horizon in days
	WorkingHours   schema.ClockRange // Daily window a slot must fit inside
	Location       *time.Location    // Frame of reference for all computed timestamps
	ResultLimit    int               // Top-K cutoff for ranking
	Workers        int               // Concurrent candidate evaluations in the pipeline
}

// withDefaults fills unset fields without mutating the receiver copy's caller.
func (o SearchOptions) withDefaults() SearchOptions {
	if len(o.PreferredTimes) == 0 {
		o.PreferredTimes = DefaultPreferredTimes
	}
	if o.DaysAhead <= 0 {
		o.DaysAhead = DefaultDaysAhead
	}
	if o.WorkingHours == (schema.ClockRange{}) {
		o.WorkingHours = DefaultWorkingHours
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.ResultLimit <= 0 {
		o.ResultLimit = DefaultResultLimit
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// GenerateCandidates enumerates raw candidate windows over the search
// horizon. Candidates are produced day-ascending, then in preferred-time
// order; that emission order is the tie-break basis used by the ranker.
// Generation always starts one day ahead: day 0 is never used. Weekends
// are skipped, and a candidate is kept only when both endpoints fit the
// working-hours window, so a slot may not end after closing time.
// The function is pure: identical inputs yield identical output.
func GenerateCandidates(now time.Time, durationMinutes int, opts SearchOptions) []schema.CandidateSlot {
	opts = opts.withDefaults()
	duration := time.Duration(durationMinutes) * time.Minute

	var slots []schema.CandidateSlot
	for day := 1; day <= opts.DaysAhead; day++ {
		date := now.In(opts.Location).AddDate(0, 0, day)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		for _, anchor := range opts.PreferredTimes {
			start := time.Date(date.Year(), date.Month(), date.Day(),
				anchor.Hour, anchor.Minute, 0, 0, opts.Location)
			end := start.Add(duration)
			if !withinWorkingHours(start, end, opts.WorkingHours) {
				continue
			}
			slots = append(slots, schema.CandidateSlot{Start: start, End: end})
		}
	}
	return slots
}

// withinWorkingHours checks both slot endpoints against the working-hours
// window. The end is compared to the closing time on the start's own day,
// so a slot running past midnight can never slip back in with a wrapped
// end hour.
func withinWorkingHours(start, end time.Time, hours schema.ClockRange) bool {
	startHour := float64(start.Hour()) + float64(start.Minute())/60.0
	if startHour < hours.Start.DecimalHours() {
		return false
	}
	closing := time.Date(start.Year(), start.Month(), start.Day(),
		hours.End.Hour, hours.End.Minute, 0, 0, start.Location())
	return !end.After(closing)
}
