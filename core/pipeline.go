package core

import (
	"sync"
	"time"

	"github.com/syncflow/syncflow/schema"
)

// FindOptimalSlots runs the full slot-finding pipeline: generate raw
// candidates, drop every candidate that conflicts with any attendee's
// calendar, score the survivors and rank the top results. Structured
// input is validated up front and rejected with a ValidationError; only
// free-text parsing degrades gracefully. An empty attendee list is a
// valid personal booking, and an empty result within the horizon is not
// an error. Output is deterministic for identical inputs, including tie
// order among equal scores.
func FindOptimalSlots(now time.Time, intent *schema.SchedulingIntent, attendees []schema.Attendee, opts SearchOptions) ([]schema.ScoredSlot, error) {
	if err := intent.Validate(); err != nil {
		return nil, err
	}
	if err := schema.ValidateAttendees(attendees); err != nil {
		return nil, err
	}

	opts = opts.withDefaults()
	candidates := GenerateCandidates(now, intent.DurationMinutes, opts)

	// Conflict checks are independent per candidate, so they run on a
	// bounded worker pool. Each goroutine writes to a unique index of
	// evaluated/accepted, keeping results in emission order regardless of
	// goroutine scheduling.
	evaluated := make([]schema.ScoredSlot, len(candidates))
	accepted := make([]bool, len(candidates))

	jobs := make(chan int, len(candidates))
	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				c := candidates[i]
				avail := CheckAvailability(c, attendees)
				if !avail.Accepted {
					continue
				}
				accepted[i] = true
				evaluated[i] = schema.ScoredSlot{
					Start:         c.Start,
					End:           c.End,
					Score:         scoreSlot(c.Start, now),
					Conflicts:     avail.Conflicts,
					AttendeeCount: len(attendees),
				}
			}
		}()
	}
	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// Rejected candidates never reach scoring or ranking.
	scored := make([]schema.ScoredSlot, 0, len(candidates))
	for i := range candidates {
		if accepted[i] {
			scored = append(scored, evaluated[i])
		}
	}
	return RankSlots(scored, opts.ResultLimit), nil
}
