package core

import "github.com/syncflow/syncflow/schema"

// CheckAvailability runs the conflict test for one candidate against
// every attendee's busy intervals. The candidate is accepted only when
// every attendee is free; the returned conflict map names each blocked
// attendee with the intervals that collide. An attendee with no supplied
// busy intervals is vacuously free: an unknown calendar never blocks a
// slot. This is a deliberate optimistic default, not an error.
func CheckAvailability(slot schema.CandidateSlot, attendees []schema.Attendee) schema.Availability {
	conflicts := make(map[string][]schema.BusyInterval)
	for _, a := range attendees {
		var hits []schema.BusyInterval
		for _, busy := range a.BusyIntervals {
			if Overlaps(slot.Start, slot.End, busy) {
				hits = append(hits, busy)
			}
		}
		if len(hits) > 0 {
			conflicts[a.Email] = hits
		}
	}
	return schema.Availability{
		Accepted:  len(conflicts) == 0,
		Conflicts: conflicts,
	}
}
