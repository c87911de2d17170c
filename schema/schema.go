// Package schema has the data model and enumerations for all parts of syncflow.
package schema

import "time"

// SchedulingIntent is the structured, machine-usable interpretation of a
// free-text scheduling request. It is built once per request, consumed by
// the slot-finding pipeline or discarded after display, and never persisted.
type SchedulingIntent struct {
	RequestID       string      `json:"request_id"`       // Unique id assigned at parse time
	DurationMinutes int         `json:"duration_minutes"` // Requested meeting length in minutes
	TimeframeDays   int         `json:"timeframe_days"`   // Horizon hint in days from now
	Attendees       []Attendee  `json:"attendees"`        // Attendees named in the request, may be empty
	MeetingType     MeetingType `json:"meeting_type"`     // Classified meeting type
	Urgency         Urgency     `json:"urgency"`          // Classified urgency tier
}

// Attendee is a meeting participant keyed by email address. Busy intervals
// are supplied up front by the caller as a read-only snapshot; the engine
// never fetches calendar data itself.
type Attendee struct {
	Email         string         `json:"email"`          // Identity key
	Name          string         `json:"name"`           // Display label, derived from the email local part
	BusyIntervals []BusyInterval `json:"busy,omitempty"` // Externally-known calendar commitments
}

// BusyInterval is one externally-known calendar event occupying an
// attendee's time. Start must precede End.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CandidateSlot is a provisionally generated meeting window, not yet
// checked against attendee calendars. It exists only for the duration of
// one search invocation.
type CandidateSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"` // Always Start plus the requested duration
}

// Availability is the verdict for one candidate slot against a set of
// attendees. Conflicts maps attendee email to the colliding intervals and
// has no entry for attendees that are free.
type Availability struct {
	Accepted  bool
	Conflicts map[string][]BusyInterval
}

// ScoredSlot is an accepted candidate with its confidence score. Only
// slots with an empty conflict set for every attendee are ever scored.
type ScoredSlot struct {
	Start         time.Time                 `json:"start"`
	End           time.Time                 `json:"end"`
	Score         int                       `json:"score"`               // Confidence score in [0,100]
	Conflicts     map[string][]BusyInterval `json:"conflicts,omitempty"` // Empty for ranked results
	AttendeeCount int                       `json:"attendee_count"`
}

// Duration returns the slot length.
func (s ScoredSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Suggestion is one piece of advice derived from an intent, such as
// shortening a long standup or trimming a large attendee list.
type Suggestion struct {
	Type    SuggestionType `json:"type"`
	Message string         `json:"message"`
	Action  string         `json:"action"` // Machine-readable hint for UI layers
}
