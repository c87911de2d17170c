package schema

import "strings"

// Validate checks the structural invariants of the intent and its
// attendee snapshot. Free-text parsing cannot produce a bad intent, but
// intents may also be assembled directly by callers.
func (in *SchedulingIntent) Validate() error {
	if in.DurationMinutes <= 0 {
		return NewValidationError("duration_minutes", "must be greater than 0 (received %d)", in.DurationMinutes)
	}
	if in.TimeframeDays < 0 {
		return NewValidationError("timeframe_days", "cannot be negative (received %d)", in.TimeframeDays)
	}
	return ValidateAttendees(in.Attendees)
}

// ValidateAttendees checks every supplied busy interval for an inverted
// or empty time range. An attendee with no busy intervals is valid.
func ValidateAttendees(attendees []Attendee) error {
	for _, a := range attendees {
		for _, b := range a.BusyIntervals {
			if !b.Start.Before(b.End) {
				return NewValidationError("busy",
					"interval for %s must have start before end (received %s >= %s)",
					a.Email, b.Start.Format("2006-01-02T15:04"), b.End.Format("2006-01-02T15:04"))
			}
		}
	}
	return nil
}

// NameFromEmail derives a display label from an email address, using the
// local part before the '@'.
func NameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}

// FormatAttendees formats attendee names as "john, jane" for display.
func FormatAttendees(attendees []Attendee) string {
	names := make([]string, len(attendees))
	for i, a := range attendees {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}
