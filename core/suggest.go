package core

import "github.com/syncflow/syncflow/schema"

// maxProductiveAttendees is the headcount beyond which a meeting gets an
// attendee-list review suggestion.
const maxProductiveAttendees = 8

// Suggest derives advisory notes from a parsed intent, mirroring what a
// scheduling assistant would tell the requester before slot search runs.
// The rule list is fixed and evaluated in order; an intent with nothing
// noteworthy yields an empty slice.
func Suggest(intent *schema.SchedulingIntent) []schema.Suggestion {
	var suggestions []schema.Suggestion

	if intent.Urgency == schema.UrgentUrgency {
		suggestions = append(suggestions, schema.Suggestion{
			Type:    schema.TimeSuggestion,
			Message: "Given the urgency, I recommend scheduling this within the next 24 hours.",
			Action:  "prioritize_immediate_slots",
		})
	}

	if intent.MeetingType == schema.StandupMeeting && intent.DurationMinutes > 30 {
		suggestions = append(suggestions, schema.Suggestion{
			Type:    schema.DurationSuggestion,
			Message: "Standups are typically more effective when kept to 15-30 minutes.",
			Action:  "suggest_shorter_duration",
		})
	}

	if len(intent.Attendees) > maxProductiveAttendees {
		suggestions = append(suggestions, schema.Suggestion{
			Type:    schema.AttendeesSuggestion,
			Message: "Large meetings can be less productive. Consider if all attendees are necessary.",
			Action:  "review_attendee_list",
		})
	}

	return suggestions
}
