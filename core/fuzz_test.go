package core

import (
	"testing"
	"time"
)

// FuzzParseRequest asserts parsing never fails: any input yields an
// intent whose fields are within their documented ranges.
func FuzzParseRequest(f *testing.F) {
	f.Add("Schedule a 30 minute standup tomorrow with john@example.com")
	f.Add("urgent 2 hour planning next week")
	f.Add("")
	f.Add("quarter minute ???")
	f.Add("@@@@ half hour @ not-an-email@nowhere")
	f.Add("MEETING WITH JANE.DOE+CAL@SUB.EXAMPLE.ORG ON FRIDAY")
	f.Add("a 9999999999999999999 hour meeting")
	f.Add("a 0 minute call")

	now := time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC)

	f.Fuzz(func(t *testing.T, text string) {
		intent := ParseRequest(text, now)

		if intent.RequestID == "" {
			t.Error("request id must never be empty")
		}
		if intent.DurationMinutes <= 0 {
			t.Errorf("non-positive duration %d", intent.DurationMinutes)
		}
		if intent.TimeframeDays < 0 {
			t.Errorf("negative timeframe %d", intent.TimeframeDays)
		}
		if intent.MeetingType == "" {
			t.Error("meeting type must always classify")
		}
		if intent.Urgency == "" {
			t.Error("urgency must always classify")
		}
		for _, a := range intent.Attendees {
			if a.Email == "" || a.Name == "" {
				t.Errorf("attendee missing email or name: %+v", a)
			}
		}
	})
}
