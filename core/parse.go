package core

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/syncflow/syncflow/schema"
)

// Defaults applied when a request does not mention a duration or timeframe.
const (
	DefaultDurationMinutes = 60
	DefaultTimeframeDays   = 3
)

// maxDurationMinutes caps a parsed duration at one week. Counts beyond it
// (or ones strconv cannot even represent) are noise, not intent, and fall
// back to the default.
const maxDurationMinutes = 7 * 24 * 60

// Duration patterns, checked in order. The first matching pattern wins.
var (
	hourPattern    = regexp.MustCompile(`(?i)(\d+)\s*(?:hour|hr|h)s?`)
	minutePattern  = regexp.MustCompile(`(?i)(\d+)\s*(?:minute|min|m)s?`)
	halfPattern    = regexp.MustCompile(`(?i)(?:half|30)\s*(?:hour|hr)`)
	quarterPattern = regexp.MustCompile(`(?i)(?:quarter|15)\s*(?:minute|min)`)
)

// emailPattern matches RFC-shaped addresses with a dotted domain and a
// TLD of at least two letters.
var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// timeframeRule maps a phrase to a day offset. Rules are evaluated in
// fixed order; the first phrase found in the text wins.
type timeframeRule struct {
	phrase string
	days   func(now time.Time) int
}

func fixedDays(n int) func(time.Time) int {
	return func(time.Time) int { return n }
}

// nextWeekday returns the offset to the next occurrence of the target
// weekday. A same-day mention always means next week, never today.
func nextWeekday(target time.Weekday) func(time.Time) int {
	return func(now time.Time) int {
		days := (int(target) - int(now.Weekday()) + 7) % 7
		if days == 0 {
			return 7
		}
		return days
	}
}

var timeframeRules = []timeframeRule{
	{"today", fixedDays(0)},
	{"tomorrow", fixedDays(1)},
	{"next week", fixedDays(7)},
	{"this week", fixedDays(3)},
	{"monday", nextWeekday(time.Monday)},
	{"tuesday", nextWeekday(time.Tuesday)},
	{"wednesday", nextWeekday(time.Wednesday)},
	{"thursday", nextWeekday(time.Thursday)},
	{"friday", nextWeekday(time.Friday)},
}

// meetingTypeBuckets are evaluated in fixed order; the first bucket with
// any keyword present in the text wins. Keyword overlaps between buckets
// are resolved purely by this ordering, so do not reorder the table.
var meetingTypeBuckets = []struct {
	kind     schema.MeetingType
	keywords []string
}{
	{schema.StandupMeeting, []string{"standup", "daily", "scrum"}},
	{schema.DemoMeeting, []string{"demo", "presentation", "showcase"}},
	{schema.InterviewMeeting, []string{"interview", "screening", "hiring"}},
	{schema.ReviewMeeting, []string{"review", "feedback", "retrospective"}},
	{schema.PlanningMeeting, []string{"planning", "strategy", "roadmap"}},
	{schema.GeneralMeeting, []string{"meeting", "call", "discussion"}},
}

// Urgency tiers, checked in order. The urgent tier wins over the high tier.
var (
	urgentKeywords = []string{"urgent", "asap", "immediately", "emergency", "critical"}
	highKeywords   = []string{"important", "priority", "soon", "quickly"}
)

// ParseRequest interprets a free-text scheduling request. It never fails:
// every extractor substitutes a documented default when nothing matches,
// so sparse or malformed input degrades gracefully instead of erroring.
// Weekday offsets are resolved against now, which callers supply in the
// zone the rest of the search runs in.
func ParseRequest(text string, now time.Time) schema.SchedulingIntent {
	return schema.SchedulingIntent{
		RequestID:       uuid.NewString(),
		DurationMinutes: extractDuration(text),
		TimeframeDays:   extractTimeframe(text, now),
		Attendees:       extractAttendees(text),
		MeetingType:     extractMeetingType(text),
		Urgency:         extractUrgency(text),
	}
}

// extractDuration pulls a meeting length in minutes out of the text.
// Hours are converted to minutes. Defaults to one hour.
func extractDuration(text string) int {
	if m := hourPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 && n <= maxDurationMinutes/60 {
			return n * 60
		}
		return DefaultDurationMinutes
	}
	if m := minutePattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 && n <= maxDurationMinutes {
			return n
		}
		return DefaultDurationMinutes
	}
	if halfPattern.MatchString(text) {
		return 30
	}
	if quarterPattern.MatchString(text) {
		return 15
	}
	return DefaultDurationMinutes
}

// extractTimeframe resolves a day offset from phrases like "tomorrow" or
// a weekday name. Defaults to three days out.
func extractTimeframe(text string, now time.Time) int {
	lower := strings.ToLower(text)
	for _, rule := range timeframeRules {
		if strings.Contains(lower, rule.phrase) {
			return rule.days(now)
		}
	}
	return DefaultTimeframeDays
}

// extractAttendees scans the text for email addresses. Each match becomes
// an attendee whose display name is the local part of the address. An
// empty result is valid.
func extractAttendees(text string) []schema.Attendee {
	matches := emailPattern.FindAllString(text, -1)
	attendees := make([]schema.Attendee, 0, len(matches))
	for _, email := range matches {
		attendees = append(attendees, schema.Attendee{
			Email: email,
			Name:  schema.NameFromEmail(email),
		})
	}
	return attendees
}

// extractMeetingType classifies the request against the keyword buckets.
func extractMeetingType(text string) schema.MeetingType {
	lower := strings.ToLower(text)
	for _, bucket := range meetingTypeBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.kind
			}
		}
	}
	return schema.GeneralMeeting
}

// extractUrgency classifies how soon the meeting needs to happen.
func extractUrgency(text string) schema.Urgency {
	lower := strings.ToLower(text)
	for _, kw := range urgentKeywords {
		if strings.Contains(lower, kw) {
			return schema.UrgentUrgency
		}
	}
	for _, kw := range highKeywords {
		if strings.Contains(lower, kw) {
			return schema.HighUrgency
		}
	}
	return schema.NormalUrgency
}
