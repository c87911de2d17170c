package schema

// Custom string types for type safety.
type (
	// MeetingType classifies what kind of meeting a request describes.
	MeetingType string

	// Urgency represents how soon a meeting needs to happen.
	Urgency string

	// SuggestionType represents the aspect of a request a suggestion targets.
	SuggestionType string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All meeting types supported, in classification precedence order.
const (
	StandupMeeting   MeetingType = "standup"
	DemoMeeting      MeetingType = "demo"
	InterviewMeeting MeetingType = "interview"
	ReviewMeeting    MeetingType = "review"
	PlanningMeeting  MeetingType = "planning"
	GeneralMeeting   MeetingType = "general" // default
)

// All urgency tiers supported.
const (
	UrgentUrgency Urgency = "urgent"
	HighUrgency   Urgency = "high"
	NormalUrgency Urgency = "normal" // default
)

// All suggestion types supported.
const (
	TimeSuggestion      SuggestionType = "time"
	DurationSuggestion  SuggestionType = "duration"
	AttendeesSuggestion SuggestionType = "attendees"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
	CSVOut  OutputMode = "csv"
)

// AllMeetingTypes returns a list of all supported meeting types.
var AllMeetingTypes = []MeetingType{
	StandupMeeting, DemoMeeting, InterviewMeeting,
	ReviewMeeting, PlanningMeeting, GeneralMeeting,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	CSVOut:  {},
}
