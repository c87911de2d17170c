package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syncflow/syncflow/internal/contract"
	"github.com/syncflow/syncflow/schema"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Output: schema.TextOut,
		Color:  false,
		Width:  100,
	}
}

func sampleSlots() []schema.ScoredSlot {
	start := time.Date(2026, time.September, 8, 10, 0, 0, 0, time.UTC)
	return []schema.ScoredSlot{
		{Start: start, End: start.Add(time.Hour), Score: 100, AttendeeCount: 2},
		{Start: start.Add(4 * time.Hour), End: start.Add(5 * time.Hour), Score: 85, AttendeeCount: 2},
	}
}

func TestWriteSlotTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSlotTable(&buf, sampleSlots(), testConfig(), 12*time.Millisecond))

	out := buf.String()
	assert.Contains(t, out, "Tuesday, September 8")
	assert.Contains(t, out, "10:00 AM - 11:00 AM")
	assert.Contains(t, out, "60 min")
	assert.Contains(t, out, "100")
	assert.Contains(t, out, contract.ExcellentValue)
	assert.Contains(t, out, contract.GoodValue)
	assert.Contains(t, out, "Ranked 2 slot(s) for 2 attendee(s)")
}

func TestWriteSlotTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSlotTable(&buf, nil, testConfig(), time.Millisecond))
	assert.Contains(t, buf.String(), "No conflict-free slots found")
}

func TestWriteSlotJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSlotJSON(&buf, sampleSlots()))

	var doc struct {
		Slots []struct {
			Start         time.Time `json:"start"`
			Score         int       `json:"score"`
			AttendeeCount int       `json:"attendee_count"`
			Label         string    `json:"label"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Slots, 2)
	assert.Equal(t, 100, doc.Slots[0].Score)
	assert.Equal(t, contract.ExcellentValue, doc.Slots[0].Label)
	assert.Equal(t, contract.GoodValue, doc.Slots[1].Label)
	assert.Equal(t, 2, doc.Slots[0].AttendeeCount)
}

func TestWriteSlotCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSlotCSV(&buf, sampleSlots()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"rank", "start", "end", "duration_minutes", "score", "label", "attendees"}, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "2026-09-08T10:00:00Z", records[1][1])
	assert.Equal(t, "60", records[1][3])
	assert.Equal(t, "100", records[1][4])
	assert.Equal(t, contract.ExcellentValue, records[1][5])
	assert.Equal(t, "2", records[1][6])
}

func sampleIntent() *schema.SchedulingIntent {
	return &schema.SchedulingIntent{
		RequestID:       "req-42",
		DurationMinutes: 30,
		TimeframeDays:   1,
		MeetingType:     schema.StandupMeeting,
		Urgency:         schema.NormalUrgency,
		Attendees: []schema.Attendee{
			{Email: "john@example.com", Name: "john"},
			{Email: "jane@example.com", Name: "jane"},
		},
	}
}

func TestWriteIntentTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeIntentTable(&buf, sampleIntent(), testConfig()))

	out := buf.String()
	assert.Contains(t, out, "req-42")
	assert.Contains(t, out, "30 min")
	assert.Contains(t, out, "1 day(s) out")
	assert.Contains(t, out, "standup")
	assert.Contains(t, out, "john, jane")
}

func TestWriteIntentTableNoAttendees(t *testing.T) {
	intent := sampleIntent()
	intent.Attendees = nil

	var buf bytes.Buffer
	require.NoError(t, writeIntentTable(&buf, intent, testConfig()))
	assert.Contains(t, buf.String(), "(none)")
}

func TestWriteIntentCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeIntentCSV(&buf, sampleIntent()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"request_id", "duration_minutes", "timeframe_days", "meeting_type", "urgency", "attendees"}, records[0])
	assert.Equal(t, []string{"req-42", "30", "1", "standup", "normal", "john@example.com;jane@example.com"}, records[1])
}

func TestWriteSuggestionTable(t *testing.T) {
	suggestions := []schema.Suggestion{
		{
			Type:    schema.DurationSuggestion,
			Message: "Standups are typically more effective when kept to 15-30 minutes.",
			Action:  "suggest_shorter_duration",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeSuggestionTable(&buf, suggestions, testConfig()))
	assert.Contains(t, buf.String(), "duration")
	assert.Contains(t, buf.String(), "Standups are typically")
}

func TestWriteSuggestionTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSuggestionTable(&buf, nil, testConfig()))
	assert.Contains(t, buf.String(), "Nothing to flag")
}

func TestWriteSuggestionCSV(t *testing.T) {
	suggestions := []schema.Suggestion{
		{Type: schema.TimeSuggestion, Message: "msg one", Action: "act_one"},
		{Type: schema.AttendeesSuggestion, Message: "msg two", Action: "act_two"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeSuggestionCSV(&buf, suggestions))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"type", "message", "action"}, records[0])
	assert.Equal(t, "act_two", records[2][2])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long ...", truncate("long value here", 8))
	// Width too small to hold an ellipsis leaves the value alone.
	assert.Equal(t, "abcd", truncate("abcd", 3))
}

func TestGetMaxValueWidth(t *testing.T) {
	cfg := testConfig()

	cfg.Width = 100
	assert.Equal(t, 70, getMaxValueWidth(cfg))

	cfg.Width = 60
	assert.Equal(t, 30, getMaxValueWidth(cfg))

	cfg.Width = 40
	assert.Equal(t, 20, getMaxValueWidth(cfg))
}

func TestScoreLabel(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, contract.ExcellentValue, scoreLabel(95, cfg))

	cfg.Color = true
	assert.Contains(t, scoreLabel(95, cfg), contract.ExcellentValue)
}
