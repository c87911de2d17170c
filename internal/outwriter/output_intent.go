package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/syncflow/syncflow/internal/contract"
	"github.com/syncflow/syncflow/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteIntent outputs a parsed scheduling intent, dispatching on the
// configured output format.
func WriteIntent(intent *schema.SchedulingIntent, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, intent)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeIntentCSV(w, intent)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeIntentTable(w, intent, cfg)
		}, "Wrote table")
	}
}

// writeIntentTable renders the intent as a field/value table.
func writeIntentTable(w io.Writer, intent *schema.SchedulingIntent, cfg *contract.Config) error {
	attendees := schema.FormatAttendees(intent.Attendees)
	if attendees == "" {
		attendees = "(none)"
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Field", "Value"})
	data := [][]string{
		{"Request", intent.RequestID},
		{"Duration", fmt.Sprintf("%d min", intent.DurationMinutes)},
		{"Timeframe", fmt.Sprintf("%d day(s) out", intent.TimeframeDays)},
		{"Type", string(intent.MeetingType)},
		{"Urgency", string(intent.Urgency)},
		{"Attendees", truncate(attendees, getMaxValueWidth(cfg))},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeIntentCSV writes the intent as a single CSV row.
func writeIntentCSV(w io.Writer, intent *schema.SchedulingIntent) error {
	header := []string{"request_id", "duration_minutes", "timeframe_days", "meeting_type", "urgency", "attendees"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		emails := make([]string, len(intent.Attendees))
		for i, a := range intent.Attendees {
			emails[i] = a.Email
		}
		return cw.Write([]string{
			intent.RequestID,
			strconv.Itoa(intent.DurationMinutes),
			strconv.Itoa(intent.TimeframeDays),
			string(intent.MeetingType),
			string(intent.Urgency),
			strings.Join(emails, ";"),
		})
	})
}
