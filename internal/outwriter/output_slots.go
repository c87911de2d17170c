package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/syncflow/syncflow/internal/contract"
	"github.com/syncflow/syncflow/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Display formats for slot tables.
const (
	slotDateFormat = "Monday, January 2"
	slotTimeFormat = "3:04 PM"
)

// slotRecord augments a ranked slot with its display label for
// machine-readable output.
type slotRecord struct {
	schema.ScoredSlot
	Label string `json:"label"`
}

// WriteSlots outputs the ranked slots, dispatching on the configured
// output format.
func WriteSlots(slots []schema.ScoredSlot, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSlotJSON(w, slots)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSlotCSV(w, slots)
		}, "Wrote CSV")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSlotTable(w, slots, cfg, duration)
		}, "Wrote table")
	}
}

// writeSlotTable generates and writes the human-readable table.
func writeSlotTable(w io.Writer, slots []schema.ScoredSlot, cfg *contract.Config, duration time.Duration) error {
	if len(slots) == 0 {
		_, err := fmt.Fprintln(w, "No conflict-free slots found within the horizon. Widen --days-ahead or --preferred-times and retry.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Date", "Time", "Length", "Score", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, s := range slots {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			s.Start.Format(slotDateFormat),
			fmt.Sprintf("%s - %s", s.Start.Format(slotTimeFormat), s.End.Format(slotTimeFormat)),
			fmt.Sprintf("%d min", int(s.Duration().Minutes())),
			strconv.Itoa(s.Score),
			scoreLabel(s.Score, cfg),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nRanked %d slot(s) for %d attendee(s) in %v\n",
		len(slots), slots[0].AttendeeCount, duration.Round(time.Millisecond))
	return err
}

// writeSlotJSON writes the ranked slots as an indented JSON document.
func writeSlotJSON(w io.Writer, slots []schema.ScoredSlot) error {
	records := make([]slotRecord, len(slots))
	for i, s := range slots {
		records[i] = slotRecord{ScoredSlot: s, Label: contract.GetPlainLabel(s.Score)}
	}
	return writeJSON(w, struct {
		Slots []slotRecord `json:"slots"`
	}{Slots: records})
}

// writeSlotCSV writes rank, window, score and label rows.
func writeSlotCSV(w io.Writer, slots []schema.ScoredSlot) error {
	header := []string{"rank", "start", "end", "duration_minutes", "score", "label", "attendees"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, s := range slots {
			row := []string{
				strconv.Itoa(i + 1),
				s.Start.Format(contract.DateTimeFormat),
				s.End.Format(contract.DateTimeFormat),
				strconv.Itoa(int(s.Duration().Minutes())),
				strconv.Itoa(s.Score),
				contract.GetPlainLabel(s.Score),
				strconv.Itoa(s.AttendeeCount),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
