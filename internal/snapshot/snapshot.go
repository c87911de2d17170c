// Package snapshot loads attendee availability snapshots handed to the
// CLI. The engine itself never fetches calendar data; these loaders turn
// already-exported files into the in-memory form the pipeline consumes.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/syncflow/syncflow/schema"
)

// fileSnapshot is the on-disk JSON shape: an object wrapping the
// attendee list. A bare top-level array is also accepted.
type fileSnapshot struct {
	Attendees []schema.Attendee `json:"attendees"`
}

// LoadJSON reads an availability snapshot from a JSON file. Busy
// intervals use RFC3339 timestamps. Structural violations such as an
// inverted interval are rejected, not repaired.
func LoadJSON(path string) ([]schema.Attendee, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot '%s': %w", path, err)
	}

	var attendees []schema.Attendee
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		if err := json.Unmarshal(data, &attendees); err != nil {
			return nil, fmt.Errorf("cannot parse snapshot '%s': %w", path, err)
		}
	} else {
		var snap fileSnapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("cannot parse snapshot '%s': %w", path, err)
		}
		attendees = snap.Attendees
	}

	normalize(attendees)
	if err := schema.ValidateAttendees(attendees); err != nil {
		return nil, err
	}
	return attendees, nil
}

// normalize fills derived fields and orders busy intervals by start time
// so downstream output is stable regardless of export order.
func normalize(attendees []schema.Attendee) {
	for i := range attendees {
		if attendees[i].Name == "" {
			attendees[i].Name = schema.NameFromEmail(attendees[i].Email)
		}
		sort.Slice(attendees[i].BusyIntervals, func(a, b int) bool {
			return attendees[i].BusyIntervals[a].Start.Before(attendees[i].BusyIntervals[b].Start)
		})
	}
}
