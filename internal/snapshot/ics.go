package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/syncflow/syncflow/schema"
)

// LoadICSDir reads one iCalendar file per attendee from a directory. The
// attendee's email is the file name without the .ics extension, e.g.
// john@example.com.ics. Every VEVENT becomes a busy interval in the given
// location; events without a resolvable start and end are skipped.
func LoadICSDir(dir string, loc *time.Location) ([]schema.Attendee, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read calendar directory '%s': %w", dir, err)
	}

	var attendees []schema.Attendee
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".ics") {
			continue
		}
		email := strings.TrimSuffix(entry.Name(), ".ics")
		busy, err := loadICSFile(filepath.Join(dir, entry.Name()), loc)
		if err != nil {
			return nil, err
		}
		attendees = append(attendees, schema.Attendee{
			Email:         email,
			Name:          schema.NameFromEmail(email),
			BusyIntervals: busy,
		})
	}

	normalize(attendees)
	if err := schema.ValidateAttendees(attendees); err != nil {
		return nil, err
	}
	return attendees, nil
}

// loadICSFile decodes all calendars in a single .ics file and collects
// their event windows.
func loadICSFile(path string, loc *time.Location) ([]schema.BusyInterval, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open calendar '%s': %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var busy []schema.BusyInterval
	dec := ical.NewDecoder(f)
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot parse calendar '%s': %w", path, err)
		}
		for _, event := range cal.Events() {
			start, err := event.DateTimeStart(loc)
			if err != nil {
				continue
			}
			end, err := event.DateTimeEnd(loc)
			if err != nil {
				continue
			}
			busy = append(busy, schema.BusyInterval{Start: start, End: end})
		}
	}
	return busy, nil
}
