// Package core has the parsing, candidate generation, conflict checking,
// scoring and ranking logic for meeting-time search.
package core

import (
	"fmt"
	"time"

	"github.com/syncflow/syncflow/internal/contract"
	"github.com/syncflow/syncflow/internal/outwriter"
	"github.com/syncflow/syncflow/internal/snapshot"
	"github.com/syncflow/syncflow/schema"
	"go.uber.org/zap"
)

// ExecuteParse interprets the request text and prints the resulting
// intent. It serves as the entry point for the 'parse' command.
func ExecuteParse(cfg *contract.Config, logger *zap.Logger, text string) error {
	intent := ParseRequest(text, time.Now().In(cfg.Location))
	logger.Debug("parsed request",
		zap.String("request_id", intent.RequestID),
		zap.Int("duration_minutes", intent.DurationMinutes),
		zap.Int("timeframe_days", intent.TimeframeDays),
		zap.String("meeting_type", string(intent.MeetingType)),
		zap.String("urgency", string(intent.Urgency)),
		zap.Int("attendees", len(intent.Attendees)))
	return outwriter.WriteIntent(&intent, cfg)
}

// ExecuteSuggest interprets the request text and prints advisory notes
// about it. It serves as the entry point for the 'suggest' command.
func ExecuteSuggest(cfg *contract.Config, logger *zap.Logger, text string) error {
	intent := ParseRequest(text, time.Now().In(cfg.Location))
	suggestions := Suggest(&intent)
	logger.Debug("derived suggestions",
		zap.String("request_id", intent.RequestID),
		zap.Int("count", len(suggestions)))
	return outwriter.WriteSuggestions(suggestions, cfg)
}

// ExecuteFind runs the full search: parse the request, load the attendee
// availability snapshot, and rank conflict-free slots. It serves as the
// entry point for the 'find' command.
func ExecuteFind(cfg *contract.Config, logger *zap.Logger, text string) error {
	start := time.Now()
	now := start.In(cfg.Location)

	intent := ParseRequest(text, now)
	if cfg.Duration > 0 {
		intent.DurationMinutes = cfg.Duration
	}

	attendees, err := loadAttendees(cfg, &intent)
	if err != nil {
		return err
	}
	logger.Debug("availability snapshot ready",
		zap.String("request_id", intent.RequestID),
		zap.Int("attendees", len(attendees)))

	ranked, err := FindOptimalSlots(now, &intent, attendees, searchOptions(cfg))
	if err != nil {
		return err
	}
	logger.Debug("search complete",
		zap.String("request_id", intent.RequestID),
		zap.Int("ranked", len(ranked)),
		zap.Duration("elapsed", time.Since(start)))

	return outwriter.WriteSlots(ranked, cfg, time.Since(start))
}

// searchOptions maps the validated CLI config onto pipeline options.
func searchOptions(cfg *contract.Config) SearchOptions {
	return SearchOptions{
		PreferredTimes: cfg.PreferredTimes,
		DaysAhead:      cfg.DaysAhead,
		WorkingHours:   cfg.WorkingHours,
		Location:       cfg.Location,
		ResultLimit:    cfg.ResultLimit,
		Workers:        cfg.Workers,
	}
}

// loadAttendees assembles the availability snapshot for a search. A
// supplied snapshot file is authoritative for busy data; attendees named
// in the request text but absent from it join with no busy intervals and
// are treated as free.
func loadAttendees(cfg *contract.Config, intent *schema.SchedulingIntent) ([]schema.Attendee, error) {
	var loaded []schema.Attendee
	var err error
	switch {
	case cfg.AttendeesFile != "":
		loaded, err = snapshot.LoadJSON(cfg.AttendeesFile)
	case cfg.ICSDir != "":
		loaded, err = snapshot.LoadICSDir(cfg.ICSDir, cfg.Location)
	default:
		return intent.Attendees, nil
	}
	if err != nil {
		return nil, err
	}

	merged := mergeAttendees(loaded, intent.Attendees)
	for _, a := range merged[len(loaded):] {
		contract.LogWarn("attendee not in snapshot", fmt.Errorf("%s is assumed free", a.Email))
	}
	return merged, nil
}

// mergeAttendees unions the snapshot with request-mentioned attendees,
// keyed by email. Snapshot entries win since they carry busy data.
func mergeAttendees(loaded, mentioned []schema.Attendee) []schema.Attendee {
	seen := make(map[string]struct{}, len(loaded))
	for _, a := range loaded {
		seen[a.Email] = struct{}{}
	}
	merged := loaded
	for _, a := range mentioned {
		if _, ok := seen[a.Email]; !ok {
			merged = append(merged, a)
			seen[a.Email] = struct{}{}
		}
	}
	return merged
}
