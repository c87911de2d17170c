package contract

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/syncflow/syncflow/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit    = 5
	MaxResultLimit        = 50
	DefaultDaysAhead      = 7
	MaxDaysAhead          = 90
	DefaultWorkingHours   = "09:00-17:00"
	DefaultPreferredTimes = "09:00,10:00,11:00,14:00,15:00,16:00"
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a search.
// This struct remains the "final, validated" config.
type Config struct {
	Location       *time.Location    // Frame of reference for all computed timestamps
	TimezoneName   string            // IANA name backing Location, for display
	ResultLimit    int               // Top-K cutoff for ranked output
	Workers        int               // Concurrent candidate evaluations
	DaysAhead      int               // Generation horizon in days
	Duration       int               // Duration override in minutes, 0 means use the parsed intent
	PreferredTimes []schema.Clock    // Day anchors, in emission order
	WorkingHours   schema.ClockRange // Daily window a slot must fit inside
	Output         schema.OutputMode
	OutputFile     string
	AttendeesFile  string // JSON availability snapshot
	ICSDir         string // Directory of per-attendee iCalendar snapshots
	Color          bool
	Width          int // Terminal width override (0 = auto-detect)
	Verbose        bool
}

// ConfigRawInput holds the raw, unvalidated configuration from all
// sources (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	ResultLimit       int    `mapstructure:"limit"`
	Workers           int    `mapstructure:"workers"`
	DaysAhead         int    `mapstructure:"days-ahead"`
	Duration          int    `mapstructure:"duration"`
	WorkingHoursStr   string `mapstructure:"working-hours"`
	PreferredTimesStr string `mapstructure:"preferred-times"`
	TimezoneStr       string `mapstructure:"timezone"`
	Output            string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	AttendeesFile     string `mapstructure:"attendees"`
	ICSDir            string `mapstructure:"ics-dir"`
	Color             string `mapstructure:"color"`
	Width             int    `mapstructure:"width"`
	Verbose           bool   `mapstructure:"verbose"`
}

// ProcessAndValidate performs all complex parsing and validation on the
// raw inputs and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. ResultLimit Validation ---
	if input.ResultLimit <= 0 || input.ResultLimit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.ResultLimit)
	}
	cfg.ResultLimit = input.ResultLimit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Horizon and Duration Validation ---
	if input.DaysAhead <= 0 || input.DaysAhead > MaxDaysAhead {
		return fmt.Errorf("days-ahead must be between 1 and %d (received %d)", MaxDaysAhead, input.DaysAhead)
	}
	cfg.DaysAhead = input.DaysAhead

	if input.Duration < 0 {
		return fmt.Errorf("duration cannot be negative (received %d)", input.Duration)
	}
	cfg.Duration = input.Duration

	// --- 4. Working Hours and Preferred Times ---
	hours, err := schema.ParseClockRange(input.WorkingHoursStr)
	if err != nil {
		return fmt.Errorf("invalid working-hours: %w", err)
	}
	cfg.WorkingHours = hours

	cfg.PreferredTimes = cfg.PreferredTimes[:0]
	for _, part := range strings.Split(input.PreferredTimesStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		anchor, err := schema.ParseClock(part)
		if err != nil {
			return fmt.Errorf("invalid preferred-times: %w", err)
		}
		cfg.PreferredTimes = append(cfg.PreferredTimes, anchor)
	}
	if len(cfg.PreferredTimes) == 0 {
		return fmt.Errorf("preferred-times must contain at least one HH:MM anchor (received '%s')", input.PreferredTimesStr)
	}

	// --- 5. Timezone Resolution ---
	// The configured zone is the single frame of reference for generated
	// timestamps; no cross-zone conversion happens downstream.
	if input.TimezoneStr == "" || strings.EqualFold(input.TimezoneStr, "local") {
		cfg.Location = time.Local
		cfg.TimezoneName = "Local"
	} else {
		loc, err := time.LoadLocation(input.TimezoneStr)
		if err != nil {
			return fmt.Errorf("invalid timezone '%s': %w", input.TimezoneStr, err)
		}
		cfg.Location = loc
		cfg.TimezoneName = input.TimezoneStr
	}

	// --- 6. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.AttendeesFile = input.AttendeesFile
	cfg.ICSDir = input.ICSDir

	if cfg.AttendeesFile != "" && cfg.ICSDir != "" {
		return fmt.Errorf("use either --attendees or --ics-dir, not both")
	}

	// --- 7. Presentation Flags ---
	color, err := parseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color value '%s': %w", input.Color, err)
	}
	cfg.Color = color

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width
	cfg.Verbose = input.Verbose

	return nil
}

// parseBoolString accepts the yes/no style values used by flags and env vars.
func parseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("want yes/no, true/false, or 1/0")
	}
}
