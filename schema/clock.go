package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a time-of-day anchor with minute precision, e.g. 14:30.
type Clock struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ParseClock parses an HH:MM string into a Clock.
func ParseClock(s string) (Clock, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return Clock{}, fmt.Errorf("invalid clock time '%s': want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid hour in clock time '%s': %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid minute in clock time '%s': %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("clock time '%s' out of range", s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// MustClock parses an HH:MM string and panics on failure. Intended for
// package-level defaults only.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// DecimalHours returns the clock as fractional hours, e.g. 16:30 -> 16.5.
// Working-hours containment is evaluated in this representation.
func (c Clock) DecimalHours() float64 {
	return float64(c.Hour) + float64(c.Minute)/60.0
}

// String formats the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ClockRange is a daily window such as working hours.
type ClockRange struct {
	Start Clock `json:"start"`
	End   Clock `json:"end"`
}

// ParseClockRange parses an "HH:MM-HH:MM" string into a ClockRange.
func ParseClockRange(s string) (ClockRange, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return ClockRange{}, fmt.Errorf("invalid clock range '%s': want HH:MM-HH:MM", s)
	}
	start, err := ParseClock(parts[0])
	if err != nil {
		return ClockRange{}, err
	}
	end, err := ParseClock(parts[1])
	if err != nil {
		return ClockRange{}, err
	}
	if start.DecimalHours() >= end.DecimalHours() {
		return ClockRange{}, fmt.Errorf("clock range '%s' must start before it ends", s)
	}
	return ClockRange{Start: start, End: end}, nil
}

// String formats the range as HH:MM-HH:MM.
func (r ClockRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}
