package contract

import "github.com/fatih/color"

// Confidence label constants.
const (
	ExcellentValue = "Excellent" // Prime mid-week, mid-morning slot
	GoodValue      = "Good"      // Solid working-hours slot
	FairValue      = "Fair"      // Acceptable but off-peak
	PoorValue      = "Poor"      // Early, late, or last-minute
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold)
	GoodColor      = color.New(color.FgCyan)
	FairColor      = color.New(color.FgYellow)
	PoorColor      = color.New(color.FgRed)
)

// GetPlainLabel returns a plain text label for a confidence score. This
// is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score int) string {
	switch {
	case score >= 90:
		return ExcellentValue
	case score >= 75:
		return GoodValue
	case score >= 60:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(score int) string {
	text := GetPlainLabel(score)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}
