package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/syncflow/syncflow/core"
	"github.com/syncflow/syncflow/internal/contract"
	"github.com/syncflow/syncflow/schema"
)

// meetingTypeList renders the supported meeting types for help text.
func meetingTypeList() string {
	names := make([]string, len(schema.AllMeetingTypes))
	for i, mt := range schema.AllMeetingTypes {
		names[i] = string(mt)
	}
	return strings.Join(names, ", ")
}

// parseCmd interprets a request without running slot search.
var parseCmd = &cobra.Command{
	Use:   "parse <request text>",
	Short: "Show how a scheduling request is interpreted.",
	Long: `Interpret a free-form scheduling request into a structured intent.

Extracts the meeting duration, timeframe, attendees, meeting type, and
urgency using a fixed rule set. Parsing never fails: anything the request
does not mention falls back to a sensible default (60 minutes, 3 days
out, a general meeting at normal urgency).

Useful for confirming what a request means before searching for slots.

Meeting types recognized: ` + meetingTypeList() + `

Examples:
  # See how a sparse request is filled in
  syncflow parse "Let's meet"

  # Durations, weekdays and attendees are picked up from the text
  syncflow parse "2 hour planning session on thursday with jane@example.com"

  # Machine-readable form for a chat/UI layer
  syncflow parse "urgent demo tomorrow" --output json`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteParse(cfg, logger, requestText(args)); err != nil {
			contract.LogFatal("Cannot parse request", err)
		}
	},
}
