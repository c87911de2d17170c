package cmd

import (
	"github.com/spf13/cobra"
	"github.com/syncflow/syncflow/core"
	"github.com/syncflow/syncflow/internal/contract"
)

// findCmd runs the full slot search.
var findCmd = &cobra.Command{
	Use:   "find [request text]",
	Short: "Rank conflict-free meeting times for a request.",
	Long: `Search the coming days for meeting times that work for everyone.

Interprets the request text, generates candidate slots at the preferred
day anchors over the search horizon (weekends excluded, working hours
enforced), drops any slot that collides with an attendee's calendar, and
ranks the rest by how well they match typical scheduling preferences:
mid-morning beats late afternoon, Tuesday through Thursday beat the
edges of the week, and a couple of days of lead time beats tomorrow.

Attendee calendars are supplied as an exported snapshot; syncflow never
talks to a calendar provider itself. An attendee with no supplied busy
data never blocks a slot.

Examples:
  # Personal booking with defaults (60 minutes, next 7 days)
  syncflow find "time to write the quarterly report"

  # Search against exported calendars
  syncflow find "30 minute sync with john@example.com" --attendees team.json

  # One iCalendar file per attendee
  syncflow find "project review next week" --ics-dir ./calendars

  # Shorter horizon, explicit duration, machine-readable output
  syncflow find "standup" --duration 15 --days-ahead 3 --output json`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteFind(cfg, logger, requestText(args)); err != nil {
			contract.LogFatal("Cannot run slot search", err)
		}
	},
}
