package cmd

import (
	"github.com/spf13/cobra"
	"github.com/syncflow/syncflow/core"
	"github.com/syncflow/syncflow/internal/contract"
)

// suggestCmd prints advisory notes about a request.
var suggestCmd = &cobra.Command{
	Use:   "suggest <request text>",
	Short: "Flag scheduling anti-patterns in a request.",
	Long: `Review a scheduling request for common anti-patterns.

Flags urgent requests that should land within 24 hours, standups booked
for longer than 30 minutes, and meetings with more than 8 attendees.

Examples:
  syncflow suggest "urgent 1 hour standup with the whole team"
  syncflow suggest "quick call tomorrow" --output json`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteSuggest(cfg, logger, requestText(args)); err != nil {
			contract.LogFatal("Cannot derive suggestions", err)
		}
	},
}
