// Package cmd defines the command-line interface for syncflow.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/syncflow/syncflow/internal/contract"
	"github.com/syncflow/syncflow/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of ranked slots to display")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("days-ahead", contract.DefaultDaysAhead, "Search horizon in days (day 1 is tomorrow)")
	rootCmd.PersistentFlags().String("working-hours", contract.DefaultWorkingHours, "Daily window a slot must fit inside (HH:MM-HH:MM)")
	rootCmd.PersistentFlags().String("preferred-times", contract.DefaultPreferredTimes, "Comma-separated HH:MM day anchors, in preference order")
	rootCmd.PersistentFlags().String("timezone", "Local", "IANA timezone used as the frame of reference (e.g. America/New_York)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json or csv")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging of pipeline stages")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of findCmd to Viper
	findCmd.Flags().String("attendees", "", "Path to a JSON availability snapshot")
	findCmd.Flags().String("ics-dir", "", "Directory of per-attendee iCalendar files (<email>.ics)")
	findCmd.Flags().Int("duration", 0, "Meeting length in minutes, overriding the parsed request")
	if err := viper.BindPFlags(findCmd.Flags()); err != nil {
		contract.LogFatal("Error binding find flags", err)
	}
}
