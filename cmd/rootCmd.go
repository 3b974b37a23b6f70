package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rcubic-ctl",
	Short: "Send control commands to a running rcubic scheduler",
	Long: "rcubic-ctl sends a single authenticated control command to a running rcubic scheduler: " +
		"probe a feature, mark a failed script successful, report execution progress, reschedule " +
		"a failed script, refresh the source checkout, or cancel the run.",
	Version: Version,
	// Errors are printed once, by Execute, after classification.
	SilenceErrors: true,
}
