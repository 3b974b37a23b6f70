package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// progressCmd reports a script's completion value to the scheduler. The
// value is nominally 0-100 but is forwarded unclamped; the scheduler is the
// authority on what it accepts. Without --version the report targets the
// scheduler's default version of the script and no version parameter is
// sent at all.
var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Report a script's execution progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgScript == "" {
			return errors.New("--script is required (script reporting progress)")
		}
		if !cmd.Flags().Changed("progress") {
			return errors.New("--progress is required (completion value, 0-100)")
		}
		return dispatch(cmd, func(ctx context.Context, c schedulerClient) (bool, error) {
			return c.Progress(ctx, cfgScript, cfgVersion, cfgProgress)
		})
	},
}
