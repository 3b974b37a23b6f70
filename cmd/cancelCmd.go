package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// cancelCmd aborts the current run. Scripts that have not started are
// stopped; scripts already running are left to finish.
var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Abort the run: stop unstarted work, let started work finish",
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, func(ctx context.Context, c schedulerClient) (bool, error) {
			return c.Cancel(ctx)
		})
	},
}
