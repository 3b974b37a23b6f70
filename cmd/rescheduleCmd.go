package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// rescheduleCmd re-queues a previously failed script for another attempt.
var rescheduleCmd = &cobra.Command{
	Use:   "reschedule",
	Short: "Re-queue a previously failed script",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgScript == "" {
			return errors.New("--script is required (script to re-queue)")
		}
		return dispatch(cmd, func(ctx context.Context, c schedulerClient) (bool, error) {
			return c.Reschedule(ctx, cfgScript)
		})
	},
}
