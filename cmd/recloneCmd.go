package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// recloneCmd tells the scheduler to refresh its source checkout.
var recloneCmd = &cobra.Command{
	Use:   "reclone",
	Short: "Force the scheduler to refresh its source checkout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, func(ctx context.Context, c schedulerClient) (bool, error) {
			return c.Reclone(ctx)
		})
	},
}
