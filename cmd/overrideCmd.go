package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// overrideCmd marks a failed script as successful without re-executing it,
// letting the rest of the run proceed past it.
var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Mark a failed script as successful",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgScript == "" {
			return errors.New("--script is required (script to mark successful)")
		}
		return dispatch(cmd, func(ctx context.Context, c schedulerClient) (bool, error) {
			return c.ManualOverride(ctx, cfgScript)
		})
	},
}
