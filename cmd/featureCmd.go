package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// featureCmd probes whether the scheduler supports a named capability. The
// verdict is printed for the operator and also drives the exit code, so a
// bot can test support without parsing output.
var featureCmd = &cobra.Command{
	Use:   "feature",
	Short: "Check whether the scheduler supports a named feature",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgFeature == "" {
			return errors.New("--feature is required (feature name to probe)")
		}
		return dispatch(cmd, func(ctx context.Context, c schedulerClient) (bool, error) {
			ok, err := c.CheckFeature(ctx, cfgFeature)
			if err != nil {
				return false, err
			}
			if ok {
				_, _ = fmt.Fprintf(os.Stdout, "%s is supported.\n", cfgFeature)
			} else {
				_, _ = fmt.Fprintf(os.Stdout, "%s is not supported.\n", cfgFeature)
			}
			return ok, nil
		})
	},
}
