package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// dispatch runs the shared tail of every subcommand: build the client from
// the global configuration and perform exactly one remote call. No retries,
// no batching; a negative verdict from the scheduler becomes
// errCommandFailed and anything else propagates as-is.
//
// Callers validate their parameters before dispatching, so failures past
// this point are not usage errors.
func dispatch(cmd *cobra.Command, op func(context.Context, schedulerClient) (bool, error)) error {
	cmd.SilenceUsage = true

	c, err := newClientFunc(clientConfig())
	if err != nil {
		return err
	}

	ok, err := op(context.Background(), c)
	if err != nil {
		return err
	}
	if !ok {
		return errCommandFailed
	}
	return nil
}
