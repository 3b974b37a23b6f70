package cmd

import (
	"context"

	"github.com/bwarfield-amplify/rcubic/client"
)

// schedulerClient is the minimal remote surface the subcommands need: one
// method per control operation, each returning the scheduler's native
// boolean verdict.
type schedulerClient interface {
	CheckFeature(ctx context.Context, feature string) (bool, error)
	ManualOverride(ctx context.Context, script string) (bool, error)
	Progress(ctx context.Context, script, version string, value int) (bool, error)
	Reschedule(ctx context.Context, script string) (bool, error)
	Reclone(ctx context.Context) (bool, error)
	Cancel(ctx context.Context) (bool, error)
}

// newClientFunc allows tests to stub the transport without process-level
// mocking. Production code constructs the real HTTPS client.
var newClientFunc = func(cfg client.Config) (schedulerClient, error) {
	return client.New(cfg)
}
