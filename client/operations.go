package client

import (
	"context"
	"net/url"
	"strconv"
)

// CheckFeature asks the scheduler whether it supports the named feature.
func (c *Client) CheckFeature(ctx context.Context, feature string) (bool, error) {
	return c.call(ctx, "checkFeature", url.Values{"feature": {feature}})
}

// ManualOverride marks a failed script as successful without re-executing it.
func (c *Client) ManualOverride(ctx context.Context, script string) (bool, error) {
	return c.call(ctx, "manualOverride", url.Values{"script": {script}})
}

// Progress reports the script's current completion value. The value is
// forwarded as-is; the scheduler decides whether out-of-range values are
// acceptable. An empty version means the scheduler's default version of the
// script, and no version parameter is sent at all.
func (c *Client) Progress(ctx context.Context, script, version string, value int) (bool, error) {
	params := url.Values{
		"script":   {script},
		"progress": {strconv.Itoa(value)},
	}
	if version != "" {
		params.Set("version", version)
	}
	return c.call(ctx, "progress", params)
}

// Reschedule re-queues a previously failed script for execution.
func (c *Client) Reschedule(ctx context.Context, script string) (bool, error) {
	return c.call(ctx, "reschedule", url.Values{"script": {script}})
}

// Reclone tells the scheduler to refresh its source checkout.
func (c *Client) Reclone(ctx context.Context) (bool, error) {
	return c.call(ctx, "reclone", nil)
}

// Cancel aborts the current run: unstarted work is stopped, work already
// started is allowed to finish.
func (c *Client) Cancel(ctx context.Context) (bool, error) {
	return c.call(ctx, "cancel", nil)
}
