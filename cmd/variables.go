package cmd

import (
	"errors"
	"time"
)

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

// errCommandFailed signals that the scheduler executed the command and
// answered negatively. It is an ordinary result, not an exceptional one:
// Execute turns it into exit code 1 with no diagnostic beyond whatever the
// command itself printed.
var errCommandFailed = errors.New("scheduler rejected the command")

var (
	// Global configuration populated by flags and/or environment variables.
	// These are declared here so they are visible across subcommands.
	cfgAddr    string
	cfgPort    int
	cfgCACert  string
	cfgToken   string
	cfgTimeout time.Duration
	cfgDebug   bool

	// Per-command parameters.
	cfgScript   string
	cfgVersion  string
	cfgProgress int
	cfgFeature  string
)
