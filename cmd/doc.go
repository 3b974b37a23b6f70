// Package cmd implements the rcubic-ctl command-line interface.
//
// The package organizes the control subcommands (feature, override,
// progress, reschedule, reclone, cancel) and the glue that turns one
// invocation into exactly one authenticated call against the scheduler.
//
// New contributors should start by reading init.go to see how cobra and
// viper are wired, dispatch.go for the shared command flow, and Execute.go
// for how outcomes become exit codes: 0 when the scheduler says yes, 1 when
// it says no, 2 when the secure transport could not be negotiated at all.
package cmd
