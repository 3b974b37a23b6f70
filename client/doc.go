// Package client implements the HTTPS client for the rcubic scheduler's
// control interface.
//
// A Client is constructed once per process invocation from a Config and
// exposes one method per remote operation (CheckFeature, ManualOverride,
// Progress, Reschedule, Reclone, Cancel). The scheduler serializes its
// boolean results as strings on the wire; that convention is confined to
// this package and every method returns a native (bool, error).
//
// Failures to establish or negotiate the secure transport — an unreadable
// CA certificate, a certificate the client does not trust, a handshake
// rejected by the server — are reported as *NegotiationError so callers can
// distinguish them from ordinary command failures.
package client
