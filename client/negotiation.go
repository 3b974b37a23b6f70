package client

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
)

// NegotiationError reports that the secure transport to the scheduler could
// not be established or negotiated, before any command result was obtained.
// It covers CA-certificate loading failures at construction time and TLS
// handshake or certificate-verification failures during the call.
type NegotiationError struct {
	Op  string
	Err error
}

func (e *NegotiationError) Error() string {
	return fmt.Sprintf("ssl negotiation with scheduler failed (%s): %v", e.Op, e.Err)
}

func (e *NegotiationError) Unwrap() error { return e.Err }

// isNegotiationFailure reports whether err stems from TLS negotiation rather
// than from the network or the scheduler itself. Connection refused, DNS
// failures and the like are deliberately not matched here; they are ordinary
// transport errors and take the ordinary failure path.
func isNegotiationFailure(err error) bool {
	var recordHeader tls.RecordHeaderError
	if errors.As(err, &recordHeader) {
		return true
	}
	var certVerify *tls.CertificateVerificationError
	if errors.As(err, &certVerify) {
		return true
	}
	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return true
	}
	var hostname x509.HostnameError
	if errors.As(err, &hostname) {
		return true
	}
	var certInvalid x509.CertificateInvalidError
	if errors.As(err, &certInvalid) {
		return true
	}
	// A handshake the server rejects (e.g. it demands a client certificate
	// we do not present) surfaces as a *net.OpError whose Op is
	// "remote error", carrying the server's TLS alert. The alert value
	// itself does not unwrap to a typed error, so match on the Op.
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "remote error" {
		return true
	}
	return false
}
