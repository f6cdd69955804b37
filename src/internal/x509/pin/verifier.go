// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pin

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/tls-cert-pinning/src/logger"
)

// ErrPeerUnverified indicates that the peer presented no certificates.
var ErrPeerUnverified = errors.New("x509pin: peer not verified")

// Session yields the certificate chain a peer presented during a handshake.
type Session interface {
	PeerCertificates() ([]*x509.Certificate, error)
}

// PeerChain is a Session backed by an already-obtained chain.
type PeerChain []*x509.Certificate

// PeerCertificates returns the chain, or [ErrPeerUnverified] when it is empty.
func (p PeerChain) PeerCertificates() ([]*x509.Certificate, error) {
	if len(p) == 0 {
		return nil, ErrPeerUnverified
	}
	return p, nil
}

// ConnectionState adapts a completed handshake to a Session.
func ConnectionState(cs tls.ConnectionState) Session {
	return PeerChain(cs.PeerCertificates)
}

// Verifier decides whether a handshake reached the pinned server.
// It is immutable and safe for concurrent use.
type Verifier struct {
	pinned *x509.Certificate
	log    logger.Logger
}

// NewVerifier binds a verifier to pinned. The pointer is kept as-is so the
// caller can seed its trust store with the very same certificate.
// A nil log discards diagnostics.
func NewVerifier(pinned *x509.Certificate, log logger.Logger) *Verifier {
	if log == nil {
		log = logger.Discard()
	}
	log.Println("new verifier, cert")
	return &Verifier{pinned: pinned, log: log}
}

// Pinned returns the certificate the verifier is bound to.
func (v *Verifier) Pinned() *x509.Certificate { return v.pinned }

// Verify reports whether the pinned certificate is part of the chain held by
// session. hostname is only logged.
//
// Verify never panics: a nil session, a chain that cannot be obtained, or a
// nil entry in the chain all count as rejection.
func (v *Verifier) Verify(hostname string, session Session) bool {
	v.log.Printf("cert verify hostname: %q", hostname)

	if v.pinned == nil {
		v.log.Error("cert verify: no pinned certificate", nil)
		return false
	}
	if session == nil {
		v.log.Error(fmt.Sprintf("hostname %q: no session to verify", hostname), ErrPeerUnverified)
		return false
	}

	chain, err := session.PeerCertificates()
	if err != nil {
		v.log.Error(fmt.Sprintf("hostname %q does not match up with the pinned certificate", hostname), err)
		return false
	}

	ok := Contains(chain, v.pinned)
	v.log.Printf("cert verify: %t", ok)
	return ok
}

// Contains reports whether cert is byte-equal to an element of chain.
func Contains(chain []*x509.Certificate, cert *x509.Certificate) bool {
	if cert == nil {
		return false
	}
	for _, c := range chain {
		if c != nil && c.Equal(cert) {
			return true
		}
	}
	return false
}
