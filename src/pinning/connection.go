// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pinning

import (
	"crypto/tls"
	"errors"
	"net/http"
	"sync"

	x509pin "github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/x509/pin"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/x509/truststore"
)

// ErrPeerNotPinned is the handshake error of a peer whose chain lacks the
// pinned certificate.
var ErrPeerNotPinned = errors.New("pinning: peer does not present the pinned certificate")

// HostnameVerifier decides after the handshake whether to keep a connection.
// [x509pin.Verifier] implements it.
type HostnameVerifier interface {
	Verify(hostname string, session x509pin.Session) bool
}

// Connection is anything that can be handed a TLS configuration and a
// post-handshake verifier before it connects.
type Connection interface {
	SetTLSConfig(cfg *tls.Config)
	SetHostnameVerifier(v HostnameVerifier)
}

// Attach sets the TLS configuration and verifier of tc on conn.
func Attach(conn Connection, tc *truststore.Context) {
	conn.SetTLSConfig(tc.TLSConfig())
	conn.SetHostnameVerifier(tc.Verifier())
}

// Transport is an [http.Transport] that accepts a pinned trust context.
// Configure it before its first request.
type Transport struct {
	*http.Transport

	mu       sync.Mutex
	base     *tls.Config
	verifier HostnameVerifier
}

// NewTransport wraps t. A nil t starts from a clone of
// [http.DefaultTransport].
func NewTransport(t *http.Transport) *Transport {
	if t == nil {
		t = http.DefaultTransport.(*http.Transport).Clone()
	}
	return &Transport{Transport: t, base: t.TLSClientConfig}
}

// SetTLSConfig replaces the TLS client configuration.
func (t *Transport) SetTLSConfig(cfg *tls.Config) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.base = cfg
	t.apply()
}

// SetHostnameVerifier installs v as the post-handshake check. A rejection
// fails the handshake with [ErrPeerNotPinned].
func (t *Transport) SetHostnameVerifier(v HostnameVerifier) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.verifier = v
	t.apply()
}

// apply rebuilds TLSClientConfig from the current base and verifier.
func (t *Transport) apply() {
	cfg := &tls.Config{}
	if t.base != nil {
		cfg = t.base.Clone()
	}

	if v := t.verifier; v != nil {
		cfg.VerifyConnection = func(cs tls.ConnectionState) error {
			if !v.Verify(cs.ServerName, x509pin.ConnectionState(cs)) {
				return ErrPeerNotPinned
			}
			return nil
		}
	}

	t.Transport.TLSClientConfig = cfg
}
