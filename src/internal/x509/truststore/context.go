// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package truststore

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"

	x509pin "github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/x509/pin"
)

// Anchor is a trust-anchor store entry.
type Anchor struct {
	Alias string
	Cert  *x509.Certificate
}

// Context is a built trust context: an anchor store, the TLS configuration
// derived from it, and the pin verifier. The verifier and the first anchor
// always hold the same certificate pointer.
type Context struct {
	anchors   []Anchor
	roots     *x509.CertPool
	tlsConfig *tls.Config
	verifier  *x509pin.Verifier
}

// TLSConfig returns a copy of the derived client configuration. Callers may
// modify the copy freely.
func (c *Context) TLSConfig() *tls.Config { return c.tlsConfig.Clone() }

// Verifier returns the pin verifier bound to the pinned certificate.
func (c *Context) Verifier() *x509pin.Verifier { return c.verifier }

// Pinned returns the pinned certificate.
func (c *Context) Pinned() *x509.Certificate { return c.verifier.Pinned() }

// Anchors returns the anchor store entries in insertion order: the pinned
// certificate first, then the chain bundle.
func (c *Context) Anchors() []Anchor { return append([]Anchor(nil), c.anchors...) }

// VerifyPath validates chain (leaf first) against the anchor store.
// No hostname is checked.
func (c *Context) VerifyPath(chain []*x509.Certificate) error {
	if len(chain) == 0 {
		return fmt.Errorf("%w: %v", ErrUntrustedPeer, x509pin.ErrPeerUnverified)
	}

	intermediates := x509.NewCertPool()
	for _, cert := range chain[1:] {
		intermediates.AddCert(cert)
	}

	_, err := chain[0].Verify(x509.VerifyOptions{
		Roots:         c.roots,
		Intermediates: intermediates,
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUntrustedPeer, err)
	}
	return nil
}

// verifyRawChain is installed as tls.Config.VerifyPeerCertificate.
func (c *Context) verifyRawChain(rawCerts [][]byte, _ [][]*x509.Certificate) error {
	chain := make([]*x509.Certificate, 0, len(rawCerts))
	for _, raw := range rawCerts {
		cert, err := x509.ParseCertificate(raw)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUntrustedPeer, err)
		}
		chain = append(chain, cert)
	}
	return c.VerifyPath(chain)
}

// Dial opens a TLS connection to addr whose certificate path has been
// validated against the anchor store. The pin itself is not checked; hand the
// connection state to [Context.Verifier] for that.
func (c *Context) Dial(ctx context.Context, network, addr string) (*tls.Conn, error) {
	d := &tls.Dialer{Config: c.TLSConfig()}
	conn, err := d.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}
	return conn.(*tls.Conn), nil
}
