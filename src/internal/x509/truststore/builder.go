// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package truststore

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"

	"github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/x509/certs"
	x509pin "github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/x509/pin"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/logger"
)

const (
	// DefaultAlias is the anchor-store alias of the pinned certificate.
	DefaultAlias = "pinned.server"

	// DefaultMaxResourceBytes caps how much of a certificate resource is read.
	DefaultMaxResourceBytes int64 = 1 << 20
)

// Builder constructs trust contexts. A zero Builder is not usable; create one
// with [NewBuilder].
type Builder struct {
	alias      string
	minVersion uint16
	maxBytes   int64
	decoder    *x509certs.Certificate
	log        logger.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithAlias sets the alias of the pinned certificate in the anchor store.
func WithAlias(alias string) Option {
	return func(b *Builder) { b.alias = alias }
}

// WithMinVersion sets the minimum TLS version of derived configurations.
func WithMinVersion(v uint16) Option {
	return func(b *Builder) { b.minVersion = v }
}

// WithMaxResourceBytes caps the size of each certificate resource.
// Zero or less disables the cap.
func WithMaxResourceBytes(n int64) Option {
	return func(b *Builder) { b.maxBytes = n }
}

// NewBuilder returns a Builder logging to log. A nil log discards diagnostics.
func NewBuilder(log logger.Logger, opts ...Option) *Builder {
	if log == nil {
		log = logger.Discard()
	}
	b := &Builder{
		alias:      DefaultAlias,
		minVersion: tls.VersionTLS12,
		maxBytes:   DefaultMaxResourceBytes,
		decoder:    x509certs.New(),
		log:        log,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build reads the pinned certificate from primary and, when chain is not nil,
// the chain bundle from chain, and derives a trust Context from them.
//
// Any failure aborts the whole build; the returned error wraps one of
// [ErrResourceLoad], [ErrCertificateParse], [ErrChainParse], or
// [ErrTrustStoreInit]. Build never returns a partial Context.
func (b *Builder) Build(primary io.Reader, chain io.Reader) (*Context, error) {
	b.log.Printf("building trust context, chain bundle: %t", chain != nil)

	if err := b.checkParams(); err != nil {
		return nil, err
	}

	pinned, err := b.readPinned(primary)
	if err != nil {
		return nil, err
	}

	anchors := []Anchor{{Alias: b.alias, Cert: pinned}}
	if chain != nil {
		extra, err := b.readChain(chain)
		if err != nil {
			return nil, err
		}
		anchors = append(anchors, extra...)
	}

	roots := x509.NewCertPool()
	for _, a := range anchors {
		roots.AddCert(a.Cert)
	}

	ctx := &Context{
		anchors:  anchors,
		roots:    roots,
		verifier: x509pin.NewVerifier(pinned, b.log),
	}
	ctx.tlsConfig = &tls.Config{
		MinVersion: b.minVersion,
		// Standard verification would also match the hostname. Path
		// validation against the anchors is done in VerifyPeerCertificate
		// instead, and the pin check happens in the verifier.
		InsecureSkipVerify:    true, //nolint:gosec // G402: verified against the pinned anchor store
		VerifyPeerCertificate: ctx.verifyRawChain,
	}

	b.log.Printf("trust context ready with %d anchors", len(anchors))
	return ctx, nil
}

func (b *Builder) checkParams() error {
	if b.alias == "" {
		return fmt.Errorf("%w: empty pinned alias", ErrTrustStoreInit)
	}
	switch b.minVersion {
	case tls.VersionTLS10, tls.VersionTLS11, tls.VersionTLS12, tls.VersionTLS13:
	default:
		return fmt.Errorf("%w: unsupported TLS version 0x%04x", ErrTrustStoreInit, b.minVersion)
	}
	return nil
}

func (b *Builder) readPinned(r io.Reader) (*x509.Certificate, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: no pinned certificate stream", ErrResourceLoad)
	}

	data, err := gc.ReadAll(r, b.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceLoad, err)
	}

	cert, err := b.decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCertificateParse, err)
	}
	return cert, nil
}

func (b *Builder) readChain(r io.Reader) ([]Anchor, error) {
	data, err := gc.ReadAll(r, b.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: chain bundle: %v", ErrResourceLoad, err)
	}

	certs, err := b.decoder.DecodeMultiple(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChainParse, err)
	}

	anchors := make([]Anchor, 0, len(certs))
	for i, cert := range certs {
		alias := fmt.Sprintf("alias%d", i)
		anchors = append(anchors, Anchor{Alias: alias, Cert: cert})
		b.log.Printf("adding cert alias: %s", alias)
	}
	return anchors, nil
}
