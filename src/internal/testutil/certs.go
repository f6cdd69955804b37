// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package testutil generates certificate material and diagnostics sinks for tests.
// Nothing here is used outside of _test.go files.
package testutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"testing"
	"time"
)

// Cert is a generated certificate together with its private key.
type Cert struct {
	Cert *x509.Certificate
	Key  *ecdsa.PrivateKey
}

// NewSelfSigned generates a self-signed certificate usable both as a TLS
// server identity and as a trust anchor. Hosts that parse as IP addresses go
// into the IP SAN list, everything else into DNS names.
func NewSelfSigned(tb testing.TB, cn string, hosts ...string) *Cert {
	tb.Helper()
	return generate(tb, cn, nil, true, hosts)
}

// Issue generates a certificate for cn signed by c.
func (c *Cert) Issue(tb testing.TB, cn string, isCA bool, hosts ...string) *Cert {
	tb.Helper()
	return generate(tb, cn, c, isCA, hosts)
}

// DER returns the DER encoding of the certificate.
func (c *Cert) DER() []byte { return c.Cert.Raw }

// PEM returns the PEM encoding of the certificate.
func (c *Cert) PEM() []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: c.Cert.Raw})
}

// TLSCertificate returns a server identity presenting c followed by chain.
func (c *Cert) TLSCertificate(chain ...*Cert) tls.Certificate {
	raw := [][]byte{c.Cert.Raw}
	for _, extra := range chain {
		raw = append(raw, extra.Cert.Raw)
	}
	return tls.Certificate{
		Certificate: raw,
		PrivateKey:  c.Key,
		Leaf:        c.Cert,
	}
}

// PEMBundle concatenates the PEM encodings of certs in order.
func PEMBundle(certs ...*Cert) []byte {
	var out []byte
	for _, c := range certs {
		out = append(out, c.PEM()...)
	}
	return out
}

// DERBundle concatenates the DER encodings of certs in order.
func DERBundle(certs ...*Cert) []byte {
	var out []byte
	for _, c := range certs {
		out = append(out, c.DER()...)
	}
	return out
}

func generate(tb testing.TB, cn string, parent *Cert, isCA bool, hosts []string) *Cert {
	tb.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		tb.Fatalf("generate key: %v", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 62))
	if err != nil {
		tb.Fatalf("generate serial: %v", err)
	}

	now := time.Now()
	tmpl := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: cn, Organization: []string{"tls-cert-pinning tests"}},
		NotBefore:             now.Add(-time.Hour),
		NotAfter:              now.Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IsCA:                  isCA,
	}
	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			tmpl.IPAddresses = append(tmpl.IPAddresses, ip)
		} else {
			tmpl.DNSNames = append(tmpl.DNSNames, h)
		}
	}

	signerCert, signerKey := tmpl, key
	if parent != nil {
		signerCert, signerKey = parent.Cert, parent.Key
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, signerCert, &key.PublicKey, signerKey)
	if err != nil {
		tb.Fatalf("create certificate %q: %v", cn, err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		tb.Fatalf("parse certificate %q: %v", cn, err)
	}

	return &Cert{Cert: cert, Key: key}
}
