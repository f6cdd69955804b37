// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is neither a certificate nor PKCS7.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")

	// ErrNoCertificate indicates that the input held no certificate at all.
	ErrNoCertificate = errors.New("x509certs: no certificate in input")
)

const pkcs7BlockType = "PKCS7"

// Certificate decodes and encodes [X.509] certificates in PEM, DER, and [PKCS7] form.
// It maintains internal configuration such as the certificate block type.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
type Certificate struct {
	certBlockType string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// Decode decodes exactly one certificate from data.
//
// PEM input must start with a CERTIFICATE block; only that first block is used.
// DER input is parsed as a single certificate, falling back to the first
// certificate of a PKCS7 bundle.
func (c *Certificate) Decode(data []byte) (*x509.Certificate, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoCertificate
	}

	if c.IsPEM(data) {
		block, _ := pem.Decode(data)
		switch block.Type {
		case c.certBlockType:
			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrParseCertificate, err)
			}
			return cert, nil
		case pkcs7BlockType:
			certs, err := c.decodePKCS7(block.Bytes)
			if err != nil {
				return nil, err
			}
			return certs[0], nil
		default:
			return nil, ErrInvalidBlockType
		}
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	certs, p7err := c.decodePKCS7(data)
	if p7err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseCertificate, err)
	}
	return certs[0], nil
}

// DecodeMultiple decodes zero or more certificates from data, keeping stream order.
//
// Accepted inputs are a sequence of PEM blocks (CERTIFICATE or PKCS7),
// concatenated DER certificates, or a DER PKCS7 bundle. Empty or
// whitespace-only input yields no certificates and no error.
func (c *Certificate) DecodeMultiple(data []byte) ([]*x509.Certificate, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	if c.IsPEM(data) {
		var certs []*x509.Certificate

		for len(bytes.TrimSpace(data)) > 0 {
			block, rest := pem.Decode(data)
			if block == nil {
				// Text after the last block is ignored, as bundle files
				// often end with comments.
				if len(certs) > 0 {
					break
				}
				return nil, ErrInvalidPEMBlock
			}

			switch block.Type {
			case c.certBlockType:
				cert, err := x509.ParseCertificate(block.Bytes)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrParseCertificate, err)
				}
				certs = append(certs, cert)
			case pkcs7BlockType:
				bundled, err := c.decodePKCS7(block.Bytes)
				if err != nil {
					return nil, err
				}
				certs = append(certs, bundled...)
			default:
				return nil, ErrInvalidBlockType
			}

			data = rest
		}

		return certs, nil
	}

	certs, err := x509.ParseCertificates(data)
	if err == nil {
		return certs, nil
	}

	certs, p7err := c.decodePKCS7(data)
	if p7err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseCertificate, err)
	}
	return certs, nil
}

// decodePKCS7 extracts the certificate set of a PKCS7 SignedData structure
// using Cloudflare's parser.
func (c *Certificate) decodePKCS7(data []byte) ([]*x509.Certificate, error) {
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseCertificate, err)
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}
	return p.Content.SignedData.Certificates, nil
}

// EncodePEM encodes a certificate to PEM format.
func (c *Certificate) EncodePEM(cert *x509.Certificate) []byte {
	block := pem.Block{
		Type:  c.certBlockType,
		Bytes: cert.Raw,
	}
	return pem.EncodeToMemory(&block)
}

// EncodeMultiplePEM encodes multiple certificates to PEM format.
func (c *Certificate) EncodeMultiplePEM(certs []*x509.Certificate) []byte {
	var data []byte

	for _, cert := range certs {
		data = append(data, c.EncodePEM(cert)...)
	}

	return data
}
