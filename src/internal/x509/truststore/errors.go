// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package truststore

import "errors"

var (
	// ErrCertificateParse indicates that the pinned certificate could not be decoded.
	ErrCertificateParse = errors.New("truststore: cannot parse pinned certificate")

	// ErrChainParse indicates that the chain bundle could not be decoded.
	ErrChainParse = errors.New("truststore: cannot parse chain bundle")

	// ErrResourceLoad indicates that certificate bytes could not be opened or read.
	ErrResourceLoad = errors.New("truststore: cannot read certificate resource")

	// ErrTrustStoreInit indicates that the anchor store or TLS configuration
	// could not be derived.
	ErrTrustStoreInit = errors.New("truststore: cannot initialize trust store")

	// ErrUntrustedPeer indicates that the peer's certificate path does not
	// lead to any anchor in the store.
	ErrUntrustedPeer = errors.New("truststore: peer certificate path not trusted")
)
