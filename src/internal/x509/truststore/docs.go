// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package truststore turns bundled certificate material into a trust [Context].
//
// A Context carries an in-memory anchor store seeded with the pinned
// certificate (under a fixed alias) and, optionally, the certificates of a
// chain bundle (under alias0, alias1, ... in stream order). From that store it
// derives a [crypto/tls.Config] that validates the peer's certificate path
// against those anchors only, without hostname checks, and an
// [x509pin.Verifier] bound to the very same pinned certificate.
//
// A Context is immutable once built and safe for concurrent use.
package truststore
