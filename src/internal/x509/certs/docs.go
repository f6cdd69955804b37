// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs decodes the certificate material the pinning core is fed:
// a single pinned [X.509] certificate and an optional chain bundle, each in
// [PEM], DER, or [PKCS7] form. It also computes and parses SHA-256
// fingerprints used to cross-check bundled pins from the command line.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
