// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// tls-cert-pinning is a command-line client that talks HTTPS only to peers
// presenting a bundled pinned certificate.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/tls-cert-pinning/cmd/tls-cert-pinning@latest
//
// # Usage
//
//	tls-cert-pinning [--config FILE] [--json-log] COMMAND [FLAGS]
//
// # Commands
//
//	inspect [--fallback] [--expect-fingerprint FP] [--pem] [-o FILE]
//	                                                 Print the trust anchors
//	fetch URL [--fallback] [-o FILE]                 Pinned HTTPS GET
//	probe HOST:PORT [--fallback]                     Handshake and report the pin decision
//
// # Files
//
// By default the certificates are read from the current directory:
//
//	ssl.crt       primary pinned certificate
//	fssl.crt      fallback pinned certificate
//	sfbundle.crt  chain bundle trusted in primary mode
//
// Set PINNED_TLS_CERT_DIR or resources.dir in the configuration file to read
// them from elsewhere.
//
// # Exit Status
//
//	0    success
//	1    any other failure
//	3    the peer did not present the pinned certificate
//	4    inspect --expect-fingerprint did not match
//	130  interrupted
//
// # Examples
//
// Check that the bundled certificate is the one you expect:
//
//	tls-cert-pinning inspect --expect-fingerprint D7:A7:A0:FB:...
//
// Download over the fallback identity:
//
//	tls-cert-pinning fetch --fallback -o status.json https://api.example.com/status
package main
