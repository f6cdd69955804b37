// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for tls-cert-pinning.
// It implements a Cobra-based CLI with three subcommands sharing one pinning
// registry built from the configuration file:
//
//   - inspect: render the anchors of a trust context and optionally check the
//     pinned fingerprint
//   - fetch: perform a pinned HTTPS GET
//   - probe: handshake with an endpoint and print the pin decision
//
// The --fallback flag on each subcommand selects the fallback pinned identity.
package cli
