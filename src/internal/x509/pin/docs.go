// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509pin implements the per-handshake pin check.
//
// A [Verifier] is bound to exactly one pinned certificate and accepts a peer
// if and only if that certificate appears in the chain the peer presented.
// Membership is decided by DER equality, never by subject name.
//
// The hostname handed to [Verifier.Verify] is logged and otherwise ignored.
// Trust in the pinned certificate replaces hostname verification entirely;
// a peer presenting the pinned certificate is accepted under any name.
package x509pin
