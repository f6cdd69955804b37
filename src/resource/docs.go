// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package resource opens the certificate byte streams bundled with the
// application: the primary pinned certificate, the fallback pinned
// certificate, and the chain bundle that accompanies the primary one.
//
// The pinning core treats every stream as opaque; decoding happens in the
// trust-store builder.
package resource
