// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pinning wires pinned trust contexts into outbound HTTPS connections.
//
// A [Registry] lazily builds at most one trust context per [Mode] (primary and
// fallback) from bundled certificate resources, caches it for the lifetime of
// the registry, and attaches it to any [Connection]. [Transport] adapts an
// [net/http.Transport] to that interface so ordinary HTTP clients can be
// pinned:
//
//	reg := pinning.NewRegistry(resource.NewDirProvider("certs", nil), truststore.NewBuilder(log), log)
//	client, err := reg.Client(pinning.NewHTTPConfig(version.Version), false)
//	if err != nil {
//		return err
//	}
//	resp, err := client.Get("https://api.example.net/")
//
// Hostnames are never verified. A connection is accepted when the peer's
// certificate path leads to an anchor of the selected context and the pinned
// certificate itself is part of the presented chain.
package pinning
