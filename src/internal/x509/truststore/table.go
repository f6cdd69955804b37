// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package truststore

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	x509certs "github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/x509/certs"
)

// RenderTable renders the anchor store of c as a markdown table: one row per
// alias with subject, issuer, expiry, a fingerprint prefix, and whether the
// row is the pinned certificate.
func RenderTable(c *Context) string {
	if c == nil || len(c.anchors) == 0 {
		return "No trust anchors to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	headers := []string{"#", "Alias", "Subject", "Issuer", "Valid Until", "SHA-256", "Pinned"}
	table.Header(headers)

	pinned := c.Pinned()
	var rows [][]string
	for i, a := range c.anchors {
		mark := ""
		if a.Cert == pinned {
			mark = "yes"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			a.Alias,
			a.Cert.Subject.CommonName,
			a.Cert.Issuer.CommonName,
			a.Cert.NotAfter.Format("2006-01-02"),
			x509certs.FingerprintOf(a.Cert).Truncate(8),
			mark,
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
