// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/tls-cert-pinning/src/cli"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/pinning"
	verpkg "github.com/H0llyW00dzZ/tls-cert-pinning/src/version"
)

func TestVersionInit(t *testing.T) {
	assert.NotEmpty(t, version, "version should not be empty after init")

	if version != verpkg.Version {
		// set by ldflags
		t.Logf("version set by ldflags: %s (package version: %s)", version, verpkg.Version)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "Success", err: nil, expected: 0},
		{name: "Probe Rejected", err: pinning.ErrPeerNotPinned, expected: exitNotPinned},
		{
			name:     "Fetch Handshake Rejected",
			err:      &url.Error{Op: "Get", URL: "https://api.example", Err: pinning.ErrPeerNotPinned},
			expected: exitNotPinned,
		},
		{
			name:     "Fingerprint Mismatch",
			err:      fmt.Errorf("%w: got A, want B", cli.ErrFingerprintMismatch),
			expected: exitFingerprint,
		},
		{name: "Other Failure", err: errors.New("boom"), expected: exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCode(tt.err))
		})
	}
}
