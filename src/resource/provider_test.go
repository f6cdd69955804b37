// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resource_test

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-cert-pinning/src/resource"
)

func readAll(t *testing.T, p resource.Provider, id resource.ID) string {
	t.Helper()

	rc, err := p.Open(id)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestFSProvider(t *testing.T) {
	fsys := fstest.MapFS{
		"ssl.crt":      {Data: []byte("primary")},
		"fssl.crt":     {Data: []byte("fallback")},
		"sfbundle.crt": {Data: []byte("bundle")},
		"custom.pem":   {Data: []byte("custom")},
	}

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Default Names",
			testFunc: func(t *testing.T) {
				p := resource.NewFSProvider(fsys, nil)
				assert.Equal(t, "primary", readAll(t, p, resource.PrimaryCertificate))
				assert.Equal(t, "fallback", readAll(t, p, resource.FallbackCertificate))
				assert.Equal(t, "bundle", readAll(t, p, resource.ChainBundle))
			},
		},
		{
			name: "Override One Name",
			testFunc: func(t *testing.T) {
				p := resource.NewFSProvider(fsys, resource.Names{resource.PrimaryCertificate: "custom.pem"})
				assert.Equal(t, "custom", readAll(t, p, resource.PrimaryCertificate))
				assert.Equal(t, "fallback", readAll(t, p, resource.FallbackCertificate))

				name, ok := p.Name(resource.PrimaryCertificate)
				assert.True(t, ok)
				assert.Equal(t, "custom.pem", name)
			},
		},
		{
			name: "Empty Override Keeps Default",
			testFunc: func(t *testing.T) {
				p := resource.NewFSProvider(fsys, resource.Names{resource.ChainBundle: ""})
				assert.Equal(t, "bundle", readAll(t, p, resource.ChainBundle))
			},
		},
		{
			name: "Missing File",
			testFunc: func(t *testing.T) {
				p := resource.NewFSProvider(fstest.MapFS{}, nil)
				_, err := p.Open(resource.FallbackCertificate)
				assert.ErrorIs(t, err, fs.ErrNotExist)
				assert.ErrorContains(t, err, "fallback certificate")
			},
		},
		{
			name: "Unknown ID",
			testFunc: func(t *testing.T) {
				p := resource.NewFSProvider(fsys, nil)
				_, err := p.Open(resource.ID(42))
				assert.ErrorIs(t, err, resource.ErrUnknownResource)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestDirProvider(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ssl.crt"), []byte("from disk"), 0o600))

	p := resource.NewDirProvider(dir, nil)
	assert.Equal(t, "from disk", readAll(t, p, resource.PrimaryCertificate))

	_, err := p.Open(resource.ChainBundle)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestID_String(t *testing.T) {
	assert.Equal(t, "primary certificate", resource.PrimaryCertificate.String())
	assert.Equal(t, "fallback certificate", resource.FallbackCertificate.String())
	assert.Equal(t, "chain bundle", resource.ChainBundle.String())
	assert.Equal(t, "resource(7)", resource.ID(7).String())
}
