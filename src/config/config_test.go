// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config_test

import (
	"bytes"
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-cert-pinning/src/config"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/testutil"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/x509/truststore"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/logger"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/pinning"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/resource"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		env      map[string]string
		viaEnv   bool
		wantErr  bool
		testFunc func(t *testing.T, c *config.Config)
	}{
		{
			name: "Defaults",
			testFunc: func(t *testing.T, c *config.Config) {
				assert.Equal(t, truststore.DefaultAlias, c.Pin.Alias)
				assert.Equal(t, "1.2", c.Pin.MinTLSVersion)
				assert.Equal(t, ".", c.Resources.Dir)
				assert.Equal(t, 10, c.HTTP.Timeout)
				assert.Equal(t, "text", c.Log.Format)
			},
		},
		{
			name: "YAML",
			file: "pinning.yaml",
			content: `pin:
  alias: api.pinned
  minTLSVersion: "1.3"
resources:
  dir: /etc/pinning
  chainBundle: roots.pem
http:
  timeoutSeconds: 5
  userAgent: probe/1
log:
  format: json
`,
			testFunc: func(t *testing.T, c *config.Config) {
				assert.Equal(t, "api.pinned", c.Pin.Alias)
				assert.Equal(t, "1.3", c.Pin.MinTLSVersion)
				assert.Equal(t, "/etc/pinning", c.Resources.Dir)
				assert.Equal(t, "roots.pem", c.Resources.ChainBundle)
				assert.Equal(t, 5, c.HTTP.Timeout)
				assert.Equal(t, "probe/1", c.HTTP.UserAgent)
				assert.Equal(t, "json", c.Log.Format)
			},
		},
		{
			name:    "JSON With Invalid Values Reset",
			file:    "pinning.json",
			content: `{"pin":{"alias":""},"http":{"timeoutSeconds":-1}}`,
			testFunc: func(t *testing.T, c *config.Config) {
				assert.Equal(t, truststore.DefaultAlias, c.Pin.Alias)
				assert.Equal(t, 10, c.HTTP.Timeout)
				assert.Equal(t, "1.2", c.Pin.MinTLSVersion)
			},
		},
		{
			name:    "Env Config File And Cert Dir",
			file:    "env.yml",
			content: "resources:\n  dir: ignored\n",
			env:     map[string]string{config.EnvCertDir: "/srv/certs"},
			viaEnv:  true,
			testFunc: func(t *testing.T, c *config.Config) {
				assert.Equal(t, "/srv/certs", c.Resources.Dir)
			},
		},
		{
			name:    "Malformed YAML",
			file:    "bad.yaml",
			content: "pin: [",
			wantErr: true,
		},
		{
			name:    "Malformed JSON",
			file:    "bad.json",
			content: "{",
			wantErr: true,
		},
		{
			name:    "Unsupported TLS Version",
			file:    "old.yaml",
			content: "pin:\n  minTLSVersion: \"1.0\"\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvConfigFile, "")
			t.Setenv(config.EnvCertDir, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			if tt.file != "" {
				path = writeFile(t, t.TempDir(), tt.file, tt.content)
			}
			if tt.viaEnv {
				t.Setenv(config.EnvConfigFile, path)
				path = ""
			}

			c, err := config.Load(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.testFunc(t, c)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseTLSVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    uint16
		wantErr bool
	}{
		{in: "1.2", want: tls.VersionTLS12},
		{in: "1.3", want: tls.VersionTLS13},
		{in: "TLSv1.2", want: tls.VersionTLS12},
		{in: " tls 1.3 ", want: tls.VersionTLS13},
		{in: "TLSv1", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := config.ParseTLSVersion(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, config.ErrUnsupportedTLSVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Wiring(t *testing.T) {
	dir := t.TempDir()
	primary := testutil.NewSelfSigned(t, "primary.example")
	fallback := testutil.NewSelfSigned(t, "fallback.example")
	root := testutil.NewSelfSigned(t, "Root")
	writeFile(t, dir, "api.crt", string(primary.PEM()))
	writeFile(t, dir, "fssl.crt", string(fallback.PEM()))
	writeFile(t, dir, "sfbundle.crt", string(root.PEM()))

	c := config.Default()
	c.Pin.Alias = "api"
	c.Pin.MinTLSVersion = "1.3"
	c.Resources.Dir = dir
	c.Resources.Primary = "api.crt"
	c.HTTP.Timeout = 3
	c.HTTP.UserAgent = "ua/1"

	t.Run("Provider", func(t *testing.T) {
		p := c.Provider()
		name, ok := p.Name(resource.PrimaryCertificate)
		assert.True(t, ok)
		assert.Equal(t, "api.crt", name)
		name, _ = p.Name(resource.ChainBundle)
		assert.Equal(t, "sfbundle.crt", name)
	})

	t.Run("Registry", func(t *testing.T) {
		reg, err := c.Registry(logger.Discard())
		require.NoError(t, err)

		tc, err := reg.Context(pinning.Primary)
		require.NoError(t, err)
		assert.Equal(t, uint16(tls.VersionTLS13), tc.TLSConfig().MinVersion)
		require.Len(t, tc.Anchors(), 2)
		assert.Equal(t, "api", tc.Anchors()[0].Alias)
		assert.Equal(t, "alias0", tc.Anchors()[1].Alias)
		assert.True(t, tc.Pinned().Equal(primary.Cert))
	})

	t.Run("HTTPConfig", func(t *testing.T) {
		h := c.HTTPConfig("9.9.9")
		assert.Equal(t, 3*time.Second, h.Timeout)
		assert.Equal(t, "ua/1", h.GetUserAgent())
	})

	t.Run("Invalid Version", func(t *testing.T) {
		bad := config.Default()
		bad.Pin.MinTLSVersion = "2"
		_, err := bad.Registry(nil)
		assert.ErrorIs(t, err, config.ErrUnsupportedTLSVersion)
	})

	t.Run("Logger", func(t *testing.T) {
		var buf bytes.Buffer
		j := config.Default()
		j.Log.Format = "JSON"
		jl := j.Logger(&buf, &testutil.Recorder{})
		assert.IsType(t, &logger.JSONLogger{}, jl)
		jl.Println("hello")
		assert.Contains(t, buf.String(), `"message":"hello"`)

		rec := &testutil.Recorder{}
		assert.Same(t, rec, config.Default().Logger(&buf, rec))

		buf.Reset()
		tl := config.Default().Logger(&buf, nil)
		assert.IsType(t, &logger.CLILogger{}, tl)
		tl.Println("plain")
		assert.Equal(t, "plain\n", buf.String())
	})
}
