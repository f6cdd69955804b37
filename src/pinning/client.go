// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pinning

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/helper/gc"
)

// DefaultMaxBodyBytes caps response bodies read by [Fetch].
const DefaultMaxBodyBytes int64 = 10 << 20

// HTTPConfig holds HTTP client configuration for pinned requests.
type HTTPConfig struct {
	Timeout      time.Duration // HTTP request timeout
	Version      string        // Application version for User-Agent
	UserAgent    string        // Custom User-Agent string, if empty will be constructed from Version
	MaxBodyBytes int64         // Response body cap for Fetch, zero means DefaultMaxBodyBytes
}

// NewHTTPConfig creates a new HTTP configuration with a 10 second timeout.
func NewHTTPConfig(version string) *HTTPConfig {
	return &HTTPConfig{
		Timeout: 10 * time.Second,
		Version: version,
	}
}

// GetUserAgent returns the User-Agent string, constructing it if not set.
func (c *HTTPConfig) GetUserAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return fmt.Sprintf("TLS-Cert-Pinning/%s (+https://github.com/H0llyW00dzZ/tls-cert-pinning)", c.Version)
}

func (c *HTTPConfig) maxBody() int64 {
	if c.MaxBodyBytes > 0 {
		return c.MaxBodyBytes
	}
	return DefaultMaxBodyBytes
}

// Client returns an HTTP client whose transport is pinned to the selected
// trust context.
func (r *Registry) Client(cfg *HTTPConfig, fallback bool) (*http.Client, error) {
	t := NewTransport(nil)
	if err := r.Configure(t, fallback); err != nil {
		return nil, err
	}
	return &http.Client{Timeout: cfg.Timeout, Transport: t}, nil
}

// Fetch performs a GET request for url with client and returns the status
// code and body.
func Fetch(ctx context.Context, client *http.Client, cfg *HTTPConfig, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("User-Agent", cfg.GetUserAgent())

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := gc.ReadAll(resp.Body, cfg.maxBody())
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}
