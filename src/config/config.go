// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/x509/truststore"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/logger"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/pinning"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/resource"
)

const (
	// EnvConfigFile names the environment variable holding the config file
	// path, consulted when no path is given explicitly.
	EnvConfigFile = "PINNED_TLS_CONFIG_FILE"
	// EnvCertDir names the environment variable that overrides resources.dir.
	EnvCertDir = "PINNED_TLS_CERT_DIR"

	defaultTimeoutSeconds = 10
)

// ErrUnsupportedTLSVersion is returned for a pin.minTLSVersion other than
// "1.2" or "1.3".
var ErrUnsupportedTLSVersion = errors.New("config: unsupported TLS version")

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config is the tls-cert-pinning configuration file.
//
// Every field is optional; [Load] fills in defaults for anything left out.
type Config struct {
	// Pin: trust store settings
	Pin struct {
		// Alias: anchor alias of the pinned certificate
		Alias string `json:"alias" yaml:"alias"`
		// MinTLSVersion: lowest protocol version offered, "1.2" or "1.3"
		MinTLSVersion string `json:"minTLSVersion" yaml:"minTLSVersion"`
	} `json:"pin" yaml:"pin"`

	// Resources: where the certificate material lives
	Resources struct {
		// Dir: directory holding the certificate files
		Dir string `json:"dir" yaml:"dir"`
		// Primary: file name of the primary pinned certificate
		Primary string `json:"primary,omitempty" yaml:"primary,omitempty"`
		// Fallback: file name of the fallback pinned certificate
		Fallback string `json:"fallback,omitempty" yaml:"fallback,omitempty"`
		// ChainBundle: file name of the chain bundle used by primary mode
		ChainBundle string `json:"chainBundle,omitempty" yaml:"chainBundle,omitempty"`
	} `json:"resources" yaml:"resources"`

	// HTTP: client settings for pinned requests
	HTTP struct {
		// Timeout: request timeout in seconds
		Timeout int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
		// UserAgent: overrides the generated User-Agent header
		UserAgent string `json:"userAgent,omitempty" yaml:"userAgent,omitempty"`
	} `json:"http" yaml:"http"`

	// Log: diagnostics output
	Log struct {
		// Format: "text" or "json"
		Format string `json:"format" yaml:"format"`
	} `json:"log" yaml:"log"`
}

// Default returns a Config holding the built-in defaults.
func Default() *Config {
	c := &Config{}
	c.Pin.Alias = truststore.DefaultAlias
	c.Pin.MinTLSVersion = "1.2"
	c.Resources.Dir = "."
	c.HTTP.Timeout = defaultTimeoutSeconds
	c.Log.Format = "text"
	return c
}

// detectFormat determines the configuration file format based on file extension.
// Extension matching is case-insensitive; anything unrecognized is read as JSON.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// unmarshal decodes data into c according to f.
func unmarshal(data []byte, c *Config, f format) error {
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load loads the configuration from a JSON or YAML file or applies defaults.
//
// Parameters:
//   - path: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config with defaults applied
//   - An error if the configuration file cannot be read or parsed
//
// Configuration Priority:
//  1. Default values are set
//  2. PINNED_TLS_CONFIG_FILE is checked if path is empty
//  3. Config file values override defaults
//  4. PINNED_TLS_CERT_DIR overrides resources.dir
func Load(path string) (*Config, error) {
	c := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := unmarshal(data, c, detectFormat(path)); err != nil {
			return nil, err
		}

		// Empty or invalid values fall back to defaults.
		if c.Pin.Alias == "" {
			c.Pin.Alias = truststore.DefaultAlias
		}
		if c.Pin.MinTLSVersion == "" {
			c.Pin.MinTLSVersion = "1.2"
		}
		if c.Resources.Dir == "" {
			c.Resources.Dir = "."
		}
		if c.HTTP.Timeout <= 0 {
			c.HTTP.Timeout = defaultTimeoutSeconds
		}
		if c.Log.Format == "" {
			c.Log.Format = "text"
		}
	}

	if dir := os.Getenv(EnvCertDir); dir != "" {
		c.Resources.Dir = dir
	}

	if _, err := ParseTLSVersion(c.Pin.MinTLSVersion); err != nil {
		return nil, err
	}

	return c, nil
}

// ParseTLSVersion maps "1.2" or "1.3" (optionally prefixed with "TLS" or
// "TLSv") to the crypto/tls constant.
func ParseTLSVersion(s string) (uint16, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "TLSV")
	v = strings.TrimPrefix(v, "TLS")
	switch strings.TrimSpace(v) {
	case "1.2":
		return tls.VersionTLS12, nil
	case "1.3":
		return tls.VersionTLS13, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedTLSVersion, s)
	}
}

// Logger returns the logger selected by log.format. JSON lines are written
// to w; the text format uses text, or a CLILogger writing to w when text is nil.
func (c *Config) Logger(w io.Writer, text logger.Logger) logger.Logger {
	if strings.EqualFold(c.Log.Format, "json") {
		return logger.NewJSONLogger(w, false)
	}
	if text != nil {
		return text
	}
	l := logger.NewCLILogger()
	if w != nil {
		l.SetOutput(w)
	}
	return l
}

// Builder returns a trust context builder for the pin settings.
func (c *Config) Builder(log logger.Logger) (*truststore.Builder, error) {
	v, err := ParseTLSVersion(c.Pin.MinTLSVersion)
	if err != nil {
		return nil, err
	}
	return truststore.NewBuilder(log,
		truststore.WithAlias(c.Pin.Alias),
		truststore.WithMinVersion(v),
	), nil
}

// Provider returns a provider reading the configured certificate files.
func (c *Config) Provider() *resource.FSProvider {
	return resource.NewDirProvider(c.Resources.Dir, resource.Names{
		resource.PrimaryCertificate:  c.Resources.Primary,
		resource.FallbackCertificate: c.Resources.Fallback,
		resource.ChainBundle:         c.Resources.ChainBundle,
	})
}

// Registry wires the provider and builder into a [pinning.Registry].
func (c *Config) Registry(log logger.Logger) (*pinning.Registry, error) {
	b, err := c.Builder(log)
	if err != nil {
		return nil, err
	}
	return pinning.NewRegistry(c.Provider(), b, log), nil
}

// HTTPConfig returns the client settings for version.
func (c *Config) HTTPConfig(version string) *pinning.HTTPConfig {
	h := pinning.NewHTTPConfig(version)
	h.Timeout = time.Duration(c.HTTP.Timeout) * time.Second
	h.UserAgent = c.HTTP.UserAgent
	return h
}
