// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-cert-pinning/src/config"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/helper/posix"
	x509certs "github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/x509/certs"
	x509pin "github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/x509/pin"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/x509/truststore"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/logger"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/pinning"
)

var (
	// OperationPerformed is set once a subcommand starts its work.
	OperationPerformed bool
	// OperationPerformedSuccessfully is set once a subcommand finishes without error.
	OperationPerformedSuccessfully bool
)

var (
	// ErrFingerprintMismatch is returned by inspect when the pinned
	// certificate does not match --expect-fingerprint.
	ErrFingerprintMismatch = errors.New("cli: pinned certificate fingerprint mismatch")
	// ErrUnexpectedStatus is returned by fetch for a non-2xx response.
	ErrUnexpectedStatus = errors.New("cli: unexpected HTTP status")
)

// rootOptions carries the persistent flags and what is derived from them
// before a subcommand runs.
type rootOptions struct {
	version    string
	configFile string
	jsonLog    bool

	log      logger.Logger
	cfg      *config.Config
	registry *pinning.Registry
}

// Execute runs the root command with ctx and reports the first error.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// NewRootCommand builds the tls-cert-pinning command tree. Diagnostics go
// to log unless JSON logging is selected, in which case they are written as
// JSON lines to the command's error stream.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	if log == nil {
		log = logger.NewCLILogger()
	}
	o := &rootOptions{version: version, log: log}
	exeName := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:   exeName,
		Short: "TLS certificate pinning client",
		Long: `Builds trust contexts from bundled pinned certificates and uses them to
inspect the trust anchors, fetch URLs, or probe endpoints. A peer is accepted
only when it presents the pinned certificate, whatever its hostname.`,
		Example: fmt.Sprintf(`  %[1]s inspect --expect-fingerprint AA:BB:...
  %[1]s fetch https://api.example.com/health
  %[1]s probe api.example.com:443 --fallback`, exeName),
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: o.prepare,
	}

	rootCmd.PersistentFlags().StringVar(&o.configFile, "config", "", "path to configuration file (.json, .yaml, .yml)")
	rootCmd.PersistentFlags().BoolVar(&o.jsonLog, "json-log", false, "write diagnostics as JSON lines")

	rootCmd.AddCommand(
		newInspectCmd(o),
		newFetchCmd(o),
		newProbeCmd(o),
	)
	return rootCmd
}

// prepare loads the configuration and builds the registry shared by all
// subcommands.
func (o *rootOptions) prepare(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return err
	}
	if o.jsonLog {
		cfg.Log.Format = "json"
	}
	o.log = cfg.Logger(cmd.ErrOrStderr(), o.log)

	reg, err := cfg.Registry(o.log)
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.registry = reg
	return nil
}

func newInspectCmd(o *rootOptions) *cobra.Command {
	var (
		fallback   bool
		expect     string
		asPEM      bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the trust anchors of a pinned trust context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			OperationPerformed = true

			var want x509certs.Fingerprint
			if expect != "" {
				fp, err := x509certs.ParseFingerprint(expect)
				if err != nil {
					return err
				}
				want = fp
			}

			tc, err := o.registry.TrustContext(fallback)
			if err != nil {
				return err
			}

			got := x509certs.FingerprintOf(tc.Pinned())
			if err := writeOutput(cmd.OutOrStdout(), outputFile, renderAnchors(tc, fallback, asPEM)); err != nil {
				return err
			}

			if expect != "" && got != want {
				return fmt.Errorf("%w: got %s, want %s", ErrFingerprintMismatch, got, want)
			}

			OperationPerformedSuccessfully = true
			return nil
		},
	}

	cmd.Flags().BoolVar(&fallback, "fallback", false, "use the fallback pinned certificate")
	cmd.Flags().StringVar(&expect, "expect-fingerprint", "", "fail unless the pinned certificate has this SHA-256 fingerprint")
	cmd.Flags().BoolVar(&asPEM, "pem", false, "output the anchor store as a PEM bundle instead of a table")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	return cmd
}

// renderAnchors formats the anchor store of tc as a PEM bundle, pinned
// certificate first, or as a table followed by the pinned fingerprint.
func renderAnchors(tc *truststore.Context, fallback, asPEM bool) []byte {
	anchors := tc.Anchors()
	if asPEM {
		certs := make([]*x509.Certificate, 0, len(anchors))
		for _, a := range anchors {
			certs = append(certs, a.Cert)
		}
		return x509certs.New().EncodeMultiplePEM(certs)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "Mode: %s\n\n", pinning.ModeOf(fallback))
	b.WriteString(truststore.RenderTable(tc))
	fmt.Fprintf(&b, "\nPinned SHA-256: %s\n", x509certs.FingerprintOf(tc.Pinned()))
	return b.Bytes()
}

func newFetchCmd(o *rootOptions) *cobra.Command {
	var (
		fallback   bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "fetch URL",
		Short: "GET a URL over a pinned connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			OperationPerformed = true

			hc := o.cfg.HTTPConfig(o.version)
			client, err := o.registry.Client(hc, fallback)
			if err != nil {
				return err
			}

			status, body, err := pinning.Fetch(cmd.Context(), client, hc, args[0])
			if err != nil {
				return err
			}
			o.log.Printf("HTTP %d, %d bytes", status, len(body))

			if err := writeOutput(cmd.OutOrStdout(), outputFile, body); err != nil {
				return err
			}
			if status < 200 || status > 299 {
				return fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
			}

			OperationPerformedSuccessfully = true
			return nil
		},
	}

	cmd.Flags().BoolVar(&fallback, "fallback", false, "use the fallback pinned certificate")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	return cmd
}

func newProbeCmd(o *rootOptions) *cobra.Command {
	var fallback bool

	cmd := &cobra.Command{
		Use:   "probe HOST:PORT",
		Short: "Handshake with an endpoint and report the pin decision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			OperationPerformed = true

			addr := args[0]
			host, _, err := net.SplitHostPort(addr)
			if err != nil {
				return err
			}

			tc, err := o.registry.TrustContext(fallback)
			if err != nil {
				return err
			}

			conn, err := tc.Dial(cmd.Context(), "tcp", addr)
			if err != nil {
				return err
			}
			defer conn.Close()

			cs := conn.ConnectionState()
			accepted := tc.Verifier().Verify(host, x509pin.ConnectionState(cs))

			out := cmd.OutOrStdout()
			for i, cert := range cs.PeerCertificates {
				fmt.Fprintf(out, "%d: %s (%s)\n", i, cert.Subject.String(), x509certs.FingerprintOf(cert).Truncate(8))
			}
			fmt.Fprintf(out, "Pinned: %t\n", accepted)

			if !accepted {
				return pinning.ErrPeerNotPinned
			}

			OperationPerformedSuccessfully = true
			return nil
		},
	}

	cmd.Flags().BoolVar(&fallback, "fallback", false, "use the fallback pinned certificate")
	return cmd
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing to output file: %w", err)
	}
	return nil
}
