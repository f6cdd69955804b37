// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/tls-cert-pinning/src/cli"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/logger"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/pinning"
	verpkg "github.com/H0llyW00dzZ/tls-cert-pinning/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	log := logger.NewCLILogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		if err != nil {
			// cobra already printed the error
			code := exitCode(err)
			if code == exitNotPinned {
				log.Println("Peer rejected: the pinned certificate was not presented.")
			}
			os.Exit(code)
		}
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		os.Exit(130) // Standard exit code for SIGINT
	}

	if cli.OperationPerformedSuccessfully {
		log.Println("Pinned operation completed successfully.")
	}
}

const (
	exitFailure     = 1
	exitNotPinned   = 3
	exitFingerprint = 4
)

// exitCode lets scripts tell a peer that failed the pin, or a bundled
// certificate that is not the expected one, apart from other failures.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, pinning.ErrPeerNotPinned):
		return exitNotPinned
	case errors.Is(err, cli.ErrFingerprintMismatch):
		return exitFingerprint
	default:
		return exitFailure
	}
}
