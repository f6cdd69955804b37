// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the diagnostics sink used by the pinning core.
// It defines the Logger interface and two implementations: CLILogger for
// human-readable command-line output and JSONLogger for structured JSON lines.
// JSONLogger is thread-safe and encodes through the shared buffer pool.
package logger
