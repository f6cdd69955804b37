// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for informational and error output.
//
// Logging is fire-and-forget: implementations must never panic or block
// callers on a failed write, since the trust decision paths log on every step.
type Logger interface {
	// Printf formats and prints an informational message.
	Printf(format string, v ...any)
	// Println prints an informational message with a newline.
	Println(v ...any)
	// Error prints an error message together with its cause.
	// A nil cause is allowed.
	Error(msg string, cause error)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Error prints msg prefixed with "error:" and followed by the cause, if any.
func (c *CLILogger) Error(msg string, cause error) {
	if cause == nil {
		c.logger.Printf("error: %s", msg)
		return
	}
	c.logger.Printf("error: %s: %v", msg, cause)
}

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger with one JSON object per line.
// It can be silenced entirely, which is what library callers that embed the
// pinning core without a diagnostics sink get by default (see [Discard]).
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// entry is a single structured log line.
type entry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Cause   string `json:"cause,omitempty"`
}

// NewJSONLogger creates a new structured logger writing to writer.
// A nil writer discards output.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
	}
}

// Discard returns a Logger that drops everything.
func Discard() Logger { return NewJSONLogger(io.Discard, true) }

// Printf formats and logs an info-level message.
//
// Printf is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.write(entry{Level: "info", Message: fmt.Sprintf(format, v...)})
}

// Println logs an info-level message.
//
// Println is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.write(entry{Level: "info", Message: fmt.Sprint(v...)})
}

// Error logs an error-level message with the cause in its own field.
//
// Error is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) Error(msg string, cause error) {
	if j.silent {
		return
	}
	e := entry{Level: "error", Message: msg}
	if cause != nil {
		e.Cause = cause.Error()
	}
	j.write(e)
}

// write encodes e through a pooled buffer and emits it as a single line.
func (j *JSONLogger) write(e entry) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(e); err != nil {
		return
	}

	j.mu.Lock()
	_, _ = j.writer.Write(buf.Bytes())
	j.mu.Unlock()
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}
