// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package testutil

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Recorder is a logger that keeps every line in memory.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	lines  []string
	errors []string
}

// Printf records an info line.
func (r *Recorder) Printf(format string, v ...any) { r.add(fmt.Sprintf(format, v...), false) }

// Println records an info line.
func (r *Recorder) Println(v ...any) { r.add(strings.TrimSuffix(fmt.Sprintln(v...), "\n"), false) }

// Error records an error line.
func (r *Recorder) Error(msg string, cause error) {
	if cause != nil {
		msg = msg + ": " + cause.Error()
	}
	r.add(msg, true)
}

// SetOutput is a no-op.
func (r *Recorder) SetOutput(io.Writer) {}

// Lines returns a copy of every recorded line, info and error alike.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// Errors returns a copy of the recorded error lines.
func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}

// Contains reports whether any recorded line contains substr.
func (r *Recorder) Contains(substr string) bool {
	for _, l := range r.Lines() {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func (r *Recorder) add(line string, isErr bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
	if isErr {
		r.errors = append(r.errors, line)
	}
}
