// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExecutableName(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "Relative path", args: []string{"./pinctl"}, expected: "pinctl"},
		{name: "Just filename", args: []string{"pinctl"}, expected: "pinctl"},
		{name: "Unix absolute path", args: []string{"/usr/local/bin/pinctl"}, expected: "pinctl"},
		{name: "Windows path with .exe", args: []string{`C:\Program Files\pin\pinctl.exe`}, expected: "pinctl"},
		{name: "Mixed separators", args: []string{`C:\tools/bin\pinctl.exe`}, expected: "pinctl"},
		{name: "Empty args", args: []string{}, expected: FallbackName},
		{name: "Empty first arg", args: []string{""}, expected: FallbackName},
		{name: "Only .exe", args: []string{`C:\bin\.exe`}, expected: FallbackName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := os.Args
			os.Args = tt.args
			defer func() { os.Args = orig }()

			assert.Equal(t, tt.expected, GetExecutableName())
		})
	}
}
