// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// FallbackName is reported when os.Args carries no program name.
const FallbackName = "tls-cert-pinning"

// GetExecutableName returns the name the program was invoked as, without
// directories and without a trailing ".exe", for use in CLI usage strings.
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return FallbackName
	}
	return baseName(os.Args[0])
}

// baseName strips both '/' and '\' separated directories from arg0, so a
// Windows path is handled on a Unix host and the reverse.
func baseName(arg0 string) string {
	name := filepath.Base(arg0)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".exe")
	if name == "" || name == "." || name == string(filepath.Separator) {
		return FallbackName
	}
	return name
}
