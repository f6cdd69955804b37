// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resource

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ErrUnknownResource indicates an ID with no file name mapped to it.
var ErrUnknownResource = errors.New("resource: unknown resource")

// ID identifies a bundled certificate resource.
type ID int

const (
	// PrimaryCertificate is the pinned certificate of the primary server.
	PrimaryCertificate ID = iota
	// FallbackCertificate is the pinned certificate of the fallback server.
	FallbackCertificate
	// ChainBundle holds intermediates loaded alongside the primary certificate.
	ChainBundle
)

// String returns a short name for the ID.
func (id ID) String() string {
	switch id {
	case PrimaryCertificate:
		return "primary certificate"
	case FallbackCertificate:
		return "fallback certificate"
	case ChainBundle:
		return "chain bundle"
	default:
		return fmt.Sprintf("resource(%d)", int(id))
	}
}

// Provider opens certificate resources. Callers close the returned stream.
//
// Implementations must be safe for concurrent use.
type Provider interface {
	Open(id ID) (io.ReadCloser, error)
}

// Names maps resource IDs to file names.
type Names map[ID]string

// DefaultNames returns the file names used when none are configured.
func DefaultNames() Names {
	return Names{
		PrimaryCertificate:  "ssl.crt",
		FallbackCertificate: "fssl.crt",
		ChainBundle:         "sfbundle.crt",
	}
}

// FSProvider serves resources from a file system.
type FSProvider struct {
	fsys  fs.FS
	names Names
}

// NewFSProvider returns a Provider reading from fsys. Entries missing from
// names fall back to [DefaultNames].
func NewFSProvider(fsys fs.FS, names Names) *FSProvider {
	merged := DefaultNames()
	for id, name := range names {
		if name != "" {
			merged[id] = name
		}
	}
	return &FSProvider{fsys: fsys, names: merged}
}

// NewDirProvider returns a Provider reading from the directory dir.
func NewDirProvider(dir string, names Names) *FSProvider {
	return NewFSProvider(os.DirFS(dir), names)
}

// Name returns the file name mapped to id.
func (p *FSProvider) Name(id ID) (string, bool) {
	name, ok := p.names[id]
	return name, ok
}

// Open opens the file mapped to id.
func (p *FSProvider) Open(id ID) (io.ReadCloser, error) {
	name, ok := p.names[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, id)
	}

	f, err := p.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("resource: open %s (%s): %w", id, name, err)
	}
	return f, nil
}
