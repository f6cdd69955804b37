// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pinning

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/H0llyW00dzZ/tls-cert-pinning/src/internal/x509/truststore"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/logger"
	"github.com/H0llyW00dzZ/tls-cert-pinning/src/resource"
)

// ErrUnknownMode indicates a Mode other than Primary or Fallback.
var ErrUnknownMode = errors.New("pinning: unknown mode")

// Mode selects which pinned identity a connection trusts.
type Mode int

const (
	// Primary trusts the primary pinned certificate plus the chain bundle.
	Primary Mode = iota
	// Fallback trusts the fallback pinned certificate alone.
	Fallback
)

// ModeOf maps the caller's fallback flag to a Mode.
func ModeOf(fallback bool) Mode {
	if fallback {
		return Fallback
	}
	return Primary
}

// String returns "primary" or "fallback".
func (m Mode) String() string {
	switch m {
	case Primary:
		return "primary"
	case Fallback:
		return "fallback"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// slot memoizes the trust context of one mode. Reads after the first
// successful build do not take the lock.
type slot struct {
	mu  sync.Mutex
	ctx atomic.Pointer[truststore.Context]
}

// Registry builds and caches one trust context per Mode.
//
// Concurrent first use of a mode results in exactly one build; other callers
// block until it finishes and then share the result. Failed builds are not
// cached, so the next call tries again.
//
// Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	provider resource.Provider
	builder  *truststore.Builder
	log      logger.Logger
	slots    map[Mode]*slot
}

// NewRegistry returns an empty Registry. A nil builder uses
// [truststore.NewBuilder] defaults; a nil log discards diagnostics.
func NewRegistry(provider resource.Provider, builder *truststore.Builder, log logger.Logger) *Registry {
	if log == nil {
		log = logger.Discard()
	}
	if builder == nil {
		builder = truststore.NewBuilder(log)
	}
	return &Registry{
		provider: provider,
		builder:  builder,
		log:      log,
		slots: map[Mode]*slot{
			Primary:  {},
			Fallback: {},
		},
	}
}

// Context returns the trust context of mode, building it on first use.
func (r *Registry) Context(mode Mode) (*truststore.Context, error) {
	s, ok := r.slots[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	if c := s.ctx.Load(); c != nil {
		return c, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.ctx.Load(); c != nil {
		return c, nil
	}

	c, err := r.build(mode)
	if err != nil {
		r.log.Error(fmt.Sprintf("error initializing %s trust context", mode), err)
		return nil, err
	}

	s.ctx.Store(c)
	return c, nil
}

// TrustContext returns the fallback context when fallback is set and the
// primary context otherwise.
func (r *Registry) TrustContext(fallback bool) (*truststore.Context, error) {
	return r.Context(ModeOf(fallback))
}

// Configure attaches the selected trust context to conn.
// conn is left untouched when the context cannot be built.
func (r *Registry) Configure(conn Connection, fallback bool) error {
	tc, err := r.TrustContext(fallback)
	if err != nil {
		return err
	}

	r.log.Println("ssl configure")
	Attach(conn, tc)
	r.log.Println("ssl configure done")
	return nil
}

// Reset forgets every cached context. It exists so tests can reuse a
// Registry; production code never needs it.
func (r *Registry) Reset() {
	for _, s := range r.slots {
		s.mu.Lock()
		s.ctx.Store(nil)
		s.mu.Unlock()
	}
}

// build opens the resources of mode and hands them to the builder.
// Only the primary mode loads the chain bundle.
func (r *Registry) build(mode Mode) (*truststore.Context, error) {
	r.log.Printf("setting up %s trust context", mode)

	id := resource.PrimaryCertificate
	if mode == Fallback {
		id = resource.FallbackCertificate
	}

	primary, err := r.provider.Open(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", truststore.ErrResourceLoad, err)
	}
	defer primary.Close()

	var chain io.Reader
	if mode == Primary {
		bundle, err := r.provider.Open(resource.ChainBundle)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", truststore.ErrResourceLoad, err)
		}
		defer bundle.Close()
		chain = bundle
	}

	return r.builder.Build(primary, chain)
}
