// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pinning_test

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/tls-cert-pinning/src/resource"
)

// countingProvider serves in-memory resources, counts every open, and can be
// slowed down to widen race windows.
type countingProvider struct {
	mu    sync.Mutex
	files map[resource.ID][]byte
	opens map[resource.ID]int
	delay time.Duration
}

func newCountingProvider(files map[resource.ID][]byte) *countingProvider {
	return &countingProvider{files: files, opens: make(map[resource.ID]int)}
}

func (p *countingProvider) Open(id resource.ID) (io.ReadCloser, error) {
	p.mu.Lock()
	p.opens[id]++
	data, ok := p.files[id]
	delay := p.delay
	p.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if !ok {
		return nil, fmt.Errorf("open %s: %w", id, fs.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (p *countingProvider) set(id resource.ID, data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.files[id] = data
}

func (p *countingProvider) count(id resource.ID) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.opens[id]
}
