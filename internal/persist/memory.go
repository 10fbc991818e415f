// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package persist

import (
	"context"
	"sync"
)

// MemoryStore keeps the snapshot in memory. Votes survive a Tracker rebuild
// within one process but not a restart.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte

	// FailSave, when set, is returned by Save instead of storing.
	FailSave error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the last saved snapshot.
func (m *MemoryStore) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	return append([]byte(nil), m.data...), nil
}

// Save stores a copy of data.
func (m *MemoryStore) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSave != nil {
		return m.FailSave
	}
	m.data = append([]byte(nil), data...)
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
