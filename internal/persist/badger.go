// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

// Package persist stores the durable vote snapshot. BadgerStore keeps it in an
// embedded BadgerDB directory; MemoryStore keeps it for the process lifetime.
package persist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

// SnapshotKey is the single key under which the place vote snapshot is kept.
const SnapshotKey = "freejido:place-votes"

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("snapshot store closed")

// BadgerStore keeps the vote snapshot in BadgerDB.
type BadgerStore struct {
	mu     sync.RWMutex
	db     *badger.DB
	owned  bool
	closed bool
}

// OpenBadger opens (or creates) a BadgerDB at path and takes ownership of it.
// Badger's own logger is silenced; failures surface as returned errors.
func OpenBadger(path string) (*BadgerStore, error) {
	if path == "" {
		return nil, errors.New("badger path is required")
	}
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", path, err)
	}
	return &BadgerStore{db: db, owned: true}, nil
}

// NewBadgerStore wraps an already open database. Close does not close db.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Load returns the saved snapshot, or nil when nothing has been saved yet.
func (s *BadgerStore) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(SnapshotKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get snapshot: %w", err)
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save replaces the snapshot.
func (s *BadgerStore) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(SnapshotKey), data); err != nil {
			return fmt.Errorf("set snapshot: %w", err)
		}
		return nil
	})
}

// Close releases the database if the store opened it. It is safe to call twice.
func (s *BadgerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if !s.owned {
		return nil
	}
	return s.db.Close()
}
