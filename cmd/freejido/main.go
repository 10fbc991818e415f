// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

// Package main is the entry point for the Freejido command-line client.
//
// Freejido curates places under user-created topics: browse a topic's places
// by recommendation or distance, vote on them, comment, and find topics by
// typing Hangul initial consonants.
//
// # Startup Order
//
//  1. Configuration: defaults, YAML file and environment (koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Vote snapshot store: BadgerDB directory or in-memory
//  4. Entity store and sample data (deterministic for a given seed)
//  5. Vote restore: persisted votes are replayed onto place counters
//  6. Location: the configured reference position, if any
//
// # Usage
//
// With arguments, one command runs and the process exits:
//
//	freejido topics
//	freejido suggest ㅈㅁ
//	freejido places 1 recommend
//	freejido vote 3 like
//
// Without arguments, commands are read line by line from standard input.
// Run "help" for the full command list.
//
// # Signal Handling
//
// SIGINT and SIGTERM stop the input loop; the vote store is closed before exit.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/freejido/freejido/internal/config"
	"github.com/freejido/freejido/internal/curation"
	"github.com/freejido/freejido/internal/location"
	"github.com/freejido/freejido/internal/logging"
	"github.com/freejido/freejido/internal/persist"
	"github.com/freejido/freejido/internal/seed"
	"github.com/freejido/freejido/internal/store"
	"github.com/freejido/freejido/internal/votes"
)

// snapshotStore is a votes.SnapshotStore that must be closed on exit.
type snapshotStore interface {
	votes.SnapshotStore
	io.Closer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, in io.Reader, out io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	logging.Init(cfg.Logging.ToLogging())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.ContextWithNewSessionID(ctx)

	snapshots, err := openSnapshotStore(cfg.Votes)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to open vote store")
		return 1
	}
	defer func() {
		if err := snapshots.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing vote store")
		}
	}()

	svc, err := buildService(ctx, cfg, snapshots)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize")
		return 1
	}

	cli := newCLI(svc, out)
	if len(args) > 0 {
		if err := cli.execute(ctx, args); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := cli.loop(ctx, in); err != nil {
		logging.Error().Err(err).Msg("Input loop failed")
		return 1
	}
	return 0
}

func openSnapshotStore(cfg config.VotesConfig) (snapshotStore, error) {
	if cfg.Store == config.VoteStoreMemory {
		logging.Info().Msg("Votes kept in memory only")
		return persist.NewMemoryStore(), nil
	}

	if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
		return nil, fmt.Errorf("create vote store directory: %w", err)
	}
	s, err := persist.OpenBadger(cfg.Path)
	if err != nil {
		return nil, err
	}
	logging.Info().Str("path", cfg.Path).Msg("Vote store opened")
	return s, nil
}

func buildService(ctx context.Context, cfg *config.Config, snapshots votes.SnapshotStore) (*curation.Service, error) {
	st := store.New(store.WithGridCellSize(cfg.Map.GridCellSize))

	if cfg.Seed.Enabled {
		if _, err := seed.Load(st, cfg.Seed.RandomSeed, cfg.Seed.PlacesPerTopic); err != nil {
			return nil, fmt.Errorf("load sample data: %w", err)
		}
	}

	tracker := votes.New(st, snapshots)
	tracker.Restore(ctx)

	center := cfg.Map.FallbackCenter()
	resolver := location.NewResolver(location.NewStaticProvider(cfg.Map.Reference()), &center, cfg.Map.Zoom)

	stats := st.Stats()
	logging.Info().
		Int("topics", stats.Topics).
		Int("places", stats.Places).
		Str("votes_store", cfg.Votes.Store).
		Bool("located", cfg.Map.ReferenceEnabled).
		Msg("Freejido ready")

	return curation.New(st, tracker, resolver, curation.Options{
		MaxSuggestions: cfg.Search.MaxSuggestions,
		NearbyRadius:   cfg.Map.NearbyRadius,
	}), nil
}
