// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

// Package curation combines the entity store, vote tracker, topic search,
// place ranking and location resolver behind one Service used by the CLI.
//
// The Service never mutates counters itself: votes go through votes.Tracker,
// which keeps them consistent with the recorded vote state.
package curation
