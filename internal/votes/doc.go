// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

// Package votes tracks this user's votes on places and comments and keeps the
// entity store's counters consistent with them.
//
// A user holds at most one of like, dislike or flag per place. Casting the
// recorded kind again cancels it; casting another kind switches, moving one
// count from the old counter to the new one in a single store update.
//
// Place votes are saved as a flat JSON object through a SnapshotStore after
// every applied vote and replayed onto the counters by Restore at startup.
// Comment likes are session-local.
package votes
