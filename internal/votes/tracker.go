// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package votes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/freejido/freejido/internal/logging"
	"github.com/freejido/freejido/internal/metrics"
	"github.com/freejido/freejido/internal/models"
)

// CounterStore is the part of the entity store the tracker mutates.
// store.Store satisfies it.
type CounterStore interface {
	HasPlace(id int64) bool
	AdjustPlaceCounters(placeID int64, deltas ...models.CounterDelta) bool
	AdjustCommentLike(placeID, commentID int64, delta int) bool
}

// SnapshotStore persists the serialized place vote map.
// Load returns nil data when nothing has been saved.
type SnapshotStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Outcome describes the effect of one CastVote call.
type Outcome struct {
	Previous models.VoteKind
	Current  models.VoteKind
	// Applied is false when the call was ignored (unknown place or kind).
	Applied bool
}

// Action names the transition for metrics and logs.
func (o Outcome) Action() string {
	switch {
	case !o.Applied:
		return metrics.ActionIgnored
	case o.Current == models.VoteNone:
		return metrics.ActionCancel
	case o.Previous == models.VoteNone:
		return metrics.ActionCast
	default:
		return metrics.ActionSwitch
	}
}

type commentKey struct {
	placeID, commentID int64
}

// Tracker owns this user's vote markers and is the only caller of the store's
// counter mutations, so counters and markers never diverge.
type Tracker struct {
	mu sync.Mutex

	store    CounterStore
	snapshot SnapshotStore
	logger   zerolog.Logger

	places   map[int64]models.VoteKind
	comments map[commentKey]bool
	restored bool
}

// New creates a tracker with empty vote state. snapshot may be nil, in which
// case votes are never persisted.
func New(store CounterStore, snapshot SnapshotStore) *Tracker {
	return &Tracker{
		store:    store,
		snapshot: snapshot,
		logger:   logging.WithComponent("votes"),
		places:   make(map[int64]models.VoteKind),
		comments: make(map[commentKey]bool),
	}
}

// SetLogger overrides the component logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (t *Tracker) SetLogger(l zerolog.Logger) {
	t.mu.Lock()
	t.logger = l
	t.mu.Unlock()
}

// Restore loads the persisted place votes once. Each restored vote is applied
// to its place counter, since entity counters themselves are not persisted.
// Votes for places that do not exist are dropped. A failed load or a corrupt
// snapshot leaves the vote state empty; both are logged, neither is fatal.
// Calls after the first are no-ops.
func (t *Tracker) Restore(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.restored {
		return
	}
	t.restored = true

	if t.snapshot == nil {
		return
	}

	log := t.logger.With().Str("operation", "restore").Logger()

	data, err := t.snapshot.Load(ctx)
	if err != nil {
		metrics.RecordSnapshotError("load")
		log.Warn().Err(err).Msg("Failed to load vote snapshot, starting with no votes")
		return
	}

	loaded, err := DecodeSnapshot(data)
	if err != nil {
		metrics.RecordSnapshotError("decode")
		log.Warn().Err(err).Msg("Corrupt vote snapshot, starting with no votes")
		return
	}

	dropped := 0
	for _, id := range sortedIDs(loaded) {
		kind := loaded[id]
		if !t.store.AdjustPlaceCounters(id, models.CounterDelta{Kind: kind, Delta: 1}) {
			dropped++
			continue
		}
		t.places[id] = kind
	}

	log.Info().
		Int("restored", len(t.places)).
		Int("dropped", dropped).
		Msg("Vote snapshot restored")
}

// CastVote applies the one-vote-per-place state machine:
//
//	same kind as recorded  -> counter(kind) -1, record cleared
//	nothing recorded       -> counter(kind) +1, kind recorded
//	different kind         -> counter(old) -1, counter(kind) +1, kind recorded
//
// Unknown places and invalid kinds are ignored. After an applied vote the whole
// place vote map is saved; a save error is returned but the in-memory vote
// stands.
func (t *Tracker) CastVote(ctx context.Context, placeID int64, kind models.VoteKind) (Outcome, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	previous := t.places[placeID]
	if !kind.Valid() || !t.store.HasPlace(placeID) {
		out := Outcome{Previous: previous, Current: previous}
		metrics.RecordPlaceVote(kind.String(), out.Action())
		t.logger.Debug().Int64("place_id", placeID).Str("kind", kind.String()).Msg("Vote ignored")
		return out, nil
	}

	var deltas []models.CounterDelta
	current := kind
	switch previous {
	case kind:
		deltas = []models.CounterDelta{{Kind: kind, Delta: -1}}
		current = models.VoteNone
	case models.VoteNone:
		deltas = []models.CounterDelta{{Kind: kind, Delta: 1}}
	default:
		deltas = []models.CounterDelta{{Kind: previous, Delta: -1}, {Kind: kind, Delta: 1}}
	}

	if !t.store.AdjustPlaceCounters(placeID, deltas...) {
		out := Outcome{Previous: previous, Current: previous}
		metrics.RecordPlaceVote(kind.String(), out.Action())
		return out, nil
	}

	if current == models.VoteNone {
		delete(t.places, placeID)
	} else {
		t.places[placeID] = current
	}

	out := Outcome{Previous: previous, Current: current, Applied: true}
	metrics.RecordPlaceVote(kind.String(), out.Action())
	logging.Ctx(ctx).Debug().
		Int64("place_id", placeID).
		Str("previous", previous.String()).
		Str("current", current.String()).
		Msg("Vote cast")

	return out, t.saveLocked(ctx)
}

// saveLocked persists the place vote map (caller must hold t.mu).
func (t *Tracker) saveLocked(ctx context.Context) error {
	if t.snapshot == nil {
		return nil
	}

	data, err := EncodeSnapshot(t.places)
	if err != nil {
		metrics.RecordSnapshotError("encode")
		return err
	}

	start := time.Now()
	err = t.snapshot.Save(ctx, data)
	metrics.RecordSnapshotSave(time.Since(start), err)
	if err != nil {
		t.logger.Error().Err(err).Int("votes", len(t.places)).Msg("Failed to save vote snapshot")
		return fmt.Errorf("save vote snapshot: %w", err)
	}
	return nil
}

// CastCommentVote toggles this user's like on a comment and returns the new
// state. ok is false when the place or comment is unknown. Comment likes are
// kept for the session only.
func (t *Tracker) CastCommentVote(ctx context.Context, placeID, commentID int64) (liked, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := commentKey{placeID: placeID, commentID: commentID}
	was := t.comments[key]

	delta := 1
	if was {
		delta = -1
	}
	if !t.store.AdjustCommentLike(placeID, commentID, delta) {
		metrics.RecordCommentVote(metrics.ActionIgnored)
		return false, false
	}

	if was {
		delete(t.comments, key)
		metrics.RecordCommentVote("unlike")
	} else {
		t.comments[key] = true
		metrics.RecordCommentVote("like")
	}

	logging.Ctx(ctx).Debug().
		Int64("place_id", placeID).
		Int64("comment_id", commentID).
		Bool("liked", !was).
		Msg("Comment vote cast")
	return !was, true
}

// Vote returns the recorded kind for a place, or VoteNone.
func (t *Tracker) Vote(placeID int64) models.VoteKind {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.places[placeID]
}

// CommentLiked reports whether this user likes a comment.
func (t *Tracker) CommentLiked(placeID, commentID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.comments[commentKey{placeID: placeID, commentID: commentID}]
}

// Snapshot returns a copy of the place vote map.
func (t *Tracker) Snapshot() map[int64]models.VoteKind {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[int64]models.VoteKind, len(t.places))
	for id, kind := range t.places {
		out[id] = kind
	}
	return out
}
