// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package store

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/freejido/freejido/internal/geo"
	"github.com/freejido/freejido/internal/logging"
	"github.com/freejido/freejido/internal/metrics"
	"github.com/freejido/freejido/internal/models"
	"github.com/freejido/freejido/internal/validation"
)

// Store owns every Topic, Place and Comment and assigns their identity.
// It is safe for concurrent use: mutations take the write lock and every
// read copies under the read lock, so callers always observe one consistent
// snapshot.
type Store struct {
	mu sync.RWMutex

	// nextID is shared by all entity kinds so ids never collide across kinds.
	nextID int64

	topics     []models.Topic
	topicIndex map[int64]int

	places     []*models.Place
	placeIndex map[int64]*models.Place
	byTopic    map[int64][]*models.Place

	grid   *geo.Grid
	logger zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger overrides the component logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithGridCellSize sets the spatial index cell size in meters.
func WithGridCellSize(meters float64) Option {
	return func(s *Store) {
		s.grid = geo.NewGrid(meters)
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		topicIndex: make(map[int64]int),
		placeIndex: make(map[int64]*models.Place),
		byTopic:    make(map[int64][]*models.Place),
		grid:       geo.NewGrid(0),
		logger:     logging.WithComponent("store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// allocateID returns the next identifier (caller must hold the write lock).
func (s *Store) allocateID() int64 {
	s.nextID++
	return s.nextID
}

// CreateTopic adds a topic. It is a no-op returning ok=false for an empty name.
func (s *Store) CreateTopic(name string) (int64, bool) {
	if name == "" {
		s.ignore("create_topic", "empty name")
		return 0, false
	}

	s.mu.Lock()
	id := s.allocateID()
	s.topicIndex[id] = len(s.topics)
	s.topics = append(s.topics, models.Topic{ID: id, Name: name})
	s.mu.Unlock()

	metrics.RecordEntityCreated("topic")
	s.logger.Debug().Int64("topic_id", id).Str("name", name).Msg("Topic created")
	return id, true
}

// CreatePlace adds a place under an existing topic. It is a no-op returning
// ok=false when the topic is unknown, the name is empty, or the coordinate is
// missing or not finite.
func (s *Store) CreatePlace(in models.PlaceInput) (int64, bool) {
	if verr := validation.ValidateStruct(&in); verr != nil {
		s.ignore("create_place", verr.Error())
		return 0, false
	}

	s.mu.Lock()
	if _, ok := s.topicIndex[in.TopicID]; !ok {
		s.mu.Unlock()
		s.ignore("create_place", "unknown topic")
		return 0, false
	}

	p := &models.Place{
		ID:          s.allocateID(),
		TopicID:     in.TopicID,
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		ImageRef:    in.ImageRef,
		Coordinate:  *in.Coordinate,
		Comments:    []models.Comment{},
	}
	s.places = append(s.places, p)
	s.placeIndex[p.ID] = p
	s.byTopic[p.TopicID] = append(s.byTopic[p.TopicID], p)
	s.grid.Insert(p.ID, p.Coordinate)
	s.mu.Unlock()

	metrics.RecordEntityCreated("place")
	s.logger.Debug().Int64("place_id", p.ID).Int64("topic_id", p.TopicID).Msg("Place created")
	return p.ID, true
}

// AppendComment adds a comment to the end of a place's comment list. It is a
// no-op returning ok=false for an unknown place or empty text.
func (s *Store) AppendComment(placeID int64, text string) (int64, bool) {
	if text == "" {
		s.ignore("append_comment", "empty text")
		return 0, false
	}

	s.mu.Lock()
	p, ok := s.placeIndex[placeID]
	if !ok {
		s.mu.Unlock()
		s.ignore("append_comment", "unknown place")
		return 0, false
	}
	id := s.allocateID()
	p.Comments = append(p.Comments, models.Comment{ID: id, Text: text})
	s.mu.Unlock()

	metrics.RecordEntityCreated("comment")
	return id, true
}

// AdjustPlaceCounter applies delta to one vote counter of a place, clamping
// at zero. Unknown places and kinds are ignored.
func (s *Store) AdjustPlaceCounter(placeID int64, kind models.VoteKind, delta int) bool {
	return s.AdjustPlaceCounters(placeID, models.CounterDelta{Kind: kind, Delta: delta})
}

// AdjustPlaceCounters applies several counter deltas to one place under a
// single lock, so a vote switch is never observed half-applied. It reports
// whether the place exists.
func (s *Store) AdjustPlaceCounters(placeID int64, deltas ...models.CounterDelta) bool {
	s.mu.Lock()
	p, ok := s.placeIndex[placeID]
	if ok {
		for _, d := range deltas {
			switch d.Kind {
			case models.VoteLike:
				p.Likes = clampAdd(p.Likes, d.Delta)
			case models.VoteDislike:
				p.Dislikes = clampAdd(p.Dislikes, d.Delta)
			case models.VoteFlag:
				p.Flags = clampAdd(p.Flags, d.Delta)
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		s.ignore("adjust_place_counter", "unknown place")
	}
	return ok
}

// AdjustCommentLike applies delta to one comment's like counter, clamping at
// zero. Unknown places or comments are ignored.
func (s *Store) AdjustCommentLike(placeID, commentID int64, delta int) bool {
	s.mu.Lock()
	found := false
	if p, ok := s.placeIndex[placeID]; ok {
		for i := range p.Comments {
			if p.Comments[i].ID == commentID {
				p.Comments[i].Likes = clampAdd(p.Comments[i].Likes, delta)
				found = true
				break
			}
		}
	}
	s.mu.Unlock()

	if !found {
		s.ignore("adjust_comment_like", "unknown place or comment")
	}
	return found
}

func clampAdd(v, delta int) int {
	v += delta
	if v < 0 {
		return 0
	}
	return v
}

func (s *Store) ignore(operation, reason string) {
	metrics.RecordSubmissionIgnored(operation)
	s.logger.Debug().Str("operation", operation).Str("reason", reason).Msg("Invalid call ignored")
}

// Topics returns every topic in creation order.
func (s *Store) Topics() []models.Topic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Topic(nil), s.topics...)
}

// Topic returns one topic by id.
func (s *Store) Topic(id int64) (models.Topic, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.topicIndex[id]
	if !ok {
		return models.Topic{}, false
	}
	return s.topics[i], true
}

// TopicCount returns the number of topics. Topics are never deleted, so the
// count also serves as a version for derived topic indexes.
func (s *Store) TopicCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.topics)
}

// TopicNamed reports whether a topic with exactly this name exists.
// The comparison is case-sensitive and does not trim.
func (s *Store) TopicNamed(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.topics {
		if s.topics[i].Name == name {
			return true
		}
	}
	return false
}

// HasPlace reports whether a place exists.
func (s *Store) HasPlace(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.placeIndex[id]
	return ok
}

// Place returns a deep copy of one place.
func (s *Store) Place(id int64) (models.Place, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.placeIndex[id]
	if !ok {
		return models.Place{}, false
	}
	return p.Clone(), true
}

// PlacesByTopic returns deep copies of a topic's places in creation order.
func (s *Store) PlacesByTopic(topicID int64) []models.Place {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src := s.byTopic[topicID]
	out := make([]models.Place, len(src))
	for i, p := range src {
		out[i] = p.Clone()
	}
	return out
}

// PlacesNear returns a topic's places within radiusMeters of center, in
// creation order. A zero topicID matches every topic.
func (s *Store) PlacesNear(topicID int64, center models.Coordinate, radiusMeters float64) []models.Place {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hits := s.grid.QueryRadius(center, radiusMeters)
	out := make([]models.Place, 0, len(hits))
	for _, h := range hits {
		p := s.placeIndex[h.ID]
		if p == nil || (topicID != 0 && p.TopicID != topicID) {
			continue
		}
		out = append(out, p.Clone())
	}
	// ids are monotonic, so id order is creation order
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Comments returns a copy of a place's comments in insertion order.
func (s *Store) Comments(placeID int64) []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.placeIndex[placeID]
	if !ok {
		return nil
	}
	return append([]models.Comment(nil), p.Comments...)
}

// Stats summarizes store contents for logging.
type Stats struct {
	Topics   int
	Places   int
	Comments int
}

// Stats returns entity counts.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{Topics: len(s.topics), Places: len(s.places)}
	for _, p := range s.places {
		st.Comments += len(p.Comments)
	}
	return st
}
