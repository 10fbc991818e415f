// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package curation

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/rs/zerolog"

	"github.com/freejido/freejido/internal/location"
	"github.com/freejido/freejido/internal/logging"
	"github.com/freejido/freejido/internal/models"
	"github.com/freejido/freejido/internal/ranking"
	"github.com/freejido/freejido/internal/search"
	"github.com/freejido/freejido/internal/store"
	"github.com/freejido/freejido/internal/votes"
)

// DefaultNearbyRadius is used when Options.NearbyRadius is not positive.
const DefaultNearbyRadius = 1000.0

// ErrInvalidRadius is returned by Nearby for a NaN or infinite radius.
var ErrInvalidRadius = errors.New("radius must be a finite number of meters")

// Options tunes the service.
type Options struct {
	// MaxSuggestions caps Suggest results; 0 means unlimited.
	MaxSuggestions int
	// NearbyRadius is the default Nearby radius in meters.
	NearbyRadius float64
}

// Service is the single entry point for the presentation layer. It reads
// through the store, search index and ranking engine, and routes every vote
// through the tracker.
type Service struct {
	store    *store.Store
	votes    *votes.Tracker
	location *location.Resolver
	opts     Options
	logger   zerolog.Logger

	indexMu      sync.Mutex
	index        *search.Index
	indexVersion int
}

// New creates a service over already constructed components.
func New(st *store.Store, tracker *votes.Tracker, resolver *location.Resolver, opts Options) *Service {
	if opts.NearbyRadius <= 0 {
		opts.NearbyRadius = DefaultNearbyRadius
	}
	if opts.MaxSuggestions < 0 {
		opts.MaxSuggestions = 0
	}
	return &Service{
		store:        st,
		votes:        tracker,
		location:     resolver,
		opts:         opts,
		logger:       logging.WithComponent("curation"),
		indexVersion: -1,
	}
}

// Suggestions is the result of a topic search.
type Suggestions struct {
	Topics []models.Topic
	// OfferCreate is true when the query may be created as a new topic.
	OfferCreate bool
}

// PlaceView is one place as displayed, with this user's vote state.
type PlaceView struct {
	models.Place
	Vote     models.VoteKind
	Comments []CommentView
}

// CommentView is one comment with this user's like state.
type CommentView struct {
	models.Comment
	Liked bool
}

// Topics returns every topic in creation order.
func (s *Service) Topics() []models.Topic {
	return s.store.Topics()
}

// AddTopic creates a topic. ok is false for an empty name.
func (s *Service) AddTopic(ctx context.Context, name string) (int64, bool) {
	id, ok := s.store.CreateTopic(name)
	if ok {
		logging.Ctx(ctx).Info().Int64("topic_id", id).Str("name", name).Msg("Topic added")
	}
	return id, ok
}

// searchIndex returns an index over the current topics, rebuilding it when
// topics were added since the last build.
func (s *Service) searchIndex() *search.Index {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()

	if n := s.store.TopicCount(); n != s.indexVersion || s.index == nil {
		topics := s.store.Topics()
		s.index = search.NewIndex(topics)
		s.indexVersion = len(topics)
		s.logger.Debug().Int("topics", len(topics)).Msg("Search index rebuilt")
	}
	return s.index
}

// Suggest returns topics matching query, prefix matches first.
func (s *Service) Suggest(query string) Suggestions {
	idx := s.searchIndex()
	results := idx.Suggest(query)
	offer := idx.OfferCreate(query, results)
	if s.opts.MaxSuggestions > 0 && len(results) > s.opts.MaxSuggestions {
		results = results[:s.opts.MaxSuggestions]
	}
	return Suggestions{Topics: results, OfferCreate: offer}
}

// AddPlace creates a place. ok is false for invalid input.
func (s *Service) AddPlace(ctx context.Context, in models.PlaceInput) (int64, bool) {
	id, ok := s.store.CreatePlace(in)
	if ok {
		logging.Ctx(ctx).Info().Int64("place_id", id).Int64("topic_id", in.TopicID).Msg("Place added")
	}
	return id, ok
}

// Places returns a topic's places in mode order. Distance mode without a
// known position returns ranking.ErrRequiresLocation.
func (s *Service) Places(ctx context.Context, topicID int64, mode ranking.Mode) ([]ranking.Ranked, error) {
	ref := s.location.Reference(ctx)
	return ranking.Rank(s.store.PlacesByTopic(topicID), mode, ref)
}

// Nearby returns a topic's places within radiusMeters of the user, nearest
// first. A zero topicID searches every topic; a non-positive radius uses the
// configured default.
func (s *Service) Nearby(ctx context.Context, topicID int64, radiusMeters float64) ([]ranking.Ranked, error) {
	if math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) {
		return nil, ErrInvalidRadius
	}
	if radiusMeters <= 0 {
		radiusMeters = s.opts.NearbyRadius
	}
	ref := s.location.Reference(ctx)
	if ref == nil {
		return nil, ranking.ErrRequiresLocation
	}
	return ranking.Rank(s.store.PlacesNear(topicID, *ref, radiusMeters), ranking.ModeDistance, ref)
}

// Place returns one place with comments ordered by likes and this user's
// vote state.
func (s *Service) Place(id int64) (PlaceView, bool) {
	p, ok := s.store.Place(id)
	if !ok {
		return PlaceView{}, false
	}

	sorted := ranking.SortComments(p.Comments)
	comments := make([]CommentView, len(sorted))
	for i, c := range sorted {
		comments[i] = CommentView{Comment: c, Liked: s.votes.CommentLiked(id, c.ID)}
	}
	p.Comments = nil

	return PlaceView{Place: p, Vote: s.votes.Vote(id), Comments: comments}, true
}

// Vote casts, switches or cancels this user's vote on a place.
func (s *Service) Vote(ctx context.Context, placeID int64, kind models.VoteKind) (votes.Outcome, error) {
	return s.votes.CastVote(ctx, placeID, kind)
}

// Comment appends a comment to a place.
func (s *Service) Comment(ctx context.Context, placeID int64, text string) (int64, bool) {
	id, ok := s.store.AppendComment(placeID, text)
	if ok {
		logging.Ctx(ctx).Debug().Int64("place_id", placeID).Int64("comment_id", id).Msg("Comment added")
	}
	return id, ok
}

// LikeComment toggles this user's like on a comment.
func (s *Service) LikeComment(ctx context.Context, placeID, commentID int64) (liked, ok bool) {
	return s.votes.CastCommentVote(ctx, placeID, commentID)
}

// View returns the map viewport.
func (s *Service) View() location.View {
	return s.location.View()
}

// RefreshLocation asks the location provider for a new position.
func (s *Service) RefreshLocation(ctx context.Context) error {
	return s.location.Refresh(ctx)
}
