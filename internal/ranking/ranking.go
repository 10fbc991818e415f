// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

// Package ranking orders places for display, either by recommendation
// (likes) or by distance from the user's position.
package ranking

import (
	"errors"
	"fmt"
	"sort"

	"github.com/freejido/freejido/internal/geo"
	"github.com/freejido/freejido/internal/metrics"
	"github.com/freejido/freejido/internal/models"
)

// Mode selects the ranking order.
type Mode string

const (
	// ModeRecommend orders by likes, most liked first.
	ModeRecommend Mode = "recommend"
	// ModeDistance orders by distance from a reference coordinate, nearest first.
	ModeDistance Mode = "distance"
)

// ErrRequiresLocation is returned by distance ranking when the user's
// position is unknown. Callers should show an advisory, not a fallback order.
var ErrRequiresLocation = errors.New("distance ranking requires a location")

// ErrUnknownMode is returned for a mode other than recommend or distance.
var ErrUnknownMode = errors.New("unknown ranking mode")

// ParseMode converts a user-facing name to a Mode. The empty string selects
// ModeRecommend.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeRecommend:
		return ModeRecommend, nil
	case ModeDistance:
		return ModeDistance, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Ranked is a place with its distance from the reference point, when known.
type Ranked struct {
	models.Place
	// Distance in meters; nil when no reference coordinate was given.
	Distance *float64
}

// Rank returns places in mode order. The input slice is not modified. Ties
// keep their input order in both modes. Distance mode without a reference
// returns ErrRequiresLocation and no places.
func Rank(places []models.Place, mode Mode, ref *models.Coordinate) ([]Ranked, error) {
	out := make([]Ranked, len(places))
	for i := range places {
		out[i].Place = places[i]
		if ref != nil {
			d := geo.Haversine(*ref, places[i].Coordinate)
			out[i].Distance = &d
		}
	}

	switch mode {
	case ModeRecommend:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Likes > out[j].Likes
		})
	case ModeDistance:
		if ref == nil {
			metrics.RecordRanking(string(mode), "requires_location")
			return nil, ErrRequiresLocation
		}
		sort.SliceStable(out, func(i, j int) bool {
			return *out[i].Distance < *out[j].Distance
		})
	default:
		metrics.RecordRanking(string(mode), "unknown_mode")
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	metrics.RecordRanking(string(mode), "ok")
	return out, nil
}

// SortComments returns comments ordered by likes, most liked first, ties in
// insertion order. The input slice is not modified.
func SortComments(comments []models.Comment) []models.Comment {
	out := append([]models.Comment(nil), comments...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Likes > out[j].Likes
	})
	return out
}
