// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package models

import "math"

// Topic is a user-created category that places are tagged under.
// Topics are never mutated after creation and never deleted.
type Topic struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat" validate:"finite"`
	Lng float64 `json:"lng" validate:"finite"`
}

// IsFinite reports whether both components are finite real numbers.
func (c Coordinate) IsFinite() bool {
	return !math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0) &&
		!math.IsNaN(c.Lng) && !math.IsInf(c.Lng, 0)
}

// Place is a user-submitted location under a single topic.
//
// Likes, Dislikes and Flags are only changed through the vote tracker so that
// they always agree with the recorded vote state.
type Place struct {
	ID          int64      `json:"id"`
	TopicID     int64      `json:"topic_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Address     string     `json:"address,omitempty"`
	ImageRef    string     `json:"image_ref,omitempty"`
	Coordinate  Coordinate `json:"coordinate"`
	Likes       int        `json:"likes"`
	Dislikes    int        `json:"dislikes"`
	Flags       int        `json:"flags"`
	Comments    []Comment  `json:"comments"`
}

// Clone returns a deep copy of the place, including its comment slice.
func (p *Place) Clone() Place {
	cp := *p
	cp.Comments = append([]Comment(nil), p.Comments...)
	return cp
}

// Comment is a short remark attached to a place. Comments are kept in
// insertion order; display order is decided by the ranking package.
type Comment struct {
	ID    int64  `json:"id"`
	Text  string `json:"text"`
	Likes int    `json:"likes"`
}

// PlaceInput carries a place submission before an id is assigned.
// Coordinate is a pointer so that a missing map selection can be told apart
// from the (valid) origin.
type PlaceInput struct {
	TopicID     int64       `validate:"gt=0"`
	Name        string      `validate:"required"`
	Description string      `validate:"omitempty"`
	Address     string      `validate:"omitempty"`
	ImageRef    string      `validate:"omitempty"`
	Coordinate  *Coordinate `validate:"required"`
}
