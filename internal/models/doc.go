// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

/*
Package models defines the data structures shared by every Freejido component.

Key Components:

  - Topic: user-created category ("wheelchair accessible", "no-kids zone", ...)
  - Place: user-submitted location tagged under one Topic, with vote counters
  - Comment: remark attached to a Place, with its own like counter
  - Coordinate: latitude/longitude pair in degrees
  - VoteKind: like, dislike or flag; mutually exclusive per user per place

Ownership:

The store package owns every Topic, Place and Comment. Values returned from the
store are deep copies; mutating them has no effect on stored state. Counters are
changed only by the votes package.

Usage Example:

	import "github.com/freejido/freejido/internal/models"

	in := models.PlaceInput{
	    TopicID:    topicID,
	    Name:       "Cafe 312",
	    Coordinate: &models.Coordinate{Lat: 37.5665, Lng: 126.978},
	}
	id, ok := st.CreatePlace(in)

Thread Safety:

Models are plain values and carry no synchronization of their own.
*/
package models
