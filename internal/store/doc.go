// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

/*
Package store is the in-memory entity store for topics, places and comments.

Identity:

Every entity receives its id from one monotonic counter owned by the Store,
so ids are unique across topics, places and comments and never reused.

Mutation Contracts:

  - CreateTopic, CreatePlace and AppendComment ignore invalid submissions
    (empty names or text, unknown topic or place, missing or non-finite
    coordinates) and report ok=false instead of returning an error.
  - AdjustPlaceCounter, AdjustPlaceCounters and AdjustCommentLike clamp at zero
    and ignore unknown ids. Only the votes package should call them.

Reads:

All read methods return deep copies taken under the read lock. A caller that
filters and sorts the result of PlacesByTopic works on one consistent snapshot
even while other goroutines keep mutating the store.

Proximity:

Places are also indexed in a geo.Grid, so PlacesNear answers radius queries
without scanning every place.
*/
package store
