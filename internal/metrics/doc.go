// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

/*
Package metrics provides Prometheus instrumentation for Freejido.

All collectors are registered on the default registry through promauto at
package initialization. Components call the Record* helpers rather than
touching collectors directly.

Collectors:

  - freejido_entities_created_total{kind}
  - freejido_submissions_ignored_total{operation}
  - freejido_place_votes_total{kind,action}
  - freejido_comment_votes_total{action}
  - freejido_vote_snapshot_save_duration_seconds
  - freejido_vote_snapshot_errors_total{operation}
  - freejido_suggestion_queries_total{outcome}
  - freejido_ranking_requests_total{mode,outcome}

Testing:

Use prometheus/testutil.ToFloat64 and compare before/after deltas, since the
collectors are process-global.
*/
package metrics
