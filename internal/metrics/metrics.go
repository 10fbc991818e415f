// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the curation core:
// - Entity creation and ignored submissions
// - Place and comment vote transitions
// - Vote snapshot persistence
// - Topic suggestion and place ranking requests

// Vote actions as recorded on PlaceVotes.
const (
	ActionCast    = "cast"
	ActionCancel  = "cancel"
	ActionSwitch  = "switch"
	ActionIgnored = "ignored"
)

var (
	// Entity Metrics
	EntitiesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freejido_entities_created_total",
			Help: "Total number of entities created",
		},
		[]string{"kind"}, // "topic", "place", "comment"
	)

	SubmissionsIgnored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freejido_submissions_ignored_total",
			Help: "Total number of invalid create or adjust calls ignored as no-ops",
		},
		[]string{"operation"},
	)

	// Vote Metrics
	PlaceVotes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freejido_place_votes_total",
			Help: "Total number of place vote transitions",
		},
		[]string{"kind", "action"},
	)

	CommentVotes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freejido_comment_votes_total",
			Help: "Total number of comment like toggles",
		},
		[]string{"action"}, // "like", "unlike", "ignored"
	)

	VoteSnapshotSaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "freejido_vote_snapshot_save_duration_seconds",
			Help:    "Duration of vote snapshot writes in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	VoteSnapshotErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freejido_vote_snapshot_errors_total",
			Help: "Total number of vote snapshot load or save failures",
		},
		[]string{"operation"}, // "load", "decode", "save"
	)

	// Query Metrics
	SuggestionQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freejido_suggestion_queries_total",
			Help: "Total number of topic suggestion queries",
		},
		[]string{"outcome"}, // "empty_query", "no_match", "match"
	)

	RankingRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freejido_ranking_requests_total",
			Help: "Total number of place ranking requests",
		},
		[]string{"mode", "outcome"}, // outcome: "ok", "requires_location"
	)
)

// RecordEntityCreated increments the created counter for an entity kind.
func RecordEntityCreated(kind string) {
	EntitiesCreated.WithLabelValues(kind).Inc()
}

// RecordSubmissionIgnored increments the ignored counter for an operation.
func RecordSubmissionIgnored(operation string) {
	SubmissionsIgnored.WithLabelValues(operation).Inc()
}

// RecordPlaceVote records one place vote transition.
func RecordPlaceVote(kind, action string) {
	PlaceVotes.WithLabelValues(kind, action).Inc()
}

// RecordCommentVote records one comment like toggle.
func RecordCommentVote(action string) {
	CommentVotes.WithLabelValues(action).Inc()
}

// RecordSnapshotSave records the duration and outcome of a snapshot write.
func RecordSnapshotSave(duration time.Duration, err error) {
	VoteSnapshotSaveDuration.Observe(duration.Seconds())
	if err != nil {
		VoteSnapshotErrors.WithLabelValues("save").Inc()
	}
}

// RecordSnapshotError increments the snapshot error counter for an operation.
func RecordSnapshotError(operation string) {
	VoteSnapshotErrors.WithLabelValues(operation).Inc()
}

// RecordSuggestion records a suggestion query outcome.
func RecordSuggestion(outcome string) {
	SuggestionQueries.WithLabelValues(outcome).Inc()
}

// RecordRanking records a ranking request outcome.
func RecordRanking(mode, outcome string) {
	RankingRequests.WithLabelValues(mode, outcome).Inc()
}
