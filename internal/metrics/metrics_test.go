// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordEntityCreated(t *testing.T) {
	before := testutil.ToFloat64(EntitiesCreated.WithLabelValues("topic"))
	RecordEntityCreated("topic")
	after := testutil.ToFloat64(EntitiesCreated.WithLabelValues("topic"))

	if after-before != 1 {
		t.Errorf("topic counter delta = %v, want 1", after-before)
	}
}

func TestRecordPlaceVote(t *testing.T) {
	tests := []struct {
		kind   string
		action string
	}{
		{"like", ActionCast},
		{"like", ActionCancel},
		{"dislike", ActionSwitch},
		{"flag", ActionIgnored},
	}

	for _, tt := range tests {
		t.Run(tt.kind+"_"+tt.action, func(t *testing.T) {
			c := PlaceVotes.WithLabelValues(tt.kind, tt.action)
			before := testutil.ToFloat64(c)
			RecordPlaceVote(tt.kind, tt.action)
			if got := testutil.ToFloat64(c) - before; got != 1 {
				t.Errorf("delta = %v, want 1", got)
			}
		})
	}
}

func TestRecordSnapshotSave(t *testing.T) {
	failures := VoteSnapshotErrors.WithLabelValues("save")
	before := testutil.ToFloat64(failures)

	RecordSnapshotSave(2*time.Millisecond, nil)
	if got := testutil.ToFloat64(failures); got != before {
		t.Errorf("successful save changed error counter: %v -> %v", before, got)
	}

	RecordSnapshotSave(2*time.Millisecond, errors.New("disk full"))
	if got := testutil.ToFloat64(failures) - before; got != 1 {
		t.Errorf("failed save delta = %v, want 1", got)
	}
}

func TestRecordQueryMetrics(t *testing.T) {
	s := SuggestionQueries.WithLabelValues("match")
	r := RankingRequests.WithLabelValues("distance", "requires_location")
	sBefore, rBefore := testutil.ToFloat64(s), testutil.ToFloat64(r)

	RecordSuggestion("match")
	RecordRanking("distance", "requires_location")

	if testutil.ToFloat64(s)-sBefore != 1 {
		t.Error("suggestion counter not incremented")
	}
	if testutil.ToFloat64(r)-rBefore != 1 {
		t.Error("ranking counter not incremented")
	}
}
