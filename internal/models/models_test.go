// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package models

import (
	"math"
	"testing"
)

func TestParseVoteKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    VoteKind
		wantErr bool
	}{
		{"like", VoteLike, false},
		{"dislike", VoteDislike, false},
		{"flag", VoteFlag, false},
		{"", VoteNone, true},
		{"LIKE", VoteNone, true},
		{"upvote", VoteNone, true},
	}

	for _, tt := range tests {
		got, err := ParseVoteKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseVoteKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseVoteKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestVoteKind_String(t *testing.T) {
	t.Parallel()

	if VoteNone.String() != "none" {
		t.Errorf("VoteNone.String() = %q, want none", VoteNone.String())
	}
	if VoteFlag.String() != "flag" {
		t.Errorf("VoteFlag.String() = %q, want flag", VoteFlag.String())
	}
}

func TestCoordinate_IsFinite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    Coordinate
		want bool
	}{
		{"origin", Coordinate{}, true},
		{"seoul", Coordinate{Lat: 37.5665, Lng: 126.978}, true},
		{"nan lat", Coordinate{Lat: math.NaN(), Lng: 1}, false},
		{"inf lng", Coordinate{Lat: 1, Lng: math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		if got := tt.c.IsFinite(); got != tt.want {
			t.Errorf("%s: IsFinite() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPlace_CloneIsDeep(t *testing.T) {
	t.Parallel()

	p := Place{ID: 1, Comments: []Comment{{ID: 2, Text: "good", Likes: 1}}}
	cp := p.Clone()
	cp.Comments[0].Likes = 99

	if p.Comments[0].Likes != 1 {
		t.Errorf("Clone shares comment storage: original likes = %d", p.Comments[0].Likes)
	}
}
