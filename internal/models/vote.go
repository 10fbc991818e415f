// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package models

import "fmt"

// VoteKind is the kind of vote a user casts on a place.
// A user holds at most one kind per place.
type VoteKind string

const (
	// VoteNone means no vote is recorded. It is never stored.
	VoteNone VoteKind = ""
	// VoteLike is a positive vote; it drives recommendation order.
	VoteLike VoteKind = "like"
	// VoteDislike is a negative vote.
	VoteDislike VoteKind = "dislike"
	// VoteFlag marks a place as inaccurate or inappropriate.
	VoteFlag VoteKind = "flag"
)

// VoteKinds lists every castable kind in display order.
var VoteKinds = []VoteKind{VoteLike, VoteDislike, VoteFlag}

// Valid reports whether k is one of the castable kinds.
func (k VoteKind) Valid() bool {
	switch k {
	case VoteLike, VoteDislike, VoteFlag:
		return true
	default:
		return false
	}
}

// String returns the lowercase kind name, or "none".
func (k VoteKind) String() string {
	if k == VoteNone {
		return "none"
	}
	return string(k)
}

// ParseVoteKind converts a user-facing name into a VoteKind.
func ParseVoteKind(s string) (VoteKind, error) {
	k := VoteKind(s)
	if !k.Valid() {
		return VoteNone, fmt.Errorf("unknown vote kind %q", s)
	}
	return k, nil
}

// CounterDelta is a single adjustment to one of a place's vote counters.
type CounterDelta struct {
	Kind  VoteKind
	Delta int
}
