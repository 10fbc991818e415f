// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/freejido/freejido/internal/config"
	"github.com/freejido/freejido/internal/persist"
)

func testConfig(located bool) *config.Config {
	return &config.Config{
		Logging: config.LoggingConfig{Level: "error", Format: "json"},
		Votes:   config.VotesConfig{Store: config.VoteStoreMemory},
		Map: config.MapConfig{
			CenterLat:        37.5665,
			CenterLng:        126.978,
			Zoom:             13,
			ReferenceEnabled: located,
			ReferenceLat:     37.58,
			ReferenceLng:     126.99,
			NearbyRadius:     1500,
			GridCellSize:     500,
		},
		Search: config.SearchConfig{MaxSuggestions: 10},
		Seed:   config.SeedConfig{Enabled: true, RandomSeed: 1, PlacesPerTopic: 5},
	}
}

func newTestCLI(t *testing.T, located bool) (*cli, *bytes.Buffer) {
	t.Helper()
	svc, err := buildService(context.Background(), testConfig(located), persist.NewMemoryStore())
	if err != nil {
		t.Fatalf("buildService() error = %v", err)
	}
	var out bytes.Buffer
	return newCLI(svc, &out), &out
}

func TestCLI_Topics(t *testing.T) {
	c, out := newTestCLI(t, false)
	if err := c.execute(context.Background(), []string{"topics"}); err != nil {
		t.Fatalf("topics error = %v", err)
	}
	if !strings.Contains(out.String(), "휠체어 가능한 가게") || !strings.Contains(out.String(), "노키즈존") {
		t.Errorf("topics output = %q", out.String())
	}
}

func TestCLI_SuggestAndCreate(t *testing.T) {
	c, out := newTestCLI(t, false)
	ctx := context.Background()

	c.execute(ctx, []string{"suggest", "ㄴㅋ"})
	if !strings.Contains(out.String(), "노키즈존") {
		t.Errorf("suggest ㄴㅋ output = %q", out.String())
	}

	out.Reset()
	c.execute(ctx, []string{"suggest", "장미", "정원"})
	if !strings.Contains(out.String(), "add-topic 장미 정원") {
		t.Errorf("suggest should offer creation: %q", out.String())
	}

	out.Reset()
	if err := c.execute(ctx, []string{"add-topic", "장미", "정원"}); err != nil {
		t.Fatalf("add-topic error = %v", err)
	}
	out.Reset()
	c.execute(ctx, []string{"suggest", "ㅈㅁ"})
	if !strings.Contains(out.String(), "장미 정원") {
		t.Errorf("new topic not suggested: %q", out.String())
	}
}

func TestCLI_VoteFlow(t *testing.T) {
	c, out := newTestCLI(t, false)
	ctx := context.Background()

	// Topics take ids 1 and 2, so the first sample place is 3.
	if err := c.execute(ctx, []string{"vote", "3", "like"}); err != nil {
		t.Fatalf("vote error = %v", err)
	}
	if !strings.Contains(out.String(), "none -> like") {
		t.Errorf("vote output = %q", out.String())
	}

	out.Reset()
	c.execute(ctx, []string{"vote", "3", "dislike"})
	if !strings.Contains(out.String(), "like -> dislike") {
		t.Errorf("switch output = %q", out.String())
	}

	out.Reset()
	c.execute(ctx, []string{"show", "3"})
	if !strings.Contains(out.String(), "likes 0, dislikes 1, flags 0, your vote: dislike") {
		t.Errorf("show output = %q", out.String())
	}

	if err := c.execute(ctx, []string{"vote", "3", "love"}); err == nil {
		t.Error("unknown vote kind should fail")
	}
	if err := c.execute(ctx, []string{"vote", "99999", "like"}); err == nil {
		t.Error("unknown place should fail")
	}
}

func TestCLI_Comments(t *testing.T) {
	c, out := newTestCLI(t, false)
	ctx := context.Background()

	if err := c.execute(ctx, []string{"comment", "3", "경사로", "있음"}); err != nil {
		t.Fatalf("comment error = %v", err)
	}
	var commentID string
	for _, f := range strings.Fields(out.String()) {
		if _, err := parseID(f); err == nil {
			commentID = f
		}
	}

	out.Reset()
	if err := c.execute(ctx, []string{"like-comment", "3", commentID}); err != nil {
		t.Fatalf("like-comment error = %v", err)
	}
	if !strings.Contains(out.String(), "liked") {
		t.Errorf("like-comment output = %q", out.String())
	}

	out.Reset()
	c.execute(ctx, []string{"show", "3"})
	if !strings.Contains(out.String(), "경사로 있음 (1)") {
		t.Errorf("show output = %q", out.String())
	}
}

func TestCLI_DistanceNeedsLocation(t *testing.T) {
	c, out := newTestCLI(t, false)
	ctx := context.Background()

	if err := c.execute(ctx, []string{"places", "1", "distance"}); err != nil {
		t.Fatalf("places error = %v", err)
	}
	if !strings.Contains(out.String(), "needs your location") {
		t.Errorf("places distance output = %q", out.String())
	}

	out.Reset()
	c.execute(ctx, []string{"view"})
	if !strings.Contains(out.String(), "center (37.5665, 126.9780) zoom 13 [default]") {
		t.Errorf("view output = %q", out.String())
	}
}

func TestCLI_DistanceWithLocation(t *testing.T) {
	c, out := newTestCLI(t, true)
	ctx := context.Background()

	if err := c.execute(ctx, []string{"places", "1", "distance"}); err != nil {
		t.Fatalf("places error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("places distance printed %d lines, want 5: %q", len(lines), out.String())
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, "m") {
			t.Errorf("line without distance: %q", line)
		}
	}

	out.Reset()
	if err := c.execute(ctx, []string{"nearby", "1", "100000"}); err != nil {
		t.Fatalf("nearby error = %v", err)
	}
	if n := strings.Count(out.String(), "\n"); n != 5 {
		t.Errorf("nearby within 100km printed %d lines, want 5", n)
	}
}

func TestCLI_Errors(t *testing.T) {
	c, _ := newTestCLI(t, false)
	ctx := context.Background()

	tests := [][]string{
		{"frobnicate"},
		{"places"},
		{"places", "abc"},
		{"places", "1", "popular"},
		{"add-place", "1", "x", "y", "name"},
		{"add-place", "1", "37.5"},
		{"show", "424242"},
		{"like-comment", "3", "77777"},
		{"nearby", "1", "NaN"},
		{"nearby", "1", "+Inf"},
	}
	for _, args := range tests {
		if err := c.execute(ctx, args); err == nil {
			t.Errorf("execute(%v) should fail", args)
		}
	}
}

func TestCLI_Loop(t *testing.T) {
	c, out := newTestCLI(t, false)

	input := strings.NewReader("add-topic Quiet Study\nbogus\ntopics\nquit\ntopics\n")
	if err := c.loop(context.Background(), input); err != nil {
		t.Fatalf("loop() error = %v", err)
	}
	s := out.String()
	if !strings.Contains(s, "Quiet Study") || !strings.Contains(s, `unknown command "bogus"`) {
		t.Errorf("loop output = %q", s)
	}
	if strings.Count(s, "Quiet Study") != 2 {
		t.Errorf("commands after quit should not run: %q", s)
	}
}

func TestCLI_LoopKeepsTypedSpacing(t *testing.T) {
	c, out := newTestCLI(t, false)

	input := strings.NewReader("add-topic a  b\nsuggest a  b\nsuggest a b\nquit\n")
	if err := c.loop(context.Background(), input); err != nil {
		t.Fatalf("loop() error = %v", err)
	}

	s := out.String()
	if !strings.Contains(s, "created: a  b\n") {
		t.Errorf("topic name lost its spacing: %q", s)
	}
	// "a b" is neither a prefix nor a substring of "a  b".
	if !strings.Contains(s, "create it with: add-topic a b\n") {
		t.Errorf("single-spaced query should be offered for creation: %q", s)
	}
	if strings.Contains(s, "add-topic a  b\n") {
		t.Errorf("existing topic offered for creation: %q", s)
	}
}

func TestRequestRest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  request
		n    int
		want string
	}{
		{"typed text", request{line: " a  b", typed: true}, 0, "a  b"},
		{"typed leading space kept", request{line: "  a", typed: true}, 0, " a"},
		{"typed after words", request{line: " 3  hello  world", typed: true}, 1, " hello  world"},
		{"typed nothing left", request{line: " 3", typed: true}, 1, ""},
		{"typed empty", request{typed: true}, 0, ""},
		{"shell args", request{args: []string{"3", "a  b", "c"}}, 1, "a  b c"},
		{"shell args exhausted", request{args: []string{"3"}}, 2, ""},
	}

	for _, tt := range tests {
		if got := tt.req.rest(tt.n); got != tt.want {
			t.Errorf("%s: rest(%d) = %q, want %q", tt.name, tt.n, got, tt.want)
		}
	}
}
