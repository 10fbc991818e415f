// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/freejido/freejido/internal/metrics"
	"github.com/freejido/freejido/internal/models"
)

type entry struct {
	topic     models.Topic
	name      string // normalized
	signature string
}

// Index answers topic suggestion queries over a fixed topic list. Build a new
// Index when topics change; an Index is immutable and safe for concurrent use.
type Index struct {
	entries    []entry
	position   map[int64]int
	names      *trie
	signatures *trie
}

// NewIndex builds an index over topics, preserving their order.
func NewIndex(topics []models.Topic) *Index {
	idx := &Index{
		entries:    make([]entry, len(topics)),
		position:   make(map[int64]int, len(topics)),
		names:      newTrie(),
		signatures: newTrie(),
	}
	for i, topic := range topics {
		name := Normalize(topic.Name)
		sig := Signature(name)
		idx.entries[i] = entry{topic: topic, name: name, signature: sig}
		idx.position[topic.ID] = i
		idx.names.insert(name, topic.ID)
		idx.signatures.insert(sig, topic.ID)
	}
	return idx
}

// Suggest returns topics matching query. Topics whose name or signature
// starts with the query come first, then topics that only contain it; each
// group keeps topic-list order. An empty query matches nothing, and so does
// a query that is not valid UTF-8.
func (idx *Index) Suggest(query string) []models.Topic {
	if query == "" {
		metrics.RecordSuggestion("empty_query")
		return []models.Topic{}
	}
	if !utf8.ValidString(query) {
		metrics.RecordSuggestion("invalid_query")
		return []models.Topic{}
	}

	q := Normalize(query)
	sq := Signature(q)

	prefix := make(map[int64]struct{})
	idx.names.prefixIDs(q, prefix)
	idx.signatures.prefixIDs(sq, prefix)

	positions := make([]int, 0, len(prefix))
	for id := range prefix {
		positions = append(positions, idx.position[id])
	}
	sort.Ints(positions)

	results := make([]models.Topic, 0, len(positions))
	for _, pos := range positions {
		results = append(results, idx.entries[pos].topic)
	}

	for _, e := range idx.entries {
		if _, ok := prefix[e.topic.ID]; ok {
			continue
		}
		if (q != "" && strings.Contains(e.name, q)) || (sq != "" && strings.Contains(e.signature, sq)) {
			results = append(results, e.topic)
		}
	}

	if len(results) == 0 {
		metrics.RecordSuggestion("no_match")
	} else {
		metrics.RecordSuggestion("match")
	}
	return results
}

// OfferCreate reports whether the UI should offer to create query as a new
// topic: the query is non-empty, nothing matched, and no topic has exactly
// this name (case-sensitive, untrimmed).
func (idx *Index) OfferCreate(query string, results []models.Topic) bool {
	if query == "" || len(results) > 0 {
		return false
	}
	for _, e := range idx.entries {
		if e.topic.Name == query {
			return false
		}
	}
	return true
}
