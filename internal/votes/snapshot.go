// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package votes

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/freejido/freejido/internal/models"
)

// EncodeSnapshot serializes place votes as a flat JSON object keyed by the
// decimal place id, for example {"12":"like","31":"flag"}.
func EncodeSnapshot(placeVotes map[int64]models.VoteKind) ([]byte, error) {
	flat := make(map[string]string, len(placeVotes))
	for id, kind := range placeVotes {
		if !kind.Valid() {
			continue
		}
		flat[strconv.FormatInt(id, 10)] = string(kind)
	}
	data, err := json.Marshal(flat)
	if err != nil {
		return nil, fmt.Errorf("marshal vote snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot written by EncodeSnapshot. Entries with a
// non-numeric id or an unknown kind are dropped; a malformed document is an
// error. Empty input decodes to an empty map.
func DecodeSnapshot(data []byte) (map[int64]models.VoteKind, error) {
	out := make(map[int64]models.VoteKind)
	if len(data) == 0 {
		return out, nil
	}

	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("unmarshal vote snapshot: %w", err)
	}
	for key, value := range flat {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		kind := models.VoteKind(value)
		if !kind.Valid() {
			continue
		}
		out[id] = kind
	}
	return out, nil
}

// sortedIDs returns the keys of m in ascending order.
func sortedIDs(m map[int64]models.VoteKind) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
