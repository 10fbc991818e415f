// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package search

// trieNode represents a node in the trie.
type trieNode struct {
	children map[rune]*trieNode
	ids      []int64 // topics whose key ends here
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// trie is a prefix tree mapping normalized keys to topic ids. Several topics
// may share a key. It is built once per Index and read without locking, so it
// must not be mutated after the Index is published.
//
// Time Complexity:
//   - insert: O(m) where m = key length in runes
//   - prefixIDs: O(m + k) where k = nodes under the prefix
type trie struct {
	root *trieNode
}

func newTrie() *trie {
	return &trie{root: newTrieNode()}
}

// insert adds id under key. Empty keys are ignored.
func (t *trie) insert(key string, id int64) {
	if key == "" {
		return
	}

	node := t.root
	for _, ch := range key {
		if node.children[ch] == nil {
			node.children[ch] = newTrieNode()
		}
		node = node.children[ch]
	}

	node.ids = append(node.ids, id)
}

// find returns the node at the end of prefix, or nil.
func (t *trie) find(prefix string) *trieNode {
	node := t.root
	for _, ch := range prefix {
		node = node.children[ch]
		if node == nil {
			return nil
		}
	}
	return node
}

// prefixIDs adds to set every id whose key starts with prefix. An empty
// prefix matches nothing.
func (t *trie) prefixIDs(prefix string, set map[int64]struct{}) {
	if prefix == "" {
		return
	}
	collectIDs(t.find(prefix), set)
}

// collectIDs recursively collects ids from a node and its descendants.
func collectIDs(node *trieNode, set map[int64]struct{}) {
	if node == nil {
		return
	}
	for _, id := range node.ids {
		set[id] = struct{}{}
	}
	for _, child := range node.children {
		collectIDs(child, set)
	}
}
