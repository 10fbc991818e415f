// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

/*
Package search matches topic names for the suggestion list.

Matching runs on normalized text (NFC, lowercase) and on its signature, where
every Hangul syllable is replaced by its leading consonant. Typing the initial
consonants "ㅈㅁ" therefore finds "장미 정원". Each topic's name and signature
are stored in prefix tries so the prefix group is found without scanning; the
contains-only group is a linear scan over the remaining topics.

Result order:

 1. topics whose name or signature starts with the query, in topic-list order
 2. topics whose name or signature only contains it, in topic-list order
*/
package search
