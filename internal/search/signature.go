// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package search

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Precomposed Hangul syllables occupy U+AC00..U+D7A3. Each leading consonant
// owns a run of 21 vowels x 28 trailing consonants = 588 syllables.
const (
	hangulBase     = 0xAC00
	hangulLast     = 0xD7A3
	syllablesPerCh = 588
)

// choseong lists the 19 leading consonants as compatibility jamo, in code
// point order of the syllable blocks they head.
var choseong = [19]rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ',
	'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

// Normalize prepares raw text for matching: NFC composition (so decomposed
// jamo sequences become syllables) followed by lowercasing. Invalid UTF-8
// bytes all become U+FFFD, so Index.Suggest refuses such queries.
func Normalize(text string) string {
	return strings.ToLower(norm.NFC.String(text))
}

// Signature maps every precomposed Hangul syllable in text to its leading
// consonant and keeps other characters as they are. Callers pass normalized
// text; Signature itself does not lowercase.
//
//	Signature("장미 정원") == "ㅈㅁ ㅈㅇ"
//	Signature("cafe 카페") == "cafe ㅋㅍ"
func Signature(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= hangulBase && r <= hangulLast {
			r = choseong[(r-hangulBase)/syllablesPerCh]
		}
		b.WriteRune(r)
	}
	return b.String()
}
