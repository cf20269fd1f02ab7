// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"regexp"
	"strings"
)

// wordRE extracts lowercase alphanumeric runs; everything else separates tokens.
var wordRE = regexp.MustCompile(`[a-z0-9]+`)

// stopwords are dropped during tokenization.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "to": {}, "of": {}, "and": {}, "in": {},
	"on": {}, "for": {}, "at": {}, "from": {}, "by": {}, "with": {}, "as": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"that": {}, "this": {}, "these": {}, "those": {}, "it": {}, "its": {},
	"into": {}, "over": {}, "about": {}, "than": {}, "up": {}, "down": {},
	"out": {}, "off": {}, "or": {}, "not": {},
}

// Tokenize lower-cases s, extracts alphanumeric runs, and drops stopwords.
func Tokenize(s string) []string {
	var tokens []string
	for _, w := range wordRE.FindAllString(strings.ToLower(s), -1) {
		if _, skip := stopwords[w]; !skip {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// containsWord reports whether word occurs in text with non-alphanumeric
// bytes (or the text edges) on both sides. Matching is case-insensitive;
// word may contain spaces ("international space station"), in which case the
// boundary check applies at its ends only.
func containsWord(text, word string) bool {
	if word == "" {
		return false
	}
	text = strings.ToLower(text)
	word = strings.ToLower(word)
	for start := 0; ; {
		i := strings.Index(text[start:], word)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(word)
		if (i == 0 || !isAlnum(text[i-1])) && (end == len(text) || !isAlnum(text[end])) {
			return true
		}
		start = i + 1
	}
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
