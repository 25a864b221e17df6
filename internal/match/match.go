// Package match scores layout candidates against the query.
package match

import (
	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"
)

// Best returns the highest scoring candidate for query. A candidate only
// scores when every query rune appears in it, in order. Equal scores resolve
// to the candidate that comes first in the list. An empty query never matches.
func Best(query string, candidates []string) (string, bool) {
	if query == "" || len(candidates) == 0 {
		return "", false
	}
	matches := fuzzy.Find(query, candidates)
	if len(matches) == 0 {
		return "", false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Score > best.Score || (m.Score == best.Score && m.Index < best.Index) {
			best = m
		}
	}
	if best.Index < 0 || best.Index >= len(candidates) {
		return "", false
	}
	return candidates[best.Index], true
}

// Filter returns the candidates containing query as a case-insensitive
// subsequence, preserving list order. An empty query keeps every candidate.
func Filter(query string, candidates []string) []string {
	if query == "" {
		out := make([]string, len(candidates))
		copy(out, candidates)
		return out
	}
	return lfuzzy.FindFold(query, candidates)
}
