package lexicon

import (
	"sort"
	"strings"
)

// StopwordSet is an immutable set of lowercase words excluded from keyword extraction
type StopwordSet map[string]struct{}

// NewStopwordSet builds a set from words, lowercasing and trimming each one
func NewStopwordSet(words []string) StopwordSet {
	set := make(StopwordSet, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether word is a stopword. word must already be lowercase.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Words returns the stopwords in sorted order
func (s StopwordSet) Words() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
