// Package extraction finds lexicon phrases and frequency-ranked keywords in document text.
package extraction

import (
	"sort"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/parsing"
)

// PhraseExtractor returns the distinct lexicon phrases occurring in text.
// It holds no mutable state and is safe for concurrent use.
type PhraseExtractor struct {
	lex *lexicon.Lexicon
}

// NewPhraseExtractor creates an extractor over lex
func NewPhraseExtractor(lex *lexicon.Lexicon) *PhraseExtractor {
	return &PhraseExtractor{lex: lex}
}

// Label returns the label of the underlying lexicon
func (e *PhraseExtractor) Label() lexicon.Label {
	return e.lex.Label()
}

// Extract normalizes text and returns the matched phrases, sorted.
// Text that is already normalized is left unchanged by normalization.
func (e *PhraseExtractor) Extract(text string) []string {
	return e.ExtractTokens(parsing.PhraseTokens(parsing.Normalize(text)))
}

// ExtractTokens returns every lexicon phrase that appears as a contiguous run
// of tokens, as a sorted set. Repeated and overlapping occurrences collapse
// to one entry. The result is never nil.
func (e *PhraseExtractor) ExtractTokens(tokens []string) []string {
	found := make(map[string]struct{})
	for i, tok := range tokens {
		for _, phrase := range e.lex.Candidates(tok) {
			if _, ok := found[phrase.Text]; ok {
				continue
			}
			if matchesAt(tokens, i, phrase.Tokens) {
				found[phrase.Text] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(found))
	for text := range found {
		out = append(out, text)
	}
	sort.Strings(out)
	return out
}

// matchesAt reports whether phrase occurs in tokens starting at position i
func matchesAt(tokens []string, i int, phrase []string) bool {
	if i+len(phrase) > len(tokens) {
		return false
	}
	for j, want := range phrase {
		if tokens[i+j] != want {
			return false
		}
	}
	return true
}
