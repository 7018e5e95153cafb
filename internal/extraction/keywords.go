package extraction

import (
	"sort"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/parsing"
)

// DefaultTopN is the number of keywords returned when no limit is given
const DefaultTopN = 15

// KeywordCount is a keyword with its number of occurrences
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// KeywordExtractor ranks non-stopword tokens by frequency.
// It is safe for concurrent use.
type KeywordExtractor struct {
	stopwords lexicon.StopwordSet
}

// NewKeywordExtractor creates an extractor that skips the given stopwords
func NewKeywordExtractor(stopwords lexicon.StopwordSet) *KeywordExtractor {
	return &KeywordExtractor{stopwords: stopwords}
}

// Extract normalizes text and returns at most topN keywords, most frequent
// first. topN <= 0 selects DefaultTopN.
func (e *KeywordExtractor) Extract(text string, topN int) []string {
	return e.ExtractTokens(parsing.WordTokens(parsing.Normalize(text)), topN)
}

// ExtractTokens returns at most topN keywords from pre-split word tokens.
// The result is never nil.
func (e *KeywordExtractor) ExtractTokens(words []string, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopN
	}

	ranked := e.RankTokens(words)
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	out := make([]string, len(ranked))
	for i, kc := range ranked {
		out[i] = kc.Word
	}
	return out
}

// RankTokens counts every non-stopword token and orders the result by count
// descending. Equal counts keep the order in which the words first appeared.
func (e *KeywordExtractor) RankTokens(words []string) []KeywordCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, w := range words {
		if e.stopwords.Contains(w) {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	ranked := make([]KeywordCount, len(order))
	for i, w := range order {
		ranked[i] = KeywordCount{Word: w, Count: counts[w]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}
